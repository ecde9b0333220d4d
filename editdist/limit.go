// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editdist

// LimitEditDistance computes the weighted edit distance between a and b,
// bounded to paths that use at most k edit operations, with a
// branch-and-bound shape: only a diagonal
// band of width 2·(k+|len(a)-len(b)|)+1 is filled, so callers with a small
// k (the common case — soundslike scans only ever ask for k in {0,1,2})
// pay a cost far below a full O(len(a)·len(b)) table.
//
// If the distance exceeds k·w.Max (more than k edits at these weights),
// LargeNum is returned. stoppedAt
// reports the length of the common prefix of a and b that the scan
// consumed before the first divergence, a hint a soundslike enumerator
// can use to avoid re-examining already-agreeing bytes.
func LimitEditDistance(a, b []byte, k int, w Weights) (dist, stoppedAt int) {
	n, m := len(a), len(b)
	stoppedAt = commonPrefixLen(a, b)

	diff := n - m
	if diff < 0 {
		diff = -diff
	}
	if diff > k {
		return LargeNum, stoppedAt
	}
	band := k + diff

	const inf = LargeNum
	rows := make([][]int, n+1)
	for i := range rows {
		rows[i] = make([]int, m+1)
		for j := range rows[i] {
			rows[i][j] = inf
		}
	}
	rows[0][0] = 0
	for j := 1; j <= m && j <= band; j++ {
		rows[0][j] = j * w.Del2
	}
	for i := 1; i <= n; i++ {
		lo := i - band
		if lo < 0 {
			lo = 0
		}
		hi := i + band
		if hi > m {
			hi = m
		}
		for j := lo; j <= hi; j++ {
			if j == 0 {
				rows[i][0] = i * w.Del1
				continue
			}
			subCost := w.Sub
			if a[i-1] == b[j-1] {
				subCost = 0
			}
			best := inf
			if rows[i-1][j-1] < inf {
				v := rows[i-1][j-1] + subCost
				if v < best {
					best = v
				}
			}
			if j-1 >= lo && rows[i][j-1] < inf {
				if v := rows[i][j-1] + w.Del2; v < best {
					best = v
				}
			}
			if rows[i-1][j] < inf {
				if v := rows[i-1][j] + w.Del1; v < best {
					best = v
				}
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] && rows[i-2][j-2] < inf {
				if v := rows[i-2][j-2] + w.Swap; v < best {
					best = v
				}
			}
			rows[i][j] = best
		}
	}
	if rows[n][m] >= inf || rows[n][m] > k*w.Max {
		return LargeNum, stoppedAt
	}
	return rows[n][m], stoppedAt
}

// Limit1 and Limit2 are thin calls into the general band-limited routine
// for the hot k=1 and k=2 soundslike-scan paths.
func Limit1(a, b []byte, w Weights) (dist, stoppedAt int) { return LimitEditDistance(a, b, 1, w) }
func Limit2(a, b []byte, w Weights) (dist, stoppedAt int) { return LimitEditDistance(a, b, 2, w) }

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
