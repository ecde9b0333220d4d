// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editdist

// TypoCost supplies the per-character costs and keyboard-adjacency test
// TypoDistance needs. It is a narrow interface so this package does not
// need to depend on the lang package's Keyboard type; speller adapts a
// lang.Keyboard to this shape.
type TypoCost struct {
	Missing                   int
	Swap                      int
	ReplAdjacent, ReplOther   int
	ExtraAdjacent, ExtraOther int
	CaseMismatch              int

	// Adjacent reports whether the lowercase forms of a and b are
	// neighbours on the keyboard layout.
	Adjacent func(a, b byte) bool
	// Lower returns the lowercase form of a byte, used to detect a
	// same-letter case mismatch.
	Lower func(b byte) byte
}

// TypoDistance computes the edit distance between a and b under a
// keyboard-weighted cost model: substitutions and deletions of keys
// adjacent to the correct one are cheaper than arbitrary ones, and a
// same-letter case mismatch is cheaper than an ordinary substitution.
func TypoDistance(a, b []byte, c TypoCost) int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	dp[0][0] = 0
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + c.Missing
	}
	for i := 1; i <= n; i++ {
		extra := c.ExtraOther
		if i > 1 && c.Adjacent(a[i-1], a[i-2]) {
			extra = c.ExtraAdjacent
		}
		dp[i][0] = dp[i-1][0] + extra
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			ai, bj := a[i-1], b[j-1]
			var subCost int
			switch {
			case ai == bj:
				subCost = 0
			case c.Lower(ai) == c.Lower(bj):
				subCost = c.CaseMismatch
			case c.Adjacent(c.Lower(ai), c.Lower(bj)):
				subCost = c.ReplAdjacent
			default:
				subCost = c.ReplOther
			}
			best := dp[i-1][j-1] + subCost

			extra := c.ExtraOther
			if i > 1 && c.Adjacent(c.Lower(a[i-1]), c.Lower(a[i-2])) {
				extra = c.ExtraAdjacent
			}
			if v := dp[i-1][j] + extra; v < best {
				best = v
			}
			if v := dp[i][j-1] + c.Missing; v < best {
				best = v
			}
			if i > 1 && j > 1 && ai == b[j-2] && a[i-2] == bj {
				if v := dp[i-2][j-2] + c.Swap; v < best {
					best = v
				}
			}
			dp[i][j] = best
		}
	}
	return dp[n][m]
}
