// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editdist implements the weighted edit-distance routines the
// speller's suggestion engine scores candidates with: a full
// dynamic-programming distance with adjacent transposition, a
// branch-and-bound limited variant, and a keyboard-weighted typo distance.
package editdist

// Weights holds the per-operation costs used throughout the suggestion
// pipeline.
type Weights struct {
	Del1 int // cost of deleting from the first string
	Del2 int // cost of deleting from the second string
	Swap int // cost of an adjacent transposition
	Sub  int // cost of a substitution
	Min  int // minimum possible cost of any edit, used for level math
	Max  int // maximum cost considered, used as a cutoff
}

// DefaultWeights are the baseline edit-distance weights the suggestion
// presets start from.
var DefaultWeights = Weights{Del1: 95, Del2: 95, Swap: 90, Sub: 100, Min: 90, Max: 100}

// LargeNum is returned by LimitEditDistance and its specializations when
// the true distance exceeds the requested limit; it is deliberately far
// larger than any value size constraints (see Distance's precondition)
// could otherwise produce.
const LargeNum = 1 << 30

// Distance computes the full weighted edit distance between a and b,
// including a transposition of adjacent letters at the cost of w.Swap.
//
// Precondition: max(len(a), len(b)) * w.Max must be less than 1<<15 to
// avoid overflow in the packed intermediate scores.
func Distance(a, b []byte, w Weights) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m * w.Del2
	}
	if m == 0 {
		return n * w.Del1
	}

	// prev2 holds the row two iterations back, needed for the
	// transposition term d[i-2][j-2].
	prev2 := make([]int, m+1)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j * w.Del2
	}

	for i := 1; i <= n; i++ {
		curr[0] = i * w.Del1
		for j := 1; j <= m; j++ {
			subCost := w.Sub
			if a[i-1] == b[j-1] {
				subCost = 0
			}
			best := prev[j-1] + subCost
			if v := prev[j] + w.Del1; v < best {
				best = v
			}
			if v := curr[j-1] + w.Del2; v < best {
				best = v
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if v := prev2[j-2] + w.Swap; v < best {
					best = v
				}
			}
			curr[j] = best
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[m]
}

// Identity (Distance(a, a, w) == 0) and symmetry (Distance(a, b, w) ==
// Distance(b, a, w)) follow directly from the symmetric treatment of a
// and b above provided w.Del1 == w.Del2.
