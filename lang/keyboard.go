// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

// Keyboard is a per-language typo cost table: replacing or inserting a
// letter adjacent to the intended one on the named physical layout costs
// less than an arbitrary substitution.
type Keyboard struct {
	Name string

	// Missing is the cost of inserting a character that should have been
	// typed but was not.
	Missing int
	// Swap is the cost of transposing two adjacent letters.
	Swap int
	// ReplAdjacent and ReplOther are substitution costs for an
	// adjacent-key and an arbitrary-key replacement respectively.
	ReplAdjacent, ReplOther int
	// ExtraAdjacent and ExtraOther are deletion costs for an extra
	// character that is adjacent, or not adjacent, to its neighbour.
	ExtraAdjacent, ExtraOther int
	// CaseMismatch is the cost of two letters differing only in case.
	CaseMismatch int

	// adjacency maps a lowercase letter to the set of letters adjacent to
	// it on the keyboard.
	adjacency map[byte]map[byte]bool
}

// NewKeyboard builds a Keyboard from a row-by-row physical layout, such as
// {"qwertyuiop", "asdfghjkl", "zxcvbnm"}. Letters in adjacent columns on
// neighbouring rows, as well as same-row neighbours, are considered
// adjacent, matching a standard QWERTY finger-distance heuristic.
func NewKeyboard(name string, rows []string) *Keyboard {
	kb := &Keyboard{
		Name:          name,
		Missing:       85,
		Swap:          60,
		ReplAdjacent:  70,
		ReplOther:     110,
		ExtraAdjacent: 70,
		ExtraOther:    100,
		CaseMismatch:  50,
		adjacency:     make(map[byte]map[byte]bool),
	}
	add := func(a, b byte) {
		if kb.adjacency[a] == nil {
			kb.adjacency[a] = make(map[byte]bool)
		}
		kb.adjacency[a][b] = true
		if kb.adjacency[b] == nil {
			kb.adjacency[b] = make(map[byte]bool)
		}
		kb.adjacency[b][a] = true
	}
	for r, row := range rows {
		for i := 0; i < len(row); i++ {
			if i+1 < len(row) {
				add(row[i], row[i+1])
			}
			if r+1 < len(rows) {
				below := rows[r+1]
				for _, off := range []int{-1, 0, 1} {
					j := i + off
					if j >= 0 && j < len(below) {
						add(row[i], below[j])
					}
				}
			}
		}
	}
	return kb
}

// Adjacent reports whether lowercase letters a and b are neighbours on the
// keyboard.
func (kb *Keyboard) Adjacent(a, b byte) bool {
	if kb == nil {
		return false
	}
	return kb.adjacency[a][b]
}

// Qwerty is the standard US QWERTY layout, the default for English.
var Qwerty = NewKeyboard("qwerty", []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
})

func init() {
	RegisterKeyboard("qwerty", Qwerty)
}
