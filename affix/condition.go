// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package affix implements the affix manager: parsing a textual affix
// file into prefix and suffix entries keyed by flag byte, expanding a root
// word under a set of flags into its surface forms, checking whether a
// candidate word can be explained by stripping an affix from some root,
// and the inverse operation (munch) used by dictionary compression.
package affix

import (
	"sort"
	"strings"

	"github.com/speldict/aspell/errs"
)

// maxConditionPositions bounds a condition's length.
const maxConditionPositions = 8

// Condition is a compiled, position-wise byte predicate of at most 8
// positions: position p of a candidate end accepts byte b iff the p'th
// entry's bitmask has b set. A single-position "." condition accepts any
// byte and so imposes no real constraint.
type Condition struct {
	positions []conditionPos
	key       string // canonical, sorted textual form, used for hash-consing
}

type conditionPos [256]bool

// Len reports the number of positions (bytes of context) the condition
// examines.
func (c *Condition) Len() int { return len(c.positions) }

// Key returns the canonical textual form used to dedup identical
// conditions in a hash-consing table.
func (c *Condition) Key() string { return c.key }

// MatchEnd reports whether the last Len() bytes of word satisfy the
// condition, in left-to-right order (so the condition's final position
// corresponds to word's final byte). Used for suffix entries.
func (c *Condition) MatchEnd(word []byte) bool {
	n := len(c.positions)
	if len(word) < n {
		return false
	}
	tail := word[len(word)-n:]
	for i, p := range c.positions {
		if !p[tail[i]] {
			return false
		}
	}
	return true
}

// MatchBegin reports whether the first Len() bytes of word satisfy the
// condition. Used for prefix entries.
func (c *Condition) MatchBegin(word []byte) bool {
	n := len(c.positions)
	if len(word) < n {
		return false
	}
	head := word[:n]
	for i, p := range c.positions {
		if !p[head[i]] {
			return false
		}
	}
	return true
}

// conditionTable hash-conses parsed Conditions so identical condition
// strings share one *Condition.
type conditionTable struct {
	byKey map[string]*Condition
}

func newConditionTable() *conditionTable {
	return &conditionTable{byKey: make(map[string]*Condition)}
}

// parse compiles a condition mini-regex (literal bytes, '.' wildcard, and
// [...]/[^...] classes) of at most maxConditionPositions positions,
// returning the shared *Condition for its canonical form.
func (t *conditionTable) parse(s string) (*Condition, error) {
	positions, err := parsePositions(s)
	if err != nil {
		return nil, err
	}
	if len(positions) > maxConditionPositions {
		return nil, errs.New(errs.InvalidCond, "condition %q has %d positions, max %d", s, len(positions), maxConditionPositions)
	}
	key := canonicalKey(positions)
	if c, ok := t.byKey[key]; ok {
		return c, nil
	}
	c := &Condition{positions: buildCondition(positions), key: key}
	t.byKey[key] = c
	return c, nil
}

type rawPos struct {
	negate bool
	bytes  []byte // class members, or the single literal byte
	any    bool   // '.' (always true)
}

func parsePositions(s string) ([]rawPos, error) {
	var raw []rawPos
	for i := 0; i < len(s); {
		switch s[i] {
		case '.':
			raw = append(raw, rawPos{any: true})
			i++
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, errs.New(errs.InvalidCond, "unterminated class in %q", s)
			}
			cls := s[i+1 : i+end]
			negate := strings.HasPrefix(cls, "^")
			if negate {
				cls = cls[1:]
			}
			raw = append(raw, rawPos{negate: negate, bytes: []byte(cls)})
			i += end + 1
		default:
			raw = append(raw, rawPos{bytes: []byte{s[i]}})
			i++
		}
	}
	return toPositions(raw), nil
}

func toPositions(raw []rawPos) []rawPos {
	for i := range raw {
		sort.Slice(raw[i].bytes, func(a, b int) bool { return raw[i].bytes[a] < raw[i].bytes[b] })
	}
	return raw
}

func canonicalKey(raw []rawPos) string {
	var b strings.Builder
	for _, p := range raw {
		switch {
		case p.any:
			b.WriteByte('.')
		case p.negate:
			b.WriteByte('[')
			b.WriteByte('^')
			b.Write(p.bytes)
			b.WriteByte(']')
		case len(p.bytes) == 1:
			b.Write(p.bytes)
		default:
			b.WriteByte('[')
			b.Write(p.bytes)
			b.WriteByte(']')
		}
	}
	return b.String()
}

func buildCondition(positions []rawPos) []conditionPos {
	out := make([]conditionPos, len(positions))
	for i, p := range positions {
		switch {
		case p.any:
			for b := range out[i] {
				out[i][b] = true
			}
		case p.negate:
			for b := range out[i] {
				out[i][b] = true
			}
			for _, c := range p.bytes {
				out[i][c] = false
			}
		default:
			for _, c := range p.bytes {
				out[i][c] = true
			}
		}
	}
	return out
}
