// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict defines the abstract Dict interface a read-only dictionary,
// a personal or session word list, and a replacement dictionary all share,
// plus the comparison, lookup-mode and result types the speller facade and
// the affix manager pass through it.
package dict

import "github.com/speldict/aspell/lang"

// Position identifies where in a word a match is being attempted, which
// controls whether a language's begin/middle/end special characters are
// tolerated.
type Position int

const (
	PosPlain Position = iota
	PosBegin
	PosMiddle
	PosEnd
)

// SensitiveCompare compares two clean (or raw, depending on CaseSensitive)
// words for equality, optionally tolerating the language's special
// word-boundary characters at a given position. It comes in four
// flavors — plain, begin-only, middle and end — selected by the Position
// field.
type SensitiveCompare struct {
	Lang          *lang.Lang
	Position      Position
	CaseSensitive bool
	AccentSkip    bool
}

// Equal reports whether a and b match under this comparison policy.
func (c SensitiveCompare) Equal(a, b []byte) bool {
	if !c.CaseSensitive {
		var bufA, bufB [256]byte
		a = c.Lang.ToLower(bufA[:0], a)
		b = c.Lang.ToLower(bufB[:0], b)
	}
	if c.AccentSkip {
		var bufA, bufB [256]byte
		a = c.Lang.ToClean(bufA[:0], a)
		b = c.Lang.ToClean(bufB[:0], b)
	}
	if len(a) != len(b) {
		return c.equalModuloSpecial(a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalModuloSpecial handles the case where one side carries extra
// begin/middle/end special bytes (for example an apostrophe) that the
// comparison is allowed to ignore at this Position.
func (c SensitiveCompare) equalModuloSpecial(a, b []byte) bool {
	if c.Position == PosPlain {
		return false
	}
	sa, sb := stripSpecial(c, a), stripSpecial(c, b)
	return sa != "" && sa == sb
}

func stripSpecial(c SensitiveCompare, w []byte) string {
	out := make([]byte, 0, len(w))
	for i, ch := range w {
		begin, middle, end := c.Lang.Special(ch)
		skip := false
		switch {
		case i == 0 && c.Position == PosBegin:
			skip = begin
		case i == len(w)-1 && c.Position == PosEnd:
			skip = end
		case c.Position == PosMiddle:
			skip = middle
		}
		if !skip {
			out = append(out, ch)
		}
	}
	return string(out)
}

// Plain, Insensitive and the other named constructors build the four
// comparison flavors explicitly rather than leaving callers to set every
// field by hand.
func Plain(l *lang.Lang) SensitiveCompare {
	return SensitiveCompare{Lang: l, Position: PosPlain, CaseSensitive: true}
}

func Insensitive(l *lang.Lang) SensitiveCompare {
	return SensitiveCompare{Lang: l, Position: PosPlain, CaseSensitive: false, AccentSkip: true}
}

func BeginOnly(l *lang.Lang, caseSensitive bool) SensitiveCompare {
	return SensitiveCompare{Lang: l, Position: PosBegin, CaseSensitive: caseSensitive}
}

func Middle(l *lang.Lang, caseSensitive bool) SensitiveCompare {
	return SensitiveCompare{Lang: l, Position: PosMiddle, CaseSensitive: caseSensitive}
}

func End(l *lang.Lang, caseSensitive bool) SensitiveCompare {
	return SensitiveCompare{Lang: l, Position: PosEnd, CaseSensitive: caseSensitive}
}
