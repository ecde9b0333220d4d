// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "strings"

// RootLookup answers whether root exists as a dictionary entry and, if so,
// which affix flags it carries. AffixCheck and Munch take one of these
// instead of depending on the dict package directly, keeping affix usable
// against any word store.
type RootLookup func(root string) (flags string, ok bool)

// Result is a successful AffixCheck: the root that was found plus the
// prefix/suffix entries (either may be nil) that were stripped to reach
// the word that was checked.
type Result struct {
	Root   string
	Prefix *Entry
	Suffix *Entry
}

// hasFlag reports whether flags contains flag.
func hasFlag(flags string, flag byte) bool {
	return strings.IndexByte(flags, flag) >= 0
}

// AffixCheck tries to explain word as some dictionary root plus a known
// prefix and/or suffix, consulting lookup to confirm both that the root
// exists and that it actually carries the flag the candidate affix
// requires. It tries, in order: the word as a bare suffix strip, as a bare
// prefix strip, and as a prefix+suffix cross product, returning the first
// match.
func (m *Manager) AffixCheck(word string, lookup RootLookup) (Result, bool) {
	if len(word) == 0 {
		return Result{}, false
	}

	if r, ok := m.checkSuffix(word, lookup); ok {
		return r, true
	}
	if r, ok := m.checkPrefix(word, lookup); ok {
		return r, true
	}
	return m.checkCrossProduct(word, lookup)
}

func (m *Manager) checkSuffix(word string, lookup RootLookup) (Result, bool) {
	last := word[len(word)-1]
	for _, e := range m.bySuffixLastByte[last] {
		if e.Append != "" && !strings.HasSuffix(word, e.Append) {
			continue
		}
		root := word[:len(word)-len(e.Append)] + e.Strip
		if !e.Cond.MatchEnd([]byte(root)) {
			continue
		}
		if flags, ok := lookup(root); ok && hasFlag(flags, e.Flag) {
			return Result{Root: root, Suffix: e}, true
		}
	}
	return Result{}, false
}

func (m *Manager) checkPrefix(word string, lookup RootLookup) (Result, bool) {
	first := word[0]
	for _, e := range m.byPrefixFirstByte[first] {
		if e.Append != "" && !strings.HasPrefix(word, e.Append) {
			continue
		}
		root := e.Strip + word[len(e.Append):]
		if !e.Cond.MatchBegin([]byte(root)) {
			continue
		}
		if flags, ok := lookup(root); ok && hasFlag(flags, e.Flag) {
			return Result{Root: root, Prefix: e}, true
		}
	}
	return Result{}, false
}

// checkCrossProduct tries stripping a suffix first to reach an
// intermediate word, then stripping a prefix from that intermediate to
// reach the root, requiring both entries to allow cross products.
func (m *Manager) checkCrossProduct(word string, lookup RootLookup) (Result, bool) {
	if len(word) == 0 {
		return Result{}, false
	}
	last := word[len(word)-1]
	for _, se := range m.bySuffixLastByte[last] {
		if !se.CrossProduct {
			continue
		}
		if se.Append != "" && !strings.HasSuffix(word, se.Append) {
			continue
		}
		mid := word[:len(word)-len(se.Append)] + se.Strip
		if !se.Cond.MatchEnd([]byte(mid)) || len(mid) == 0 {
			continue
		}
		first := mid[0]
		for _, pe := range m.byPrefixFirstByte[first] {
			if !pe.CrossProduct {
				continue
			}
			if pe.Append != "" && !strings.HasPrefix(mid, pe.Append) {
				continue
			}
			root := pe.Strip + mid[len(pe.Append):]
			if !pe.Cond.MatchBegin([]byte(root)) {
				continue
			}
			if flags, ok := lookup(root); ok && hasFlag(flags, se.Flag) && hasFlag(flags, pe.Flag) {
				return Result{Root: root, Prefix: pe, Suffix: se}, true
			}
		}
	}
	return Result{}, false
}
