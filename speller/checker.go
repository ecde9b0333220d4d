// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"github.com/kortschak/camel"
	"github.com/speldict/aspell/affix"
	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/lang"
)

// Checker implements the spell-check decision procedure against a
// speller's attached dictionaries.
type Checker struct {
	sp    *SpellerImpl
	camel camel.Splitter
}

// NewChecker returns a Checker bound to sp's attached dictionaries and
// settings.
func NewChecker(sp *SpellerImpl) *Checker {
	return &Checker{sp: sp, camel: camel.NewSplitter([]string{"_"})}
}

// Check reports whether word is correct, trying in order the ignore-length
// shortcut, a camel-case split, the compound (run-together) search and a
// special-character split, returning the CheckInfo chain of whichever path
// accepted it and a GuessInfo holding the head CheckInfo of each
// run-together split accepted along the way.
func (c *Checker) Check(word []byte) (bool, dict.CheckInfo, dict.GuessInfo) {
	var guesses dict.GuessInfo
	if len(word) < c.sp.Settings.Ignore {
		return true, dict.CheckInfo{Word: string(word)}, guesses
	}
	if c.sp.Settings.CamelCase {
		if ok, ci := c.checkCamel(word); ok {
			return true, ci, guesses
		}
	}
	if ok, ci := c.checkRunTogether(word, c.sp.Settings.RunTogetherLimit, &guesses); ok {
		return true, ci, guesses
	}
	if ok, ci := c.checkSpecialSplit(word, &guesses); ok {
		return true, ci, guesses
	}
	return false, dict.CheckInfo{}, guesses
}

// checkCamel splits word on case boundaries and requires at least two
// parts, each accepted by a plain lookup only — no affix, no compound.
func (c *Checker) checkCamel(word []byte) (bool, dict.CheckInfo) {
	parts := c.camel.Split(string(word))
	if len(parts) < 2 {
		return false, dict.CheckInfo{}
	}
	for _, p := range parts {
		if !c.checkPlain([]byte(p)) {
			return false, dict.CheckInfo{}
		}
	}
	return true, dict.CheckInfo{Word: string(word)}
}

// checkPlain performs a direct clean-insensitive lookup with no affix
// expansion and no compound search, the "simple lookup only" mode the
// camel-case path requires.
func (c *Checker) checkPlain(word []byte) bool {
	for _, ad := range c.sp.checkDicts() {
		found := false
		ad.Dict.CleanLookup(word, func(dict.WordEntry) bool {
			found = true
			return false
		})
		if found {
			return true
		}
	}
	return false
}

// checkSingle tries a plain lookup, then an affix check against every
// affix-aware attached dictionary; if both fail and word is not already
// AllUpper, retry once with the first byte
// title-cased.
func (c *Checker) checkSingle(word []byte) (bool, dict.CheckInfo) {
	if ok, ci := c.checkSingleExact(word); ok {
		return true, ci
	}
	if c.sp.Lang.CasePattern(word) == lang.AllUpper {
		return false, dict.CheckInfo{}
	}
	var buf [256]byte
	titled := append([]byte(nil), c.sp.Lang.ToTitle(buf[:0], word)...)
	if string(titled) == string(word) {
		return false, dict.CheckInfo{}
	}
	return c.checkSingleExact(titled)
}

func (c *Checker) checkSingleExact(word []byte) (bool, dict.CheckInfo) {
	if c.checkPlain(word) {
		return true, dict.CheckInfo{Word: string(word)}
	}
	for _, ad := range c.sp.affixDicts() {
		if res, ok := ad.Affix.AffixCheck(string(word), rootLookupFor(ad.Dict)); ok {
			return true, checkInfoFromAffix(res)
		}
	}
	return false, dict.CheckInfo{}
}

// checkRunTogether is check_runtogether: try word whole first, then, if
// run-together is enabled and limit allows another component, split at
// every offset at least run_together_min from each end and accept iff
// both halves check out.
func (c *Checker) checkRunTogether(word []byte, limit int, guesses *dict.GuessInfo) (bool, dict.CheckInfo) {
	if ok, ci := c.checkSingle(word); ok {
		return true, ci
	}
	if !c.sp.Settings.RunTogether || limit <= 1 {
		return false, dict.CheckInfo{}
	}
	min := c.sp.Settings.RunTogetherMin
	if min < 1 {
		min = 1
	}
	for i := min; i <= len(word)-min; i++ {
		head, tail := word[:i], word[i:]
		okHead, ciHead := c.checkSingle(head)
		if !okHead {
			continue
		}
		okTail, ciTail := c.checkRunTogether(tail, limit-1, guesses)
		if !okTail {
			continue
		}
		ciHead.Compound = true
		next := ciTail
		ciHead.Next = &next
		guesses.Add(ciHead)
		return true, ciHead
	}
	return false, dict.CheckInfo{}
}

// checkSpecialSplit splits word at bytes that are only legal as a
// language-special boundary character (e.g. a hyphen) and re-runs the
// run-together pipeline on each piece, one level deep (pieces are not
// themselves special-split again).
func (c *Checker) checkSpecialSplit(word []byte, guesses *dict.GuessInfo) (bool, dict.CheckInfo) {
	pieces := splitOnSpecial(c.sp.Lang, word)
	if len(pieces) < 2 {
		return false, dict.CheckInfo{}
	}
	for _, p := range pieces {
		if ok, _ := c.checkRunTogether(p, c.sp.Settings.RunTogetherLimit, guesses); !ok {
			return false, dict.CheckInfo{}
		}
	}
	return true, dict.CheckInfo{Word: string(word)}
}

func splitOnSpecial(l *lang.Lang, word []byte) [][]byte {
	var pieces [][]byte
	start := 0
	for i, b := range word {
		if isAlnumByte(b) {
			continue
		}
		begin, middle, end := l.Special(b)
		if !begin && !middle && !end {
			continue
		}
		if i > start {
			pieces = append(pieces, word[start:i])
		}
		start = i + 1
	}
	if start < len(word) {
		pieces = append(pieces, word[start:])
	}
	return pieces
}

func isAlnumByte(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x80
}

// rootLookupFor adapts a dictionary's clean lookup into the affix
// package's narrow RootLookup shape.
func rootLookupFor(d dict.Dict) affix.RootLookup {
	return func(root string) (string, bool) {
		var flags string
		found := false
		d.CleanLookup([]byte(root), func(e dict.WordEntry) bool {
			flags = e.AffixFlag
			found = true
			return false
		})
		return flags, found
	}
}

// checkInfoFromAffix translates an affix.Result (root plus the
// prefix/suffix entries stripped to reach it) into the CheckInfo shape
// Reconstruct expects: PreAdd/PreStrip undo the prefix, SufAdd/SufStrip
// undo the suffix.
func checkInfoFromAffix(r affix.Result) dict.CheckInfo {
	ci := dict.CheckInfo{Word: r.Root}
	if r.Prefix != nil {
		ci.PreAdd = r.Prefix.Append
		ci.PreStrip = len(r.Prefix.Strip)
		ci.AffixApplied += string(r.Prefix.Flag)
	}
	if r.Suffix != nil {
		ci.SufAdd = r.Suffix.Append
		ci.SufStrip = len(r.Suffix.Strip)
		ci.AffixApplied += string(r.Suffix.Flag)
	}
	return ci
}
