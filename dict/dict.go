// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

// WordEntry is one dictionary row: a word plus the metadata a lookup or a
// suggestion scan needs. It is returned by value; callers must not assume
// it remains valid past the next call into the owning Dict for
// memory-mapped dictionaries that reuse scratch buffers.
type WordEntry struct {
	Word      string
	AffixFlag string // flag bytes naming applicable prefix/suffix rules
	Category  string
	Freq      uint8
}

// HasAffix reports whether the entry carries affix-compression flags.
func (w WordEntry) HasAffix() bool { return w.AffixFlag != "" }

// Kind is a closed tagged variant distinguishing the dictionary families
// implementing Dict: a ROD, a personal/session word list, a replacement
// dictionary or a fan-out over several of the above.
type Kind int

const (
	KindReadOnly Kind = iota
	KindPersonal
	KindSession
	KindReplacement
	KindMulti
)

// Dict is the abstract surface every dictionary implementation (read-only,
// personal, session, replacement, or a multi-dict fan-out) presents to the
// lookup facade, the affix manager and the suggester.
type Dict interface {
	// Kind reports which concrete family this Dict belongs to, used by
	// the lookup facade to group dictionaries by kind and order same-kind
	// dictionaries by size.
	Kind() Kind

	// Name identifies the dictionary for diagnostics (a file path, or
	// "personal"/"session"/"replacement").
	Name() string

	// Size reports the number of distinct words held, used by the
	// lookup facade's descending-size ordering heuristic.
	Size() int

	// Lookup returns the first entry matching word under cmp, and
	// whether one was found.
	Lookup(word []byte, cmp SensitiveCompare) (WordEntry, bool)

	// CleanLookup behaves like Lookup but always compares using the
	// clean (case-/accent-insensitive) form, and may enumerate every
	// case-only duplicate chained under the match via fn. fn returning
	// false stops the enumeration early.
	CleanLookup(word []byte, fn func(WordEntry) bool)

	// Soundslike iterates every word whose soundslike equals sl,
	// calling fn for each. This is distinct from a soundslike *scan*
	// (which an engine with grouped storage, such as rod.Dict,
	// accelerates); a plain Dict may just filter its full word set.
	Soundslike(sl []byte, fn func(WordEntry) bool)
}

// Mutable is implemented by the writable dictionary kinds (personal,
// session, replacement); a plain ROD does not implement it.
type Mutable interface {
	Dict
	Add(word string, affixFlag string) error
	Remove(word string) error
	Clear() error
}

// Mode selects how LookupInfo enumerates the dictionaries attached to a
// speller.
type Mode int

const (
	// ModeWord requires the candidate root to already exist verbatim in
	// a dictionary (used inside affix_check to validate a stripped
	// root).
	ModeWord Mode = iota
	// ModeGuess is looked up exactly like ModeWord by LookupInfo.Lookup;
	// it does not accept roots reachable only through affix expansion and
	// does not collect roots into a GuessInfo.
	ModeGuess
	// ModeClean ignores case and accents entirely.
	ModeClean
	// ModeAlwaysTrue never actually looks anything up; used to probe
	// the affix machinery's condition checks in isolation.
	ModeAlwaysTrue
)

// LookupInfo is the stack-local iterator the affix manager and checker use
// to consult every attached dictionary during a single check/suggest call.
type LookupInfo struct {
	Dicts []Dict
	Mode  Mode
	Cmp   SensitiveCompare
}

// Lookup tries word against every attached dictionary in order, returning
// the first hit.
func (li LookupInfo) Lookup(word []byte) (WordEntry, bool) {
	if li.Mode == ModeAlwaysTrue {
		return WordEntry{Word: string(word)}, true
	}
	for _, d := range li.Dicts {
		cmp := li.Cmp
		if li.Mode == ModeClean {
			cmp.CaseSensitive = false
			cmp.AccentSkip = true
		}
		if e, ok := d.Lookup(word, cmp); ok {
			return e, true
		}
	}
	return WordEntry{}, false
}

// CheckInfo is one node of the result a failed check returns: the
// canonical root plus how much was stripped/added on each side to recover
// the surface form the caller typed, chained into a compound via Next when
// Compound is true.
type CheckInfo struct {
	Word        string
	PreStrip    int
	PreAdd      string
	SufStrip    int
	SufAdd      string
	Compound    bool
	Next        *CheckInfo
	Guess       bool
	AffixApplied string
}

// Reconstruct rebuilds the surface form the CheckInfo chain describes.
func (ci *CheckInfo) Reconstruct() string {
	if ci == nil {
		return ""
	}
	s := ci.PreAdd + ci.Word[minInt(ci.PreStrip, len(ci.Word)):]
	if ci.SufStrip > 0 && ci.SufStrip <= len(s) {
		s = s[:len(s)-ci.SufStrip]
	}
	s += ci.SufAdd
	if ci.Compound && ci.Next != nil {
		s += ci.Next.Reconstruct()
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// GuessInfo is a per-call scratch arena of candidate CheckInfos. The
// checker starts a fresh one on each check and adds the head CheckInfo of
// every run-together split it accepts; affix checking adds nothing to it.
type GuessInfo struct {
	Roots []CheckInfo
}

// Reset clears the arena for reuse on the next call.
func (g *GuessInfo) Reset() { g.Roots = g.Roots[:0] }

// Add appends a candidate root to the arena.
func (g *GuessInfo) Add(ci CheckInfo) { g.Roots = append(g.Roots, ci) }
