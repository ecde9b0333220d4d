// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lang holds the per-language static tables a speller needs: byte
// case tables, the clean-form (accent-stripped) transform, the soundslike
// transform, word-boundary special characters and a keyboard layout used
// for typo-weighted scoring.
package lang

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/speldict/aspell/errs"
)

// CasePattern classifies the capitalization of a word.
type CasePattern int

const (
	AllLower CasePattern = iota
	FirstUpper
	AllUpper
	OtherCase
)

func (p CasePattern) String() string {
	switch p {
	case AllLower:
		return "AllLower"
	case FirstUpper:
		return "FirstUpper"
	case AllUpper:
		return "AllUpper"
	default:
		return "Other"
	}
}

// Soundslike computes a lossy many-to-one phonetic key for a clean word.
// Implementations must never return a key longer than the input.
type Soundslike func(clean []byte) []byte

// ReplPair is one entry of a language's typo replacement table: occurrences
// of From in a misspelling are tried replaced with To.
type ReplPair struct {
	From, To string
}

// Lang is a shared, immutable bundle of per-language tables. A zero value is
// not usable; construct one with Load or a builtin such as English.
type Lang struct {
	Name              string
	Charset           string
	SoundslikeName    string
	SoundslikeVersion int
	Keyboard          string

	toLower [256]byte
	toUpper [256]byte
	toTitle [256]byte

	specialBegin  [256]bool
	specialMiddle [256]bool
	specialEnd    [256]bool

	// accentFold maps an accented rune to its clean ASCII-ish base rune.
	// Bytes not covered here, and not in the ASCII case tables, pass
	// through to_clean unchanged.
	accentFold map[rune]rune

	soundslike Soundslike

	ReplTable []ReplPair

	Typo *Keyboard
}

// letterSpec is one row of the declarative letter table used by Load.
type letterSpec struct {
	Lower string `toml:"lower"`
	Upper string `toml:"upper"`
	Title string `toml:"title"`
	Clean string `toml:"clean"`
}

// specialSpec lists the bytes that may begin, occur inside, or end a word,
// beyond plain letters and digits.
type specialSpec struct {
	Begin  string `toml:"begin"`
	Middle string `toml:"middle"`
	End    string `toml:"end"`
}

// replSpec is one row of the declarative replacement table.
type replSpec struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// file is the top level shape of a declarative language file: a
// TOML table of alphabet, case mapping, special characters and
// soundslike rules.
type file struct {
	Language struct {
		Name              string `toml:"name"`
		Charset           string `toml:"charset"`
		Soundslike        string `toml:"soundslike"`
		SoundslikeVersion int    `toml:"soundslike_version"`
		Keyboard          string `toml:"keyboard"`
	} `toml:"language"`
	Letter      []letterSpec `toml:"letter"`
	Special     specialSpec  `toml:"special"`
	Replacement []replSpec   `toml:"replacement"`
}

// Load builds a Lang from a declarative TOML language file. The
// soundslike implementation is selected by name via RegisterSoundslike; an unknown
// name is a language_related error.
func Load(data []byte) (*Lang, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, errs.Mask(errs.LanguageRelated, fmt.Errorf("malformed language file: %w", err))
	}

	l := &Lang{
		Name:              f.Language.Name,
		Charset:           f.Language.Charset,
		SoundslikeName:    f.Language.Soundslike,
		SoundslikeVersion: f.Language.SoundslikeVersion,
		Keyboard:          f.Language.Keyboard,
		accentFold:        make(map[rune]rune),
	}
	for i := range l.toLower {
		l.toLower[i] = byte(i)
		l.toUpper[i] = byte(i)
		l.toTitle[i] = byte(i)
	}
	for _, row := range f.Letter {
		lb := []byte(row.Lower)
		ub := []byte(row.Upper)
		if len(lb) == 1 && len(ub) == 1 {
			l.toLower[ub[0]] = lb[0]
			l.toUpper[lb[0]] = ub[0]
			tb := ub
			if row.Title != "" {
				tb = []byte(row.Title)
			}
			if len(tb) == 1 {
				l.toTitle[lb[0]] = tb[0]
				l.toTitle[ub[0]] = tb[0]
			}
		}
		if row.Clean != "" {
			lr := []rune(row.Lower)
			cr := []rune(row.Clean)
			if len(lr) == 1 && len(cr) == 1 {
				l.accentFold[lr[0]] = cr[0]
				ur := []rune(row.Upper)
				if len(ur) == 1 {
					l.accentFold[ur[0]] = cr[0]
				}
			}
		}
	}
	markSpecial(&l.specialBegin, f.Special.Begin)
	markSpecial(&l.specialMiddle, f.Special.Middle)
	markSpecial(&l.specialEnd, f.Special.End)
	for _, r := range f.Replacement {
		l.ReplTable = append(l.ReplTable, ReplPair{From: r.From, To: r.To})
	}

	sl, err := lookupSoundslike(l.SoundslikeName)
	if err != nil {
		return nil, err
	}
	l.soundslike = sl

	if l.Keyboard != "" {
		kb, err := lookupKeyboard(l.Keyboard)
		if err != nil {
			return nil, err
		}
		l.Typo = kb
	}

	return l, nil
}

func markSpecial(table *[256]bool, chars string) {
	for _, b := range []byte(chars) {
		table[b] = true
	}
}

// ToLower appends the lowercased form of w to dst[:0], reusing dst's
// backing array when it has room, and returns the written slice.
func (l *Lang) ToLower(dst, w []byte) []byte {
	dst = dst[:0]
	for _, b := range w {
		dst = append(dst, l.toLower[b])
	}
	return dst
}

// ToUpper is the ToLower analogue for uppercasing.
func (l *Lang) ToUpper(dst, w []byte) []byte {
	dst = dst[:0]
	for _, b := range w {
		dst = append(dst, l.toUpper[b])
	}
	return dst
}

// ToTitle uppercases only the first byte of w.
func (l *Lang) ToTitle(dst, w []byte) []byte {
	dst = append(dst[:0], w...)
	if len(dst) > 0 {
		dst[0] = l.toTitle[dst[0]]
	}
	return dst
}

// isUpperByte reports whether b currently holds an uppercase letter, i.e.
// it has a distinct lowercase form.
func (l *Lang) isUpperByte(b byte) bool { return l.toLower[b] != b }

// isLowerByte reports whether b currently holds a lowercase letter.
func (l *Lang) isLowerByte(b byte) bool { return l.toUpper[b] != b }

// CasePattern classifies w's capitalization.
func (l *Lang) CasePattern(w []byte) CasePattern {
	if len(w) == 0 {
		return AllLower
	}
	var nUpper, nLower int
	for _, b := range w {
		switch {
		case l.isUpperByte(b):
			nUpper++
		case l.isLowerByte(b):
			nLower++
		}
	}
	switch {
	case nUpper == 0:
		return AllLower
	case nLower == 0:
		return AllUpper
	case nUpper == 1 && l.isUpperByte(w[0]):
		return FirstUpper
	default:
		return OtherCase
	}
}

// FixCase restores pattern onto candidate, writing into dst.
func (l *Lang) FixCase(dst []byte, pattern CasePattern, candidate []byte) []byte {
	switch pattern {
	case AllUpper:
		return l.ToUpper(dst, candidate)
	case FirstUpper:
		return l.ToTitle(dst, l.ToLower(dst, candidate))
	default:
		return append(dst[:0], candidate...)
	}
}

// IsClean reports whether w is already in clean form: to_clean(w) == w.
func (l *Lang) IsClean(w []byte) bool {
	var buf [256]byte
	return string(l.ToClean(buf[:0], w)) == string(w)
}

// ToClean strips accents and lowercases w, the form used for lookup and
// soundslike. ToClean is idempotent.
func (l *Lang) ToClean(dst, w []byte) []byte {
	dst = dst[:0]
	for i := 0; i < len(w); {
		r, size := utf8.DecodeRune(w[i:])
		if size == 1 {
			dst = append(dst, l.toLower[w[i]])
			i++
			continue
		}
		if folded, ok := l.accentFold[r]; ok {
			dst = appendRune(dst, foldRune(folded))
		} else {
			dst = append(dst, w[i:i+size]...)
		}
		i += size
	}
	return dst
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ToSoundslike returns the language's phonetic key for the clean word w.
// len(result) <= len(w) always.
func (l *Lang) ToSoundslike(w []byte) []byte {
	if l.soundslike == nil {
		return append([]byte(nil), w...)
	}
	sl := l.soundslike(w)
	if len(sl) > len(w) {
		// Defensive: the contract requires non-increasing length.
		sl = sl[:len(w)]
	}
	return sl
}

// Special reports whether byte c may legally begin, occur in the middle of,
// or end a word.
func (l *Lang) Special(c byte) (begin, middle, end bool) {
	return l.specialBegin[c], l.specialMiddle[c], l.specialEnd[c]
}

// IsWordByte reports whether c can be any part of a word: a letter, a digit,
// or a special byte.
func (l *Lang) IsWordByte(c byte) bool {
	if isAlnum(c) {
		return true
	}
	return l.specialBegin[c] || l.specialMiddle[c] || l.specialEnd[c]
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

// SplitWord returns the next word in buf and the remainder, splitting on
// non-word bytes. When camel is true it additionally splits at a
// lower-to-upper case transition (so "camelCase" yields "camel" then
// "Case"). A word byte is any alphanumeric byte or any byte Special reports
// for at least one position; which position it occupies in the word is not
// checked, so a middle-only special byte may begin or end a word.
//
// This is adapted from gospel's rune-scanning word splitter (scanner.go),
// generalized from bufio.SplitFunc semantics to the speller's own
// (word, rest) contract and driven by the language's Special classes
// instead of unicode.IsPunct/IsSpace.
func (l *Lang) SplitWord(buf []byte, camel bool) (word, rest []byte) {
	i := 0
	for i < len(buf) && !l.IsWordByte(buf[i]) {
		i++
	}
	start := i
	prevLower := false
	for i < len(buf) {
		c := buf[i]
		if !l.IsWordByte(c) {
			break
		}
		if camel {
			if l.toLower[c] != c && prevLower {
				break
			}
			prevLower = l.toUpper[c] != c
		}
		i++
	}
	return buf[start:i], buf[i:]
}

var soundslikeRegistry = map[string]Soundslike{}
var keyboardRegistry = map[string]*Keyboard{}

// RegisterSoundslike makes a named soundslike transform available to Load.
func RegisterSoundslike(name string, fn Soundslike) {
	soundslikeRegistry[name] = fn
}

// RegisterKeyboard makes a named keyboard layout available to Load.
func RegisterKeyboard(name string, kb *Keyboard) {
	keyboardRegistry[name] = kb
}

func lookupSoundslike(name string) (Soundslike, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := soundslikeRegistry[name]
	if !ok {
		return nil, errs.New(errs.LanguageRelated, "unknown soundslike %q", name)
	}
	return fn, nil
}

func lookupKeyboard(name string) (*Keyboard, error) {
	kb, ok := keyboardRegistry[name]
	if !ok {
		return nil, errs.New(errs.LanguageRelated, "unknown keyboard %q", name)
	}
	return kb, nil
}

// SortedAccents returns the accented runes the language folds, sorted, for
// tests and diagnostics.
func (l *Lang) SortedAccents() []rune {
	rs := make([]rune, 0, len(l.accentFold))
	for r := range l.accentFold {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

func appendRune(dst []byte, r rune) []byte {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return append(dst, buf[:n]...)
}
