// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/errs"
	"github.com/speldict/aspell/lang"
)

// Replacement is the replacement dictionary: a misspelled-normalized key
// maps to the list of corrections a user has previously accepted for it,
// surfaced to the suggester as an extra, highest-priority phase. It also
// satisfies dict.Mutable so it can sit in a speller's attached dict list
// like any other writable dictionary, though Add here takes the
// misspelling as the "word" and records it with no correction attached;
// AddCorrection is the entry point that actually matters.
type Replacement struct {
	name string
	lang *lang.Lang

	corrections map[string][]string // clean(misspelling) -> corrections, in insertion order
}

// NewReplacement returns an empty replacement dictionary.
func NewReplacement(name string, l *lang.Lang) *Replacement {
	return &Replacement{name: name, lang: l, corrections: make(map[string][]string)}
}

// LoadReplacement parses tab-separated "misspelling\tcorrection" lines.
// check validates each correction the way a live AddCorrection call would;
// pass nil to skip validation (for pre-checked persisted history).
func LoadReplacement(name string, l *lang.Lang, r io.Reader, check func(string) bool) (*Replacement, error) {
	rd := NewReplacement(name, l)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, errs.New(errs.BadFileFormat, "%s: malformed replacement line %q", name, line)
		}
		if check != nil && !check(parts[1]) {
			return nil, errs.New(errs.InvalidWord, "%s: correction %q fails the check pipeline", name, parts[1])
		}
		rd.AddCorrection(parts[0], parts[1])
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("%w", err))
	}
	return rd, nil
}

// Save persists the dictionary as tab-separated "misspelling\tcorrection"
// lines, one per correction, sorted for determinism.
func (r *Replacement) Save(w io.Writer) error {
	keys := make([]string, 0, len(r.corrections))
	for k := range r.corrections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, c := range r.corrections[k] {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", k, c); err != nil {
				return errs.Mask(errs.CantWriteFile, fmt.Errorf("%w", err))
			}
		}
	}
	return nil
}

func (r *Replacement) cleanKey(word string) string {
	var buf [256]byte
	return string(r.lang.ToClean(buf[:0], []byte(word)))
}

// AddCorrection records correction as an accepted replacement for
// misspelled, deduplicating against corrections already on file for the
// same clean key.
func (r *Replacement) AddCorrection(misspelled, correction string) {
	key := r.cleanKey(misspelled)
	for _, c := range r.corrections[key] {
		if c == correction {
			return
		}
	}
	r.corrections[key] = append(r.corrections[key], correction)
}

// Corrections returns the accepted corrections for misspelled, in the
// order they were added.
func (r *Replacement) Corrections(misspelled string) []string {
	return r.corrections[r.cleanKey(misspelled)]
}

func (r *Replacement) Kind() dict.Kind { return dict.KindReplacement }
func (r *Replacement) Name() string    { return r.name }
func (r *Replacement) Size() int       { return len(r.corrections) }

// Lookup treats a hit as "this word is a known misspelling with at least
// one recorded correction"; it never returns the correction itself since
// Dict.Lookup answers membership, not substitution.
func (r *Replacement) Lookup(word []byte, cmp dict.SensitiveCompare) (dict.WordEntry, bool) {
	if cs := r.corrections[r.cleanKey(string(word))]; len(cs) > 0 {
		return dict.WordEntry{Word: string(word)}, true
	}
	return dict.WordEntry{}, false
}

func (r *Replacement) CleanLookup(word []byte, fn func(dict.WordEntry) bool) {
	if e, ok := r.Lookup(word, dict.Insensitive(r.lang)); ok {
		fn(e)
	}
}

// Soundslike never matches; a replacement dictionary is not a word
// source for the soundslike scan.
func (r *Replacement) Soundslike(sl []byte, fn func(dict.WordEntry) bool) {}

// Add records misspelled as a known entry with no correction, satisfying
// dict.Mutable; use AddCorrection to actually attach a correction.
func (r *Replacement) Add(word, affixFlag string) error {
	key := r.cleanKey(word)
	if _, ok := r.corrections[key]; !ok {
		r.corrections[key] = nil
	}
	return nil
}

func (r *Replacement) Remove(word string) error {
	delete(r.corrections, r.cleanKey(word))
	return nil
}

func (r *Replacement) Clear() error {
	r.corrections = make(map[string][]string)
	return nil
}

var _ dict.Mutable = (*Replacement)(nil)
