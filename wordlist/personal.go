// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordlist implements the writable dictionary kinds the core
// looks up through the same Dict interface as a read-only dictionary: a
// personal or session word list persisted as plain text, and a
// replacement dictionary mapping a misspelling to the corrections a user
// has previously accepted for it.
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

// headerFormat is the format of the first line of a personal word list file, e.g.
// "personal_ws-1.1 en_US 3 UTF-8".
const headerFormat = "personal_ws-1.1 %s %d %s"

// Personal is an in-memory, mutable word list with optional plain-text
// persistence, used for both the personal (long-lived) and session
// (process-lifetime) writable dictionaries.
type Personal struct {
	kind dict.Kind // KindPersonal or KindSession
	name string
	lang *lang.Lang

	words   []dict.WordEntry
	byClean map[string][]int
}

// New returns an empty Personal word list of the given kind.
func New(kind dict.Kind, name string, l *lang.Lang) *Personal {
	return &Personal{kind: kind, name: name, lang: l, byClean: make(map[string][]int)}
}

// Load parses a personal_ws-1.1 file from r.
func Load(kind dict.Kind, name string, l *lang.Lang, r io.Reader) (*Personal, error) {
	p := New(kind, name, l)
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, errs.New(errs.BadFileFormat, "%s: empty personal word list", name)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 1 || fields[0] != "personal_ws-1.1" {
		return nil, errs.New(errs.BadFileFormat, "%s: missing personal_ws-1.1 header", name)
	}
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		if err := p.Add(word, ""); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("%w", err))
	}
	return p, nil
}

// Save writes the list back out in personal_ws-1.1 format.
func (p *Personal) Save(w io.Writer, langName, encoding string) error {
	if _, err := fmt.Fprintf(w, headerFormat+"\n", langName, len(p.words), encoding); err != nil {
		return errs.Mask(errs.CantWriteFile, fmt.Errorf("%w", err))
	}
	names := make([]string, len(p.words))
	for i, e := range p.words {
		names[i] = e.Word
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return errs.Mask(errs.CantWriteFile, fmt.Errorf("%w", err))
		}
	}
	return nil
}

func (p *Personal) Kind() dict.Kind { return p.kind }
func (p *Personal) Name() string    { return p.name }
func (p *Personal) Size() int       { return len(p.words) }

func (p *Personal) cleanKey(word []byte) string {
	var buf [256]byte
	return string(p.lang.ToClean(buf[:0], word))
}

func (p *Personal) Lookup(word []byte, cmp dict.SensitiveCompare) (dict.WordEntry, bool) {
	for _, i := range p.byClean[p.cleanKey(word)] {
		e := p.words[i]
		if cmp.Equal([]byte(e.Word), word) {
			return e, true
		}
	}
	return dict.WordEntry{}, false
}

func (p *Personal) CleanLookup(word []byte, fn func(dict.WordEntry) bool) {
	for _, i := range p.byClean[p.cleanKey(word)] {
		if !fn(p.words[i]) {
			return
		}
	}
}

func (p *Personal) Soundslike(sl []byte, fn func(dict.WordEntry) bool) {
	for _, e := range p.words {
		var buf [256]byte
		clean := p.lang.ToClean(buf[:0], []byte(e.Word))
		if string(p.lang.ToSoundslike(clean)) == string(sl) {
			if !fn(e) {
				return
			}
		}
	}
}

// Add inserts word (optionally carrying affixFlag, for a personal list
// merged against an affix-aware dictionary) unless it is already present
// in exactly that form.
func (p *Personal) Add(word, affixFlag string) error {
	if word == "" {
		return errs.New(errs.InvalidWord, "empty word")
	}
	key := p.cleanKey([]byte(word))
	for _, i := range p.byClean[key] {
		if p.words[i].Word == word {
			return nil
		}
	}
	p.byClean[key] = append(p.byClean[key], len(p.words))
	p.words = append(p.words, dict.WordEntry{Word: word, AffixFlag: affixFlag})
	return nil
}

// Remove deletes every entry exactly matching word.
func (p *Personal) Remove(word string) error {
	words := p.words
	p.words, p.byClean = nil, make(map[string][]int)
	for _, e := range words {
		if e.Word != word {
			p.Add(e.Word, e.AffixFlag)
		}
	}
	return nil
}

// Clear empties the list.
func (p *Personal) Clear() error {
	p.words = p.words[:0]
	p.byClean = make(map[string][]int)
	return nil
}

var _ dict.Mutable = (*Personal)(nil)
