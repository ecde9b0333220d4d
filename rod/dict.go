// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"fmt"
	"sort"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/errs"
	"github.com/speldict/aspell/lang"
)

// Dict is a read-only dictionary decoded from a built file (or an mmapped
// buffer backing one). It implements dict.Dict and additionally exposes a
// soundslike scan through SoundslikeElements, the access path the
// suggester's grouped-by-sound phases use.
type Dict struct {
	lang *lang.Lang
	name string

	entries   []dict.WordEntry
	hashTable []uint32
	groups    []soundslikeGroup
}

type soundslikeGroup struct {
	Key     string
	Indices []uint32
}

// Load decodes a buffer produced by Build. l must be the same language
// Build was called with, since clean/soundslike hashing depends on it.
func Load(l *lang.Lang, data []byte) (*Dict, error) {
	h, err := unmarshalHeader(data)
	if err != nil {
		return nil, err
	}
	r := &reader{buf: data, pos: headerSize}

	name, err := r.str()
	if err != nil {
		return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("%w", err))
	}

	entries := make([]dict.WordEntry, h.WordCount)
	for i := range entries {
		freq, err := r.uint8()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("entry %d: %w", i, err))
		}
		word, err := r.str()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("entry %d: %w", i, err))
		}
		flag, err := r.str()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("entry %d: %w", i, err))
		}
		cat, err := r.str()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("entry %d: %w", i, err))
		}
		entries[i] = dict.WordEntry{Word: word, AffixFlag: flag, Category: cat, Freq: freq}
	}

	hashTable := make([]uint32, h.HashBuckets)
	for i := range hashTable {
		v, err := r.uint32()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("hash slot %d: %w", i, err))
		}
		hashTable[i] = v
	}

	groups := make([]soundslikeGroup, h.SoundslikeGroups)
	for i := range groups {
		key, err := r.str()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("group %d: %w", i, err))
		}
		count, err := r.uint32()
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("group %d: %w", i, err))
		}
		idx := make([]uint32, count)
		for j := range idx {
			v, err := r.uint32()
			if err != nil {
				return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("group %d entry %d: %w", i, j, err))
			}
			idx[j] = v
		}
		groups[i] = soundslikeGroup{Key: key, Indices: idx}
	}

	return &Dict{lang: l, name: name, entries: entries, hashTable: hashTable, groups: groups}, nil
}

func (d *Dict) Kind() dict.Kind { return dict.KindReadOnly }
func (d *Dict) Name() string    { return d.name }
func (d *Dict) Size() int       { return len(d.entries) }

// Lookup walks the open-addressing probe chain starting at the clean hash
// of word, stopping at the first entry cmp accepts or the first empty
// slot (which, since the table is never mutated after Build, proves no
// match exists anywhere along the chain).
func (d *Dict) Lookup(word []byte, cmp dict.SensitiveCompare) (dict.WordEntry, bool) {
	if len(d.hashTable) == 0 {
		return dict.WordEntry{}, false
	}
	h := cleanHash(d.lang, word) % uint32(len(d.hashTable))
	for {
		slot := d.hashTable[h]
		if slot == emptySlot {
			return dict.WordEntry{}, false
		}
		e := d.entries[slot]
		if cmp.Equal([]byte(e.Word), word) {
			return e, true
		}
		h = (h + 1) % uint32(len(d.hashTable))
	}
}

// CleanLookup enumerates every entry along the probe chain that matches
// word under a case-/accent-insensitive comparison, which is how several
// same-root case variants end up chained in the same bucket run.
func (d *Dict) CleanLookup(word []byte, fn func(dict.WordEntry) bool) {
	if len(d.hashTable) == 0 {
		return
	}
	cmp := dict.Insensitive(d.lang)
	h := cleanHash(d.lang, word) % uint32(len(d.hashTable))
	for {
		slot := d.hashTable[h]
		if slot == emptySlot {
			return
		}
		e := d.entries[slot]
		if cmp.Equal([]byte(e.Word), word) {
			if !fn(e) {
				return
			}
		}
		h = (h + 1) % uint32(len(d.hashTable))
	}
}

// Soundslike calls fn for every entry whose soundslike equals sl, found
// via a binary search over the sorted soundslike groups built at Build
// time rather than a linear scan of the whole dictionary.
func (d *Dict) Soundslike(sl []byte, fn func(dict.WordEntry) bool) {
	key := string(sl)
	i := sort.Search(len(d.groups), func(i int) bool { return d.groups[i].Key >= key })
	if i == len(d.groups) || d.groups[i].Key != key {
		return
	}
	for _, idx := range d.groups[i].Indices {
		if !fn(d.entries[idx]) {
			return
		}
	}
}

// Enum is a stateful walk over every word grouped by soundslike, in
// soundslike-sorted order, the access path the suggester's soundslike
// scan phases use to avoid visiting every dictionary entry.
type Enum struct {
	d        *Dict
	groupIdx int
	wordIdx  int
}

// SoundslikeElements returns a fresh Enum positioned before the first
// group.
func (d *Dict) SoundslikeElements() *Enum {
	return &Enum{d: d}
}

// Next returns the next entry in soundslike order, or false once
// exhausted. stoppedAt is a hint: how many leading bytes of the caller's
// target soundslike the group just finished shared with it before
// diverging. Since groups are sorted lexicographically, every group
// sharing the finished group's first stoppedAt+1 bytes (the agreeing
// prefix plus the diverging byte) sits in one contiguous run immediately
// after it — so instead of stepping to the next group one at a time,
// advanceGroup binary-searches past the whole run in a single jump. This gets the same skip-ahead effect a dedicated two-level
// jump-table gives, without needing a second data structure: the sorted
// group list already has the prefix locality the jump table would
// exploit.
func (e *Enum) Next(stoppedAt int) (dict.WordEntry, bool) {
	for {
		if e.groupIdx >= len(e.d.groups) {
			return dict.WordEntry{}, false
		}
		g := e.d.groups[e.groupIdx]
		if e.wordIdx < len(g.Indices) {
			idx := g.Indices[e.wordIdx]
			e.wordIdx++
			return e.d.entries[idx], true
		}
		e.advanceGroup(stoppedAt)
	}
}

// advanceGroup moves past the current group. When stoppedAt names a
// prefix length shorter than the current group's key, every following
// group sharing the key's first stoppedAt+1 bytes diverges from the
// target at the same byte, so the whole run is skipped in one binary
// search instead of one groupIdx++ per group.
func (e *Enum) advanceGroup(stoppedAt int) {
	g := e.d.groups[e.groupIdx]
	if stoppedAt <= 0 || stoppedAt >= len(g.Key) {
		e.groupIdx++
		e.wordIdx = 0
		return
	}
	prefix := g.Key[:stoppedAt+1]
	lo := e.groupIdx + 1
	n := len(e.d.groups) - lo
	i := sort.Search(n, func(i int) bool {
		k := e.d.groups[lo+i].Key
		return len(k) <= stoppedAt || k[:stoppedAt+1] != prefix
	})
	e.groupIdx = lo + i
	e.wordIdx = 0
}
