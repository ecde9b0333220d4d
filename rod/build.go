// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"hash/fnv"
	"sort"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/lang"
)

// emptySlot marks an unused hash table bucket.
const emptySlot = 0xFFFFFFFF

// Build serialises entries into the on-disk read-only dictionary format,
// grouping them by soundslike and indexing them in an open-addressing
// hash table keyed by clean (case-/accent-folded) word. l supplies the
// clean and soundslike transforms used to build both structures; Load
// must be given the same language to get consistent lookups.
func Build(l *lang.Lang, name string, entries []dict.WordEntry) ([]byte, error) {
	n := len(entries)
	buckets := nextPrime((5*n + 3) / 4)
	if hasAffixFlags(entries) {
		buckets = nextPrime((3*n + 1) / 2)
	}

	w := &writer{}
	w.str(name)

	var cleanBuf [256]byte
	soundslikeOf := make([]string, n)
	for i, e := range entries {
		clean := l.ToClean(cleanBuf[:0], []byte(e.Word))
		sl := l.ToSoundslike(append([]byte(nil), clean...))
		soundslikeOf[i] = string(sl)
		w.uint8(e.Freq)
		w.str(e.Word)
		w.str(e.AffixFlag)
		w.str(e.Category)
	}

	table := make([]uint32, buckets)
	for i := range table {
		table[i] = emptySlot
	}
	for i, e := range entries {
		h := cleanHash(l, []byte(e.Word)) % uint32(buckets)
		for table[h] != emptySlot {
			h = (h + 1) % uint32(buckets)
		}
		table[h] = uint32(i)
	}
	for _, slot := range table {
		w.uint32(slot)
	}

	groups := make(map[string][]uint32, n)
	for i, sl := range soundslikeOf {
		groups[sl] = append(groups[sl], uint32(i))
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.str(k)
		idx := groups[k]
		w.uint32(uint32(len(idx)))
		for _, i := range idx {
			w.uint32(i)
		}
	}

	h := header{
		Magic:            magic,
		Endian:           endianCheck,
		WordCount:        uint32(n),
		HashBuckets:      uint32(buckets),
		SoundslikeGroups: uint32(len(keys)),
	}
	if hasAffixFlags(entries) {
		h.Flags |= flagAffixCompressed
	}
	return append(h.marshal(), w.buf...), nil
}

func hasAffixFlags(entries []dict.WordEntry) bool {
	for _, e := range entries {
		if e.HasAffix() {
			return true
		}
	}
	return false
}

// cleanHash hashes the clean form of word; Build and Dict.Lookup must use
// this identically or probes will miss.
func cleanHash(l *lang.Lang, word []byte) uint32 {
	var buf [256]byte
	clean := l.ToClean(buf[:0], word)
	f := fnv.New32a()
	f.Write(clean)
	return f.Sum32()
}
