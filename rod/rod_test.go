// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"testing"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/lang"
)

func testEntries() []dict.WordEntry {
	return []dict.WordEntry{
		{Word: "hello", Freq: 10},
		{Word: "Hello", Freq: 5},
		{Word: "world", Freq: 10},
		{Word: "cafe", Freq: 1},
		{Word: "nite", Freq: 1},
		{Word: "night", Freq: 3},
	}
}

func buildTestDict(t *testing.T) *Dict {
	t.Helper()
	l := lang.English()
	data, err := Build(l, "test", testEntries())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	d, err := Load(l, data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func TestLookupExact(t *testing.T) {
	d := buildTestDict(t)
	e, ok := d.Lookup([]byte("world"), dict.Plain(lang.English()))
	if !ok || e.Word != "world" {
		t.Errorf("Lookup(world) = %+v, %v", e, ok)
	}
}

func TestLookupMissing(t *testing.T) {
	d := buildTestDict(t)
	if _, ok := d.Lookup([]byte("nowhere"), dict.Plain(lang.English())); ok {
		t.Errorf("Lookup(nowhere) found an entry, want none")
	}
}

func TestCleanLookupFindsCaseVariants(t *testing.T) {
	d := buildTestDict(t)
	var got []string
	d.CleanLookup([]byte("HELLO"), func(e dict.WordEntry) bool {
		got = append(got, e.Word)
		return true
	})
	if len(got) != 2 {
		t.Fatalf("CleanLookup(HELLO) = %v, want 2 case variants", got)
	}
}

func TestSoundslikeGroupsNiteAndNight(t *testing.T) {
	d := buildTestDict(t)
	l := lang.English()
	sl := l.ToSoundslike(l.ToClean(nil, []byte("night")))
	var got []string
	d.Soundslike(sl, func(e dict.WordEntry) bool {
		got = append(got, e.Word)
		return true
	})
	if len(got) != 2 {
		t.Fatalf("Soundslike(night) = %v, want nite and night grouped together", got)
	}
}

func TestSoundslikeEnumVisitsEveryEntry(t *testing.T) {
	d := buildTestDict(t)
	enum := d.SoundslikeElements()
	count := 0
	for {
		_, ok := enum.Next(0)
		if !ok {
			break
		}
		count++
	}
	if count != len(testEntries()) {
		t.Errorf("SoundslikeElements enumerated %d entries, want %d", count, len(testEntries()))
	}
}
