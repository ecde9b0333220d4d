// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"strings"
	"testing"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/lang"
	"github.com/speldict/aspell/rod"
)

func testWords() []dict.WordEntry {
	return []dict.WordEntry{
		{Word: "hello"},
		{Word: "the"},
		{Word: "receive"},
		{Word: "relieve"},
		{Word: "spelling"},
		{Word: "sapling"},
		{Word: "cup"},
		{Word: "cake"},
		{Word: "camel"},
		{Word: "case"},
		{Word: "cafe"},
	}
}

func newTestSpeller(t *testing.T, cfg Config) *SpellerImpl {
	t.Helper()
	l := lang.English()
	data, err := rod.Build(l, "test", testWords())
	if err != nil {
		t.Fatalf("rod.Build: %v", err)
	}
	d, err := rod.Load(l, data)
	if err != nil {
		t.Fatalf("rod.Load: %v", err)
	}
	sp, err := New(l, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sp.Attach(d, nil)
	return sp
}

func TestCheckKnownWord(t *testing.T) {
	sp := newTestSpeller(t, DefaultConfig)
	if !sp.Check([]byte("hello")) {
		t.Error("hello: want correct")
	}
}

func TestCheckCaseInsensitive(t *testing.T) {
	sp := newTestSpeller(t, DefaultConfig)
	if !sp.Check([]byte("HELLO")) {
		t.Error("HELLO: want correct")
	}
	if !sp.Check([]byte("Hello")) {
		t.Error("Hello: want correct")
	}
}

func TestCheckUnknownWord(t *testing.T) {
	sp := newTestSpeller(t, DefaultConfig)
	if sp.Check([]byte("zzxxqq")) {
		t.Error("zzxxqq: want incorrect")
	}
}

func TestCheckRunTogether(t *testing.T) {
	cfg := DefaultConfig
	cfg.RunTogether = true
	sp := newTestSpeller(t, cfg)
	if !sp.Check([]byte("cupcake")) {
		t.Error("cupcake with run-together on: want correct")
	}

	cfgOff := DefaultConfig
	cfgOff.RunTogether = false
	spOff := newTestSpeller(t, cfgOff)
	if spOff.Check([]byte("cupcake")) {
		t.Error("cupcake with run-together off: want incorrect")
	}
}

func TestCheckCamelCase(t *testing.T) {
	cfg := DefaultConfig
	cfg.CamelCase = true
	sp := newTestSpeller(t, cfg)
	if !sp.Check([]byte("camelCase")) {
		t.Error("camelCase with camel-case on: want correct")
	}

	cfgOff := DefaultConfig
	sp2 := newTestSpeller(t, cfgOff)
	if sp2.Check([]byte("camelCase")) {
		t.Error("camelCase with camel-case off: want incorrect")
	}
}

func TestSuggestTypo(t *testing.T) {
	sp := newTestSpeller(t, DefaultConfig)
	sugs := sp.Suggest([]byte("teh"))
	if !contains(sugs, "the") {
		t.Errorf("suggest(teh) = %v, want to contain \"the\"", sugs)
	}
}

func TestSuggestSoundslikeOrdering(t *testing.T) {
	cfg := DefaultConfig
	cfg.SugMode = "soundslike"
	sp := newTestSpeller(t, cfg)
	sugs := sp.Suggest([]byte("speling"))
	spellIdx := indexOf(sugs, "spelling")
	saplingIdx := indexOf(sugs, "sapling")
	if spellIdx < 0 {
		t.Fatalf("suggest(speling) = %v, want to contain \"spelling\"", sugs)
	}
	if saplingIdx >= 0 && spellIdx > saplingIdx {
		t.Errorf("suggest(speling) ranked sapling (%d) before spelling (%d): %v", saplingIdx, spellIdx, sugs)
	}
}

func TestSuggestReceiveBeforeRelieve(t *testing.T) {
	sp := newTestSpeller(t, DefaultConfig)
	sugs := sp.Suggest([]byte("recieve"))
	recIdx := indexOf(sugs, "receive")
	relIdx := indexOf(sugs, "relieve")
	if recIdx < 0 {
		t.Fatalf("suggest(recieve) = %v, want to contain \"receive\"", sugs)
	}
	if recIdx > 2 {
		t.Errorf("suggest(recieve) ranked receive at %d, want within top 3: %v", recIdx, sugs)
	}
	if relIdx >= 0 && recIdx > relIdx {
		t.Errorf("suggest(recieve) ranked relieve (%d) before receive (%d): %v", relIdx, recIdx, sugs)
	}
}

func TestCheckCafeAccentFolded(t *testing.T) {
	sp := newTestSpeller(t, DefaultConfig)
	if !sp.Check([]byte("cafe")) {
		t.Error("cafe: want correct")
	}
	if !sp.Check([]byte("café")) {
		t.Error("café: want correct under accent-folded clean comparison")
	}
}

func TestCheckIgnoreLength(t *testing.T) {
	cfg := DefaultConfig
	cfg.Ignore = 4
	sp := newTestSpeller(t, cfg)
	if !sp.Check([]byte("zzz")) {
		t.Error("word shorter than ignore length: want treated as correct")
	}
}

func contains(ss []string, want string) bool {
	return indexOf(ss, want) >= 0
}

func indexOf(ss []string, want string) int {
	for i, s := range ss {
		if strings.EqualFold(s, want) {
			return i
		}
	}
	return -1
}
