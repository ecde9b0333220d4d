// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckInfoReconstruct(t *testing.T) {
	cases := []struct {
		name string
		ci   CheckInfo
		want string
	}{
		{
			name: "plain root",
			ci:   CheckInfo{Word: "cat"},
			want: "cat",
		},
		{
			name: "prefix only",
			ci:   CheckInfo{Word: "happy", PreAdd: "un", PreStrip: 0},
			want: "unhappy",
		},
		{
			name: "suffix only",
			ci:   CheckInfo{Word: "run", SufAdd: "ning", SufStrip: 0},
			want: "running",
		},
		{
			name: "prefix and suffix",
			ci:   CheckInfo{Word: "happy", PreAdd: "un", SufAdd: "ness", SufStrip: 1},
			want: "unhappness",
		},
		{
			name: "compound chain",
			ci: CheckInfo{
				Word:     "cup",
				Compound: true,
				Next:     &CheckInfo{Word: "cake"},
			},
			want: "cupcake",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.ci.Reconstruct()
			if got != c.want {
				t.Errorf("Reconstruct() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestGuessInfoResetAndAdd(t *testing.T) {
	var g GuessInfo
	g.Add(CheckInfo{Word: "a"})
	g.Add(CheckInfo{Word: "b"})

	want := []CheckInfo{{Word: "a"}, {Word: "b"}}
	if diff := cmp.Diff(want, g.Roots); diff != "" {
		t.Errorf("GuessInfo.Roots mismatch (-want +got):\n%s", diff)
	}

	g.Reset()
	if len(g.Roots) != 0 {
		t.Errorf("after Reset, len(Roots) = %d, want 0", len(g.Roots))
	}
	// The backing array is reused, not reallocated.
	g.Add(CheckInfo{Word: "c"})
	if diff := cmp.Diff([]CheckInfo{{Word: "c"}}, g.Roots); diff != "" {
		t.Errorf("GuessInfo.Roots after reuse mismatch (-want +got):\n%s", diff)
	}
}

type fakeDict struct {
	kind    Kind
	name    string
	entries map[string]WordEntry
}

func (f *fakeDict) Kind() Kind { return f.kind }
func (f *fakeDict) Name() string { return f.name }
func (f *fakeDict) Size() int { return len(f.entries) }
func (f *fakeDict) Lookup(word []byte, _ SensitiveCompare) (WordEntry, bool) {
	e, ok := f.entries[string(word)]
	return e, ok
}
func (f *fakeDict) CleanLookup(word []byte, fn func(WordEntry) bool) {
	if e, ok := f.entries[string(word)]; ok {
		fn(e)
	}
}
func (f *fakeDict) Soundslike([]byte, func(WordEntry) bool) {}

func TestLookupInfoAlwaysTrue(t *testing.T) {
	li := LookupInfo{Mode: ModeAlwaysTrue}
	e, ok := li.Lookup([]byte("anything"))
	if !ok || e.Word != "anything" {
		t.Errorf("Lookup() = %+v, %v, want {Word: anything}, true", e, ok)
	}
}

func TestLookupInfoFirstHit(t *testing.T) {
	a := &fakeDict{entries: map[string]WordEntry{"cat": {Word: "cat"}}}
	b := &fakeDict{entries: map[string]WordEntry{"dog": {Word: "dog"}}}
	li := LookupInfo{Dicts: []Dict{a, b}}

	if _, ok := li.Lookup([]byte("cat")); !ok {
		t.Error("Lookup(cat) = false, want true")
	}
	if _, ok := li.Lookup([]byte("dog")); !ok {
		t.Error("Lookup(dog) = false, want true")
	}
	if _, ok := li.Lookup([]byte("fish")); ok {
		t.Error("Lookup(fish) = true, want false")
	}
}
