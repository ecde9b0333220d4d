// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"sort"
	"testing"
)

const testAff = `
SET UTF-8
TRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ
REP 2
REP ei ie
REP ie ei
PFX A Y 1
PFX A 0 re .
SFX B Y 2
SFX B 0 ed [^y]
SFX B y ied y
SFX C Y 1
SFX C 0 s .
`

func testManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Parse([]byte(testAff))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParseBuckets(t *testing.T) {
	m := testManager(t)
	if n := len(m.Prefixes('A')); n != 1 {
		t.Errorf("len(Prefixes('A')) = %d, want 1", n)
	}
	if n := len(m.Suffixes('B')); n != 2 {
		t.Errorf("len(Suffixes('B')) = %d, want 2", n)
	}
	if len(m.Replacements) != 2 {
		t.Errorf("len(Replacements) = %d, want 2", len(m.Replacements))
	}
}

func TestExpandSuffix(t *testing.T) {
	m := testManager(t)
	forms := m.Expand("walk", "B", 0)
	want := map[string]bool{"walk": true, "walked": true}
	got := map[string]bool{}
	for _, f := range forms {
		got[f.Word] = true
	}
	for w := range want {
		if !got[w] {
			t.Errorf("Expand(walk, B) missing %q, got %v", w, keys(got))
		}
	}
}

func TestExpandSuffixConditional(t *testing.T) {
	m := testManager(t)
	forms := m.Expand("try", "B", 0)
	got := map[string]bool{}
	for _, f := range forms {
		got[f.Word] = true
	}
	if !got["tried"] {
		t.Errorf("Expand(try, B) = %v, want tried present", keys(got))
	}
	if got["tryed"] {
		t.Errorf("Expand(try, B) produced tryed, condition [^y] should have blocked the 0/ed rule")
	}
}

func TestExpandPrefix(t *testing.T) {
	m := testManager(t)
	forms := m.Expand("do", "A", 0)
	got := map[string]bool{}
	for _, f := range forms {
		got[f.Word] = true
	}
	if !got["redo"] {
		t.Errorf("Expand(do, A) = %v, want redo present", keys(got))
	}
}

func TestExpandCrossProduct(t *testing.T) {
	m := testManager(t)
	forms := m.Expand("walk", "AB", 0)
	got := map[string]bool{}
	for _, f := range forms {
		got[f.Word] = true
	}
	if !got["rewalked"] {
		t.Errorf("Expand(walk, AB) = %v, want cross product rewalked present", keys(got))
	}
}

func TestAffixCheckRoundTrip(t *testing.T) {
	m := testManager(t)
	lookup := func(root string) (string, bool) {
		if root == "walk" {
			return "AB", true
		}
		return "", false
	}
	for _, word := range []string{"walked", "rewalk", "rewalked"} {
		res, ok := m.AffixCheck(word, lookup)
		if !ok {
			t.Errorf("AffixCheck(%q) found no root, want walk", word)
			continue
		}
		if res.Root != "walk" {
			t.Errorf("AffixCheck(%q).Root = %q, want walk", word, res.Root)
		}
	}
}

func TestAffixCheckRejectsMissingFlag(t *testing.T) {
	m := testManager(t)
	lookup := func(root string) (string, bool) {
		if root == "walk" {
			return "C", true // lacks B, so "walked" should not resolve
		}
		return "", false
	}
	if _, ok := m.AffixCheck("walked", lookup); ok {
		t.Errorf("AffixCheck(walked) succeeded against a root without flag B")
	}
}

func TestMunchRecoversFlags(t *testing.T) {
	m := testManager(t)
	flags, unexplained := m.Munch("walk", []string{"walk", "walked", "walks"})
	if len(unexplained) != 0 {
		t.Errorf("Munch unexplained = %v, want none", unexplained)
	}
	if !hasFlag(flags, 'B') || !hasFlag(flags, 'C') {
		t.Errorf("Munch(walk) flags = %q, want both B and C", flags)
	}
}

func TestCompressListRoundTrip(t *testing.T) {
	m := testManager(t)
	entries := m.CompressList([]Cluster{
		{Root: "walk", Forms: []string{"walk", "walked", "walks"}},
	})
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	e := entries[0]
	forms := map[string]bool{}
	for _, f := range m.Expand(e.Root, e.Flags, 0) {
		forms[f.Word] = true
	}
	for _, want := range []string{"walk", "walked", "walks"} {
		if !forms[want] {
			t.Errorf("compressed entry %+v does not regenerate %q", e, want)
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
