// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/lang"
)

func TestPersonalAddLookupRoundTrip(t *testing.T) {
	l := lang.English()
	p := New(dict.KindPersonal, "personal", l)
	if err := p.Add("gospel", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := p.Lookup([]byte("gospel"), dict.Plain(l)); !ok {
		t.Errorf("Lookup(gospel) not found after Add")
	}
	if err := p.Remove("gospel"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := p.Lookup([]byte("gospel"), dict.Plain(l)); ok {
		t.Errorf("Lookup(gospel) found after Remove")
	}
}

func TestPersonalSaveLoadRoundTrip(t *testing.T) {
	l := lang.English()
	p := New(dict.KindPersonal, "personal", l)
	p.Add("alpha", "")
	p.Add("beta", "")

	var buf bytes.Buffer
	if err := p.Save(&buf, "en_US", "UTF-8"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "personal_ws-1.1 en_US 2 UTF-8\n") {
		t.Fatalf("Save header = %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}

	q, err := Load(dict.KindPersonal, "personal", l, &buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if q.Size() != 2 {
		t.Errorf("Load round trip size = %d, want 2", q.Size())
	}
	for _, w := range []string{"alpha", "beta"} {
		if _, ok := q.Lookup([]byte(w), dict.Plain(l)); !ok {
			t.Errorf("round-tripped list missing %q", w)
		}
	}
}

func TestReplacementDedup(t *testing.T) {
	l := lang.English()
	r := NewReplacement("repl", l)
	r.AddCorrection("teh", "the")
	r.AddCorrection("teh", "the")
	r.AddCorrection("teh", "tea")
	got := r.Corrections("teh")
	if len(got) != 2 {
		t.Fatalf("Corrections(teh) = %v, want 2 distinct entries", got)
	}
}

func TestReplacementSaveLoad(t *testing.T) {
	l := lang.English()
	r := NewReplacement("repl", l)
	r.AddCorrection("teh", "the")
	r.AddCorrection("recieve", "receive")

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	q, err := LoadReplacement("repl", l, &buf, nil)
	if err != nil {
		t.Fatalf("LoadReplacement: %v", err)
	}
	if got := q.Corrections("teh"); len(got) != 1 || got[0] != "the" {
		t.Errorf("Corrections(teh) = %v, want [the]", got)
	}
}

func TestParseSourceMergesFlags(t *testing.T) {
	src := "walk/B\nwalk/C\nrun\n"
	entries, err := ParseSource([]byte(src))
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	byWord := make(map[string]dict.WordEntry, len(entries))
	for _, e := range entries {
		byWord[e.Word] = e
	}
	walk, ok := byWord["walk"]
	if !ok {
		t.Fatalf("ParseSource missing walk")
	}
	if !strings.Contains(walk.AffixFlag, "B") || !strings.Contains(walk.AffixFlag, "C") {
		t.Errorf("walk flags = %q, want both B and C", walk.AffixFlag)
	}
	if run, ok := byWord["run"]; !ok || run.AffixFlag != "" {
		t.Errorf("run entry = %+v, want no flags", run)
	}
}

func TestParseSourceKeepsURLsLiteral(t *testing.T) {
	src := "https://example.com/path\n"
	entries, err := ParseSource([]byte(src))
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if len(entries) != 1 || entries[0].Word != "https://example.com/path" {
		t.Fatalf("ParseSource(url) = %+v", entries)
	}
}
