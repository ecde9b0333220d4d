// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import "testing"

func TestCaseIdempotence(t *testing.T) {
	l := English()
	for _, w := range []string{"Hello", "WORLD", "café", "it's"} {
		got := l.ToLower(nil, []byte(w))
		again := l.ToLower(nil, got)
		if string(got) != string(again) {
			t.Errorf("to_lower not idempotent for %q: %q vs %q", w, got, again)
		}
		clean := l.ToClean(nil, []byte(w))
		cleanAgain := l.ToClean(nil, clean)
		if string(clean) != string(cleanAgain) {
			t.Errorf("to_clean not idempotent for %q: %q vs %q", w, clean, cleanAgain)
		}
	}
}

func TestCleanFoldsAccents(t *testing.T) {
	l := English()
	got := string(l.ToClean(nil, []byte("café")))
	if got != "cafe" {
		t.Errorf("ToClean(%q) = %q, want %q", "café", got, "cafe")
	}
}

func TestCasePattern(t *testing.T) {
	l := English()
	cases := []struct {
		word string
		want CasePattern
	}{
		{"hello", AllLower},
		{"HELLO", AllUpper},
		{"Hello", FirstUpper},
		{"hELLO", OtherCase},
	}
	for _, c := range cases {
		got := l.CasePattern([]byte(c.word))
		if got != c.want {
			t.Errorf("CasePattern(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}

func TestFixCaseRoundTrip(t *testing.T) {
	l := English()
	pattern := l.CasePattern([]byte("HELLO"))
	got := string(l.FixCase(nil, pattern, []byte("world")))
	if got != "WORLD" {
		t.Errorf("FixCase(AllUpper, %q) = %q, want %q", "world", got, "WORLD")
	}
}

func TestSoundslikeNonIncreasing(t *testing.T) {
	l := English()
	words := []string{"hello", "knight", "xerox", "photograph", "the", "a", "bbbb"}
	for _, w := range words {
		clean := l.ToClean(nil, []byte(w))
		sl := l.ToSoundslike(clean)
		if len(sl) > len(clean) {
			t.Errorf("ToSoundslike(%q) = %q, longer than input", w, sl)
		}
	}
}

func TestSplitWordCamel(t *testing.T) {
	l := English()
	word, rest := l.SplitWord([]byte("camelCase rest"), true)
	if string(word) != "camel" {
		t.Errorf("SplitWord camel first = %q, want %q", word, "camel")
	}
	word2, _ := l.SplitWord(rest, true)
	if string(word2) != "Case" {
		t.Errorf("SplitWord camel second = %q, want %q", word2, "Case")
	}
}

func TestSplitWordNoCamel(t *testing.T) {
	l := English()
	word, _ := l.SplitWord([]byte("camelCase rest"), false)
	if string(word) != "camelCase" {
		t.Errorf("SplitWord non-camel = %q, want %q", word, "camelCase")
	}
}
