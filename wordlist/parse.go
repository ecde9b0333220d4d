// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordlist

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/errs"
	"mvdan.cc/xurls/v2"
)

// urls recognises URL-shaped source word-list lines, which are kept
// verbatim rather than parsed as word/affix-flag pairs.
var urls = xurls.Strict()

// ParseSource reads a build-time source word list: one "word" or
// "word/flags" entry per line, with affix-flag sets for a word appearing
// on more than one line merged together. A line that is itself a URL is
// recorded as a literal, affix-less entry instead of being split on '/'.
func ParseSource(data []byte) ([]dict.WordEntry, error) {
	rules := make(map[string]string)
	var order []string
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for i := 0; sc.Scan(); i++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, flags, err := splitEntry(line)
		if err != nil {
			return nil, errs.Mask(errs.BadFileFormat, fmt.Errorf("line %d: %w", i+1, err))
		}
		if _, ok := rules[word]; !ok {
			order = append(order, word)
		}
		rules[word] = mergeFlags(rules[word], flags)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("%w", err))
	}

	sort.Strings(order)
	entries := make([]dict.WordEntry, len(order))
	for i, w := range order {
		entries[i] = dict.WordEntry{Word: w, AffixFlag: rules[w]}
	}
	return entries, nil
}

func splitEntry(line string) (word, flags string, err error) {
	if urls.MatchString(line) {
		return line, "", nil
	}
	parts := strings.SplitN(line, "/", 2)
	word = parts[0]
	if word == "" {
		return "", "", fmt.Errorf("empty word in entry %q", line)
	}
	if len(parts) == 2 {
		flags = parts[1]
	}
	return word, flags, nil
}

// mergeFlags merges two affix-flag sets for the same word, deduplicating
// flags that appear in both.
func mergeFlags(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	seen := make(map[rune]bool, len(a)+len(b))
	var out []rune
	for _, r := range a + b {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return string(out)
}
