// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spelltest is a tiny end-to-end harness for driving a speller
// from golden testscript files: it builds an en_US dictionary from a
// plain word list and answers "check WORD" / "suggest WORD" commands read
// one per line from stdin. It takes no options beyond the word list path,
// so it does not reintroduce a general-purpose CLI.
package spelltest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/lang"
	"github.com/speldict/aspell/rod"
	"github.com/speldict/aspell/speller"
)

// Main is the spellcheck command entry point, registered with
// testscript.RunMain under the name "spellcheck".
func Main() int {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: spellcheck wordlist")
		return 2
	}
	sp, err := build(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return run(sp, os.Stdin, os.Stdout)
}

// build reads a one-word-per-line word list and attaches a read-only
// dictionary built from it to a default en_US speller.
func build(path string) (*speller.SpellerImpl, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l := lang.English()
	var entries []dict.WordEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		entries = append(entries, dict.WordEntry{Word: w})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	data, err := rod.Build(l, "spelltest", entries)
	if err != nil {
		return nil, err
	}
	d, err := rod.Load(l, data)
	if err != nil {
		return nil, err
	}

	sp, err := speller.New(l, speller.DefaultConfig)
	if err != nil {
		return nil, err
	}
	sp.Attach(d, nil)
	return sp, nil
}

// run answers one command per input line until EOF: "check WORD" prints
// whether WORD passed, "suggest WORD" prints its ranked corrections.
func run(sp *speller.SpellerImpl, in io.Reader, out io.Writer) int {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, arg, ok := strings.Cut(line, " ")
		if !ok {
			fmt.Fprintf(out, "error: bad command %q\n", line)
			continue
		}
		switch cmd {
		case "check":
			if sp.Check([]byte(arg)) {
				fmt.Fprintf(out, "%s: correct\n", arg)
			} else {
				fmt.Fprintf(out, "%s: incorrect\n", arg)
			}
		case "suggest":
			sugs := sp.Suggest([]byte(arg))
			fmt.Fprintf(out, "%s: %s\n", arg, strings.Join(sugs, ", "))
		default:
			fmt.Fprintf(out, "error: unknown command %q\n", cmd)
		}
	}
	return 0
}
