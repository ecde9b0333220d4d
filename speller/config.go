// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package speller assembles the language, affix, dictionary and
// edit-distance packages into the lookup facade, checker and suggester the
// rest of the world talks to: Config decodes into a Settings plus a
// SuggestParms the way gospel's config.go decodes a .gospel.conf into a
// commit-ed config, and SpellerImpl holds the attached dictionaries a
// Checker and Suggester are built against.
package speller

import (
	"github.com/speldict/aspell/errs"
)

// Config is the external, declarative form of a speller's options.
// Rather than a per-option notifier callback table, commit validates and
// reifies it into a Settings plus the SuggestParms the "sug-mode" name
// selects, matching gospel's config.go commit-step design.
type Config struct {
	Lang string `toml:"lang"`

	Ignore           int    `toml:"ignore"`
	IgnoreCase       bool   `toml:"ignore-case"`
	IgnoreRepl       bool   `toml:"ignore-repl"`
	SugMode          string `toml:"sug-mode"`
	RunTogether      bool   `toml:"run-together"`
	RunTogetherLimit int    `toml:"run-together-limit"`
	RunTogetherMin   int    `toml:"run-together-min"`
	CamelCase        bool   `toml:"camel-case"`
}

// DefaultConfig is the baseline a caller may start from before overriding
// individual fields.
var DefaultConfig = Config{
	Lang:             "en_US",
	SugMode:          "normal",
	RunTogether:      false,
	RunTogetherLimit: 8,
	RunTogetherMin:   3,
	CamelCase:        false,
}

// Settings is the validated, runtime form of Config the Checker consults
// directly, in place of a per-option callback table.
type Settings struct {
	Ignore           int
	IgnoreCase       bool
	IgnoreRepl       bool
	RunTogether      bool
	RunTogetherLimit int
	RunTogetherMin   int
	CamelCase        bool
}

// runTogetherLimitCap is the hard ceiling on run-together-limit.
const runTogetherLimitCap = 8

// commit validates c and reifies it into a Settings and the SuggestParms
// (or, for "bad-spellers", parms pair) its sug-mode selects.
func (c Config) commit(haveSoundslike, haveRepl bool) (Settings, []*SuggestParms, error) {
	if c.RunTogetherMin < 1 {
		return Settings{}, nil, errs.New(errs.BadValue, "run-together-min must be >= 1, got %d", c.RunTogetherMin)
	}
	limit := c.RunTogetherLimit
	if limit <= 0 {
		limit = 1
	}
	if limit > runTogetherLimitCap {
		limit = runTogetherLimitCap
	}

	mode := c.SugMode
	if mode == "" {
		mode = "normal"
	}
	parms, err := suggestParmsForMode(mode, haveSoundslike, haveRepl)
	if err != nil {
		return Settings{}, nil, err
	}

	s := Settings{
		Ignore:           c.Ignore,
		IgnoreCase:       c.IgnoreCase,
		IgnoreRepl:       c.IgnoreRepl,
		RunTogether:      c.RunTogether,
		RunTogetherLimit: limit,
		RunTogetherMin:   c.RunTogetherMin,
		CamelCase:        c.CamelCase,
	}
	return s, parms, nil
}
