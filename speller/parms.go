// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/speldict/aspell/editdist"
	"github.com/speldict/aspell/errs"
)

// Threshold is the three-level "how confident are we already" signal a
// phase's try_harder result is compared against: running the next,
// costlier phase is only worth it once try_harder reaches the next
// phase's threshold.
type Threshold int

const (
	Unlikely Threshold = iota
	Maybe
	Probably
)

func parseThreshold(s string) (Threshold, error) {
	switch s {
	case "unlikely":
		return Unlikely, nil
	case "maybe":
		return Maybe, nil
	case "probably":
		return Probably, nil
	default:
		return 0, errs.New(errs.BadValue, "unknown threshold %q", s)
	}
}

// SuggestParms is a named tuning of the suggestion pipeline, selected by
// the "sug-mode" setting.
type SuggestParms struct {
	Name string

	EditWeights      editdist.Weights
	SoundslikeWeight int
	WordWeight       int

	TryOneEditWord  bool
	TryScan0        bool
	TryScan1        bool
	TryScan2        bool
	TryNgram        bool
	UseReplTable    bool
	UseTypoAnalysis bool

	ScanThreshold   Threshold
	Scan2Threshold  Threshold
	NgramThreshold  Threshold

	SpanLevels int
	Span       int
	Limit      int
	NgramKeep  int
	SkipScore  int
	SplitChars string
}

type basePreset struct {
	Del1, Del2, Swap, Sub, Max, Min int
	SoundslikeWeight                int    `toml:"soundslike_weight"`
	SplitChars                      string `toml:"split_chars"`
	SkipScore                       int    `toml:"skip_score"`
	Limit                           int
	SpanLevels                      int `toml:"span_levels"`
	Span                            int
	NgramKeep                       int    `toml:"ngram_keep"`
	UseTypoAnalysis                 bool   `toml:"use_typo_analysis"`
	TryOneEditWord                  bool   `toml:"try_one_edit_word"`
	TryScan0                        bool   `toml:"try_scan_0"`
	ScanThreshold                   string `toml:"scan_threshold"`
	Scan2Threshold                  string `toml:"scan_2_threshold"`
	NgramThreshold                  string `toml:"ngram_threshold"`
}

// modeOverride lists only the fields a mode table may override; a nil
// pointer means "inherit from base", playing the role of the source's
// per-mode if-chain in suggest.cpp's SuggestParms::init.
type modeOverride struct {
	TryScan1         *bool   `toml:"try_scan_1"`
	TryScan2         *bool   `toml:"try_scan_2"`
	TryNgram         *bool   `toml:"try_ngram"`
	Scan2Threshold   *string `toml:"scan_2_threshold"`
	Limit            *int    `toml:"limit"`
	SpanLevels       *int    `toml:"span_levels"`
	Span             *int    `toml:"span"`
	UseTypoAnalysis  *bool   `toml:"use_typo_analysis"`
	SoundslikeWeight *int    `toml:"soundslike_weight"`
}

type presetsFile struct {
	Base basePreset              `toml:"base"`
	Mode map[string]modeOverride `toml:"mode"`
}

//go:embed data/suggest_parms.toml
var presetsTOML []byte

var presets presetsFile

func init() {
	if _, err := toml.Decode(string(presetsTOML), &presets); err != nil {
		panic("speller: embedded suggest_parms.toml: " + err.Error())
	}
}

// suggestParmsForMode builds the SuggestParms a sug-mode name selects.
// "bad-spellers" is the one mode that is not a single preset: the source
// runs the "soundslike" preset then merges in a "slow" pass, so it
// returns both in order.
func suggestParmsForMode(mode string, haveSoundslike, haveRepl bool) ([]*SuggestParms, error) {
	if mode == "bad-spellers" {
		sl, err := buildParms("soundslike", haveSoundslike, haveRepl)
		if err != nil {
			return nil, err
		}
		slow, err := buildParms("slow", haveSoundslike, haveRepl)
		if err != nil {
			return nil, err
		}
		return []*SuggestParms{sl, slow}, nil
	}
	p, err := buildParms(mode, haveSoundslike, haveRepl)
	if err != nil {
		return nil, err
	}
	return []*SuggestParms{p}, nil
}

func buildParms(mode string, haveSoundslike, haveRepl bool) (*SuggestParms, error) {
	ov, ok := presets.Mode[mode]
	if !ok {
		return nil, errs.New(errs.BadValue, "sug-mode %q: one of ultra, fast, normal, slow, bad-spellers or soundslike", mode)
	}
	b := presets.Base

	scanThreshold, err := parseThreshold(b.ScanThreshold)
	if err != nil {
		return nil, err
	}
	scan2Threshold, err := parseThreshold(strOr(ov.Scan2Threshold, b.Scan2Threshold))
	if err != nil {
		return nil, err
	}
	ngramThreshold, err := parseThreshold(b.NgramThreshold)
	if err != nil {
		return nil, err
	}

	p := &SuggestParms{
		Name: mode,
		EditWeights: editdist.Weights{
			Del1: b.Del1, Del2: b.Del2, Swap: b.Swap, Sub: b.Sub, Min: b.Min, Max: b.Max,
		},
		SoundslikeWeight: intOr(ov.SoundslikeWeight, b.SoundslikeWeight),
		TryOneEditWord:   b.TryOneEditWord,
		TryScan0:         b.TryScan0,
		TryScan1:         boolOr(ov.TryScan1, false),
		TryScan2:         boolOr(ov.TryScan2, false),
		TryNgram:         boolOr(ov.TryNgram, false),
		UseReplTable:     haveRepl,
		UseTypoAnalysis:  boolOr(ov.UseTypoAnalysis, b.UseTypoAnalysis),
		ScanThreshold:    scanThreshold,
		Scan2Threshold:   scan2Threshold,
		NgramThreshold:   ngramThreshold,
		SpanLevels:       intOr(ov.SpanLevels, b.SpanLevels),
		Span:             intOr(ov.Span, b.Span),
		Limit:            intOr(ov.Limit, b.Limit),
		NgramKeep:        b.NgramKeep,
		SkipScore:        b.SkipScore,
		SplitChars:       b.SplitChars,
	}

	if !haveSoundslike && (p.TryScan0 || p.TryScan1) {
		// Mirrors suggest.cpp: without a soundslike transform, scan_0/1
		// cannot beat the one-edit-word pass, so skip them and check
		// after one edit instead.
		p.TryScan0 = false
		p.TryScan1 = false
		p.ScanThreshold = Maybe
	}

	p.WordWeight = 100 - p.SoundslikeWeight
	return p, nil
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}
