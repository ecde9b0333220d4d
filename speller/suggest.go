// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"sort"
	"strings"

	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/editdist"
	"github.com/speldict/aspell/rod"
)

// Suggester implements the suggestion pipeline against a speller's
// attached dictionaries.
type Suggester struct {
	sp *SpellerImpl
}

// NewSuggester returns a Suggester bound to sp.
func NewSuggester(sp *SpellerImpl) *Suggester { return &Suggester{sp: sp} }

// scored is one candidate's accumulated state through the pipeline.
type scored struct {
	word     string
	adjScore int
}

// Suggest runs the suggestion pipeline for word and returns up to Limit
// ranked corrections. In "bad-spellers" mode two passes run (a
// "soundslike" pass then a "slow" pass) and their results are merged and
// re-sorted.
func (g *Suggester) Suggest(word []byte) []string {
	var merged []scored
	for _, p := range g.sp.parms {
		merged = append(merged, g.pass(word, p)...)
	}
	return g.finish(word, merged, g.sp.parms[len(g.sp.parms)-1].Limit)
}

// pass runs every phase of one SuggestParms preset and returns the scored
// survivors.
func (g *Suggester) pass(word []byte, parms *SuggestParms) []scored {
	checker := NewChecker(g.sp)
	var cleanBuf [256]byte
	origClean := append([]byte(nil), g.sp.Lang.ToClean(cleanBuf[:0], word)...)
	origSL := g.sp.Lang.ToSoundslike(append([]byte(nil), origClean...))

	cands := make(map[string]bool)
	add := func(w string) {
		if w == "" {
			return
		}
		var buf [256]byte
		if string(g.sp.Lang.ToClean(buf[:0], []byte(w))) == string(origClean) {
			return
		}
		cands[strings.ToLower(w)] = true
		// w itself is kept as a candidate beside its lowercased form;
		// finish collapses case-fold duplicates to the best-scoring one.
		if _, ok := cands[w]; !ok {
			cands[w] = true
		}
	}

	if g.sp.repl != nil {
		for _, c := range g.sp.repl.Corrections(string(word)) {
			add(c)
		}
	}

	g.splitPhase(word, checker, parms, add)
	if parms.UseReplTable {
		g.replacementPhase(word, checker, add)
	}

	tryHarder := Probably
	if parms.TryOneEditWord {
		tryHarder = g.oneEditPhase(word, checker, parms, add)
	}

	if (parms.TryScan0 || parms.TryScan1) && tryHarder >= parms.ScanThreshold {
		if parms.TryScan0 {
			g.soundslikeScan(origSL, 0, parms, add)
		}
		if parms.TryScan1 {
			g.soundslikeScan(origSL, 1, parms, add)
		}
	}
	if parms.TryScan2 && tryHarder >= parms.Scan2Threshold {
		g.soundslikeScan(origSL, 2, parms, add)
	}
	if parms.TryNgram && tryHarder >= parms.NgramThreshold {
		g.ngramPhase(origSL, parms, add)
	}

	out := make([]scored, 0, len(cands))
	for w := range cands {
		out = append(out, g.score(word, origClean, origSL, w, parms))
	}
	return out
}

// splitPhase tries inserting each split char at each position and accepts
// the pair when both halves check out on their own, a worse-than-one-edit
// fallback for concatenated words missing a separator.
func (g *Suggester) splitPhase(word []byte, c *Checker, parms *SuggestParms, add func(string)) {
	for i := 1; i < len(word); i++ {
		if !c.checkPlain(word[:i]) || !c.checkPlain(word[i:]) {
			continue
		}
		for _, sep := range []byte(parms.SplitChars) {
			add(string(word[:i]) + string(sep) + string(word[i:]))
		}
	}
}

// replacementPhase substitutes every occurrence of each language
// replacement-table pattern and keeps the result if it checks out.
func (g *Suggester) replacementPhase(word []byte, c *Checker, add func(string)) {
	w := string(word)
	for _, rp := range g.sp.Lang.ReplTable {
		if !strings.Contains(w, rp.From) {
			continue
		}
		cand := strings.ReplaceAll(w, rp.From, rp.To)
		if ok, _, _ := c.Check([]byte(cand)); ok {
			add(cand)
		}
	}
}

// oneEditPhase tries every single substitution, adjacent transposition,
// insertion and deletion, checking each as a whole word and then as a
// run-together compound. It reports a Threshold summarizing how confident
// the result already is, gating the costlier scan/ngram phases.
func (g *Suggester) oneEditPhase(word []byte, c *Checker, parms *SuggestParms, add func(string)) Threshold {
	alphabet := g.sp.tryChars()
	found := 0
	for _, cand := range oneEditNeighbors(word, alphabet) {
		ok, _, _ := c.Check([]byte(cand))
		if !ok {
			continue
		}
		add(cand)
		found++
	}
	switch {
	case found == 0:
		return Probably
	case found <= 2:
		return Maybe
	default:
		return Unlikely
	}
}

func oneEditNeighbors(word []byte, alphabet string) []string {
	n := len(word)
	var out []string
	for i := 0; i < n; i++ {
		for _, r := range alphabet {
			if byte(r) == word[i] {
				continue
			}
			cand := make([]byte, 0, n)
			cand = append(cand, word[:i]...)
			cand = append(cand, byte(r))
			cand = append(cand, word[i+1:]...)
			out = append(out, string(cand))
		}
	}
	for i := 0; i+1 < n; i++ {
		cand := append([]byte(nil), word...)
		cand[i], cand[i+1] = cand[i+1], cand[i]
		out = append(out, string(cand))
	}
	for i := 0; i <= n; i++ {
		for _, r := range alphabet {
			cand := make([]byte, 0, n+1)
			cand = append(cand, word[:i]...)
			cand = append(cand, byte(r))
			cand = append(cand, word[i:]...)
			out = append(out, string(cand))
		}
	}
	for i := 0; i < n; i++ {
		cand := make([]byte, 0, n-1)
		cand = append(cand, word[:i]...)
		cand = append(cand, word[i+1:]...)
		out = append(out, string(cand))
	}
	return out
}

// soundslikeScan walks the soundslike index of every suggest dictionary
// looking for entries within limit edits of origSL. An exact-match scan
// (limit 0) works against any Dict through the plain interface; limit 1
// and 2 need the grouped jump-table walk only rod.Dict exposes, so
// non-ROD dictionaries (personal/session/replacement lists, expected to
// be small) only participate in the limit-0 pass.
func (g *Suggester) soundslikeScan(origSL []byte, limit int, parms *SuggestParms, add func(string)) {
	for _, ad := range g.sp.suggestDicts() {
		enroll := func(e dict.WordEntry) {
			add(e.Word)
			if ad.Affix != nil && e.HasAffix() {
				for _, f := range ad.Affix.Expand(e.Word, e.AffixFlag, 0) {
					add(f.Word)
				}
			}
		}
		if limit == 0 {
			ad.Dict.Soundslike(origSL, func(e dict.WordEntry) bool { enroll(e); return true })
			continue
		}
		rd, ok := ad.Dict.(*rod.Dict)
		if !ok {
			continue
		}
		enum := rd.SoundslikeElements()
		stoppedAt := 0
		for {
			e, ok := enum.Next(stoppedAt)
			if !ok {
				break
			}
			var buf [256]byte
			clean := g.sp.Lang.ToClean(buf[:0], []byte(e.Word))
			sl := g.sp.Lang.ToSoundslike(append([]byte(nil), clean...))
			dist, stop := editdist.LimitEditDistance(sl, origSL, limit, parms.EditWeights)
			stoppedAt = stop
			if dist < editdist.LargeNum {
				enroll(e)
			}
		}
	}
}

// ngramPhase is the last-resort fallback: score every ROD soundslike by
// trigram overlap against the original and enroll the top NgramKeep.
func (g *Suggester) ngramPhase(origSL []byte, parms *SuggestParms, add func(string)) {
	type hit struct {
		word  string
		score int
	}
	for _, ad := range g.sp.suggestDicts() {
		rd, ok := ad.Dict.(*rod.Dict)
		if !ok {
			continue
		}
		var hits []hit
		enum := rd.SoundslikeElements()
		for {
			e, ok := enum.Next(0)
			if !ok {
				break
			}
			var buf [256]byte
			clean := g.sp.Lang.ToClean(buf[:0], []byte(e.Word))
			sl := g.sp.Lang.ToSoundslike(append([]byte(nil), clean...))
			hits = append(hits, hit{e.Word, trigramOverlap(sl, origSL)})
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
		for i := 0; i < len(hits) && i < parms.NgramKeep; i++ {
			if hits[i].score > 0 {
				add(hits[i].word)
			}
		}
	}
}

func trigramOverlap(a, b []byte) int {
	grams := func(s []byte) map[string]int {
		m := make(map[string]int)
		for i := 0; i+3 <= len(s); i++ {
			m[string(s[i:i+3])]++
		}
		return m
	}
	ga, gb := grams(a), grams(b)
	n := 0
	for k, ca := range ga {
		if cb, ok := gb[k]; ok {
			if ca < cb {
				n += ca
			} else {
				n += cb
			}
		}
	}
	return n
}

// score computes the final adj_score for a candidate: a weighted average
// of word edit distance and soundslike edit distance, with the word
// component replaced by a keyboard-weighted typo distance when the preset
// enables it.
func (g *Suggester) score(original, origClean, origSL []byte, cand string, parms *SuggestParms) scored {
	var buf [256]byte
	clean := append([]byte(nil), g.sp.Lang.ToClean(buf[:0], []byte(cand))...)
	wordScore := editdist.Distance(clean, origClean, parms.EditWeights)
	if parms.UseTypoAnalysis && g.sp.Lang.Typo != nil {
		wordScore = editdist.TypoDistance([]byte(cand), original, newTypoCost(g.sp.Lang.Typo, g.sp.Lang))
	}
	sl := g.sp.Lang.ToSoundslike(append([]byte(nil), clean...))
	slScore := editdist.Distance(sl, origSL, parms.EditWeights)
	adj := (parms.WordWeight*wordScore + parms.SoundslikeWeight*slScore) / 100
	return scored{word: cand, adjScore: adj}
}

// finish sorts by (adj_score, word) ascending, deduplicates case-fold
// matches keeping the best-scoring form, restores the original word's
// case pattern and truncates to limit.
func (g *Suggester) finish(original []byte, cands []scored, limit int) []string {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].adjScore != cands[j].adjScore {
			return cands[i].adjScore < cands[j].adjScore
		}
		return cands[i].word < cands[j].word
	})

	seen := make(map[string]bool)
	pattern := g.sp.Lang.CasePattern(original)
	var out []string
	for _, c := range cands {
		key := strings.ToLower(c.word)
		if seen[key] {
			continue
		}
		seen[key] = true
		var buf [256]byte
		out = append(out, string(g.sp.Lang.FixCase(buf[:0], pattern, []byte(c.word))))
		if len(out) >= limit {
			break
		}
	}
	return out
}
