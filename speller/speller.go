// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"io"
	"sort"

	"github.com/speldict/aspell/affix"
	"github.com/speldict/aspell/dict"
	"github.com/speldict/aspell/errs"
	"github.com/speldict/aspell/lang"
	"github.com/speldict/aspell/wordlist"
)

// attachedDict pairs a dictionary with the affix manager that explains its
// affix-compressed entries, if any; a replacement dictionary or a plain
// word list with no affix compression carries a nil Affix.
type attachedDict struct {
	Dict  dict.Dict
	Affix *affix.Manager
}

// SpellerImpl is the lookup facade: an ordered list of attached
// dictionaries plus the settings and suggestion presets a Checker and
// Suggester consult. It is not safe for concurrent use; all of
// its methods, and those of the Checker/Suggester built from it, share and
// mutate no state across calls except via the attached Mutable dicts.
type SpellerImpl struct {
	Lang     *lang.Lang
	Settings Settings
	parms    []*SuggestParms

	dicts    []attachedDict
	personal *wordlist.Personal
	session  *wordlist.Personal
	repl     *wordlist.Replacement
}

// New builds a speller for the given language and configuration. No
// dictionaries are attached yet; call Attach, SetPersonal, SetSession and
// SetReplacement to build up the lookup facade before checking or
// suggesting.
func New(l *lang.Lang, cfg Config) (*SpellerImpl, error) {
	if l == nil {
		return nil, errs.New(errs.MismatchedLanguage, "speller: nil language")
	}
	settings, parms, err := cfg.commit(l.SoundslikeName != "", false)
	if err != nil {
		return nil, err
	}
	return &SpellerImpl{Lang: l, Settings: settings, parms: parms}, nil
}

// Attach adds a dictionary to the lookup facade. am is the affix manager
// that explains d's affix-compressed entries, or nil if d carries none.
func (s *SpellerImpl) Attach(d dict.Dict, am *affix.Manager) {
	s.dicts = append(s.dicts, attachedDict{Dict: d, Affix: am})
}

// SetPersonal attaches the long-lived personal word list.
func (s *SpellerImpl) SetPersonal(p *wordlist.Personal) { s.personal = p }

// SetSession attaches the process-lifetime session word list.
func (s *SpellerImpl) SetSession(sess *wordlist.Personal) { s.session = sess }

// SetReplacement attaches the replacement dictionary and re-derives the
// suggestion presets, since "have_repl" affects whether use_repl_table
// defaults on (suggest.cpp's SuggestParms::init).
func (s *SpellerImpl) SetReplacement(r *wordlist.Replacement) error {
	s.repl = r
	mode := s.parms[0].Name
	if len(s.parms) > 1 {
		mode = "bad-spellers"
	}
	parms, err := suggestParmsForMode(mode, s.Lang.SoundslikeName != "", r != nil)
	if err != nil {
		return err
	}
	s.parms = parms
	return nil
}

// checkDicts returns every dictionary the checker consults, the main
// attached dictionaries plus the personal and session word lists,
// same-kind dictionaries ordered by descending size so bigger dicts are
// tried first, maximizing early hits.
func (s *SpellerImpl) checkDicts() []attachedDict {
	all := make([]attachedDict, 0, len(s.dicts)+2)
	all = append(all, s.dicts...)
	if s.personal != nil {
		all = append(all, attachedDict{Dict: s.personal})
	}
	if s.session != nil {
		all = append(all, attachedDict{Dict: s.session})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Dict.Kind() != all[j].Dict.Kind() {
			return all[i].Dict.Kind() < all[j].Dict.Kind()
		}
		return all[i].Dict.Size() > all[j].Dict.Size()
	})
	return all
}

// affixDicts is the checkDicts subset that participates in affix
// compression: every attached dictionary with a non-nil affix manager.
func (s *SpellerImpl) affixDicts() []attachedDict {
	var out []attachedDict
	for _, ad := range s.checkDicts() {
		if ad.Affix != nil {
			out = append(out, ad)
		}
	}
	return out
}

// suggestDicts is the "suggest_ws" view the suggester scans; in this
// implementation it coincides with check_ws, since every dictionary a
// check accepts is also a legitimate suggestion source.
func (s *SpellerImpl) suggestDicts() []attachedDict { return s.checkDicts() }

// tryChars is the union of every attached affix manager's TRY-directive
// alphabet, the candidate-generation alphabet the suggester's one-edit
// phase iterates; it falls back to the plain English alphabet when no
// affix file supplied one.
func (s *SpellerImpl) tryChars() string {
	seen := make(map[byte]bool)
	var out []byte
	for _, ad := range s.affixDicts() {
		for _, b := range []byte(ad.Affix.TryChars) {
			if !seen[b] {
				seen[b] = true
				out = append(out, b)
			}
		}
	}
	if len(out) == 0 {
		return "abcdefghijklmnopqrstuvwxyz"
	}
	return string(out)
}

// Check reports whether word is spelled correctly.
func (s *SpellerImpl) Check(word []byte) bool {
	ok, _, _ := NewChecker(s).Check(word)
	return ok
}

// Suggest returns up to the active SuggestParms' Limit ranked suggestions
// for a misspelled word.
func (s *SpellerImpl) Suggest(word []byte) []string {
	return NewSuggester(s).Suggest(word)
}

// AddToPersonal adds word to the personal word list.
func (s *SpellerImpl) AddToPersonal(word string) error {
	if s.personal == nil {
		return errs.New(errs.OperationNotSupported, "no personal word list attached")
	}
	return s.personal.Add(word, "")
}

// AddToSession adds word to the session word list.
func (s *SpellerImpl) AddToSession(word string) error {
	if s.session == nil {
		return errs.New(errs.OperationNotSupported, "no session word list attached")
	}
	return s.session.Add(word, "")
}

// ClearSession empties the session word list.
func (s *SpellerImpl) ClearSession() error {
	if s.session == nil {
		return nil
	}
	return s.session.Clear()
}

// StoreReplacement records cor as an accepted correction for mis, refusing
// when ignore-repl is set or cor itself does not check out.
func (s *SpellerImpl) StoreReplacement(mis, cor string) error {
	if s.Settings.IgnoreRepl {
		return nil
	}
	if s.repl == nil {
		return errs.New(errs.OperationNotSupported, "no replacement dictionary attached")
	}
	if !s.Check([]byte(cor)) {
		return errs.New(errs.InvalidWord, "correction %q does not check out", cor)
	}
	s.repl.AddCorrection(mis, cor)
	return nil
}

// SaveAll persists the personal and replacement dictionaries, in that
// order, skipping whichever is not attached.
func (s *SpellerImpl) SaveAll(personal, repl io.Writer) error {
	if s.personal != nil && personal != nil {
		if err := s.personal.Save(personal, s.Lang.Name, s.Lang.Charset); err != nil {
			return err
		}
	}
	if s.repl != nil && repl != nil {
		if err := s.repl.Save(repl); err != nil {
			return err
		}
	}
	return nil
}
