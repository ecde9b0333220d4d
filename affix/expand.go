// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "strings"

// applyPrefix returns the surface form a prefix entry produces from root,
// and whether the entry's strip/condition actually apply.
func applyPrefix(root string, e *Entry) (string, bool) {
	if e.Strip != "" && !strings.HasPrefix(root, e.Strip) {
		return "", false
	}
	if !e.Cond.MatchBegin([]byte(root)) {
		return "", false
	}
	return e.Append + root[len(e.Strip):], true
}

// applySuffix returns the surface form a suffix entry produces from root.
func applySuffix(root string, e *Entry) (string, bool) {
	if e.Strip != "" && !strings.HasSuffix(root, e.Strip) {
		return "", false
	}
	if !e.Cond.MatchEnd([]byte(root)) {
		return "", false
	}
	return root[:len(root)-len(e.Strip)] + e.Append, true
}

// Form is one surface form Expand produces from a root, naming the
// entries used to reach it so a caller (affix_check, or a dictionary
// compressor reversing the process) can reconstruct the derivation.
type Form struct {
	Word   string
	Prefix *Entry // nil if no prefix was applied
	Suffix *Entry // nil if no suffix was applied
}

// Expand generates every surface form reachable from root by applying the
// prefix and suffix rules registered under the bytes of flags, including
// prefix+suffix cross products where both entries allow it. The root
// itself is always included as the first form. limit caps the number of
// forms returned (0 means unlimited).
func (m *Manager) Expand(root string, flags string, limit int) []Form {
	forms := []Form{{Word: root}}
	push := func(f Form) bool {
		if limit != 0 && len(forms) >= limit {
			return false
		}
		forms = append(forms, f)
		return true
	}

	var prefixed []Form
	for i := 0; i < len(flags); i++ {
		flag := flags[i]
		for _, e := range m.prefixes[flag] {
			if w, ok := applyPrefix(root, e); ok {
				f := Form{Word: w, Prefix: e}
				prefixed = append(prefixed, f)
				if !push(f) {
					return forms
				}
			}
		}
	}

	for i := 0; i < len(flags); i++ {
		flag := flags[i]
		for _, e := range m.suffixes[flag] {
			w, ok := applySuffix(root, e)
			if !ok {
				continue
			}
			f := Form{Word: w, Suffix: e}
			if !push(f) {
				return forms
			}
			if !e.CrossProduct {
				continue
			}
			for _, p := range prefixed {
				if p.Prefix == nil || !p.Prefix.CrossProduct {
					continue
				}
				cw, ok := applySuffix(p.Word, e)
				if !ok {
					continue
				}
				if !push(Form{Word: cw, Prefix: p.Prefix, Suffix: e}) {
					return forms
				}
			}
		}
	}
	return forms
}
