// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "sort"

// Munch finds the set of affix flags that, applied to root, reproduce as
// many of forms as possible, and reports which forms (if any) it could
// not explain with a single prefix or suffix rule. It is the inverse of
// Expand: given a root and its known inflected surface forms, recover the
// flag string a dictionary entry for root should carry.
func (m *Manager) Munch(root string, forms []string) (flags string, unexplained []string) {
	want := make(map[string]bool, len(forms))
	for _, f := range forms {
		if f != root {
			want[f] = true
		}
	}

	flagSet := make(map[byte]bool)
	for flag, bucket := range m.prefixes {
		for _, e := range bucket {
			if w, ok := applyPrefix(root, e); ok && want[w] {
				flagSet[flag] = true
			}
		}
	}
	for flag, bucket := range m.suffixes {
		for _, e := range bucket {
			if w, ok := applySuffix(root, e); ok && want[w] {
				flagSet[flag] = true
			}
		}
	}

	var sorted []byte
	for f := range flagSet {
		sorted = append(sorted, f)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	flags = string(sorted)

	produced := make(map[string]bool)
	for _, f := range m.Expand(root, flags, 0) {
		produced[f.Word] = true
	}
	for f := range want {
		if !produced[f] {
			unexplained = append(unexplained, f)
		}
	}
	sort.Strings(unexplained)
	return flags, unexplained
}

// Cluster is one root word and the inflected surface forms CompressList
// has grouped under it.
type Cluster struct {
	Root  string
	Forms []string
}

// CompressEntry is one compressed dictionary row: a root plus the flags
// that explain its cluster's forms, and any forms that could not be
// explained and so must be kept as separate, flag-less entries.
type CompressEntry struct {
	Root        string
	Flags       string
	Unexplained []string
}

// CompressList is the batch driver a dictionary build uses to replace a
// flat word list with affix-compressed (root, flags) rows: it is the moral
// inverse of calling Expand on every compressed entry to regenerate the
// original list.
func (m *Manager) CompressList(clusters []Cluster) []CompressEntry {
	out := make([]CompressEntry, 0, len(clusters))
	for _, c := range clusters {
		flags, unexplained := m.Munch(c.Root, c.Forms)
		out = append(out, CompressEntry{Root: c.Root, Flags: flags, Unexplained: unexplained})
	}
	return out
}
