// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/speldict/aspell/errs"
)

// Kind distinguishes a prefix rule from a suffix rule.
type Kind byte

const (
	Prefix Kind = 'P'
	Suffix Kind = 'S'
)

// Entry is one compiled PFX or SFX rule: strip the Strip bytes from the
// affected end of a root, append Append in their place, provided the root's
// remaining end matches Cond.
type Entry struct {
	Kind         Kind
	Flag         byte
	Strip        string
	Append       string
	CrossProduct bool
	Cond         *Condition
}

// ReplPair is one REP-table substitution candidate, surfaced to the
// suggester's replacement-table phase.
type ReplPair struct {
	From, To string
}

// Manager parses a textual affix description into bucketed prefix and
// suffix entries and answers the three questions a speller needs of it:
// what surface forms a root expands to (Expand), whether a candidate word
// is some root plus a known affix (AffixCheck), and the reverse search
// used to compress a word list (Munch).
type Manager struct {
	prefixes map[byte][]*Entry // by flag byte
	suffixes map[byte][]*Entry

	// byPrefixFirstByte/bySuffixLastByte bucket entries by the first byte
	// of the appended string (prefixes) or the last byte of the appended
	// string (suffixes), the index AffixCheck scans instead of walking
	// every flag's bucket.
	byPrefixFirstByte [256][]*Entry
	bySuffixLastByte  [256][]*Entry

	conds *conditionTable

	Replacements []ReplPair
	TryChars     string
}

// NewManager returns an empty Manager ready for Parse.
func NewManager() *Manager {
	return &Manager{
		prefixes: make(map[byte][]*Entry),
		suffixes: make(map[byte][]*Entry),
		conds:    newConditionTable(),
	}
}

// Parse reads a textual affix description (one directive per line: SET,
// TRY, REP, and PFX/SFX header+body blocks, in the format the original
// implementation's .aff files use) and populates m.
func Parse(data []byte) (*Manager, error) {
	m := NewManager()
	sc := bufio.NewScanner(bytes.NewReader(data))
	var lineNo int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "SET":
			// Charset declaration; the Lang the manager is paired with
			// already carries this, so it is accepted and ignored here.
		case "TRY":
			if len(fields) >= 2 {
				m.TryChars = fields[1]
			}
		case "REP":
			if len(fields) == 3 {
				m.Replacements = append(m.Replacements, ReplPair{From: fields[1], To: fields[2]})
			}
		case "PFX", "SFX":
			var err error
			lineNo, err = m.parseBlock(sc, fields, lineNo)
			if err != nil {
				return nil, errs.Mask(errs.CorruptAffix, fmt.Errorf("line %d: %w", lineNo, err))
			}
		default:
			return nil, errs.New(errs.BadFileFormat, "line %d: unrecognized directive %q", lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Mask(errs.CantReadFile, err)
	}
	m.index()
	return m, nil
}

// parseBlock consumes a "PFX flag cross count" header and its count body
// lines, returning the updated line counter.
func (m *Manager) parseBlock(sc *bufio.Scanner, header []string, lineNo int) (int, error) {
	if len(header) != 4 {
		return lineNo, fmt.Errorf("malformed header %q", strings.Join(header, " "))
	}
	kind := Kind(header[0][0])
	if len(header[1]) != 1 {
		return lineNo, fmt.Errorf("flag %q is not a single byte", header[1])
	}
	flag := header[1][0]
	cross := header[2] == "Y"
	count, err := strconv.Atoi(header[3])
	if err != nil {
		return lineNo, fmt.Errorf("bad rule count %q: %w", header[3], err)
	}
	for i := 0; i < count; i++ {
		if !sc.Scan() {
			return lineNo, fmt.Errorf("expected %d rule lines, got %d", count, i)
		}
		lineNo++
		body := strings.Fields(strings.TrimSpace(sc.Text()))
		if len(body) < 5 || Kind(body[0][0]) != kind || body[1][0] != flag {
			return lineNo, fmt.Errorf("malformed rule line %q", sc.Text())
		}
		strip := body[2]
		if strip == "0" {
			strip = ""
		}
		appendStr := body[3]
		if appendStr == "0" {
			appendStr = ""
		}
		cond, err := m.conds.parse(body[4])
		if err != nil {
			return lineNo, err
		}
		e := &Entry{
			Kind:         kind,
			Flag:         flag,
			Strip:        strip,
			Append:       appendStr,
			CrossProduct: cross,
			Cond:         cond,
		}
		switch kind {
		case Prefix:
			m.prefixes[flag] = append(m.prefixes[flag], e)
		case Suffix:
			m.suffixes[flag] = append(m.suffixes[flag], e)
		}
	}
	return lineNo, nil
}

// index builds the byPrefixFirstByte/bySuffixLastByte buckets after all
// PFX/SFX blocks have been parsed.
func (m *Manager) index() {
	for _, bucket := range m.prefixes {
		for _, e := range bucket {
			if e.Append != "" {
				b := e.Append[0]
				m.byPrefixFirstByte[b] = append(m.byPrefixFirstByte[b], e)
			} else {
				for b := range m.byPrefixFirstByte {
					m.byPrefixFirstByte[b] = append(m.byPrefixFirstByte[b], e)
				}
			}
		}
	}
	for _, bucket := range m.suffixes {
		for _, e := range bucket {
			if e.Append != "" {
				b := e.Append[len(e.Append)-1]
				m.bySuffixLastByte[b] = append(m.bySuffixLastByte[b], e)
			} else {
				for b := range m.bySuffixLastByte {
					m.bySuffixLastByte[b] = append(m.bySuffixLastByte[b], e)
				}
			}
		}
	}
}

// Prefixes returns the prefix rules registered under flag.
func (m *Manager) Prefixes(flag byte) []*Entry { return m.prefixes[flag] }

// Suffixes returns the suffix rules registered under flag.
func (m *Manager) Suffixes(flag byte) []*Entry { return m.suffixes[flag] }
