// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

// metaphoneSoundslike implements a simplified Metaphone-style phonetic
// reduction for English, registered under the name "metaphone". It is
// intentionally conservative: every production either consumes one input
// byte and emits zero or one output bytes, or consumes a digraph and emits
// a single output byte, which guarantees len(result) <= len(input).
func metaphoneSoundslike(w []byte) []byte {
	if len(w) == 0 {
		return nil
	}
	out := make([]byte, 0, len(w))
	isVowel := func(b byte) bool {
		switch b {
		case 'a', 'e', 'i', 'o', 'u', 'y':
			return true
		}
		return false
	}
	var last byte
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' {
			// Non-letter bytes (digits, special chars) pass through
			// as themselves; they still count towards length so the
			// non-increasing guarantee holds trivially.
			if c != last {
				out = append(out, c)
				last = c
			}
			continue
		}

		var code byte
		switch c {
		case 'b':
			code = 'b'
		case 'c':
			switch {
			case i+1 < len(w) && w[i+1] == 'h':
				code = 'x'
				i++
			case i+1 < len(w) && (w[i+1] == 'i' || w[i+1] == 'e' || w[i+1] == 'y'):
				code = 's'
			default:
				code = 'k'
			}
		case 'd':
			if i+2 < len(w) && w[i+1] == 'g' && (w[i+2] == 'e' || w[i+2] == 'i' || w[i+2] == 'y') {
				code = 'j'
				i++
			} else {
				code = 't'
			}
		case 'g':
			if i+1 < len(w) && w[i+1] == 'h' {
				code = 0 // silent in most positions; skip.
				i++
			} else {
				code = 'k'
			}
		case 'k':
			code = 'k'
		case 'p':
			if i+1 < len(w) && w[i+1] == 'h' {
				code = 'f'
				i++
			} else {
				code = 'p'
			}
		case 'q':
			code = 'k'
		case 's':
			if i+1 < len(w) && w[i+1] == 'h' {
				code = 'x'
				i++
			} else {
				code = 's'
			}
		case 't':
			if i+1 < len(w) && w[i+1] == 'h' {
				code = '0'
				i++
			} else {
				code = 't'
			}
		case 'v':
			code = 'f'
		case 'w', 'h':
			if isVowel(last) {
				code = 0
			} else {
				code = c
			}
		case 'x':
			// Metaphone proper expands x to "ks"; that would violate
			// the non-increasing length contract, so collapse to the
			// dominant sibilant instead.
			code = 's'
		case 'z':
			code = 's'
		default:
			if isVowel(c) {
				if i == 0 {
					code = c
				} else {
					code = 0
				}
			} else {
				code = c
			}
		}

		if code != 0 && code != last {
			out = append(out, code)
		}
		if code != 0 {
			last = code
		} else {
			last = c
		}
	}
	return out
}

func init() {
	RegisterSoundslike("metaphone", metaphoneSoundslike)
	RegisterSoundslike("none", func(w []byte) []byte { return append([]byte(nil), w...) })
}
