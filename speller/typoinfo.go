// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"github.com/speldict/aspell/editdist"
	"github.com/speldict/aspell/lang"
)

// newTypoCost adapts a language's keyboard layout into the narrow shape
// editdist.TypoDistance needs, keeping editdist itself free of a
// dependency on the lang package.
func newTypoCost(kb *lang.Keyboard, l *lang.Lang) editdist.TypoCost {
	var lowerBuf [1]byte
	return editdist.TypoCost{
		Missing:       kb.Missing,
		Swap:          kb.Swap,
		ReplAdjacent:  kb.ReplAdjacent,
		ReplOther:     kb.ReplOther,
		ExtraAdjacent: kb.ExtraAdjacent,
		ExtraOther:    kb.ExtraOther,
		CaseMismatch:  kb.CaseMismatch,
		Adjacent:      kb.Adjacent,
		Lower: func(b byte) byte {
			lowerBuf[0] = b
			return l.ToLower(nil, lowerBuf[:])[0]
		},
	}
}
