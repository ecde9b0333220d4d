// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lang

import (
	_ "embed"
	"fmt"
)

//go:embed data/en_US.toml
var enUSTable []byte

// English returns the built-in en_US language table.
func English() *Lang {
	l, err := Load(enUSTable)
	if err != nil {
		// The embedded table is validated by lang_test.go; a failure
		// here means the asset itself is corrupt.
		panic(fmt.Sprintf("lang: embedded en_US table: %v", err))
	}
	return l
}
