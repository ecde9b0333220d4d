// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package rod

import (
	"fmt"
	"os"

	"github.com/speldict/aspell/errs"
)

// mappedFile falls back to a plain read on platforms without the POSIX
// mmap the unix build uses; the speller still only pays for the read
// once, at Open time.
type mappedFile struct {
	data []byte
}

func openMapped(path string) (*mappedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("%w", err))
	}
	return &mappedFile{data: data}, nil
}

func (m *mappedFile) Bytes() []byte { return m.data }

func (m *mappedFile) Close() error { return nil }
