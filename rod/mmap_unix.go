// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package rod

import (
	"fmt"
	"os"

	"github.com/speldict/aspell/errs"
	"golang.org/x/sys/unix"
)

// mappedFile is a memory-mapped read-only dictionary file. Close unmaps
// it; the []byte returned by Bytes must not be used afterwards.
type mappedFile struct {
	data []byte
}

func openMapped(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("%w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("%w", err))
	}
	size := info.Size()
	if size == 0 {
		return &mappedFile{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errs.Mask(errs.CantReadFile, fmt.Errorf("mmap: %w", err))
	}
	return &mappedFile{data: data}, nil
}

func (m *mappedFile) Bytes() []byte { return m.data }

func (m *mappedFile) Close() error {
	if m.data == nil {
		return nil
	}
	return unix.Munmap(m.data)
}
