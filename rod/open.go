// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import "github.com/speldict/aspell/lang"

// File is an open, memory-mapped read-only dictionary. Close releases the
// mapping; the *Dict it returned from Open must not be used afterwards.
type File struct {
	mapped *mappedFile
	Dict   *Dict
}

// Open memory-maps path and decodes it as a dictionary built for l.
func Open(l *lang.Lang, path string) (*File, error) {
	m, err := openMapped(path)
	if err != nil {
		return nil, err
	}
	d, err := Load(l, m.Bytes())
	if err != nil {
		m.Close()
		return nil, err
	}
	return &File{mapped: m, Dict: d}, nil
}

// Close unmaps the backing file.
func (f *File) Close() error { return f.mapped.Close() }
