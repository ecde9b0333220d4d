// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"encoding/binary"

	"github.com/speldict/aspell/errs"
)

// magic identifies the file format; endianCheck is written literally so a
// reader can detect a file built on a machine with the other byte order
// (this implementation only ever writes little-endian, so a mismatch here
// always means a foreign or corrupt file).
var magic = [8]byte{'A', 'S', 'P', 'L', 'R', 'O', 'D', '1'}

const endianCheck = 0x12345678

// header is the fixed-size block at the start of a built dictionary file,
// giving the sizes needed to walk the variable-length sections that
// follow it without random access.
type header struct {
	Magic            [8]byte
	Endian           uint32
	WordCount        uint32
	HashBuckets      uint32
	SoundslikeGroups uint32
	Flags            uint32
}

const (
	flagAffixCompressed = 1 << iota
)

const headerSize = 8 + 4*5

func (h header) marshal() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:8], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[8:12], h.Endian)
	binary.LittleEndian.PutUint32(buf[12:16], h.WordCount)
	binary.LittleEndian.PutUint32(buf[16:20], h.HashBuckets)
	binary.LittleEndian.PutUint32(buf[20:24], h.SoundslikeGroups)
	binary.LittleEndian.PutUint32(buf[24:28], h.Flags)
	return buf
}

func unmarshalHeader(buf []byte) (header, error) {
	var h header
	if len(buf) < headerSize {
		return h, errs.New(errs.BadFileFormat, "truncated header")
	}
	copy(h.Magic[:], buf[0:8])
	if h.Magic != magic {
		return h, errs.New(errs.BadFileFormat, "bad magic %q", h.Magic)
	}
	h.Endian = binary.LittleEndian.Uint32(buf[8:12])
	if h.Endian != endianCheck {
		return h, errs.New(errs.BadFileFormat, "wrong endian order")
	}
	h.WordCount = binary.LittleEndian.Uint32(buf[12:16])
	h.HashBuckets = binary.LittleEndian.Uint32(buf[16:20])
	h.SoundslikeGroups = binary.LittleEndian.Uint32(buf[20:24])
	h.Flags = binary.LittleEndian.Uint32(buf[24:28])
	return h, nil
}

// writer is a small append-only byte encoder for the length-prefixed
// strings and integers the file format uses.
type writer struct {
	buf []byte
}

func (w *writer) uint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) uint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *writer) str(s string) {
	w.uint32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// reader is the matching sequential decoder.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) uint32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, errs.New(errs.BadFileFormat, "truncated uint32")
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *reader) uint8() (uint8, error) {
	if r.pos+1 > len(r.buf) {
		return 0, errs.New(errs.BadFileFormat, "truncated uint8")
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) str() (string, error) {
	n, err := r.uint32()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.buf) {
		return "", errs.New(errs.BadFileFormat, "truncated string")
	}
	s := string(r.buf[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s, nil
}
