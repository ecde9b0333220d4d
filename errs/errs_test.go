// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import "testing"

func TestIsMatchesKind(t *testing.T) {
	err := New(CorruptAffix, "bad rule on line %d", 3)
	if !Is(err, CorruptAffix) {
		t.Errorf("Is(err, CorruptAffix) = false, want true")
	}
	if Is(err, BadFileFormat) {
		t.Errorf("Is(err, BadFileFormat) = true, want false")
	}
}

func TestWithFilePreservesKind(t *testing.T) {
	err := New(CantReadFile, "disk error")
	wrapped := WithFile(err, "en_US.dat")
	if !Is(wrapped, CantReadFile) {
		t.Errorf("WithFile changed Kind, want CantReadFile preserved")
	}
	want := "cant_read_file: en_US.dat: disk error"
	if wrapped.Error() != want {
		t.Errorf("wrapped.Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestWithFilePromotesPlainError(t *testing.T) {
	wrapped := WithFile(errPlain{"oops"}, "x.dat")
	if !Is(wrapped, BadFileFormat) {
		t.Errorf("WithFile on plain error did not promote to BadFileFormat")
	}
}

type errPlain struct{ msg string }

func (e errPlain) Error() string { return e.msg }
