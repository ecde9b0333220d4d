// Copyright ©2022 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the closed error-kind type the core uses to report
// failure: every fallible operation returns a plain Go error that, when it
// originates here, carries one of
// a fixed set of Kind values a caller can switch on without string
// matching. Errors are built on gopkg.in/errgo.v2, which supplies the
// underlying masking and formatted-error construction.
package errs

import (
	"errors"
	"fmt"

	errgo "gopkg.in/errgo.v2/fmt/errors"
)

// Kind classifies why an operation failed.
type Kind string

const (
	BadFileFormat         Kind = "bad_file_format"
	LanguageRelated       Kind = "language_related"
	CantReadFile          Kind = "cant_read_file"
	CantWriteFile         Kind = "cant_write_file"
	MismatchedLanguage    Kind = "mismatched_language"
	InvalidWord           Kind = "invalid_word"
	InvalidCond           Kind = "invalid_cond"
	InvalidCondStrip      Kind = "invalid_cond_strip"
	CorruptAffix          Kind = "corrupt_affix"
	BadValue              Kind = "bad_value"
	OperationNotSupported Kind = "operation_not_supported"
)

// Error is the PosibErr-shaped error the core returns: a Kind plus an
// optional file name the failure is attached to, wrapping an underlying
// errgo-formatted message.
type Error struct {
	Kind Kind
	File string
	err  error
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.File, e.err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// New builds a Kind error with an errgo-formatted message.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, err: errgo.Newf(format, args...)}
}

// Mask wraps an arbitrary error under kind, preserving it as the Unwrap
// cause the way errgo.Mask preserves a wrapped error's location trail.
func Mask(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: errgo.Mask(err)}
}

// WithFile attaches a file name to err, promoting it to a Kind error
// under BadFileFormat if it is not already one of ours.
func WithFile(err error, file string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		clone := *e
		clone.File = file
		return &clone
	}
	return &Error{Kind: BadFileFormat, File: file, err: errgo.Mask(err)}
}

// Is reports whether err is a Kind error (directly, or anywhere in its
// Unwrap chain) matching kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
