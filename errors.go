// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them through errors.Is.
var (
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrNotImplemented  = errors.New("decoding method not implemented")
	ErrUnderlyingCodec = errors.New("underlying codec failure")
	ErrOutputLimit     = errors.New("decoded output exceeds limit")
)

// Error describes a failed decode.
type Error struct {
	Filter Name   // filter that failed
	Kind   error  // one of the Err* kinds above
	Detail string // human readable detail, may be empty
	Err    error  // underlying cause, set for ErrUnderlyingCodec
}

func (e *Error) Error() string {
	var msg string
	switch {
	case e.Kind == ErrUnknownFilter:
		msg = fmt.Sprintf("%v %q", e.Kind, e.Filter)
	case e.Filter == "":
		msg = e.Kind.Error()
	default:
		msg = string(e.Filter) + ": " + e.Kind.Error()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidEncoding(name Name, format string, args ...interface{}) error {
	return &Error{Filter: name, Kind: ErrInvalidEncoding, Detail: fmt.Sprintf(format, args...)}
}
