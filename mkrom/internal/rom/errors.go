// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgs = errors.New("expected OUTPUT LENGTH [PATH:OFFSET ...]")
	ErrNoSeparator = errors.New("no ':' found (format PATH:OFFSET)")
	ErrBadMode     = errors.New("unknown mode (want seq or addr)")
)

// ArgError reports a malformed command line argument. No output file is
// created when parsing fails.
type ArgError struct {
	Arg string
	Err error
}

func (e *ArgError) Error() string {
	if e.Arg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("bad '%s': %v", e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }

// IOError reports a failed operation on the output or on a source file.
type IOError struct {
	Op   string // create, open, pad, seek, read, write, close
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
