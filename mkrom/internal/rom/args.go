// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"strings"

	"github.com/knightos/romtools/mkrom/internal/util"
)

// Spec describes the output image.
type Spec struct {
	Output string
	Length uint64
}

// Placement describes one input file and the offset given for it.
type Placement struct {
	Path   string
	Offset uint64
}

// ParseNum parses s as a length or offset argument.
func ParseNum(s string) (uint64, error) {
	u, err := util.ParseNum(s)
	if err != nil {
		return 0, &ArgError{s, err}
	}
	return u, nil
}

// ParsePlacement splits s at the first ':' into the path and the offset.
// Paths containing ':' can't be expressed.
func ParsePlacement(s string) (Placement, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return Placement{}, &ArgError{s, ErrNoSeparator}
	}
	path, offset := s[:i], s[i+1:]
	u, err := util.ParseNum(offset)
	if err != nil {
		return Placement{}, &ArgError{s, err}
	}
	return Placement{path, u}, nil
}

// ParseArgs parses the positional arguments: OUTPUT LENGTH [PATH:OFFSET ...].
func ParseArgs(args []string) (Spec, []Placement, error) {
	if len(args) < 2 {
		return Spec{}, nil, &ArgError{Err: ErrMissingArgs}
	}
	length, err := ParseNum(args[1])
	if err != nil {
		return Spec{}, nil, err
	}
	ps := make([]Placement, 0, len(args)-2)
	for _, a := range args[2:] {
		p, err := ParsePlacement(a)
		if err != nil {
			return Spec{}, nil, err
		}
		ps = append(ps, p)
	}
	return Spec{args[0], length}, ps, nil
}
