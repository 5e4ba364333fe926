// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"errors"
	"io"
	"math"
	"os"
	"strings"
)

// Mode selects how the offset of a placement is interpreted.
type Mode int

const (
	// Sequential seeks the source file to the offset and appends the rest
	// of it at the current output position. The output position starts at
	// zero and advances with every placement.
	Sequential Mode = iota

	// Addressed writes the whole source file at the offset in the image.
	Addressed
)

var modeNames = [...]string{
	Sequential: "seq",
	Addressed:  "addr",
}

func (m Mode) String() string {
	if uint(m) < uint(len(modeNames)) {
		return modeNames[m]
	}
	return "mode(?)"
}

func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, &ArgError{s, ErrBadMode}
}

// State of the image during Build.
type State int

const (
	Uninitialized State = iota
	Created             // output exists, zero length
	Padded              // output filled with PadByte, cursor at 0
	Writing             // placements being applied
	Closed              // success
	Failed
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	Created:       "created",
	Padded:        "padded",
	Writing:       "writing",
	Closed:        "closed",
	Failed:        "failed",
}

func (s State) String() string {
	if uint(s) < uint(len(stateNames)) {
		return stateNames[s]
	}
	return "state(?)"
}

var errOffsetRange = errors.New("offset out of range")

// Builder builds a ROM image file. The zero value builds in Sequential mode
// and logs nothing.
type Builder struct {
	Mode Mode

	// Logf, if not nil, receives a line for every step.
	Logf func(f string, args ...any)

	// Progress, if not nil, is called after every applied placement.
	Progress func(cur, max int)

	state   State
	applied int
}

// State returns the state reached by the last Build.
func (b *Builder) State() State { return b.state }

// Applied returns the number of placements written by the last Build.
func (b *Builder) Applied() int { return b.applied }

func (b *Builder) logf(f string, args ...any) {
	if b.Logf != nil {
		b.Logf(f, args...)
	}
}

// Build creates or truncates spec.Output, fills it with spec.Length pad
// bytes and applies the placements in order. Build stops at the first
// error and leaves the partially written output in place. Writes are not
// bounds checked so the output may end up longer than spec.Length.
func (b *Builder) Build(spec Spec, ps []Placement) (err error) {
	b.state = Uninitialized
	b.applied = 0
	defer func() {
		if err != nil {
			b.state = Failed
		}
	}()

	out, err := os.Create(spec.Output)
	if err != nil {
		return &IOError{"create", spec.Output, err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &IOError{"close", spec.Output, cerr}
		}
	}()
	b.state = Created
	b.logf("created %s", spec.Output)

	if _, err = WritePad(out, spec.Length, PadByte); err != nil {
		return &IOError{"pad", spec.Output, err}
	}
	if _, err = out.Seek(0, io.SeekStart); err != nil {
		return &IOError{"seek", spec.Output, err}
	}
	b.state = Padded
	b.logf("padded %s to %#x bytes", spec.Output, spec.Length)

	for i, p := range ps {
		b.state = Writing
		n, err := b.apply(out, spec.Output, p)
		if err != nil {
			return err
		}
		b.applied++
		b.logf("%s: %#x: %d bytes (%s)", p.Path, p.Offset, n, b.Mode)
		if b.Progress != nil {
			b.Progress(i+1, len(ps))
		}
	}
	b.state = Closed
	return nil
}

func (b *Builder) apply(out *os.File, outName string, p Placement) (int, error) {
	if p.Offset > math.MaxInt64 {
		return 0, &IOError{"seek", p.Path, errOffsetRange}
	}
	off := int64(p.Offset)
	src, err := os.Open(p.Path)
	if err != nil {
		return 0, &IOError{"open", p.Path, err}
	}
	defer src.Close()
	if b.Mode == Sequential {
		if _, err = src.Seek(off, io.SeekStart); err != nil {
			return 0, &IOError{"seek", p.Path, err}
		}
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, &IOError{"read", p.Path, err}
	}
	if b.Mode == Addressed {
		if _, err = out.Seek(off, io.SeekStart); err != nil {
			return 0, &IOError{"seek", outName, err}
		}
	}
	n, err := out.Write(data)
	if err != nil {
		return n, &IOError{"write", outName, err}
	}
	return n, nil
}

// Build builds the image with a default Builder in the given mode.
func Build(spec Spec, ps []Placement, mode Mode) error {
	b := &Builder{Mode: mode}
	return b.Build(spec, ps)
}
