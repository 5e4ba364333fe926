// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout reads ROM layouts from HCL files:
//
//	output = "rom.bin"
//	length = "0x100000"
//	mode   = "addr"
//
//	place "kernel.bin" {
//	  offset = "0x4000"
//	}
//
// Lengths and offsets are strings so they can be written in hexadecimal.
package layout

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/knightos/romtools/mkrom/internal/rom"
)

type file struct {
	Output string  `hcl:"output,optional"`
	Length string  `hcl:"length"`
	Mode   string  `hcl:"mode,optional"`
	Places []place `hcl:"place,block"`
}

type place struct {
	Path   string `hcl:"path,label"`
	Offset string `hcl:"offset"`
}

// Layout is a decoded layout file.
type Layout struct {
	Spec       rom.Spec
	Mode       rom.Mode
	ModeSet    bool // mode attribute present
	Placements []rom.Placement
}

// Load reads the layout from the named file. The file name must end with
// .hcl (native syntax) or .json (HCL JSON syntax).
func Load(name string) (*Layout, error) {
	var f file
	if err := hclsimple.DecodeFile(name, nil, &f); err != nil {
		return nil, &rom.ArgError{Arg: name, Err: err}
	}
	return f.layout()
}

// Decode parses src as if it were read from the file name.
func Decode(name string, src []byte) (*Layout, error) {
	var f file
	if err := hclsimple.Decode(name, src, nil, &f); err != nil {
		return nil, &rom.ArgError{Arg: name, Err: err}
	}
	return f.layout()
}

func (f *file) layout() (*Layout, error) {
	l := new(Layout)
	l.Spec.Output = f.Output
	var err error
	if l.Spec.Length, err = rom.ParseNum(f.Length); err != nil {
		return nil, err
	}
	if f.Mode != "" {
		if l.Mode, err = rom.ParseMode(f.Mode); err != nil {
			return nil, err
		}
		l.ModeSet = true
	}
	l.Placements = make([]rom.Placement, 0, len(f.Places))
	for _, p := range f.Places {
		off, err := rom.ParseNum(p.Offset)
		if err != nil {
			return nil, err
		}
		l.Placements = append(l.Placements, rom.Placement{Path: p.Path, Offset: off})
	}
	return l, nil
}
