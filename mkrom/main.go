// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mkrom builds a fixed size ROM image. The image is filled with 0xff and
// then the input files are written into it.
//
// Usage:
//
//	mkrom [OPTIONS] OUTPUT LENGTH [PATH:OFFSET ...]
//	mkrom [OPTIONS] -layout FILE.hcl [OUTPUT]
//
// LENGTH and OFFSET are decimal or 0x prefixed hexadecimal numbers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/knightos/romtools/mkrom/internal/layout"
	"github.com/knightos/romtools/mkrom/internal/rom"
	"github.com/knightos/romtools/mkrom/internal/util"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:])
	if err == errUsage {
		os.Exit(1)
	}
	util.FatalErr("mkrom", err)
}

func run(args []string) error {
	fs := flag.NewFlagSet("mkrom", flag.ContinueOnError)
	fs.SetOutput(util.Stderr)
	fs.Usage = func() {
		fmt.Fprint(
			util.Stderr,
			"Usage:\n"+
				"  mkrom [OPTIONS] OUTPUT LENGTH [PATH:OFFSET ...]\n"+
				"  mkrom [OPTIONS] -layout FILE.hcl [OUTPUT]\n"+
				"LENGTH and OFFSET are decimal or 0x prefixed hexadecimal numbers.\n"+
				"Options:\n",
		)
		fs.PrintDefaults()
	}
	modeName := fs.String(
		"mode", rom.Sequential.String(),
		"placement `mode`:\n"+
			"seq  - seek the input to OFFSET, append the rest at the current image position\n"+
			"addr - write the whole input at OFFSET in the image",
	)
	hexName := fs.String("hex", "", "also write the image in the Intel HEX format to `FILE`")
	hexBase := fs.String("hexbase", "0", "load `address` of the image in the Intel HEX file")
	layoutName := fs.String("layout", "", "read the image layout from the HCL `FILE`")
	verbose := fs.Bool("v", false, "print every step")
	progress := fs.Bool("progress", false, "show the progress bar")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}

	var (
		spec rom.Spec
		ps   []rom.Placement
		mode rom.Mode
		err  error
	)
	if *layoutName != "" {
		if fs.NArg() > 1 {
			fs.Usage()
			return errUsage
		}
		l, err := layout.Load(*layoutName)
		if err != nil {
			return err
		}
		spec, ps, mode = l.Spec, l.Placements, l.Mode
		if fs.NArg() == 1 {
			spec.Output = fs.Arg(0)
		}
		if spec.Output == "" {
			return &rom.ArgError{Arg: *layoutName, Err: errors.New("no output file")}
		}
		if l.ModeSet && isFlagSet(fs, "mode") && *modeName != mode.String() {
			util.Warn("mkrom: -mode %s overrides mode %s from %s", *modeName, mode, *layoutName)
		}
		if !l.ModeSet || isFlagSet(fs, "mode") {
			if mode, err = rom.ParseMode(*modeName); err != nil {
				return err
			}
		}
	} else {
		if fs.NArg() < 2 {
			fs.Usage()
			return errUsage
		}
		if spec, ps, err = rom.ParseArgs(fs.Args()); err != nil {
			return err
		}
		if mode, err = rom.ParseMode(*modeName); err != nil {
			return err
		}
	}
	var base uint64
	if *hexName != "" {
		if base, err = rom.ParseNum(*hexBase); err != nil {
			return err
		}
		if base > 0xffffffff {
			return &rom.ArgError{Arg: *hexBase, Err: errors.New("address doesn't fit in 32 bits")}
		}
	}

	b := &rom.Builder{Mode: mode}
	if *verbose {
		b.Logf = util.Warn
	}
	if *progress {
		b.Progress = func(cur, max int) {
			util.Progress("placing ", cur, max, 1, "files")
		}
	}
	if err = b.Build(spec, ps); err != nil {
		return err
	}
	if *hexName != "" {
		if err = rom.DumpHex(spec.Output, *hexName, uint32(base)); err != nil {
			return err
		}
		if *verbose {
			util.Warn("wrote %s at %#x", *hexName, base)
		}
	}
	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
