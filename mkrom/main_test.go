// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcinbor85/gohex"
	"github.com/stretchr/testify/require"

	"github.com/knightos/romtools/mkrom/internal/rom"
	"github.com/knightos/romtools/mkrom/internal/util"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := util.Stderr
	util.Stderr = &buf
	t.Cleanup(func() { util.Stderr = old })
	return &buf
}

func setup(t *testing.T) (dir, a string) {
	t.Helper()
	dir = t.TempDir()
	a = filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(a, []byte{1, 2, 3, 4}, 0o644))
	return dir, a
}

func ff(n int) []byte {
	return bytes.Repeat([]byte{0xff}, n)
}

func TestRunSequentialDefault(t *testing.T) {
	captureStderr(t)
	dir, a := setup(t)
	img := filepath.Join(dir, "img.bin")
	require.NoError(t, run([]string{img, "0x10", a + ":0x4"}))
	data, err := os.ReadFile(img)
	require.NoError(t, err)
	require.Equal(t, ff(16), data)
}

func TestRunAddressed(t *testing.T) {
	captureStderr(t)
	dir, a := setup(t)
	img := filepath.Join(dir, "img.bin")
	require.NoError(t, run([]string{"-mode", "addr", img, "0x10", a + ":0x4"}))
	data, err := os.ReadFile(img)
	require.NoError(t, err)
	want := ff(16)
	copy(want[4:], []byte{1, 2, 3, 4})
	require.Equal(t, want, data)
}

func TestRunUsage(t *testing.T) {
	stderr := captureStderr(t)
	require.Equal(t, errUsage, run(nil))
	require.Contains(t, stderr.String(), "Usage:")

	require.Equal(t, errUsage, run([]string{"img.bin"}))
	require.Equal(t, errUsage, run([]string{"-nosuchflag"}))
	require.NoError(t, run([]string{"-h"}))
}

func TestRunArgErrorCreatesNothing(t *testing.T) {
	captureStderr(t)
	dir, a := setup(t)
	img := filepath.Join(dir, "img.bin")
	for _, args := range [][]string{
		{img, "1G"},
		{img, "16", a},
		{img, "16", "foo:bar:10"},
		{"-mode", "zigzag", img, "16"},
		{"-hex", filepath.Join(dir, "img.hex"), "-hexbase", "0x100000000", img, "16"},
	} {
		err := run(args)
		var ae *rom.ArgError
		require.True(t, errors.As(err, &ae), "%v: %v", args, err)
		_, err = os.Stat(img)
		require.ErrorIs(t, err, fs.ErrNotExist, "%v", args)
	}
}

func TestRunMissingInput(t *testing.T) {
	captureStderr(t)
	dir, _ := setup(t)
	img := filepath.Join(dir, "img.bin")
	missing := filepath.Join(dir, "missing.bin")
	err := run([]string{img, "8", missing + ":0"})
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, util.ErrLine("mkrom", err), missing)

	data, err := os.ReadFile(img)
	require.NoError(t, err)
	require.Equal(t, ff(8), data)
}

func TestRunHex(t *testing.T) {
	captureStderr(t)
	dir, a := setup(t)
	img := filepath.Join(dir, "img.bin")
	hex := filepath.Join(dir, "img.hex")
	require.NoError(t, run([]string{"-mode=addr", "-hex", hex, "-hexbase", "0x4000", img, "8", a + ":2"}))

	f, err := os.Open(hex)
	require.NoError(t, err)
	defer f.Close()
	mem := gohex.NewMemory()
	require.NoError(t, mem.ParseIntelHex(f))
	segs := mem.GetDataSegments()
	require.Len(t, segs, 1)
	require.EqualValues(t, 0x4000, segs[0].Address)
	require.Equal(t, []byte{0xff, 0xff, 1, 2, 3, 4, 0xff, 0xff}, segs[0].Data)
}

func TestRunLayout(t *testing.T) {
	captureStderr(t)
	dir, a := setup(t)
	img := filepath.Join(dir, "img.bin")
	layout := filepath.Join(dir, "rom.hcl")
	src := "output = \"" + filepath.ToSlash(img) + "\"\n" +
		"length = \"0x8\"\n" +
		"mode = \"addr\"\n" +
		"place \"" + filepath.ToSlash(a) + "\" {\n  offset = \"0x4\"\n}\n"
	require.NoError(t, os.WriteFile(layout, []byte(src), 0o644))

	require.NoError(t, run([]string{"-layout", layout}))
	data, err := os.ReadFile(img)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 1, 2, 3, 4}, data)

	// Output argument and -mode flag override the layout.
	other := filepath.Join(dir, "other.bin")
	stderr := captureStderr(t)
	require.NoError(t, run([]string{"-mode", "seq", "-layout", layout, other}))
	data, err = os.ReadFile(other)
	require.NoError(t, err)
	require.Equal(t, ff(8), data)
	require.Contains(t, stderr.String(), "overrides mode addr")
}

func TestRunLayoutWithoutOutput(t *testing.T) {
	captureStderr(t)
	dir, _ := setup(t)
	layout := filepath.Join(dir, "rom.hcl")
	require.NoError(t, os.WriteFile(layout, []byte(`length = "8"`), 0o644))
	err := run([]string{"-layout", layout})
	var ae *rom.ArgError
	require.True(t, errors.As(err, &ae))
	require.Equal(t, errUsage, run([]string{"-layout", layout, "a", "b"}))
}

func TestRunVerbose(t *testing.T) {
	stderr := captureStderr(t)
	dir, a := setup(t)
	img := filepath.Join(dir, "img.bin")
	require.NoError(t, run([]string{"-v", "-progress", img, "8", a + ":0"}))
	out := stderr.String()
	require.Contains(t, out, "created "+img)
	require.Contains(t, out, "padded "+img)
	require.True(t, strings.HasSuffix(out, "files\n"), out)
}
