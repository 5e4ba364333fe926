// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import (
	"fmt"
	"io"
	"os"

	"github.com/marcinbor85/gohex"
)

// WriteHex writes data as Intel HEX with 16 byte data records. The first
// byte of data is placed at base.
func WriteHex(w io.Writer, data []byte, base uint32) error {
	if uint64(base)+uint64(len(data)) > 1<<32 {
		return fmt.Errorf("hex: image at %#x (%d bytes) doesn't fit in 32-bit address space", base, len(data))
	}
	mem := gohex.NewMemory()
	if len(data) != 0 {
		if err := mem.AddBinary(base, data); err != nil {
			return err
		}
	}
	return mem.DumpIntelHex(w, 16)
}

// DumpHex converts the binary image in the file bin to Intel HEX and
// writes it to the file hex.
func DumpHex(bin, hex string, base uint32) (err error) {
	data, err := os.ReadFile(bin)
	if err != nil {
		return &IOError{"read", bin, err}
	}
	w, err := os.Create(hex)
	if err != nil {
		return &IOError{"create", hex, err}
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = &IOError{"close", hex, cerr}
		}
	}()
	if err = WriteHex(w, data, base); err != nil {
		return &IOError{"write", hex, err}
	}
	return nil
}
