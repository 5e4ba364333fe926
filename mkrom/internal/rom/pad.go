// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rom

import "io"

// PadByte is the value of every image byte not covered by a placement.
const PadByte = 0xff

const maxPadChunk = 64 * 1024

// PadBytes returns the slice containing n bytes equal b.
func PadBytes(cache *[]byte, n int, b byte) []byte {
	if len(*cache) < n || (n > 0 && (*cache)[0] != b) {
		*cache = make([]byte, n)
		for i := range *cache {
			(*cache)[i] = b
		}
	}
	return (*cache)[:n]
}

// WritePad writes n pad bytes to w in bounded chunks.
func WritePad(w io.Writer, n uint64, b byte) (written uint64, err error) {
	var cache []byte
	for n != 0 {
		m := maxPadChunk
		if n < uint64(m) {
			m = int(n)
		}
		k, err := w.Write(PadBytes(&cache, m, b))
		written += uint64(k)
		if err != nil {
			return written, err
		}
		n -= uint64(k)
	}
	return written, nil
}
