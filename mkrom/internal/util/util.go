// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Stderr is where all diagnostics go.
var Stderr io.Writer = os.Stderr

func Warn(f string, args ...any) {
	fmt.Fprintf(Stderr, f+"\n", args...)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	io.WriteString(Stderr, ErrLine(what, err))
	os.Exit(1)
}

// ErrLine formats err the way FatalErr prints it.
func ErrLine(what string, err error) string {
	s := err.Error() + "\n"
	if what != "" {
		s = what + ": " + s
	}
	return s
}

var pbuf = make([]byte, 80)

const (
	ptodo = "                         ] "
	pdone = " [========================="
)

// Progress draws a single line progress bar. Nothing is drawn if max <= 0.
func Progress(pre string, cur, max, scale int, post string) {
	if max <= 0 {
		return
	}
	pbuf = pbuf[:0]
	pbuf = append(pbuf, '\r')
	pbuf = append(pbuf, pre...)
	done := 25 * cur / max
	pbuf = append(pbuf, pdone[:2+done]...)
	pbuf = append(pbuf, ptodo[done:]...)
	pbuf = strconv.AppendInt(pbuf, int64(cur/scale), 10)
	pbuf = append(pbuf, ' ')
	pbuf = append(pbuf, post...)
	if cur == max {
		pbuf = append(pbuf, '\n')
	}
	Stderr.Write(pbuf)
}
