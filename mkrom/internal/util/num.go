// Copyright 2026 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"strconv"
	"strings"
)

// ParseNum parses a decimal number or a hexadecimal one prefixed with 0x or
// 0X. Unlike strconv.ParseUint with base 0, a leading zero does not select
// octal and underscores are not accepted.
func ParseNum(s string) (uint64, error) {
	if h, ok := strings.CutPrefix(s, "0x"); ok {
		return parseDigits(s, h, 16)
	}
	if h, ok := strings.CutPrefix(s, "0X"); ok {
		return parseDigits(s, h, 16)
	}
	return parseDigits(s, s, 10)
}

func parseDigits(orig, digits string, base int) (uint64, error) {
	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		ne := err.(*strconv.NumError)
		return 0, &strconv.NumError{Func: "ParseNum", Num: orig, Err: ne.Err}
	}
	return u, nil
}
