// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmu

import (
	"bufio"
	"io"
	"math"
	"regexp"
)

// Shifts maps the names of the _CMU_CLKENx_*_SHIFT constants (including the
// _SHIFT suffix) to their decimal values as written in the header.
type Shifts map[string]string

var shiftRE = regexp.MustCompile(`^#define (_CMU_CLKEN.*_SHIFT)\s+(\d+)`)

// ScanShifts reads the CMU header from r and collects all CLKEN shift
// constants. Lines that do not define such constant are skipped. If a
// constant is defined more than once the last definition wins.
func ScanShifts(r io.Reader) (Shifts, error) {
	shifts := make(Shifts)
	sc := newScanner(r)
	for sc.Scan() {
		m := shiftRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		shifts[m[1]] = m[2]
	}
	return shifts, sc.Err()
}

// newScanner returns a line scanner without the default line length limit.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return sc
}
