// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmu extracts the clock enable bits of the Series 2 Clock
// Management Unit from the Simplicity SDK sources.
//
// Two inputs are recognized: the device CMU header, which provides
// the _CMU_CLKENx_*_SHIFT constants, and the device manager clock source,
// which assigns SL_BUS_*_VALUE constants built from a BUS_CLOCK_CLKENx
// register symbol and one of the shift constants. Anything else in these
// files is ignored.
package cmu

import "fmt"

// Layout of a packed clock identifier. It must stay in sync with the
// SL_BUS_*_VALUE constants of the HAL and with CLOCK_BIT_MASK and
// CLOCK_REG_MASK defined in common-clock.h.
const (
	BitMask = 0x3f << BitPos // GENMASK(5, 0)
	BitPos  = 0
	RegMask = 0x07 << RegPos // GENMASK(8, 6)
	RegPos  = 6
)

var regs = map[string]int{
	"BUS_CLOCK_CLKEN0":  0,
	"BUS_CLOCK_CLKEN1":  1,
	"BUS_CLOCK_CLKEN2":  2,
	"BUS_CLOCK_CLKENHV": 3,
}

// RegIndex returns the number of the CLKEN register denoted by the sym
// symbol.
func RegIndex(sym string) (int, bool) {
	n, ok := regs[sym]
	return n, ok
}

// Pack returns the packed clock identifier the same way FIELD_PREP does it.
// Bits that do not fit into their fields are discarded.
func Pack(reg, bit uint) uint32 {
	return uint32(reg<<RegPos&RegMask | bit<<BitPos&BitMask)
}

// RegField extracts the register number from the packed clock identifier.
func RegField(v uint32) uint {
	return uint(v&RegMask) >> RegPos
}

// BitField extracts the bit number from the packed clock identifier.
func BitField(v uint32) uint {
	return uint(v&BitMask) >> BitPos
}

// UnresolvedError describes a clock node that refers to an unknown symbol.
type UnresolvedError struct {
	Line int    // line number in the nodes source
	Node string // clock name
	Kind string // "register" or "shift"
	Sym  string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf(
		"line %d: %s: unknown %s symbol %s", e.Line, e.Node, e.Kind, e.Sym,
	)
}
