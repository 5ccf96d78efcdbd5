// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmu

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// Node is a clock tree node that can be enabled by a bit in one of the
// CLKEN registers.
type Node struct {
	Name string
	Reg  uint
	Bit  string // decimal, as written in the CMU header
	auto bool
}

// Auto is the only node of devices that request their clocks automatically
// on demand and have no enable bits.
var Auto = &Node{Name: "CLOCK_AUTO", auto: true}

// Value returns the packed clock identifier of n.
func (n *Node) Value() uint32 {
	if n.auto {
		return 0xffffffff
	}
	bit, _ := strconv.ParseUint(n.Bit, 10, 64) // saturates on overflow
	return Pack(n.Reg, uint(bit))
}

const nameCol = 20

// Define returns the C preprocessor definition of n.
func (n *Node) Define() string {
	if n.auto {
		return "#define " + n.Name + " 0xFFFFFFFFUL"
	}
	pad := nameCol - len(n.Name)
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf(
		"#define %s%*s(FIELD_PREP(CLOCK_REG_MASK, %d) | FIELD_PREP(CLOCK_BIT_MASK, %s))",
		n.Name, pad, "", n.Reg, n.Bit,
	)
}

var nodeRE = regexp.MustCompile(`^.*uint32_t SL_BUS_(.*)_VALUE = \((\S+).*(_CMU\S+SHIFT)`)

// ScanNodes reads the device manager clock source from r and returns the
// clock nodes in the order they appear in it. The CLKEN bit numbers are
// taken from shifts. A node that refers to an unknown register or shift
// symbol is skipped and reported to warn, which may be nil.
func ScanNodes(r io.Reader, shifts Shifts, warn func(error)) ([]*Node, error) {
	var nodes []*Node
	sc := newScanner(r)
	for line := 1; sc.Scan(); line++ {
		m := nodeRE.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		name, regSym, shiftSym := m[1], m[2], m[3]
		reg, ok := RegIndex(regSym)
		if !ok {
			report(warn, &UnresolvedError{line, name, "register", regSym})
			continue
		}
		bit, ok := shifts[shiftSym]
		if !ok {
			report(warn, &UnresolvedError{line, name, "shift", shiftSym})
			continue
		}
		nodes = append(nodes, &Node{Name: name, Reg: uint(reg), Bit: bit})
	}
	return nodes, sc.Err()
}

func report(warn func(error), err error) {
	if warn != nil {
		warn(err)
	}
}
