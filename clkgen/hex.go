// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"io"

	"github.com/embeddedgo/silabs/cmu"
	"github.com/marcinbor85/gohex"
)

// writeHex writes the packed identifiers of nodes as an array of 32-bit
// little-endian words placed at addr, in the Intel HEX format.
func writeHex(w io.Writer, addr uint32, nodes []*cmu.Node) error {
	data := make([]byte, 0, 4*len(nodes))
	for _, n := range nodes {
		data = binary.LittleEndian.AppendUint32(data, n.Value())
	}
	mem := gohex.NewMemory()
	if len(data) != 0 {
		if err := mem.AddBinary(addr, data); err != nil {
			return err
		}
	}
	return mem.DumpIntelHex(w, 16)
}
