// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/embeddedgo/silabs/cmu"
	"github.com/marcinbor85/gohex"
)

func TestWriteHex(t *testing.T) {
	nodes := []*cmu.Node{
		{Name: "HFRCOEN", Reg: 0, Bit: "3"},
		{Name: "IADC0", Reg: 1, Bit: "17"},
		{Name: "ACMP0", Reg: 3, Bit: "5"},
		cmu.Auto,
	}
	var buf bytes.Buffer
	if err := writeHex(&buf, 0x1000, nodes); err != nil {
		t.Fatal(err)
	}
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(&buf); err != nil {
		t.Fatal(err)
	}
	segs := mem.GetDataSegments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Address != 0x1000 {
		t.Errorf("segment address %#x, want 0x1000", segs[0].Address)
	}
	data := segs[0].Data
	if len(data) != 4*len(nodes) {
		t.Fatalf("got %d bytes, want %d", len(data), 4*len(nodes))
	}
	for i, n := range nodes {
		v := binary.LittleEndian.Uint32(data[4*i:])
		if v != n.Value() {
			t.Errorf("%s: got %#x, want %#x", n.Name, v, n.Value())
		}
	}
	if v := binary.LittleEndian.Uint32(data[4:]); cmu.RegField(v) != 1 || cmu.BitField(v) != 17 {
		t.Errorf("IADC0 unpacks to (%d, %d)", cmu.RegField(v), cmu.BitField(v))
	}
}

func TestWriteHexEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeHex(&buf, 0, nil); err != nil {
		t.Fatal(err)
	}
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(&buf); err != nil {
		t.Fatal(err)
	}
	if n := len(mem.GetDataSegments()); n != 0 {
		t.Errorf("got %d segments, want 0", n)
	}
}
