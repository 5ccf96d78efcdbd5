// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Clkgen generates the DeviceTree clock control bindings for the Silicon Labs
// Series 2 devices. Every clock enable bit is represented by a macro that
// packs the CLKEN register number and the bit number into one integer.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/embeddedgo/silabs/clkgen/internal/util"
	"github.com/embeddedgo/silabs/cmu"
)

type ctx struct {
	sdk     string
	out     string
	hex     bool
	hexAddr uint32
	warn    func(error)
}

func readShifts(path string) (cmu.Shifts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cmu.ScanShifts(f)
}

func readNodes(path string, shifts cmu.Shifts, warn func(error)) ([]*cmu.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cmu.ScanNodes(f, shifts, warn)
}

// generate writes the clock binding header of d to the output directory.
// Nothing is written if any of the d's source files cannot be read.
func (ctx *ctx) generate(d *Device) error {
	shifts, err := readShifts(filepath.Join(ctx.sdk, d.Bits))
	if err != nil {
		return err
	}
	// Devices without the nodes file request their clocks automatically.
	nodes := []*cmu.Node{cmu.Auto}
	if d.Nodes != "" {
		nodes, err = readNodes(filepath.Join(ctx.sdk, d.Nodes), shifts, ctx.warn)
		if err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := writeHeader(&buf, d.Name, nodes); err != nil {
		return err
	}
	if err := os.MkdirAll(ctx.out, 0755); err != nil {
		return err
	}
	name := filepath.Join(ctx.out, d.Name+"-clock.h")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return err
	}
	if !ctx.hex {
		return nil
	}
	buf.Reset()
	if err := writeHex(&buf, ctx.hexAddr, nodes); err != nil {
		return err
	}
	name = filepath.Join(ctx.out, d.Name+"-clock.hex")
	return os.WriteFile(name, buf.Bytes(), 0644)
}

type options struct {
	out     string
	sdk     string
	devs    string
	hexAddr string
}

func newFlagSet(o *options, exeDir string) *flag.FlagSet {
	fs := flag.NewFlagSet("clkgen", flag.ExitOnError)
	fs.StringVar(
		&o.out, "o", filepath.Join(exeDir, "out"),
		"output directory, use $ZEPHYR_BASE/include/zephyr/dt-bindings/clock/silabs\n"+
			"to generate directly into the Zephyr tree",
	)
	fs.StringVar(
		&o.sdk, "s", filepath.Join(exeDir, "..", "simplicity_sdk"),
		"path to the Simplicity SDK to extract the clock data from",
	)
	fs.StringVar(&o.devs, "d", "", "comma separated list of devices (default all)")
	fs.StringVar(
		&o.hexAddr, "hex", "",
		"also write the packed clock identifiers as an Intel HEX image at `ADDR`",
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage:\n  clkgen [OPTIONS]\nOptions:")
		fs.PrintDefaults()
	}
	return fs
}

func main() {
	var o options
	fs := newFlagSet(&o, util.ExeDir())
	fs.Parse(os.Args[1:])
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}

	ctx := &ctx{
		sdk: o.sdk,
		out: o.out,
		warn: func(err error) {
			util.Warn("WARN: failed to emit clock node: %v", err)
		},
	}
	if o.hexAddr != "" {
		addr, err := strconv.ParseUint(o.hexAddr, 0, 32)
		util.FatalErr("-hex", err)
		ctx.hex = true
		ctx.hexAddr = uint32(addr)
	}
	sel, err := selectDevices(o.devs)
	util.FatalErr("", err)
	for _, d := range sel {
		fmt.Println("Generate clock control binding for", d.Name)
		util.FatalErr(d.Name, ctx.generate(d))
	}
}
