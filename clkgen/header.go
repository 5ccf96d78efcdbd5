// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/embeddedgo/silabs/cmu"
)

const toolName = "clkgen"

func guard(dev string) string {
	return "ZEPHYR_INCLUDE_DT_BINDINGS_CLOCK_SILABS_" + strings.ToUpper(dev) + "_CLOCK_H_"
}

// writeHeader writes the DeviceTree clock binding header of the dev device.
func writeHeader(w io.Writer, dev string, nodes []*cmu.Node) error {
	g := guard(dev)
	hdr := []string{
		"/*",
		" * Copyright (c) 2024 Silicon Laboratories Inc.",
		" *",
		" * SPDX-License-Identifier: Apache-2.0",
		" *",
		" * This file was generated by the " + toolName + " tool in the hal_silabs module.",
		" * Do not manually edit.",
		" */",
		"",
		"#ifndef " + g,
		"#define " + g,
		"",
		"#include <zephyr/dt-bindings/dt-util.h>",
		"#include \"common-clock.h\"",
		"",
		"/*",
		" * DT macros for clock tree nodes.",
		" * Defined as:",
		" *  0..5 - Bit within CLKEN register",
		" *  6..8 - CLKEN register number",
		" * Must stay in sync with equivalent SL_BUS_*_VALUE constants in the Silicon Labs HAL to be",
		" * interpreted correctly by the clock control driver.",
		" */",
	}
	var sb strings.Builder
	for _, s := range hdr {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	for _, n := range nodes {
		sb.WriteString(n.Define())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "\n#endif /* %s */\n", g)
	_, err := io.WriteString(w, sb.String())
	return err
}
