// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
)

// Device describes where the clock data of a device family lives in the
// Simplicity SDK. Nodes is empty for devices without clock enable bits.
type Device struct {
	Name  string
	Bits  string
	Nodes string
}

const clocksDir = "platform/service/device_manager/clocks/"

var devices = []*Device{
	{
		Name: "xg21",
		Bits: "platform/Device/SiliconLabs/EFR32MG21/Include/efr32mg21_cmu.h",
	},
	{
		Name:  "xg22",
		Bits:  "platform/Device/SiliconLabs/EFR32BG22/Include/efr32bg22_cmu.h",
		Nodes: clocksDir + "sl_device_clock_efr32xg22.c",
	},
	{
		Name:  "xg23",
		Bits:  "platform/Device/SiliconLabs/EFR32FG23/Include/efr32fg23_cmu.h",
		Nodes: clocksDir + "sl_device_clock_efr32xg23.c",
	},
	{
		Name:  "xg24",
		Bits:  "platform/Device/SiliconLabs/EFR32MG24/Include/efr32mg24_cmu.h",
		Nodes: clocksDir + "sl_device_clock_efr32xg24.c",
	},
	{
		Name:  "bgm24",
		Bits:  "platform/Device/SiliconLabs/BGM24/Include/bgm24_cmu.h",
		Nodes: clocksDir + "sl_device_clock_efr32xg24.c",
	},
	{
		Name:  "xg27",
		Bits:  "platform/Device/SiliconLabs/EFR32BG27/Include/efr32bg27_cmu.h",
		Nodes: clocksDir + "sl_device_clock_efr32xg27.c",
	},
	{
		Name:  "xg29",
		Bits:  "platform/Device/SiliconLabs/EFR32BG29/Include/efr32bg29_cmu.h",
		Nodes: clocksDir + "sl_device_clock_efr32xg29.c",
	},
}

// selectDevices returns the devices named in the comma separated list in
// the table order. An empty list selects all devices.
func selectDevices(list string) ([]*Device, error) {
	if list == "" {
		return devices, nil
	}
	known := make(map[string]bool, len(devices))
	for _, d := range devices {
		known[d.Name] = true
	}
	want := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !known[name] {
			return nil, fmt.Errorf("unknown device: %s", name)
		}
		want[name] = true
	}
	var sel []*Device
	for _, d := range devices {
		if want[d.Name] {
			sel = append(sel, d)
		}
	}
	return sel, nil
}
