// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Walks all attached HID devices, marking the ones recognized as
// supported displays with an asterisk. Useful for identifying panels
// missing from the model table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sstallion/go-hid"

	"github.com/acdtools/acdcontrol"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	vendor := flag.Uint("vendor", 0, "restrict to this vendor ID (0 for any)")
	flag.Parse()

	reg := acdcontrol.NewRegistry()
	err := hid.Enumerate(uint16(*vendor), hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		mark := " "
		if _, ok := reg.Lookup(info.VendorID, info.ProductID); ok {
			mark = "*"
		}
		fmt.Printf("%s %04x:%04x usage=%04x:%04x %q %q serial=%q %s\n",
			mark, info.VendorID, info.ProductID, info.UsagePage, info.Usage,
			info.MfrStr, info.ProductStr, info.SerialNbr, info.Path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enumerate devices: %v\n", err)
		return 1
	}
	return 0
}
