// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package acdcontrol adjusts the backlight brightness of Apple Cinema
// and Studio Display monitors over USB HID feature reports.
package acdcontrol

import (
	"fmt"
	"io"

	"github.com/sstallion/go-hid"
)

// hidDevice is the part of the HID handle used by a Display.
type hidDevice interface {
	io.Closer
	GetFeatureReport([]byte) (int, error)
	SendFeatureReport([]byte) (int, error)
}

// DisplayInfo describes an attached supported display.
type DisplayInfo struct {
	Path    string
	Vendor  uint16
	Product uint16
	Model   string
	Serial  string
}

// Registry resolves attached HID devices against a set of supported
// monitor models. The zero Registry is not usable; use NewRegistry.
type Registry struct {
	devices map[devKey]device

	// enumerate and open are replaced in tests.
	enumerate func(vid, pid uint16, f hid.EnumFunc) error
	open      func(path string) (hidDevice, error)
}

// NewRegistry returns a Registry recognizing the builtin monitor models
// plus extra. An extra Device with the same vendor and product as a
// builtin replaces it.
func NewRegistry(extra ...Device) *Registry {
	r := &Registry{
		devices:   make(map[devKey]device, len(devices)+len(extra)),
		enumerate: hid.Enumerate,
		open: func(path string) (hidDevice, error) {
			return hid.OpenPath(path)
		},
	}
	for k, d := range devices {
		r.devices[k] = d
	}
	for _, d := range extra {
		r.devices[key(d.Vendor, PID(d.Product))] = device{
			vendor: d.Vendor, product: PID(d.Product),
			name: d.Name,

			brightness: []byte{reportBrightness},
			payloadLen: 2, brightnessOffset: 1,

			min: d.Min, max: d.Max,
		}
	}
	return r
}

// Lookup returns the descriptor for the given vendor and product IDs
// and whether the Registry recognizes them.
func (r *Registry) Lookup(vendor, product uint16) (Device, bool) {
	d, ok := r.devices[key(vendor, PID(product))]
	if !ok {
		return Device{}, false
	}
	return Device{
		Vendor:  d.vendor,
		Product: uint16(d.product),
		Name:    d.name,
		Min:     d.min,
		Max:     d.max,
	}, true
}

// Displays returns the attached displays recognized by the Registry in
// enumeration order.
func (r *Registry) Displays() ([]DisplayInfo, error) {
	var infos []DisplayInfo
	err := r.enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		d, ok := r.devices[key(info.VendorID, PID(info.ProductID))]
		if !ok {
			return nil
		}
		infos = append(infos, DisplayInfo{
			Path:    info.Path,
			Vendor:  info.VendorID,
			Product: info.ProductID,
			Model:   d.name,
			Serial:  info.SerialNbr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// Open opens the first attached supported display. If serial is not
// empty only displays with that serial number are considered. When a
// device exposes several HID interfaces the one reporting the USB
// monitor usage page is preferred. If several displays match, the first
// enumerated wins.
func (r *Registry) Open(serial string) (*Display, error) {
	var (
		found *hid.DeviceInfo
		desc  device
	)
	err := r.enumerate(hid.VendorIDAny, hid.ProductIDAny, func(info *hid.DeviceInfo) error {
		d, ok := r.devices[key(info.VendorID, PID(info.ProductID))]
		if !ok {
			return nil
		}
		if serial != "" && serial != info.SerialNbr {
			return nil
		}
		if found == nil {
			found, desc = info, d
		}
		if info.UsagePage == usagePageMonitor {
			found, desc = info, d
			return io.EOF
		}
		return nil
	})
	if err != nil && err != io.EOF {
		return nil, err
	}
	if found == nil {
		if serial != "" {
			return nil, fmt.Errorf("%w with serial %q", ErrNotFound, serial)
		}
		return nil, ErrNotFound
	}
	dev, err := r.open(found.Path)
	if err != nil {
		if isPermission(err) {
			return nil, fmt.Errorf("open %s: %w", found.Path, ErrPermission)
		}
		return nil, fmt.Errorf("open %s: %v", found.Path, err)
	}
	return &Display{
		desc: desc,
		dev:  dev,
		info: DisplayInfo{
			Path:    found.Path,
			Vendor:  found.VendorID,
			Product: found.ProductID,
			Model:   desc.name,
			Serial:  found.SerialNbr,
		},
		buf: make([]byte, desc.payloadLen),
	}, nil
}

// Open opens the first attached supported display using the builtin
// model table. See Registry.Open.
func Open(serial string) (*Display, error) {
	return NewRegistry().Open(serial)
}

// Displays returns the attached displays recognized by the builtin
// model table.
func Displays() ([]DisplayInfo, error) {
	return NewRegistry().Displays()
}

// Display is an open brightness control session with a monitor. A
// Display must not be used after Close.
type Display struct {
	desc device
	dev  hidDevice
	info DisplayInfo
	buf  []byte
}

// Brightness returns the current backlight level of the display.
func (d *Display) Brightness() (int, error) {
	buf := d.buf[:d.desc.payloadLen]
	zero(buf)
	copy(buf, d.desc.brightness)
	n, err := d.dev.GetFeatureReport(buf)
	if err != nil {
		return 0, err
	}
	if n <= d.desc.brightnessOffset {
		return 0, fmt.Errorf("short brightness report: %d bytes", n)
	}
	return int(buf[d.desc.brightnessOffset]), nil
}

// SetBrightness sets the backlight level of the display. The level must
// be within the range reported by Range; no transfer is made otherwise.
// The write is a single feature report, so a failed set leaves no
// partial state.
func (d *Display) SetBrightness(level int) error {
	if level < d.desc.min || d.desc.max < level {
		return RangeError{Level: level, Min: d.desc.min, Max: d.desc.max}
	}
	buf := d.buf[:d.desc.payloadLen]
	zero(buf)
	copy(buf, d.desc.brightness)
	buf[d.desc.brightnessOffset] = byte(level)
	_, err := d.dev.SendFeatureReport(buf)
	return err
}

// Range returns the valid brightness range of the display.
func (d *Display) Range() (min, max int) {
	return d.desc.min, d.desc.max
}

// Model returns the marketing name of the display model.
func (d *Display) Model() string {
	return d.desc.name
}

// Serial returns the serial number reported during enumeration.
func (d *Display) Serial() string {
	return d.info.Serial
}

// Path returns the platform HID path of the open display.
func (d *Display) Path() string {
	return d.info.Path
}

// Close closes the display.
func (d *Display) Close() error {
	return d.dev.Close()
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
