// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acdcontrol

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/sstallion/go-hid"
)

// fakeDev is an in-memory brightness register behind the hidDevice
// interface.
type fakeDev struct {
	register byte

	sent   [][]byte
	gets   int
	closed int

	failGet  error
	failSend error
	shortGet bool
}

func (d *fakeDev) GetFeatureReport(b []byte) (int, error) {
	d.gets++
	if d.failGet != nil {
		return 0, d.failGet
	}
	if d.shortGet {
		return 1, nil
	}
	if len(b) < 2 || b[0] != reportBrightness {
		return 0, errors.New("unexpected report")
	}
	b[1] = d.register
	return len(b), nil
}

func (d *fakeDev) SendFeatureReport(b []byte) (int, error) {
	if d.failSend != nil {
		return 0, d.failSend
	}
	d.sent = append(d.sent, append([]byte(nil), b...))
	if len(b) >= 2 && b[0] == reportBrightness {
		d.register = b[1]
	}
	return len(b), nil
}

func (d *fakeDev) Close() error {
	d.closed++
	return nil
}

// testRegistry returns a Registry whose enumeration sees infos and
// whose open hands out dev, recording the opened path in *opened.
func testRegistry(infos []*hid.DeviceInfo, dev *fakeDev, opened *[]string, extra ...Device) *Registry {
	r := NewRegistry(extra...)
	r.enumerate = func(vid, pid uint16, f hid.EnumFunc) error {
		for _, info := range infos {
			if err := f(info); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
		return nil
	}
	r.open = func(path string) (hidDevice, error) {
		if opened != nil {
			*opened = append(*opened, path)
		}
		return dev, nil
	}
	return r
}

func cinema23(path, serial string, usagePage uint16) *hid.DeviceInfo {
	return &hid.DeviceInfo{
		Path:      path,
		VendorID:  vidApple,
		ProductID: uint16(CinemaDisplay23),
		SerialNbr: serial,
		UsagePage: usagePage,
	}
}

func TestOpenNotFound(t *testing.T) {
	c := qt.New(t)
	var opened []string
	r := testRegistry(nil, &fakeDev{}, &opened)
	d, err := r.Open("")
	c.Assert(err, qt.ErrorIs, ErrNotFound)
	c.Assert(d, qt.IsNil)
	c.Assert(opened, qt.HasLen, 0)
}

func TestOpenUnsupportedOnly(t *testing.T) {
	c := qt.New(t)
	infos := []*hid.DeviceInfo{{
		Path:      "/dev/hidraw9",
		VendorID:  0x1234,
		ProductID: 0x5678,
		UsagePage: usagePageMonitor,
	}}
	var opened []string
	r := testRegistry(infos, &fakeDev{}, &opened)
	_, err := r.Open("")
	c.Assert(err, qt.ErrorIs, ErrNotFound)
	c.Assert(opened, qt.HasLen, 0)
}

func TestOpenPrefersMonitorUsagePage(t *testing.T) {
	c := qt.New(t)
	infos := []*hid.DeviceInfo{
		cinema23("/dev/hidraw0", "CY123", 0x01),
		cinema23("/dev/hidraw1", "CY123", usagePageMonitor),
	}
	var opened []string
	r := testRegistry(infos, &fakeDev{}, &opened)
	d, err := r.Open("")
	c.Assert(err, qt.IsNil)
	defer d.Close()
	c.Assert(opened, qt.DeepEquals, []string{"/dev/hidraw1"})
	c.Assert(d.Model(), qt.Equals, `Apple Cinema Display 23"`)
}

func TestOpenFirstWithoutMonitorPage(t *testing.T) {
	c := qt.New(t)
	infos := []*hid.DeviceInfo{
		cinema23("/dev/hidraw0", "A", 0),
		cinema23("/dev/hidraw1", "B", 0),
	}
	var opened []string
	r := testRegistry(infos, &fakeDev{}, &opened)
	d, err := r.Open("")
	c.Assert(err, qt.IsNil)
	defer d.Close()
	c.Assert(opened, qt.DeepEquals, []string{"/dev/hidraw0"})
}

func TestOpenSerialFilter(t *testing.T) {
	c := qt.New(t)
	infos := []*hid.DeviceInfo{
		cinema23("/dev/hidraw0", "A", usagePageMonitor),
		cinema23("/dev/hidraw1", "B", usagePageMonitor),
	}
	var opened []string
	r := testRegistry(infos, &fakeDev{}, &opened)
	d, err := r.Open("B")
	c.Assert(err, qt.IsNil)
	defer d.Close()
	c.Assert(opened, qt.DeepEquals, []string{"/dev/hidraw1"})
	c.Assert(d.Serial(), qt.Equals, "B")

	_, err = r.Open("C")
	c.Assert(err, qt.ErrorIs, ErrNotFound)
	c.Assert(err, qt.ErrorMatches, `no supported display found with serial "C"`)
}

func TestOpenPermission(t *testing.T) {
	c := qt.New(t)
	r := testRegistry([]*hid.DeviceInfo{cinema23("/dev/hidraw0", "A", usagePageMonitor)}, nil, nil)
	r.open = func(path string) (hidDevice, error) {
		return nil, fs.ErrPermission
	}
	_, err := r.Open("")
	c.Assert(err, qt.ErrorIs, ErrPermission)
}

func openTestDisplay(c *qt.C, dev *fakeDev) *Display {
	r := testRegistry([]*hid.DeviceInfo{cinema23("/dev/hidraw0", "CY123", usagePageMonitor)}, dev, nil)
	d, err := r.Open("")
	c.Assert(err, qt.IsNil)
	return d
}

func TestBrightnessRoundTrip(t *testing.T) {
	c := qt.New(t)
	dev := &fakeDev{}
	d := openTestDisplay(c, dev)
	defer d.Close()

	for _, level := range []int{0, 1, 128, 254, 255} {
		err := d.SetBrightness(level)
		c.Assert(err, qt.IsNil)
		got, err := d.Brightness()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, level)
	}
}

func TestSetBrightnessReport(t *testing.T) {
	c := qt.New(t)
	dev := &fakeDev{}
	d := openTestDisplay(c, dev)
	defer d.Close()

	err := d.SetBrightness(128)
	c.Assert(err, qt.IsNil)
	c.Assert(dev.sent, qt.DeepEquals, [][]byte{{reportBrightness, 128}})
}

func TestSetBrightnessRange(t *testing.T) {
	c := qt.New(t)
	dev := &fakeDev{}
	d := openTestDisplay(c, dev)
	defer d.Close()

	for _, level := range []int{-1, 256, 300} {
		err := d.SetBrightness(level)
		var rangeErr RangeError
		c.Assert(errors.As(err, &rangeErr), qt.IsTrue)
		c.Assert(rangeErr.Level, qt.Equals, level)
		c.Assert(err, qt.ErrorMatches, `brightness out of range: -?\d+ not in \[0, 255\]`)
	}
	c.Assert(dev.sent, qt.HasLen, 0)
}

func TestBrightnessShortReport(t *testing.T) {
	c := qt.New(t)
	dev := &fakeDev{shortGet: true}
	d := openTestDisplay(c, dev)
	defer d.Close()

	_, err := d.Brightness()
	c.Assert(err, qt.ErrorMatches, `short brightness report: 1 bytes`)
}

func TestBrightnessTransportError(t *testing.T) {
	c := qt.New(t)
	fail := errors.New("transfer failed")
	dev := &fakeDev{failGet: fail, failSend: fail}
	d := openTestDisplay(c, dev)
	defer d.Close()

	_, err := d.Brightness()
	c.Assert(err, qt.ErrorIs, fail)
	err = d.SetBrightness(10)
	c.Assert(err, qt.ErrorIs, fail)
}

func TestCloseOnce(t *testing.T) {
	c := qt.New(t)
	dev := &fakeDev{}
	d := openTestDisplay(c, dev)
	err := d.SetBrightness(42)
	c.Assert(err, qt.IsNil)
	err = d.Close()
	c.Assert(err, qt.IsNil)
	c.Assert(dev.closed, qt.Equals, 1)
}

func TestDisplays(t *testing.T) {
	c := qt.New(t)
	infos := []*hid.DeviceInfo{
		cinema23("/dev/hidraw0", "A", usagePageMonitor),
		{Path: "/dev/hidraw1", VendorID: 0x1234, ProductID: 0x5678},
		{
			Path:      "/dev/hidraw2",
			VendorID:  vidSamsung,
			ProductID: uint16(SyncMaster757NF),
			SerialNbr: "SM1",
		},
	}
	r := testRegistry(infos, &fakeDev{}, nil)
	got, err := r.Displays()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.DeepEquals, []DisplayInfo{{
		Path:    "/dev/hidraw0",
		Vendor:  vidApple,
		Product: uint16(CinemaDisplay23),
		Model:   `Apple Cinema Display 23"`,
		Serial:  "A",
	}, {
		Path:    "/dev/hidraw2",
		Vendor:  vidSamsung,
		Product: uint16(SyncMaster757NF),
		Model:   "Samsung SyncMaster 757NF",
		Serial:  "SM1",
	}})
}

func TestLookup(t *testing.T) {
	c := qt.New(t)
	extra := Device{Vendor: 0x0419, Product: 0x8003, Name: "Samsung SyncMaster 997DF", Min: 0, Max: 255}
	r := NewRegistry(extra)

	d, ok := r.Lookup(vidApple, uint16(LEDCinema24))
	c.Assert(ok, qt.IsTrue)
	c.Assert(d.Name, qt.Equals, `Apple LED Cinema Display 24"`)
	c.Assert(d.Max, qt.Equals, 255)

	d, ok = r.Lookup(0x0419, 0x8003)
	c.Assert(ok, qt.IsTrue)
	c.Assert(d, qt.DeepEquals, extra)

	_, ok = r.Lookup(0xdead, 0xbeef)
	c.Assert(ok, qt.IsFalse)
}

func TestRegistryExtensionOverride(t *testing.T) {
	c := qt.New(t)
	r := NewRegistry(Device{
		Vendor:  vidApple,
		Product: uint16(CinemaDisplay23),
		Name:    "bench unit",
		Min:     10,
		Max:     200,
	})
	d, ok := r.Lookup(vidApple, uint16(CinemaDisplay23))
	c.Assert(ok, qt.IsTrue)
	c.Assert(d.Name, qt.Equals, "bench unit")

	dev := &fakeDev{}
	r.enumerate = testRegistry([]*hid.DeviceInfo{cinema23("/dev/hidraw0", "A", usagePageMonitor)}, dev, nil).enumerate
	r.open = func(path string) (hidDevice, error) { return dev, nil }
	disp, err := r.Open("")
	c.Assert(err, qt.IsNil)
	defer disp.Close()
	min, max := disp.Range()
	c.Assert(min, qt.Equals, 10)
	c.Assert(max, qt.Equals, 200)
	err = disp.SetBrightness(201)
	c.Assert(err, qt.ErrorMatches, `brightness out of range: 201 not in \[10, 200\]`)
}

func TestPIDString(t *testing.T) {
	c := qt.New(t)
	c.Assert(CinemaDisplay23.String(), qt.Equals, "CinemaDisplay23")
	c.Assert(SyncMaster757NF.String(), qt.Equals, "SyncMaster757NF")
	c.Assert(PID(0x0001).String(), qt.Equals, "PID(1)")
}
