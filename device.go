// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acdcontrol

// Vendor IDs of the supported monitor families.
const (
	vidApple   = 0x05ac
	vidSamsung = 0x0419
)

// usagePageMonitor is the USB monitor usage page. Supported displays
// expose their brightness control on an interface with this page.
const usagePageMonitor = 0x80

// reportBrightness is the feature report ID of the brightness register.
const reportBrightness = 0x10

// PID is a supported monitor HID product ID.
//
//go:generate stringer -type PID
type PID uint16

const (
	StudioDisplay15 PID = 0x9215
	StudioDisplay17 PID = 0x9217
	CinemaDisplay23 PID = 0x9218
	CinemaDisplay20 PID = 0x9219
	CinemaDisplay24 PID = 0x921e
	CinemaDisplay30 PID = 0x9221
	CinemaHD27      PID = 0x9226
	CinemaHD27_2013 PID = 0x9227
	CinemaHD30      PID = 0x9232
	LEDCinema24     PID = 0x9236
	SyncMaster757NF PID = 0x8002
)

// Device describes a monitor model recognized by a Registry. It is the
// exported form of the builtin descriptor table, used to extend a
// Registry with models that are not listed there. Extension devices use
// the standard brightness feature report.
type Device struct {
	Vendor  uint16
	Product uint16
	Name    string
	Min     int
	Max     int
}

// device is a supported monitor description.
type device struct {
	vendor  uint16
	product PID

	name string

	// brightness feature report
	brightness       []byte
	payloadLen       int
	brightnessOffset int

	min, max int
}

type devKey uint32

func key(vendor uint16, product PID) devKey {
	return devKey(vendor)<<16 | devKey(product)
}

var devices = map[devKey]device{
	key(vidApple, StudioDisplay15): {
		vendor: vidApple, product: StudioDisplay15,
		name: `Apple Studio Display 15"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, StudioDisplay17): {
		vendor: vidApple, product: StudioDisplay17,
		name: `Apple Studio Display 17"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaDisplay23): {
		vendor: vidApple, product: CinemaDisplay23,
		name: `Apple Cinema Display 23"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaDisplay20): {
		vendor: vidApple, product: CinemaDisplay20,
		name: `Apple Cinema Display 20"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaDisplay24): {
		vendor: vidApple, product: CinemaDisplay24,
		name: `Apple Cinema Display 24"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaDisplay30): {
		vendor: vidApple, product: CinemaDisplay30,
		name: `Apple Cinema Display 30"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaHD27): {
		vendor: vidApple, product: CinemaHD27,
		name: `Apple Cinema HD Display 27"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaHD27_2013): {
		vendor: vidApple, product: CinemaHD27_2013,
		name: `Apple Cinema HD Display 27" 2013`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, CinemaHD30): {
		vendor: vidApple, product: CinemaHD30,
		name: `Apple Cinema HD Display 30"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidApple, LEDCinema24): {
		vendor: vidApple, product: LEDCinema24,
		name: `Apple LED Cinema Display 24"`,

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},

	key(vidSamsung, SyncMaster757NF): {
		vendor: vidSamsung, product: SyncMaster757NF,
		name: "Samsung SyncMaster 757NF",

		brightness: []byte{reportBrightness},
		payloadLen: 2, brightnessOffset: 1,

		min: 0, max: 255,
	},
}
