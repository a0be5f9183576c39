// Copyright ©2026 The acdcontrol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package acdcontrol

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrNotFound is returned by Open and Displays when no attached HID
// device matches a supported monitor model.
var ErrNotFound = errors.New("no supported display found")

// ErrPermission is returned by Open when a display was located but its
// HID node could not be opened for reading and writing. The usual cause
// is a missing udev rule.
var ErrPermission = errors.New("permission denied")

// RangeError is returned by SetBrightness for levels outside the
// display's brightness range.
type RangeError struct {
	Level    int
	Min, Max int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("brightness out of range: %d not in [%d, %d]", e.Level, e.Min, e.Max)
}

// isPermission reports whether err is an access failure. hidapi
// flattens errno into the message text on some platforms, so the text
// is inspected as a fallback.
func isPermission(err error) bool {
	if errors.Is(err, fs.ErrPermission) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "permission denied")
}
