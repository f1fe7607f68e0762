//go:build windows

package catalog

import (
	"unicode/utf16"

	"github.com/gen2brain/malgo"
)

// deviceIDString extracts the WASAPI endpoint ID from a malgo device ID.
// On Windows the ma_device_id union holds the IMMDevice ID as a
// NUL-terminated wide string.
func deviceIDString(id malgo.DeviceID) string {
	units := make([]uint16, 0, len(id)/2)
	for i := 0; i+1 < len(id); i += 2 {
		u := uint16(id[i]) | uint16(id[i+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}
