//go:build !windows

package catalog

import "github.com/gen2brain/malgo"

// deviceIDString extracts the endpoint ID from a malgo device ID. On
// PulseAudio the union holds the sink/source name, on CoreAudio the
// device UID, both as NUL-terminated byte strings.
func deviceIDString(id malgo.DeviceID) string {
	for i, b := range id {
		if b == 0 {
			return string(id[:i])
		}
	}
	return string(id[:])
}
