//go:build darwin

package catalog

import (
	"fmt"
	"os/exec"
	"strings"
)

// SetDefault assigns the endpoint as the macOS default via
// SwitchAudioSource (switchaudio-osx). The malgo device ID on CoreAudio
// is the device UID.
func (s *System) SetDefault(ep Endpoint) error {
	kind := "output"
	if ep.Kind == Input {
		kind = "input"
	}

	out, err := exec.Command("SwitchAudioSource", "-t", kind, "-u", ep.ID).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if strings.Contains(msg, "Could not find") {
			return ErrNotFound
		}
		return fmt.Errorf("SwitchAudioSource -t %s -u %s: %w (%s)", kind, ep.ID, err, msg)
	}
	return nil
}
