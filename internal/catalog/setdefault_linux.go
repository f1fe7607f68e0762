//go:build linux

package catalog

import (
	"fmt"
	"os/exec"
	"strings"
)

// SetDefault assigns the endpoint as the PulseAudio/PipeWire default via
// pactl. The malgo device ID on Linux is the sink/source name pactl
// expects.
func (s *System) SetDefault(ep Endpoint) error {
	verb := "set-default-sink"
	if ep.Kind == Input {
		verb = "set-default-source"
	}

	out, err := exec.Command("pactl", verb, ep.ID).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if strings.Contains(msg, "No such entity") {
			return ErrNotFound
		}
		return fmt.Errorf("pactl %s %s: %w (%s)", verb, ep.ID, err, msg)
	}
	return nil
}
