// Package catalog enumerates audio endpoints and assigns the system
// default device. Enumeration goes through malgo (miniaudio); assigning
// the default is platform-specific.
package catalog

import (
	"errors"
	"fmt"

	"github.com/gen2brain/malgo"
)

// Kind distinguishes playback endpoints from capture endpoints.
type Kind int

const (
	Output Kind = iota
	Input
)

func (k Kind) String() string {
	switch k {
	case Output:
		return "output"
	case Input:
		return "input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrNotFound is returned by SetDefault when the OS no longer knows the
// endpoint (typically unplugged between enumeration and the switch).
var ErrNotFound = errors.New("endpoint not found")

// Endpoint is a point-in-time snapshot of one audio device. Endpoint IDs
// can be invalidated by the OS at any moment, so snapshots are re-fetched
// per resolution pass and never cached across hotkey presses.
type Endpoint struct {
	ID           string
	FriendlyName string
	Kind         Kind
	Default      bool
}

// Catalog is the OS audio capability the rest of the program talks to.
type Catalog interface {
	// Endpoints returns a fresh snapshot of the active endpoints of the
	// given kind, in OS enumeration order.
	Endpoints(kind Kind) ([]Endpoint, error)

	// SetDefault makes the endpoint the system default for its kind.
	// Switching to the already-default endpoint is a no-op that succeeds.
	SetDefault(ep Endpoint) error
}

// System is the real, malgo-backed Catalog.
type System struct{}

// NewSystem returns a Catalog backed by the host audio subsystem.
func NewSystem() *System {
	return &System{}
}

// Endpoints enumerates active devices. A fresh malgo context is created
// and torn down per call so the snapshot always reflects the current
// device set, including endpoints plugged in after startup.
func (s *System) Endpoints(kind Kind) ([]Endpoint, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to init audio context: %w", err)
	}
	defer func() {
		_ = ctx.Uninit()
		ctx.Free()
	}()

	deviceType := malgo.Playback
	if kind == Input {
		deviceType = malgo.Capture
	}

	devices, err := ctx.Devices(deviceType)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s devices: %w", kind, err)
	}

	result := make([]Endpoint, 0, len(devices))
	for _, dev := range devices {
		result = append(result, Endpoint{
			ID:           deviceIDString(dev.ID),
			FriendlyName: dev.Name(),
			Kind:         kind,
			Default:      dev.IsDefault != 0,
		})
	}

	return result, nil
}
