package dispatch

import (
	"errors"
	"fmt"

	"soundswitch/internal/catalog"
)

var (
	// ErrDeviceNotFound means the endpoint disappeared between resolution
	// and the switch (or the configured name resolved to nothing).
	ErrDeviceNotFound = errors.New("device not found")

	// ErrOSCall means the OS rejected the switch.
	ErrOSCall = errors.New("os call failed")
)

// Switcher is the consumer-side view of the switch executor.
type Switcher interface {
	Switch(ep catalog.Endpoint) error
}

// Executor makes an endpoint the system default for its kind. Switching
// to the already-default endpoint succeeds as a no-op; failures are never
// retried here — the user pressing the hotkey again is the retry.
type Executor struct {
	catalog catalog.Catalog
}

// NewExecutor returns an Executor backed by the given catalog.
func NewExecutor(cat catalog.Catalog) *Executor {
	return &Executor{catalog: cat}
}

// Switch invokes the OS capability for the endpoint's kind.
func (e *Executor) Switch(ep catalog.Endpoint) error {
	if err := e.catalog.SetDefault(ep); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("%w: %s device %q", ErrDeviceNotFound, ep.Kind, ep.FriendlyName)
		}
		return fmt.Errorf("%w: %s device %q: %v", ErrOSCall, ep.Kind, ep.FriendlyName, err)
	}
	return nil
}
