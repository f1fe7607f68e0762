package hotkeys

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"soundswitch/internal/config"
)

// Binding is one immutable hotkey-to-devices mapping, created from config
// at startup and never mutated afterwards.
type Binding struct {
	Combo            Combo
	OutputDeviceName string
	InputDeviceName  string // empty = output only
}

// BuildBindings parses every config entry into its canonical combo and
// rejects duplicates. Any failure here is a config error: the process
// must not start with a partially understood binding table.
func BuildBindings(entries []config.HotkeyMapping) ([]Binding, error) {
	bindings := make([]Binding, 0, len(entries))
	seen := make(map[Combo]string, len(entries))

	for _, entry := range entries {
		combo, err := ParseCombo(entry.Keys)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[combo]; dup {
			return nil, fmt.Errorf("%w: %q and %q both map to %s", ErrDuplicateHotkey, prev, entry.Keys, combo)
		}
		seen[combo] = entry.Keys

		bindings = append(bindings, Binding{
			Combo:            combo,
			OutputDeviceName: entry.DeviceName,
			InputDeviceName:  entry.InputDeviceName,
		})
	}

	return bindings, nil
}

// Registration is an opaque handle for one registered combo. Press
// notifications arrive on Presses from an OS-managed goroutine.
type Registration struct {
	ID      uuid.UUID
	Combo   Combo
	Presses <-chan struct{}

	unregister func()
	once       sync.Once
}

// NewRegistration builds a registration handle. Registrar implementations
// (the OS-backed one and test fakes alike) use this; unregister may be nil.
func NewRegistration(combo Combo, presses <-chan struct{}, unregister func()) *Registration {
	return &Registration{
		ID:         uuid.New(),
		Combo:      combo,
		Presses:    presses,
		unregister: unregister,
	}
}

// Unregister releases the combo with the OS. Safe to call more than once.
func (r *Registration) Unregister() {
	if r.unregister != nil {
		r.once.Do(r.unregister)
	}
}

// Registrar is the OS hotkey-capture capability.
type Registrar interface {
	Register(combo Combo) (*Registration, error)
}

// Registered pairs a successful registration with its binding.
type Registered struct {
	Registration *Registration
	Binding      Binding
}

// RegisterAll registers every binding, tolerating per-binding failures:
// a combo claimed by another process is reported but does not stop the
// remaining bindings from being registered.
func RegisterAll(reg Registrar, bindings []Binding) ([]Registered, []error) {
	registered := make([]Registered, 0, len(bindings))
	var failures []error

	for _, b := range bindings {
		r, err := reg.Register(b.Combo)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		registered = append(registered, Registered{Registration: r, Binding: b})
	}

	return registered, failures
}
