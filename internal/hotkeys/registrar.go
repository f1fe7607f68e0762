package hotkeys

import (
	"fmt"

	"golang.design/x/hotkey"
)

// SystemRegistrar registers combos with the OS through
// golang.design/x/hotkey.
type SystemRegistrar struct{}

// NewSystemRegistrar returns the real hotkey-capture capability.
func NewSystemRegistrar() *SystemRegistrar {
	return &SystemRegistrar{}
}

// Register claims the combo globally. Key-down events are forwarded onto
// the returned registration's Presses channel until Unregister is called.
func (sr *SystemRegistrar) Register(combo Combo) (*Registration, error) {
	key, ok := keyCodes[combo.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no key code for %q", ErrRegistrationFailed, combo, combo.Key)
	}

	mods := make([]hotkey.Modifier, 0, 4)
	for _, m := range modifierOrder {
		if combo.Mods&m.mod != 0 {
			mods = append(mods, modifierMap[m.mod])
		}
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRegistrationFailed, combo, err)
	}

	done := make(chan struct{})
	presses := make(chan struct{}, 8)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-hk.Keydown():
				select {
				case presses <- struct{}{}:
				case <-done:
					return
				}
			}
		}
	}()

	return NewRegistration(combo, presses, func() {
		close(done)
		_ = hk.Unregister()
	}), nil
}
