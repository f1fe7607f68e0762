package hotkeys

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundswitch/internal/config"
)

func TestBuildBindings(t *testing.T) {
	entries := []config.HotkeyMapping{
		{Keys: "Ctrl+Alt+F1", DeviceName: "Speakers", InputDeviceName: "Desk Mic"},
		{Keys: "Ctrl+Alt+F2", DeviceName: "Headphones"},
	}

	bindings, err := BuildBindings(entries)
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, Combo{Mods: ModCtrl | ModAlt, Key: "F1"}, bindings[0].Combo)
	assert.Equal(t, "Speakers", bindings[0].OutputDeviceName)
	assert.Equal(t, "Desk Mic", bindings[0].InputDeviceName)
	assert.Empty(t, bindings[1].InputDeviceName)
}

func TestBuildBindingsDuplicateCombo(t *testing.T) {
	entries := []config.HotkeyMapping{
		{Keys: "Ctrl+Alt+F1", DeviceName: "Speakers"},
		{Keys: "Ctrl+Alt+F1", DeviceName: "Headphones"},
	}

	_, err := BuildBindings(entries)
	assert.ErrorIs(t, err, ErrDuplicateHotkey)
}

func TestBuildBindingsDuplicateAfterCanonicalization(t *testing.T) {
	// Differently written specs that canonicalize to the same combo are
	// still duplicates, never a silent overwrite.
	entries := []config.HotkeyMapping{
		{Keys: "Ctrl+Alt+F1", DeviceName: "Speakers"},
		{Keys: "alt + control + f1", DeviceName: "Headphones"},
	}

	_, err := BuildBindings(entries)
	assert.ErrorIs(t, err, ErrDuplicateHotkey)
}

func TestBuildBindingsInvalidSpec(t *testing.T) {
	entries := []config.HotkeyMapping{
		{Keys: "F1", DeviceName: "Speakers"}, // no modifiers
	}

	_, err := BuildBindings(entries)
	assert.ErrorIs(t, err, ErrInvalidHotkeySpec)
}

func TestBuildBindingsEmpty(t *testing.T) {
	bindings, err := BuildBindings(nil)
	require.NoError(t, err)
	assert.Empty(t, bindings)
}

// fakeRegistrar fails combos listed in refuse and accepts the rest.
type fakeRegistrar struct {
	refuse     map[string]bool
	registered []Combo
}

func (f *fakeRegistrar) Register(combo Combo) (*Registration, error) {
	if f.refuse[combo.String()] {
		return nil, fmt.Errorf("%w: %s: already claimed", ErrRegistrationFailed, combo)
	}
	f.registered = append(f.registered, combo)
	return NewRegistration(combo, make(chan struct{}), nil), nil
}

func TestRegisterAllPartialFailure(t *testing.T) {
	entries := []config.HotkeyMapping{
		{Keys: "Ctrl+Alt+F1", DeviceName: "Speakers"},
		{Keys: "Ctrl+Alt+F2", DeviceName: "Headphones"},
		{Keys: "Ctrl+Alt+F3", DeviceName: "HDMI"},
	}
	bindings, err := BuildBindings(entries)
	require.NoError(t, err)

	reg := &fakeRegistrar{refuse: map[string]bool{"Ctrl+Alt+F2": true}}
	registered, failures := RegisterAll(reg, bindings)

	// The refused combo is dropped; the others still register.
	require.Len(t, registered, 2)
	assert.Equal(t, "Speakers", registered[0].Binding.OutputDeviceName)
	assert.Equal(t, "HDMI", registered[1].Binding.OutputDeviceName)

	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0], ErrRegistrationFailed)
	assert.Contains(t, failures[0].Error(), "Ctrl+Alt+F2")
}

func TestRegistrationUnregisterIsIdempotent(t *testing.T) {
	calls := 0
	reg := NewRegistration(Combo{Mods: ModCtrl, Key: "A"}, nil, func() { calls++ })

	reg.Unregister()
	reg.Unregister()
	assert.Equal(t, 1, calls)
}

func TestRegistrationUnregisterNil(t *testing.T) {
	reg := NewRegistration(Combo{Mods: ModCtrl, Key: "A"}, nil, nil)
	assert.NotPanics(t, func() { reg.Unregister() })
}
