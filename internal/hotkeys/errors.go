package hotkeys

import "errors"

var (
	// ErrInvalidHotkeySpec means a keys string does not satisfy the combo
	// grammar. Fatal at startup.
	ErrInvalidHotkeySpec = errors.New("invalid hotkey spec")

	// ErrDuplicateHotkey means two config entries canonicalize to the same
	// combo. Fatal at startup; entries are never silently overwritten.
	ErrDuplicateHotkey = errors.New("duplicate hotkey")

	// ErrRegistrationFailed means the OS refused a combo, usually because
	// another process already claimed it. Per-binding and non-fatal.
	ErrRegistrationFailed = errors.New("hotkey registration failed")
)
