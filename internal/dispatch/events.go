// Package dispatch owns the runtime core: registered hotkeys, the unified
// event queue, and the switch executor. Hotkey presses and tray commands
// funnel into one FIFO queue drained by a single consumer, so no two
// switches ever overlap.
package dispatch

import "github.com/google/uuid"

// Event is one entry in the unified queue: a hotkey press or a quit
// command.
type Event interface {
	event()
}

// Press carries the registration handle of the combo that fired.
type Press struct {
	RegistrationID uuid.UUID
}

// Quit asks the loop to shut down. It is an ordinary queue entry, so
// events queued ahead of it are processed first.
type Quit struct{}

func (Press) event() {}
func (Quit) event()  {}
