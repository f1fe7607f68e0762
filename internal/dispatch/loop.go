package dispatch

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"soundswitch/internal/catalog"
	"soundswitch/internal/hotkeys"
	"soundswitch/internal/resolver"
)

// Loop routes queue events to the switch executor and owns the lifetime
// of the registered hotkeys. A single goroutine drains the queue, so
// hotkey actions run strictly one at a time in arrival order.
type Loop struct {
	catalog  catalog.Catalog
	switcher Switcher
	mode     resolver.Mode
	opts     resolver.Options

	bindings map[uuid.UUID]hotkeys.Binding
	regs     []*hotkeys.Registration
}

// NewLoop builds a loop over the registrations that survived startup.
func NewLoop(cat catalog.Catalog, sw Switcher, mode resolver.Mode, opts resolver.Options, registered []hotkeys.Registered) *Loop {
	l := &Loop{
		catalog:  cat,
		switcher: sw,
		mode:     mode,
		opts:     opts,
		bindings: make(map[uuid.UUID]hotkeys.Binding, len(registered)),
	}
	for _, r := range registered {
		l.bindings[r.Registration.ID] = r.Binding
		l.regs = append(l.regs, r.Registration)
	}
	return l
}

// Run consumes events until a quit command is processed. The quit channel
// is the tray's "Quit requested" signal; it enters the same queue as
// hotkey presses, so events already queued ahead of it are handled first.
// Registered hotkeys are released on every exit path.
func (l *Loop) Run(quit <-chan struct{}) error {
	done := make(chan struct{})
	defer close(done)
	defer l.unregisterAll()

	q := newQueue(done)

	for _, reg := range l.regs {
		reg := reg
		go func() {
			for {
				select {
				case <-reg.Presses:
					select {
					case q.in <- Press{RegistrationID: reg.ID}:
					case <-done:
						return
					}
				case <-done:
					return
				}
			}
		}()
	}

	go func() {
		select {
		case <-quit:
			select {
			case q.in <- Quit{}:
			case <-done:
			}
		case <-done:
		}
	}()

	for ev := range q.out {
		switch ev := ev.(type) {
		case Press:
			l.handlePress(ev)
		case Quit:
			slog.Info("quit requested, shutting down")
			return nil
		}
	}
	return nil
}

// handlePress is one Dispatching phase: resolve the binding's device
// names against a fresh catalog snapshot, then switch output first and
// input second. The two switches are independent; an input failure never
// rolls back a completed output switch.
func (l *Loop) handlePress(ev Press) {
	binding, ok := l.bindings[ev.RegistrationID]
	if !ok {
		slog.Warn("press for unknown registration handle", "id", ev.RegistrationID)
		return
	}

	slog.Info("hotkey pressed",
		"combo", binding.Combo,
		"output", binding.OutputDeviceName,
		"input", binding.InputDeviceName)

	if err := l.switchTo(binding.OutputDeviceName, catalog.Output); err != nil {
		slog.Error("failed to switch output device", "device", binding.OutputDeviceName, "error", err)
	} else {
		slog.Info("output device switched", "device", binding.OutputDeviceName)
	}

	if binding.InputDeviceName == "" {
		return
	}
	if err := l.switchTo(binding.InputDeviceName, catalog.Input); err != nil {
		slog.Error("failed to switch input device", "device", binding.InputDeviceName, "error", err)
	} else {
		slog.Info("input device switched", "device", binding.InputDeviceName)
	}
}

// switchTo re-resolves the configured name at press time rather than
// reusing the startup-time resolution, so a device plugged in after
// launch is still found.
func (l *Loop) switchTo(name string, kind catalog.Kind) error {
	endpoints, err := l.catalog.Endpoints(kind)
	if err != nil {
		return fmt.Errorf("%w: listing %s endpoints: %v", ErrOSCall, kind, err)
	}

	match, found := resolver.ResolveWith(name, endpoints, l.mode, l.opts)
	if !found {
		return fmt.Errorf("%w: no %s match for %q", ErrDeviceNotFound, l.mode, name)
	}

	return l.switcher.Switch(match.Endpoint)
}

func (l *Loop) unregisterAll() {
	for _, reg := range l.regs {
		reg.Unregister()
	}
	slog.Debug("hotkeys unregistered", "count", len(l.regs))
}
