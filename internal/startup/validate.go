// Package startup checks the configured device names against the live
// catalog once at launch and builds the single consolidated warning shown
// when anything is missing.
package startup

import (
	"fmt"
	"log/slog"
	"strings"

	"soundswitch/internal/catalog"
	"soundswitch/internal/hotkeys"
	"soundswitch/internal/resolver"
)

// UnresolvedDevice names one configured device that failed to resolve.
type UnresolvedDevice struct {
	ConfiguredName string
	Kind           catalog.Kind
	Combo          hotkeys.Combo
}

// Report is the batched validation result. Unresolved devices never block
// startup: their bindings stay registered and are re-resolved at press
// time, so a device plugged in later still works.
type Report struct {
	Unresolved           []UnresolvedDevice
	RegistrationFailures []error

	AvailableOutput []string
	AvailableInput  []string
}

// Validate resolves every binding's device names against fresh catalog
// snapshots using the configured match mode.
func Validate(bindings []hotkeys.Binding, cat catalog.Catalog, mode resolver.Mode, opts resolver.Options) Report {
	var report Report

	outputs, err := cat.Endpoints(catalog.Output)
	if err != nil {
		slog.Error("failed to list output devices during validation", "error", err)
		return report
	}
	inputs, err := cat.Endpoints(catalog.Input)
	if err != nil {
		slog.Error("failed to list input devices during validation", "error", err)
		return report
	}

	for _, ep := range outputs {
		report.AvailableOutput = append(report.AvailableOutput, ep.FriendlyName)
	}
	for _, ep := range inputs {
		report.AvailableInput = append(report.AvailableInput, ep.FriendlyName)
	}

	for _, b := range bindings {
		if _, ok := resolver.ResolveWith(b.OutputDeviceName, outputs, mode, opts); !ok {
			report.Unresolved = append(report.Unresolved, UnresolvedDevice{
				ConfiguredName: b.OutputDeviceName,
				Kind:           catalog.Output,
				Combo:          b.Combo,
			})
			slog.Warn("output device not found", "device", b.OutputDeviceName, "hotkey", b.Combo)
		}
		if b.InputDeviceName == "" {
			continue
		}
		if _, ok := resolver.ResolveWith(b.InputDeviceName, inputs, mode, opts); !ok {
			report.Unresolved = append(report.Unresolved, UnresolvedDevice{
				ConfiguredName: b.InputDeviceName,
				Kind:           catalog.Input,
				Combo:          b.Combo,
			})
			slog.Warn("input device not found", "device", b.InputDeviceName, "hotkey", b.Combo)
		}
	}

	return report
}

// HasProblems reports whether the startup summary needs to be shown.
func (r Report) HasProblems() bool {
	return len(r.Unresolved) > 0 || len(r.RegistrationFailures) > 0
}

// Message renders the consolidated startup warning: every missing device
// listed verbatim in one message, never one notification per device. The
// available device names are included to help fix the config.
func (r Report) Message() string {
	var b strings.Builder
	b.WriteString("SoundSwitch has started, but not everything is usable:\n")

	var missingOutput, missingInput []UnresolvedDevice
	for _, u := range r.Unresolved {
		if u.Kind == catalog.Output {
			missingOutput = append(missingOutput, u)
		} else {
			missingInput = append(missingInput, u)
		}
	}

	writeMissing := func(label string, missing []UnresolvedDevice) {
		if len(missing) == 0 {
			return
		}
		fmt.Fprintf(&b, "\nMissing %s devices (%d):\n", label, len(missing))
		for _, u := range missing {
			fmt.Fprintf(&b, "  - %s (hotkey: %s)\n", u.ConfiguredName, u.Combo)
		}
	}
	writeMissing("output", missingOutput)
	writeMissing("input", missingInput)

	if len(r.RegistrationFailures) > 0 {
		fmt.Fprintf(&b, "\nHotkeys that could not be registered (%d):\n", len(r.RegistrationFailures))
		for _, err := range r.RegistrationFailures {
			fmt.Fprintf(&b, "  - %v\n", err)
		}
	}

	if len(missingOutput) > 0 && len(r.AvailableOutput) > 0 {
		fmt.Fprintf(&b, "\nAvailable output devices: %s\n", strings.Join(r.AvailableOutput, ", "))
	}
	if len(missingInput) > 0 && len(r.AvailableInput) > 0 {
		fmt.Fprintf(&b, "\nAvailable input devices: %s\n", strings.Join(r.AvailableInput, ", "))
	}

	b.WriteString("\nMissing devices keep their hotkeys registered and will work once the device is available.")
	return b.String()
}
