// Package hotkeys parses key-combination specs, builds the binding table,
// and registers combos with the OS global-hotkey capability.
package hotkeys

import (
	"fmt"
	"strings"
)

// Modifier is one canonical modifier key, independent of how the host
// platform encodes it.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModWin
)

// modifierOrder fixes the canonical rendering order.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModWin, "Win"},
}

var modifierTokens = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"shift":   ModShift,
	"win":     ModWin,
	"super":   ModWin,
	"cmd":     ModWin,
	"meta":    ModWin,
}

// Combo is a canonical (modifier-set, key) pair. Combos parsed from
// equivalent specs compare equal, which is what duplicate detection and
// the binding table key on.
type Combo struct {
	Mods Modifier
	Key  string // canonical key name, e.g. "F1", "A", "Space"
}

// String renders the canonical form: modifiers in Ctrl, Alt, Shift, Win
// order, then the key. Parsing the result yields the same Combo.
func (c Combo) String() string {
	var parts []string
	for _, m := range modifierOrder {
		if c.Mods&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// ParseCombo parses a textual spec like "Ctrl+Alt+F1" into its canonical
// form. The grammar requires one or more modifiers joined by '+' followed
// by exactly one non-modifier key. Tokens are case-insensitive and
// surrounding whitespace is ignored.
func ParseCombo(spec string) (Combo, error) {
	if strings.TrimSpace(spec) == "" {
		return Combo{}, fmt.Errorf("%w: empty spec", ErrInvalidHotkeySpec)
	}

	var combo Combo
	for _, raw := range strings.Split(spec, "+") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			return Combo{}, fmt.Errorf("%w: %q has an empty token", ErrInvalidHotkeySpec, spec)
		}

		if mod, isMod := modifierTokens[token]; isMod {
			if combo.Key != "" {
				return Combo{}, fmt.Errorf("%w: %q: modifiers must precede the key", ErrInvalidHotkeySpec, spec)
			}
			if combo.Mods&mod != 0 {
				return Combo{}, fmt.Errorf("%w: %q repeats a modifier", ErrInvalidHotkeySpec, spec)
			}
			combo.Mods |= mod
			continue
		}

		name, known := keyNames[token]
		if !known {
			return Combo{}, fmt.Errorf("%w: %q: unrecognized key token %q", ErrInvalidHotkeySpec, spec, strings.TrimSpace(raw))
		}
		if combo.Key != "" {
			return Combo{}, fmt.Errorf("%w: %q has more than one key", ErrInvalidHotkeySpec, spec)
		}
		combo.Key = name
	}

	if combo.Key == "" {
		return Combo{}, fmt.Errorf("%w: %q has no key", ErrInvalidHotkeySpec, spec)
	}
	if combo.Mods == 0 {
		return Combo{}, fmt.Errorf("%w: %q has no modifiers", ErrInvalidHotkeySpec, spec)
	}
	return combo, nil
}
