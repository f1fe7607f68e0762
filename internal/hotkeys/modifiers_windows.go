//go:build windows

package hotkeys

import "golang.design/x/hotkey"

// modifierMap maps canonical modifiers to their Windows encodings.
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModAlt,
	ModWin:   hotkey.ModWin,
}
