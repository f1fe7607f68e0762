//go:build linux

package hotkeys

import "golang.design/x/hotkey"

// modifierMap maps canonical modifiers to their X11 encodings.
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1, // Alt is Mod1 on X11
	ModWin:   hotkey.Mod4, // Super/Win is Mod4 on X11
}
