//go:build darwin

package hotkeys

import "golang.design/x/hotkey"

// modifierMap maps canonical modifiers to their macOS encodings. Alt is
// Option and Win is Cmd.
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModOption,
	ModWin:   hotkey.ModCmd,
}
