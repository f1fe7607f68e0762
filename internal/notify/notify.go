// Package notify sends desktop notifications via beeep.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// appName is fixed rather than per-notification: on Windows every unique
// AppName leaves a permanent registry entry under
// HKCU\SOFTWARE\Microsoft\Windows\CurrentVersion\Notifications\Settings.
const appName = "SoundSwitch"

// Warn shows a warning notification. Failures are logged and swallowed:
// a broken notification daemon must never take the switcher down.
func Warn(title, message string) {
	original := beeep.AppName
	beeep.AppName = appName
	defer func() { beeep.AppName = original }()

	if err := beeep.Alert(title, message, ""); err != nil {
		slog.Error("failed to send desktop notification", "title", title, "error", err)
	}
}
