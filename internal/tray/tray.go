// Package tray wraps the systray icon. The only thing it exposes to the
// rest of the program is the "Quit requested" signal; menu construction
// and icon rendering stay in here.
package tray

import (
	"sync"

	"fyne.io/systray"
)

// Tray is the minimal control surface: an icon with a single Quit item.
type Tray struct {
	quit     chan struct{}
	quitOnce sync.Once
}

// New returns an unstarted tray.
func New() *Tray {
	return &Tray{quit: make(chan struct{})}
}

// Run blocks on the systray main loop until Close is called. onReady runs
// once the icon is live; start the application from there. Run must be
// called from the main goroutine.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		systray.SetTitle("SoundSwitch")
		systray.SetTooltip("SoundSwitch — hotkey audio device switcher")

		quitItem := systray.AddMenuItem("Quit", "Quit SoundSwitch")
		go func() {
			<-quitItem.ClickedCh
			t.quitOnce.Do(func() { close(t.quit) })
		}()

		onReady()
	}, nil)
}

// Quit is closed when the user picks Quit from the tray menu.
func (t *Tray) Quit() <-chan struct{} {
	return t.quit
}

// Close releases the tray icon and unblocks Run.
func (t *Tray) Close() {
	systray.Quit()
}
