// soundswitch runs in the tray and switches the system default audio
// devices on global hotkey presses, as configured in config.toml.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"soundswitch/internal/catalog"
	"soundswitch/internal/config"
	"soundswitch/internal/dispatch"
	"soundswitch/internal/hotkeys"
	"soundswitch/internal/notify"
	"soundswitch/internal/resolver"
	"soundswitch/internal/startup"
	"soundswitch/internal/tray"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: next to the executable, then CWD)")
	showVersion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("soundswitch v%s\n", version)
		return
	}

	path := *configPath
	if path == "" {
		located, err := config.Locate()
		if err != nil {
			fatal(err)
		}
		path = located
	}

	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(fmt.Errorf("invalid config: %w", err))
	}

	setupLogging(cfg.LogFile)
	slog.Info("soundswitch starting", "version", version, "config", path, "mode", cfg.Mode(), "hotkeys", len(cfg.Hotkeys))
	if len(cfg.Hotkeys) == 0 {
		slog.Warn("no hotkeys defined in the configuration")
	}

	// Combo grammar violations and duplicate combos are fatal: the process
	// never starts with a partially understood binding table.
	bindings, err := hotkeys.BuildBindings(cfg.Hotkeys)
	if err != nil {
		fatal(err)
	}

	t := tray.New()
	t.Run(func() {
		go run(cfg, bindings, t)
	})
	slog.Info("soundswitch finished")
}

// run is the application body, started once the tray icon is live. It
// releases the tray on every exit path so the icon never outlives the
// dispatch loop.
func run(cfg *config.Config, bindings []hotkeys.Binding, t *tray.Tray) {
	defer t.Close()

	cat := catalog.NewSystem()
	mode := cfg.Mode()
	opts := resolver.Options{MinScore: cfg.FuzzyMatchThreshold}

	report := startup.Validate(bindings, cat, mode, opts)

	registered, failures := hotkeys.RegisterAll(hotkeys.NewSystemRegistrar(), bindings)
	report.RegistrationFailures = failures
	for _, regErr := range failures {
		slog.Error("hotkey registration failed", "error", regErr)
	}
	slog.Info("hotkeys registered", "count", len(registered), "failed", len(failures))

	if report.HasProblems() {
		notify.Warn("SoundSwitch", report.Message())
	} else {
		slog.Info("all configured devices found")
	}

	loop := dispatch.NewLoop(cat, dispatch.NewExecutor(cat), mode, opts, registered)
	if err := loop.Run(t.Quit()); err != nil {
		slog.Error("dispatch loop failed", "error", err)
	}
}

func setupLogging(logFile string) {
	w := os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file %s: %v, logging to stderr\n", logFile, err)
		} else {
			w = f
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "soundswitch: %v\n", err)
	os.Exit(1)
}
