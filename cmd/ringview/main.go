// cmd/ringview/main.go
package main

import (
	"log/slog"
	"os"
	"runtime"

	"ringview/internal/app"
	"ringview/internal/logging"
)

func init() {
	// The window and its rendering context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	// --- Logging ---
	logging.SetLogger(logging.NewText(os.Stderr, slog.LevelInfo))
	log := logging.Logger()

	// --- Window and rendering context ---
	window, err := openWindow()
	if err != nil {
		log.Error("cannot open window", "err", err)
		return -1
	}

	// --- Scene setup ---
	a, err := app.New(window, app.DefaultOptions())
	if err != nil {
		log.Error("cannot set up scene", "err", err)
		window.Close()
		return -1
	}
	defer a.Close()

	// --- Main loop ---
	if err := a.Run(); err != nil {
		log.Error("render loop failed", "err", err)
		return -1
	}
	return 0
}
