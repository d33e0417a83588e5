//go:build !ebiten

// internal/backend/rlbackend/tracelog.go
package rlbackend

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"ringview/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// traceLog forwards raylib's trace output to the shared slog logger and can
// capture the warnings raylib prints while one call is running.
type traceLog struct {
	mu        sync.Mutex
	capturing bool
	captured  []string
}

var trace traceLog

var bridgeOnce sync.Once

func bridgeTraceLog() {
	bridgeOnce.Do(func() {
		rl.SetTraceLogLevel(rl.LogInfo)
		rl.SetTraceLogCallback(trace.handle)
	})
}

// slogLevel maps raylib levels onto slog. raylib's info chatter goes to debug.
func slogLevel(level int) slog.Level {
	switch rl.TraceLogLevel(level) {
	case rl.LogAll, rl.LogTrace, rl.LogDebug, rl.LogInfo:
		return slog.LevelDebug
	case rl.LogWarning:
		return slog.LevelWarn
	}
	return slog.LevelError
}

func (t *traceLog) handle(level int, msg string) {
	msg = strings.TrimSpace(msg)
	logging.Logger().Log(context.Background(), slogLevel(level), msg, "source", "raylib")

	if rl.TraceLogLevel(level) < rl.LogWarning {
		return
	}
	t.mu.Lock()
	if t.capturing {
		t.captured = append(t.captured, msg)
	}
	t.mu.Unlock()
}

// capture runs fn and returns the raylib warnings and errors it produced.
func (t *traceLog) capture(fn func()) []string {
	t.mu.Lock()
	t.capturing = true
	t.captured = nil
	t.mu.Unlock()

	fn()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.capturing = false
	out := t.captured
	t.captured = nil
	return out
}

// failedStage names the shader stage a set of raylib warnings complains about.
func failedStage(warnings []string) string {
	for _, w := range warnings {
		switch {
		case strings.Contains(w, "vertex shader"):
			return "vertex"
		case strings.Contains(w, "fragment shader"):
			return "fragment"
		}
	}
	return "link"
}

// platformFailed reports whether raylib could not bring up its platform layer at all,
// as opposed to failing to open the window itself.
func platformFailed(warnings []string) bool {
	for _, w := range warnings {
		if strings.Contains(w, "Failed to initialize GLFW") || strings.Contains(w, "Failed to initialize platform") {
			return true
		}
	}
	return false
}
