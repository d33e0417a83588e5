//go:build !ebiten

// internal/backend/rlbackend/window.go
package rlbackend

import (
	"fmt"

	"ringview/internal/gfx"
	"ringview/internal/logging"
	"ringview/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config describes the window to open.
type Config struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Background render.Color
	Antialias  bool // 4x multisampling
	VSync      bool
}

// Window is a raylib window with its rendering context.
// Open, Run and Close must be called from the locked main thread.
type Window struct {
	cfg Config
	ctx *Context
}

func Open(cfg Config) (*Window, error) {
	bridgeTraceLog()
	rl.SetConfigFlags(configFlags(cfg))

	warnings := trace.capture(func() {
		rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	})
	if !rl.IsWindowReady() {
		if platformFailed(warnings) {
			return nil, fmt.Errorf("%w: raylib: %v", gfx.ErrBackendInit, warnings)
		}
		rl.CloseWindow()
		return nil, fmt.Errorf("%w: %dx%d %q: %v", gfx.ErrWindow, cfg.Width, cfg.Height, cfg.Title, warnings)
	}
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	logging.Logger().Info("window opened", "backend", "raylib", "title", cfg.Title,
		"width", rl.GetRenderWidth(), "height", rl.GetRenderHeight())

	return &Window{cfg: cfg, ctx: newContext()}, nil
}

// configFlags returns the raylib window hints for cfg.
func configFlags(cfg Config) uint32 {
	var flags uint32
	if cfg.Antialias {
		flags |= rl.FlagMsaa4xHint
	}
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	return flags
}

func (w *Window) Context() gfx.Context { return w.ctx }

func (w *Window) Size() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

func (w *Window) Run(frame func() error) error {
	bg := w.cfg.Background.RGBA()
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		err := frame()
		rl.EndDrawing()
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}
