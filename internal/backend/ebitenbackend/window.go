//go:build ebiten

// internal/backend/ebitenbackend/window.go
package ebitenbackend

import (
	"errors"
	"fmt"
	"image/color"

	"ringview/internal/gfx"
	"ringview/internal/logging"
	"ringview/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
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

// Window drives ebiten's game loop. ebiten opens the OS window when Run starts.
type Window struct {
	cfg           Config
	ctx           *Context
	bg            color.RGBA
	width, height int

	frame    func() error
	frameErr error
}

func Open(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", gfx.ErrWindow, cfg.Width, cfg.Height)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.TargetFPS > 0 {
		ebiten.SetTPS(cfg.TargetFPS)
	}
	ebiten.SetVsyncEnabled(cfg.VSync)
	logging.Logger().Info("window configured", "backend", "ebiten", "title", cfg.Title,
		"width", cfg.Width, "height", cfg.Height)

	return &Window{
		cfg:    cfg,
		ctx:    newContext(cfg.Antialias),
		bg:     cfg.Background.RGBA(),
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

func (w *Window) Context() gfx.Context { return w.ctx }

func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) Run(frame func() error) error {
	w.frame = frame
	err := ebiten.RunGame(game{w})
	switch {
	case w.frameErr != nil:
		return w.frameErr
	case err == nil, errors.Is(err, ebiten.Termination):
		return nil
	}
	return fmt.Errorf("%w: ebiten: %v", gfx.ErrBackendInit, err)
}

func (w *Window) Close() {}

// game adapts Window to ebiten.Game without exporting the callbacks on Window.
type game struct {
	w *Window
}

func (g game) Update() error {
	if g.w.frameErr != nil {
		return ebiten.Termination
	}
	return nil
}

func (g game) Draw(screen *ebiten.Image) {
	w := g.w
	if w.frameErr != nil {
		return
	}
	screen.Fill(w.bg)
	w.ctx.screen = screen
	if err := w.frame(); err != nil {
		w.frameErr = err
	}
	w.ctx.screen = nil
}

func (g game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w.width, g.w.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
