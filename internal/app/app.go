// internal/app/app.go
package app

import (
	"fmt"

	"ringview/internal/camera"
	"ringview/internal/config"
	"ringview/internal/drawable"
	"ringview/internal/gfx"
	"ringview/internal/logging"
	"ringview/pkg/geometry"
	"ringview/pkg/render"
)

// Options are the scene parameters.
type Options struct {
	Camera    camera.Camera
	Ring      geometry.RingParams
	LineColor render.Color
}

// DefaultOptions returns the scene described by internal/config.
func DefaultOptions() Options {
	return Options{
		Camera: config.Camera(),
		Ring: geometry.RingParams{
			InnerRadius:     config.RingInner,
			OuterRadius:     config.RingOuter,
			SegmentCount:    config.SegmentCount,
			SegmentsPerBand: config.SegmentsPerBand,
			ColorA:          config.RingColorA,
			ColorB:          config.RingColorB,
		},
		LineColor: config.LineColor,
	}
}

// App owns the window and the drawables and runs the render loop.
type App struct {
	window    gfx.Window
	drawables []drawable.Drawable
	frames    uint64
}

// New creates the grid, the ring and the projection lines, in that order.
// If one fails the ones already created are released.
func New(window gfx.Window, opts Options) (*App, error) {
	a := &App{window: window}
	ctx := window.Context()

	scene := []drawable.Drawable{
		drawable.NewGrid(opts.Camera),
		drawable.NewRing(opts.Ring, opts.Camera),
		drawable.NewProjectionLines(opts.Ring.SegmentCount, opts.Ring.SegmentsPerBand, opts.LineColor, opts.Camera),
	}
	for _, d := range scene {
		if err := d.Create(ctx); err != nil {
			a.release()
			return nil, fmt.Errorf("setup %s: %w", d.Name(), err)
		}
		logging.Logger().Debug("drawable created", "name", d.Name(), "vertices", d.Count())
		a.drawables = append(a.drawables, d)
	}

	w, h := window.Size()
	logging.Logger().Info("scene ready", "drawables", len(a.drawables), "width", w, "height", h)
	return a, nil
}

// Frame draws every drawable once: grid, ring, then lines.
func (a *App) Frame() error {
	for _, d := range a.drawables {
		d.Draw()
	}
	a.frames++
	return nil
}

// Frames is the number of frames drawn so far.
func (a *App) Frames() uint64 {
	return a.frames
}

// Run blocks until the window is closed.
func (a *App) Run() error {
	err := a.window.Run(a.Frame)
	logging.Logger().Info("render loop stopped", "frames", a.frames)
	return err
}

// Close releases the drawables in reverse creation order and closes the window.
func (a *App) Close() {
	a.release()
	a.window.Close()
}

func (a *App) release() {
	for i := len(a.drawables) - 1; i >= 0; i-- {
		a.drawables[i].Release()
	}
	a.drawables = nil
}
