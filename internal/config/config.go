// internal/config/config.go
package config

import (
	"ringview/internal/camera"
	"ringview/pkg/render"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 640
	WindowTitle  = "Ring Projection"
	TargetFPS    = 60
	Antialias    = true // 4x multisampling
	VSync        = true

	SegmentCount    = 64
	SegmentsPerBand = 4 // ring slices per color band
	RingThickness   = 0.05
	RingOuter       = 1.0
	RingInner       = RingOuter - RingThickness

	// Orthographic bounds. The reference program names the bottom slot "top" and
	// the top slot "bottom"; only the numbers it passes are kept here.
	OrthoLeft   = -4.0
	OrthoRight  = 4.0
	OrthoBottom = -4.0
	OrthoTop    = 4.0
	OrthoNear   = 10.0
	OrthoFar    = -10.0

	ViewOffsetX = -1.0
)

var (
	BackgroundColor = render.RGB(0, 0, 0)
	RingColorA      = render.RGB(28.0/256, 117.0/256, 138.0/256)
	RingColorB      = render.RGB(88.0/256, 196.0/256, 221.0/256)
	LineColor       = render.RGB(1, 242.0/256, 0)
)

// Camera returns the fixed camera every drawable renders through.
func Camera() camera.Camera {
	return camera.New(camera.Ortho{
		Left:   OrthoLeft,
		Right:  OrthoRight,
		Bottom: OrthoBottom,
		Top:    OrthoTop,
		Near:   OrthoNear,
		Far:    OrthoFar,
	}, mgl32.Vec3{ViewOffsetX, 0, 0})
}
