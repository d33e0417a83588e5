// internal/drawable/grid.go
package drawable

import (
	"ringview/internal/camera"
	"ringview/internal/gfx"
	"ringview/pkg/geometry"
)

// Grid draws the gray reference grid.
type Grid struct {
	mesh
}

func NewGrid(cam camera.Camera) *Grid {
	return &Grid{mesh{
		name:   "grid",
		cam:    cam,
		mode:   gfx.Lines,
		shader: GrayShader,
		stride: geometry.PlainStride,
	}}
}

func (g *Grid) Create(ctx gfx.Context) error {
	return g.create(ctx, geometry.FlattenPlain(geometry.MakeGrid()))
}
