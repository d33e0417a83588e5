// internal/drawable/projection_lines.go
package drawable

import (
	"fmt"

	"ringview/internal/camera"
	"ringview/internal/gfx"
	"ringview/pkg/geometry"
	"ringview/pkg/render"
)

// ProjectionLines draws one segment from the projection anchor to the start of every ring color band.
type ProjectionLines struct {
	mesh
	segmentCount    int
	segmentsPerBand int
	color           render.Color
}

func NewProjectionLines(segmentCount, segmentsPerBand int, c render.Color, cam camera.Camera) *ProjectionLines {
	return &ProjectionLines{
		mesh: mesh{
			name:    "projection lines",
			cam:     cam,
			mode:    gfx.Lines,
			shader:  ColoredShader,
			stride:  geometry.ColoredStride,
			colored: true,
		},
		segmentCount:    segmentCount,
		segmentsPerBand: segmentsPerBand,
		color:           c,
	}
}

func (p *ProjectionLines) Create(ctx gfx.Context) error {
	vs, err := geometry.MakeProjectionLines(p.segmentCount, p.segmentsPerBand, p.color)
	if err != nil {
		return fmt.Errorf("projection lines: %w", err)
	}
	return p.create(ctx, geometry.FlattenColored(vs))
}
