// internal/drawable/ring.go
package drawable

import (
	"fmt"

	"ringview/internal/camera"
	"ringview/internal/gfx"
	"ringview/pkg/geometry"
)

// Ring draws the banded annulus as quads.
type Ring struct {
	mesh
	params geometry.RingParams
}

func NewRing(params geometry.RingParams, cam camera.Camera) *Ring {
	return &Ring{
		mesh: mesh{
			name:    "ring",
			cam:     cam,
			mode:    gfx.Quads,
			shader:  ColoredShader,
			stride:  geometry.ColoredStride,
			colored: true,
		},
		params: params,
	}
}

func (r *Ring) Create(ctx gfx.Context) error {
	vs, err := geometry.MakeRing(r.params)
	if err != nil {
		return fmt.Errorf("ring: %w", err)
	}
	return r.create(ctx, geometry.FlattenColored(vs))
}
