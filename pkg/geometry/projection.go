// pkg/geometry/projection.go
package geometry

import (
	"fmt"
	"math"

	"ringview/pkg/render"

	"golang.org/x/image/math/f32"
)

// ProjectionAnchor is the point every projection line starts from.
var ProjectionAnchor = f32.Vec2{-1, 0}

// MakeProjectionLines emits one line segment per color band of a ring with the same slicing:
// from ProjectionAnchor to the unit-circle point where the band starts.
// segmentsPerBand must divide segmentCount.
func MakeProjectionLines(segmentCount, segmentsPerBand int, c render.Color) ([]ColoredVertex, error) {
	if segmentCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrSegmentCount, segmentCount)
	}
	if segmentsPerBand <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBandWidth, segmentsPerBand)
	}
	if segmentCount%segmentsPerBand != 0 {
		return nil, fmt.Errorf("%w: %d %% %d = %d", ErrUnevenBands, segmentCount, segmentsPerBand, segmentCount%segmentsPerBand)
	}

	bands := segmentCount / segmentsPerBand
	step := 2 * math.Pi / float64(bands)
	vs := make([]ColoredVertex, 0, 2*bands)
	for k := 0; k < bands; k++ {
		vs = append(vs,
			ColoredVertex{Pos: ProjectionAnchor, Color: c},
			ColoredVertex{Pos: polar(1, step*float64(k)), Color: c},
		)
	}
	return vs, nil
}
