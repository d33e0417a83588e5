// pkg/geometry/ring.go
package geometry

import (
	"errors"
	"fmt"
	"math"

	"ringview/pkg/render"

	"golang.org/x/image/math/f32"
)

var (
	ErrSegmentCount = errors.New("segment count must be positive")
	ErrBandWidth    = errors.New("segments per color band must be positive")
	ErrRadii        = errors.New("inner radius must be smaller than outer radius")
	ErrUnevenBands  = errors.New("segments per color band must divide segment count")
)

// RingParams describes an annulus split into equal angular slices with alternating color bands.
type RingParams struct {
	InnerRadius     float32
	OuterRadius     float32
	SegmentCount    int
	SegmentsPerBand int
	ColorA          render.Color
	ColorB          render.Color
}

func (p RingParams) validate() error {
	if p.SegmentCount <= 0 {
		return fmt.Errorf("%w: %d", ErrSegmentCount, p.SegmentCount)
	}
	if p.SegmentsPerBand <= 0 {
		return fmt.Errorf("%w: %d", ErrBandWidth, p.SegmentsPerBand)
	}
	if !(p.InnerRadius < p.OuterRadius) {
		return fmt.Errorf("%w: inner=%v outer=%v", ErrRadii, p.InnerRadius, p.OuterRadius)
	}
	return nil
}

// BandColor returns the color of slice i: ColorA for the first SegmentsPerBand slices, then ColorB, and so on.
func (p RingParams) BandColor(i int) render.Color {
	if i%(2*p.SegmentsPerBand) < p.SegmentsPerBand {
		return p.ColorA
	}
	return p.ColorB
}

// MakeRing builds the ring as a list of quads, four vertices per slice in the order
// inner-start, outer-start, outer-end, inner-end.
func MakeRing(p RingParams) ([]ColoredVertex, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	step := 2 * math.Pi / float64(p.SegmentCount)
	vs := make([]ColoredVertex, 0, 4*p.SegmentCount)
	for i := 0; i < p.SegmentCount; i++ {
		t0 := step * float64(i)
		t1 := step * float64(i+1)
		c := p.BandColor(i)
		vs = append(vs,
			ColoredVertex{Pos: polar(p.InnerRadius, t0), Color: c},
			ColoredVertex{Pos: polar(p.OuterRadius, t0), Color: c},
			ColoredVertex{Pos: polar(p.OuterRadius, t1), Color: c},
			ColoredVertex{Pos: polar(p.InnerRadius, t1), Color: c},
		)
	}
	return vs, nil
}

func polar(radius float32, angle float64) f32.Vec2 {
	r := float64(radius)
	return f32.Vec2{float32(r * math.Cos(angle)), float32(r * math.Sin(angle))}
}
