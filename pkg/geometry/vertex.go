// pkg/geometry/vertex.go
package geometry

import (
	"ringview/pkg/render"

	"golang.org/x/image/math/f32"
)

// Floats per vertex in the flattened upload layouts.
const (
	ColoredStride = 5 // x, y, r, g, b
	PlainStride   = 2 // x, y
)

// ColoredVertex is a 2D position tagged with a color.
type ColoredVertex struct {
	Pos   f32.Vec2
	Color render.Color
}

// PlainVertex is a bare 2D position.
type PlainVertex struct {
	Pos f32.Vec2
}

// FlattenColored interleaves vertices as x, y, r, g, b.
func FlattenColored(vs []ColoredVertex) []float32 {
	out := make([]float32, 0, len(vs)*ColoredStride)
	for _, v := range vs {
		out = append(out, v.Pos[0], v.Pos[1], v.Color.R, v.Color.G, v.Color.B)
	}
	return out
}

// FlattenPlain packs vertices as x, y.
func FlattenPlain(vs []PlainVertex) []float32 {
	out := make([]float32, 0, len(vs)*PlainStride)
	for _, v := range vs {
		out = append(out, v.Pos[0], v.Pos[1])
	}
	return out
}
