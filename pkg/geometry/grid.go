// pkg/geometry/grid.go
package geometry

import "golang.org/x/image/math/f32"

const (
	gridLines  = 2   // lines at -2..2 on each axis
	gridExtent = 2.5 // half-length of every grid line
)

// MakeGrid returns the reference grid: horizontal lines top to bottom, then
// vertical ones left to right, every pair of vertices forming one segment.
// Vertical segments run downwards.
func MakeGrid() []PlainVertex {
	vs := make([]PlainVertex, 0, 4*(2*gridLines+1))
	for y := gridLines; y >= -gridLines; y-- {
		vs = append(vs,
			PlainVertex{Pos: f32.Vec2{-gridExtent, float32(y)}},
			PlainVertex{Pos: f32.Vec2{gridExtent, float32(y)}},
		)
	}
	for x := -gridLines; x <= gridLines; x++ {
		vs = append(vs,
			PlainVertex{Pos: f32.Vec2{float32(x), gridExtent}},
			PlainVertex{Pos: f32.Vec2{float32(x), -gridExtent}},
		)
	}
	return vs
}
