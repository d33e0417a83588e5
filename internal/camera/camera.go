// internal/camera/camera.go
package camera

import "github.com/go-gl/mathgl/mgl32"

// Ortho holds orthographic projection bounds, named after the argument slot each one fills.
type Ortho struct {
	Left, Right float32
	Bottom, Top float32
	Near, Far   float32
}

// Matrix builds the projection matrix.
func (o Ortho) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}

// Camera is a fixed orthographic camera: a projection plus a view translation.
// It is a value type and never changes once built.
type Camera struct {
	Projection Ortho
	View       mgl32.Vec3
}

// New returns a camera with the given projection and view offset.
func New(projection Ortho, view mgl32.Vec3) Camera {
	return Camera{Projection: projection, View: view}
}

// Transform computes model * (projection * view) with an identity model matrix.
func (c Camera) Transform() mgl32.Mat4 {
	model := mgl32.Ident4()
	view := mgl32.Translate3D(c.View[0], c.View[1], c.View[2])
	return model.Mul4(c.Projection.Matrix().Mul4(view))
}

// Project maps a model-space point on the z=0 plane into normalized device coordinates.
func (c Camera) Project(x, y float32) (float32, float32) {
	return ProjectWith(c.Transform(), x, y)
}

// ProjectWith applies an already computed transform to a point on the z=0 plane.
func ProjectWith(m mgl32.Mat4, x, y float32) (float32, float32) {
	v := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	if v[3] != 0 && v[3] != 1 {
		return v[0] / v[3], v[1] / v[3]
	}
	return v[0], v[1]
}
