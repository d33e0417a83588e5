package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testCamera() Camera {
	return New(Ortho{Left: -4, Right: 4, Bottom: -4, Top: 4, Near: 10, Far: -10}, mgl32.Vec3{-1, 0, 0})
}

func TestTransformIsFrameInvariant(t *testing.T) {
	c := testCamera()
	a, b := c.Transform(), c.Transform()
	if a != b {
		t.Fatalf("transform changed between calls: %v vs %v", a, b)
	}
}

func TestTransformMatchesComposition(t *testing.T) {
	c := testCamera()
	want := mgl32.Ortho(-4, 4, -4, 4, 10, -10).Mul4(mgl32.Translate3D(-1, 0, 0))
	if got := c.Transform(); !got.ApproxEqual(want) {
		t.Fatalf("Transform=%v, want %v", got, want)
	}
}

func TestProject(t *testing.T) {
	c := testCamera()
	cases := []struct {
		x, y, wantX, wantY float32
	}{
		{-1, 0, -0.5, 0},
		{1, 0, 0, 0},
		{5, 4, 1, 1},
		{-3, -4, -1, -1},
	}
	for _, tc := range cases {
		gx, gy := c.Project(tc.x, tc.y)
		if !mgl32.FloatEqualThreshold(gx, tc.wantX, 1e-6) || !mgl32.FloatEqualThreshold(gy, tc.wantY, 1e-6) {
			t.Fatalf("Project(%v,%v)=(%v,%v), want (%v,%v)", tc.x, tc.y, gx, gy, tc.wantX, tc.wantY)
		}
	}
}
