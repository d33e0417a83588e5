package config

import (
	"math"
	"testing"

	"ringview/pkg/render"
)

func TestRingScene(t *testing.T) {
	if RingOuter != 1 {
		t.Fatalf("RingOuter=%v, want 1", RingOuter)
	}
	if got, want := float32(RingInner), float32(0.95); got != want {
		t.Fatalf("RingInner=%v, want %v", got, want)
	}
	cases := []struct {
		name string
		got  render.Color
		want render.Color
	}{
		{"ring color a", RingColorA, render.RGB(0.109375, 0.45703125, 0.5390625)},
		{"ring color b", RingColorB, render.RGB(0.34375, 0.765625, 0.86328125)},
		{"line color", LineColor, render.RGB(1, 0.9453125, 0)},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s=%v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestCameraAnchor(t *testing.T) {
	x, y := Camera().Project(-1, 0)
	if math.Abs(float64(x+0.5)) > 1e-6 || math.Abs(float64(y)) > 1e-6 {
		t.Fatalf("Project(-1,0)=(%v,%v), want (-0.5,0)", x, y)
	}
}

func TestWindowHints(t *testing.T) {
	if !Antialias || !VSync {
		t.Fatalf("Antialias=%v VSync=%v, want both on", Antialias, VSync)
	}
}
