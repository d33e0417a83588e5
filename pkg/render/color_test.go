package render

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	cases := []struct {
		in   Color
		want color.RGBA
	}{
		{RGB(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{RGB(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{RGB(0.4, 0.4, 0.4), color.RGBA{102, 102, 102, 255}},
		{RGB(-1, 2, 0.5), color.RGBA{0, 255, 128, 255}},
	}
	for _, c := range cases {
		if got := c.in.RGBA(); got != c.want {
			t.Fatalf("%v.RGBA()=%v, want %v", c.in, got, c.want)
		}
	}
}
