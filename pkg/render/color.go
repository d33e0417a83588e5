// pkg/render/color.go
package render

import "image/color"

// Color is an RGB color with normalized float channels, conventionally in [0,1].
type Color struct {
	R, G, B float32
}

// RGB builds a Color from its three channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA converts the color to an opaque 8-bit color, clamping out-of-range channels.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channelToByte(c.R),
		G: channelToByte(c.G),
		B: channelToByte(c.B),
		A: 255,
	}
}

// Array returns the channels in r, g, b order.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func channelToByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
