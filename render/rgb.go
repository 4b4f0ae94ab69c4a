package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// RGB is a 24-bit color shared by the terminal and window renderers
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBSpace     = RGB{6, 8, 20}
	RGBCrosshair = RGB{200, 200, 210}
	RGBHUD       = RGB{150, 150, 165}
	RGBPaused    = RGB{255, 200, 50}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// FromVec3 converts a [0,1] material color
func FromVec3(v mgl32.Vec3) RGB {
	return RGB{
		R: clamp(float64(v.X()) * 255),
		G: clamp(float64(v.Y()) * 255),
		B: clamp(float64(v.Z()) * 255),
	}
}

// TCell returns the truecolor terminal color
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGBA returns an opaque image color
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies all channels by factor, clamping instead of wrapping
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
