// pkg/render/color.go
package render

import (
	"gym-guardian/internal/utils"
	"image/color"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	FieldColor      color.RGBA
	GridLineColor   color.RGBA
	PathStartColor  color.RGBA
	PathEndColor    color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor blends from a to b, t in [0, 1].
func LerpColor(a, b color.RGBA, t float32) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float32(x), float32(y), t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// WithAlpha returns c with alpha a.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
