// Package shading computes the flat per-face colors of solids, glints and halos.
package shading

import (
	"image/color"
	"math"
)

// RGBA is a straight-alpha color with float channels in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// FromNRGBA converts an 8-bit color.
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

// Clamp saturates every channel into [0,1].
func (c RGBA) Clamp() RGBA {
	return RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// NRGBA converts to an 8-bit color.
func (c RGBA) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

func to8(v float64) uint8 { return uint8(math.Round(v * 255)) }

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
