// Package fcolor provides the scalar color primitives the rest of the
// library is built on: real/byte conversion, gamma encoding, luminance and
// exact linear RGB / CIE XYZ / xyY / HSV conversions. Values are unbounded
// during computation and only clamped at output boundaries.
package fcolor

import "math"

// RGB is a 3-component linear color sample.
type RGB struct {
	R, G, B float64
}

// RGBA is a 4-component color sample. Alpha is independent of the color
// channels unless premultiplication is explicitly requested by a caller.
type RGBA struct {
	R, G, B, A float64
}

func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Lerp interpolates between c and o; u=0 yields c, u=1 yields o.
func (c RGB) Lerp(o RGB, u float64) RGB {
	return RGB{
		c.R*(1-u) + o.R*u,
		c.G*(1-u) + o.G*u,
		c.B*(1-u) + o.B*u,
	}
}

func (c RGB) Clamp(lo, hi float64) RGB {
	return RGB{clamp(c.R, lo, hi), clamp(c.G, lo, hi), clamp(c.B, lo, hi)}
}

func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{c.R, c.G, c.B, a}
}

func (c RGBA) RGB() RGB {
	return RGB{c.R, c.G, c.B}
}

func (c RGBA) Add(o RGBA) RGBA {
	return RGBA{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

func (c RGBA) Scale(s float64) RGBA {
	return RGBA{c.R * s, c.G * s, c.B * s, c.A * s}
}

func (c RGBA) Clamp(lo, hi float64) RGBA {
	return RGBA{clamp(c.R, lo, hi), clamp(c.G, lo, hi), clamp(c.B, lo, hi), clamp(c.A, lo, hi)}
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
