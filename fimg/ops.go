package fimg

import (
	"fmt"
	"image/color"
	"math"

	"pixsynth/fcolor"
)

// Every operation here is pure: the input is read-only and a freshly
// allocated buffer is returned.

// GammaToLinear decodes the color channels of an image with a power law.
// Alpha passes through untouched.
func GammaToLinear(src *Image, gamma float64) *Image {
	return mapPixels(src, func(c fcolor.RGBA) fcolor.RGBA {
		return fcolor.GammaToLinear(c.RGB(), gamma).WithAlpha(c.A)
	})
}

// LinearToGamma encodes the color channels of an image with a power law.
// Alpha passes through untouched.
func LinearToGamma(src *Image, gamma float64) *Image {
	return mapPixels(src, func(c fcolor.RGBA) fcolor.RGBA {
		return fcolor.LinearToGamma(c.RGB(), gamma).WithAlpha(c.A)
	})
}

// Expose scales the color channels by 2^stops.
func Expose(src *Image, stops float64) *Image {
	scale := math.Pow(2, stops)
	return mapPixels(src, func(c fcolor.RGBA) fcolor.RGBA {
		return fcolor.RGBA{R: c.R * scale, G: c.G * scale, B: c.B * scale, A: c.A}
	})
}

// TonemapFilmic applies the Hejl/Burgess-Dawson filmic curve per channel.
// The curve folds the display gamma in, so its output is display-ready.
func TonemapFilmic(src *Image) *Image {
	return mapPixels(src, func(c fcolor.RGBA) fcolor.RGBA {
		return fcolor.RGBA{
			R: filmic(c.R),
			G: filmic(c.G),
			B: filmic(c.B),
			A: c.A,
		}
	})
}

func filmic(x float64) float64 {
	x = math.Max(0, x-0.004)
	return (x * (6.2*x + 0.5)) / (x*(6.2*x+1.7) + 0.06)
}

// Tonemap exposes an HDR image and converts it to displayable form, either
// with the filmic curve or with plain gamma encoding.
func Tonemap(src *Image, exposure, gamma float64, filmic bool) *Image {
	out := Expose(src, exposure)
	if filmic {
		return TonemapFilmic(out)
	}
	return LinearToGamma(out, gamma)
}

// RedPlane extracts the red channel as a scalar plane.
func RedPlane(src *Image) []float64 {
	return mapPlane(src, func(c fcolor.RGBA) float64 { return c.R })
}

// GreenPlane extracts the green channel as a scalar plane.
func GreenPlane(src *Image) []float64 {
	return mapPlane(src, func(c fcolor.RGBA) float64 { return c.G })
}

// BluePlane extracts the blue channel as a scalar plane.
func BluePlane(src *Image) []float64 {
	return mapPlane(src, func(c fcolor.RGBA) float64 { return c.B })
}

// AlphaPlane extracts the alpha channel as a scalar plane.
func AlphaPlane(src *Image) []float64 {
	return mapPlane(src, func(c fcolor.RGBA) float64 { return c.A })
}

// LuminancePlane reduces each pixel to its approximate luminance.
func LuminancePlane(src *Image) []float64 {
	return mapPlane(src, func(c fcolor.RGBA) float64 { return fcolor.Luminance(c.RGB()) })
}

// FromLuminance expands a scalar plane back into a gray opaque image. The
// plane must hold exactly width×height samples.
func FromLuminance(width, height int, lum []float64) (*Image, error) {
	if want := width * height; len(lum) != want {
		return nil, fmt.Errorf("luminance plane has %d samples, want %d", len(lum), want)
	}
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i, v := range lum {
		m.pix[i] = fcolor.RGBA{R: v, G: v, B: v, A: 1}
	}
	return m, nil
}

func mapPixels(src *Image, fn func(fcolor.RGBA) fcolor.RGBA) *Image {
	dst := &Image{
		width:  src.width,
		height: src.height,
		pix:    make([]fcolor.RGBA, len(src.pix)),
	}
	for i, c := range src.pix {
		dst.pix[i] = fn(c)
	}
	return dst
}

func mapPlane(src *Image, fn func(fcolor.RGBA) float64) []float64 {
	out := make([]float64, len(src.pix))
	for i, c := range src.pix {
		out[i] = fn(c)
	}
	return out
}

func rgba64(r, g, b, a float64) color.RGBA64 {
	return color.RGBA64{
		R: uint16(r*0xffff + 0.5),
		G: uint16(g*0xffff + 0.5),
		B: uint16(b*0xffff + 0.5),
		A: uint16(a*0xffff + 0.5),
	}
}
