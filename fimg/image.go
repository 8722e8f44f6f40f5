// Package fimg implements the floating-point image buffer shared by the
// generators and the resampler, along with element-wise whole-image
// operations and conversions to and from the standard library image types.
package fimg

import (
	"fmt"
	"image"

	"pixsynth/fcolor"
)

// Image is a row-major grid of RGBA samples. The buffer exclusively owns its
// storage and its dimensions are immutable after creation. Sample values are
// unbounded; clamping happens only when converting to a byte representation.
type Image struct {
	width  int
	height int
	pix    []fcolor.RGBA
}

// New creates a width×height image with all samples zero.
// Non-positive dimensions are invalid.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]fcolor.RGBA, width*height),
	}, nil
}

// NewFilled creates a width×height image with every sample set to c.
func NewFilled(width, height int, c fcolor.RGBA) (*Image, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range m.pix {
		m.pix[i] = c
	}
	return m, nil
}

func (m *Image) Width() int {
	return m.width
}

func (m *Image) Height() int {
	return m.height
}

// Pix returns the underlying samples in row-major order.
func (m *Image) Pix() []fcolor.RGBA {
	return m.pix
}

func (m *Image) At(x, y int) fcolor.RGBA {
	return m.pix[y*m.width+x]
}

func (m *Image) Set(x, y int, c fcolor.RGBA) {
	m.pix[y*m.width+x] = c
}

// Row returns the samples of one row as a slice into the buffer.
func (m *Image) Row(y int) []fcolor.RGBA {
	return m.pix[y*m.width : (y+1)*m.width]
}

// FromImage converts any decoded image to float samples in [0,1].
// The 16-bit values reported by the color interface are scaled directly, so
// 8-bit sources round-trip through FloatToByte within 1/255.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	m, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("unusable source image: %w", err)
	}

	for y := range m.height {
		for x := range m.width {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			m.Set(x, y, fcolor.RGBA{
				R: float64(r) / 0xffff,
				G: float64(g) / 0xffff,
				B: float64(b) / 0xffff,
				A: float64(a) / 0xffff,
			})
		}
	}
	return m, nil
}

// ToNRGBA converts to an 8-bit non-premultiplied image, clamping each
// component to [0,255].
func (m *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := range m.height {
		row := m.Row(y)
		for x, c := range row {
			i := y*dst.Stride + x*4
			dst.Pix[i+0] = fcolor.FloatToByte(c.R)
			dst.Pix[i+1] = fcolor.FloatToByte(c.G)
			dst.Pix[i+2] = fcolor.FloatToByte(c.B)
			dst.Pix[i+3] = fcolor.FloatToByte(c.A)
		}
	}
	return dst
}

// ToRGBA64 converts to the 16-bit premultiplied form native to the image
// package, clamping each component to [0,1] first.
func (m *Image) ToRGBA64() *image.RGBA64 {
	dst := image.NewRGBA64(image.Rect(0, 0, m.width, m.height))
	for y := range m.height {
		row := m.Row(y)
		for x, c := range row {
			c = c.Clamp(0, 1)
			dst.SetRGBA64(x, y, rgba64(c.R*c.A, c.G*c.A, c.B*c.A, c.A))
		}
	}
	return dst
}
