package resample

import (
	"fmt"
	"math"

	"pixsynth/fcolor"
	"pixsynth/fimg"
	"pixsynth/parallel"
)

// Options controls a resize. The zero value selects the Catmull-Rom kernel
// with clamped edges, straight alpha and one worker per CPU.
type Options struct {
	Filter Filter
	Edge   Edge
	// PremultiplyAlpha scales color by alpha before filtering and divides it
	// out afterwards, so transparent samples cannot bleed color into opaque
	// neighbors.
	PremultiplyAlpha bool
	// Workers limits the per-row fan-out. 0 means one per CPU.
	Workers int
}

// tap is one weighted source sample contributing to a destination sample.
// src is -1 when the edge policy maps the tap to a zero sample.
type tap struct {
	src    int
	weight float64
}

// Resize resamples src to width×height. The same machinery serves
// upsampling and downsampling; callers picking a low-order kernel at a large
// downscale ratio accept the aliasing that comes with it.
func Resize(src *fimg.Image, width, height int, opts Options) (*fimg.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source image")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target dimensions: %dx%d", width, height)
	}

	in := src
	if opts.PremultiplyAlpha {
		var err error
		if in, err = premultiply(src); err != nil {
			return nil, err
		}
	}

	// The horizontal pass touches samples adjacent in memory, the vertical
	// pass does not, so run the shrinking dimension first to keep the larger
	// intermediate out of the slow pass.
	var out *fimg.Image
	var err error
	if width <= src.Width() {
		if out, err = resizeHorizontal(in, width, opts); err == nil {
			out, err = resizeVertical(out, height, opts)
		}
	} else {
		if out, err = resizeVertical(in, height, opts); err == nil {
			out, err = resizeHorizontal(out, width, opts)
		}
	}
	if err != nil {
		return nil, err
	}

	if opts.PremultiplyAlpha {
		unpremultiply(out)
	}
	return out, nil
}

// makeTaps builds the weight list for one dimension: for every destination
// sample, the source window under the kernel's support and the normalized
// weights over it.
func makeTaps(srcN, dstN int, filter Filter, edge Edge) [][]tap {
	// When shrinking, the kernel is stretched by the reduction factor so its
	// support covers the whole source footprint of a destination sample.
	reduction := 1.0
	if dstN < srcN {
		reduction = float64(srcN) / float64(dstN)
	}
	radius := filter.Radius() * reduction

	taps := make([][]tap, dstN)
	for d := range dstN {
		pos := (float64(d)+0.5)*float64(srcN)/float64(dstN) - 0.5
		first := int(math.Ceil(pos - radius - 1e-6))
		last := int(math.Floor(pos + radius + 1e-6))

		list := make([]tap, 0, last-first+1)
		norm := 0.0
		for s := first; s <= last; s++ {
			w := filter.Weight(math.Abs(float64(s)-pos) / reduction)
			if w == 0 {
				continue
			}
			list = append(list, tap{src: edge.remap(s, srcN), weight: w})
			norm += w
		}

		// A sane kernel never sums to zero over its own support, but guard
		// the division anyway.
		if math.Abs(norm) < 1e-9 {
			norm = 1e-9
		}
		for i := range list {
			list[i].weight /= norm
		}
		taps[d] = list
	}
	return taps
}

func resizeHorizontal(src *fimg.Image, width int, opts Options) (*fimg.Image, error) {
	dst, err := fimg.New(width, src.Height())
	if err != nil {
		return nil, err
	}
	taps := makeTaps(src.Width(), width, opts.Filter, opts.Edge)

	parallel.Rows(opts.Workers, src.Height(), func(y int) {
		srcRow := src.Row(y)
		dstRow := dst.Row(y)
		for d, list := range taps {
			var acc fcolor.RGBA
			for _, t := range list {
				if t.src < 0 {
					continue
				}
				acc = acc.Add(srcRow[t.src].Scale(t.weight))
			}
			dstRow[d] = acc
		}
	})
	return dst, nil
}

func resizeVertical(src *fimg.Image, height int, opts Options) (*fimg.Image, error) {
	dst, err := fimg.New(src.Width(), height)
	if err != nil {
		return nil, err
	}
	taps := makeTaps(src.Height(), height, opts.Filter, opts.Edge)

	parallel.Rows(opts.Workers, height, func(d int) {
		dstRow := dst.Row(d)
		for _, t := range taps[d] {
			if t.src < 0 {
				continue
			}
			srcRow := src.Row(t.src)
			for x := range dstRow {
				dstRow[x] = dstRow[x].Add(srcRow[x].Scale(t.weight))
			}
		}
	})
	return dst, nil
}

func premultiply(src *fimg.Image) (*fimg.Image, error) {
	dst, err := fimg.New(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	for y := range src.Height() {
		srcRow := src.Row(y)
		dstRow := dst.Row(y)
		for x, c := range srcRow {
			dstRow[x] = fcolor.RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
		}
	}
	return dst, nil
}

func unpremultiply(m *fimg.Image) {
	for y := range m.Height() {
		row := m.Row(y)
		for x, c := range row {
			if c.A != 0 {
				row[x] = fcolor.RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
			}
		}
	}
}
