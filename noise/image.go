package noise

import (
	"pixsynth/fcolor"
	"pixsynth/fimg"
	"pixsynth/parallel"
)

// The image makers sample their field at (i/width, j/height, 0.5)·scale,
// remap [-1,1] to [0,1] and clamp. With wrap enabled the field tiles at the
// image resolution, which is only seam-free when both dimensions are powers
// of two.

// MakeNoise renders the base noise field as a grayscale image.
func MakeNoise(width, height int, scale float64, wrap bool) (*fimg.Image, error) {
	return makeField(width, height, wrap, func(x, y, z float64, w Wrap) float64 {
		return Noise(x*scale, y*scale, z*scale, w)
	})
}

// MakeFBM renders fractal brownian motion as a grayscale image.
func MakeFBM(width, height int, scale, lacunarity, gain float64, octaves int, wrap bool) (*fimg.Image, error) {
	return makeField(width, height, wrap, func(x, y, z float64, w Wrap) float64 {
		return FBM(x*scale, y*scale, z*scale, lacunarity, gain, octaves, w)
	})
}

// MakeRidge renders ridged multifractal noise as a grayscale image.
func MakeRidge(width, height int, scale, lacunarity, gain, offset float64, octaves int, wrap bool) (*fimg.Image, error) {
	return makeField(width, height, wrap, func(x, y, z float64, w Wrap) float64 {
		return Ridge(x*scale, y*scale, z*scale, lacunarity, gain, offset, octaves, w)
	})
}

// MakeTurbulence renders turbulence as a grayscale image.
func MakeTurbulence(width, height int, scale, lacunarity, gain float64, octaves int, wrap bool) (*fimg.Image, error) {
	return makeField(width, height, wrap, func(x, y, z float64, w Wrap) float64 {
		return Turbulence(x*scale, y*scale, z*scale, lacunarity, gain, octaves, w)
	})
}

func makeField(width, height int, wrap bool, field func(x, y, z float64, w Wrap) float64) (*fimg.Image, error) {
	img, err := fimg.New(width, height)
	if err != nil {
		return nil, err
	}

	var w Wrap
	if wrap {
		w = Wrap{X: width, Y: height}
	}

	parallel.Rows(0, height, func(j int) {
		row := img.Row(j)
		y := float64(j) / float64(height)
		for i := range row {
			x := float64(i) / float64(width)
			g := 0.5 + 0.5*field(x, y, 0.5, w)
			if g < 0 {
				g = 0
			} else if g > 1 {
				g = 1
			}
			row[i] = fcolor.RGBA{R: g, G: g, B: g, A: 1}
		}
	})
	return img, nil
}
