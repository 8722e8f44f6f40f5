// Package pattern generates small reference images: grids, checkers, ramps,
// uv maps and bump test patterns. These are thin pure generators used to
// exercise and debug the rest of the pipeline.
package pattern

import (
	"fmt"
	"math"

	"pixsynth/fcolor"
	"pixsynth/fimg"
)

// Default tile size and colors for the tiled patterns.
var (
	DefaultTile   = 8
	DefaultColor0 = fcolor.RGB{R: 0.5, G: 0.5, B: 0.5}
	DefaultColor1 = fcolor.RGB{R: 0.8, G: 0.8, B: 0.8}
)

// MakeGrid draws tile borders in c0 over a c1 interior.
func MakeGrid(width, height, tile int, c0, c1 fcolor.RGB) (*fimg.Image, error) {
	return makeTiled(width, height, tile, func(i, j int) fcolor.RGB {
		onBorder := i%tile == 0 || i%tile == tile-1 || j%tile == 0 || j%tile == tile-1
		if onBorder {
			return c0
		}
		return c1
	})
}

// MakeChecker draws a checkerboard with tile-sized squares, c0 first.
func MakeChecker(width, height, tile int, c0, c1 fcolor.RGB) (*fimg.Image, error) {
	return makeTiled(width, height, tile, func(i, j int) fcolor.RGB {
		if (i/tile+j/tile)%2 == 0 {
			return c0
		}
		return c1
	})
}

// MakeBumpDimple draws a checkered height field of bumps and dimples around
// mid gray, for bump-mapping tests.
func MakeBumpDimple(width, height, tile int) (*fimg.Image, error) {
	half := float64(tile) / 2
	return makeTiled(width, height, tile, func(i, j int) fcolor.RGB {
		up := (i/tile+j/tile)%2 == 0
		ii := float64(i%tile) - half
		jj := float64(j%tile) - half
		r := math.Sqrt(ii*ii+jj*jj) / half
		h := 0.5
		if r < 0.5 {
			if up {
				h += 0.5 - r
			} else {
				h -= 0.5 - r
			}
		}
		return fcolor.RGB{R: h, G: h, B: h}
	})
}

// MakeRamp draws a horizontal linear ramp from c0 at the left edge to c1 at
// the right edge.
func MakeRamp(width, height int, c0, c1 fcolor.RGB) (*fimg.Image, error) {
	return makePixels(width, height, func(i, j int) fcolor.RGB {
		u := 0.0
		if width > 1 {
			u = float64(i) / float64(width-1)
		}
		return c0.Lerp(c1, u)
	})
}

// MakeGammaRamp draws a gray ramp in three horizontal bands: linear,
// gamma-encoded and gamma-decoded, for checking a display's response.
func MakeGammaRamp(width, height int) (*fimg.Image, error) {
	return makePixels(width, height, func(i, j int) fcolor.RGB {
		u := 0.0
		if width > 1 {
			u = float64(i) / float64(width-1)
		}
		switch (3 * j) / height {
		case 1:
			u = math.Pow(u, 1/fcolor.DefaultGamma)
		case 2:
			u = math.Pow(u, fcolor.DefaultGamma)
		}
		return fcolor.RGB{R: u, G: u, B: u}
	})
}

// MakeUV encodes texture coordinates as red=u, green=v.
func MakeUV(width, height int) (*fimg.Image, error) {
	return makePixels(width, height, func(i, j int) fcolor.RGB {
		var u, v float64
		if width > 1 {
			u = float64(i) / float64(width-1)
		}
		if height > 1 {
			v = float64(j) / float64(height-1)
		}
		return fcolor.RGB{R: u, G: v}
	})
}

// MakeUVGrid draws the classic texture-debug grid: every tile gets its own
// hue, with checker parity varying the value so neighboring tiles always
// read differently. With colored false the tiles are grayscale.
func MakeUVGrid(width, height, tile int, colored bool) (*fimg.Image, error) {
	if tile <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", tile)
	}
	cellsX := max(width/tile, 1)
	cellsY := max(height/tile, 1)
	return makeTiled(width, height, tile, func(i, j int) fcolor.RGB {
		ii, jj := i/tile, j/tile
		hue := math.Mod(float64(ii+jj*cellsX)/float64(cellsX*cellsY), 1)
		value := 0.5
		if (ii+jj)%2 == 0 {
			value = 0.8
		}
		saturation := 0.75
		if !colored {
			saturation = 0
		}
		return fcolor.HSVToRGB(fcolor.RGB{R: hue, G: saturation, B: value})
	})
}

func makeTiled(width, height, tile int, fn func(i, j int) fcolor.RGB) (*fimg.Image, error) {
	if tile <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", tile)
	}
	return makePixels(width, height, fn)
}

func makePixels(width, height int, fn func(i, j int) fcolor.RGB) (*fimg.Image, error) {
	img, err := fimg.New(width, height)
	if err != nil {
		return nil, err
	}
	for j := range height {
		row := img.Row(j)
		for i := range row {
			row[i] = fn(i, j).WithAlpha(1)
		}
	}
	return img, nil
}
