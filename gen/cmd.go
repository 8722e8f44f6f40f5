// Package gen is the CLI front-end for the procedural generators. It renders
// an image with the requested parameters, tonemaps HDR output for LDR
// encoding and writes the result through the imgio boundary.
package gen

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/alecthomas/kong"

	"pixsynth/fcolor"
	"pixsynth/fimg"
	"pixsynth/imgio"
	"pixsynth/noise"
	"pixsynth/pattern"
	"pixsynth/sky"
)

type outParams struct {
	Out    string `help:"Output file" default:"out.png"`
	Width  int    `help:"Image width" default:"512"`
	Height int    `help:"Image height" default:"512"`
	Format string `help:"Output format, 'auto' picks by extension" enum:"auto,png,jpeg,gif,bmp,tiff" default:"auto"`
}

type tileParams struct {
	Tile   int    `help:"Tile size in pixels" default:"8"`
	Color0 string `help:"First tile color" default:"#808080"`
	Color1 string `help:"Second tile color" default:"#cccccc"`

	c0, c1 fcolor.RGB
}

type fractalParams struct {
	Scale      float64 `help:"Field frequency across the image" default:"8"`
	Lacunarity float64 `help:"Frequency multiplier per octave" default:"2"`
	Gain       float64 `help:"Amplitude multiplier per octave" default:"0.5"`
	Octaves    int     `help:"Number of octaves" default:"6"`
	Wrap       bool    `help:"Tile seamlessly (power-of-two sizes only)" default:"true"`
}

type tonemapParams struct {
	Exposure float64 `help:"Exposure stops applied before encoding" default:"0"`
	Gamma    float64 `help:"Display gamma" default:"2.2"`
	Filmic   bool    `help:"Use the filmic curve instead of plain gamma" default:"false"`
}

type CLICmd struct {
	Sunsky struct {
		outParams
		tonemapParams
		SunAngle  float64 `help:"Sun angle from the zenith, degrees" default:"45"`
		Turbidity float64 `help:"Atmospheric haze, nominal range 1.7-10" default:"3"`
		Sun       bool    `help:"Draw the solar disk" default:"false"`
		Ground    string  `help:"Ground albedo color" default:"#b3b3b3"`

		ground fcolor.RGB
	} `cmd:"" help:"Analytic sun-sky radiance image"`

	Lights struct {
		outParams
		tonemapParams
		Num    int     `help:"Number of lights" default:"4"`
		Angle  float64 `help:"Light row angle from the zenith, degrees" default:"45"`
		Extent float64 `help:"Angular size of each light, degrees" default:"11.25"`
	} `cmd:"" help:"Black environment with rectangular area lights"`

	Noise struct {
		outParams
		Scale float64 `help:"Field frequency across the image" default:"8"`
		Wrap  bool    `help:"Tile seamlessly (power-of-two sizes only)" default:"true"`
	} `cmd:"" help:"Base gradient-noise field"`
	Fbm struct {
		outParams
		fractalParams
	} `cmd:"" help:"Fractal brownian motion"`
	Ridge struct {
		outParams
		fractalParams
		Offset float64 `help:"Ridge inversion offset" default:"1"`
	} `cmd:"" help:"Ridged multifractal noise"`
	Turbulence struct {
		outParams
		fractalParams
	} `cmd:"" help:"Rectified fractal noise"`

	Checker struct {
		outParams
		tileParams
	} `cmd:"" help:"Checkerboard"`
	Grid struct {
		outParams
		tileParams
	} `cmd:"" help:"Tile-border grid"`
	Ramp struct {
		outParams
		Color0 string `help:"Left edge color" default:"#000000"`
		Color1 string `help:"Right edge color" default:"#ffffff"`

		c0, c1 fcolor.RGB
	} `cmd:"" help:"Horizontal color ramp"`
	Gammaramp struct {
		outParams
	} `cmd:"" help:"Three-band gamma test ramp"`
	Uv struct {
		outParams
	} `cmd:"" help:"Texture-coordinate image"`
	Uvgrid struct {
		outParams
		Tile    int  `help:"Tile size in pixels" default:"8"`
		Colored bool `help:"Hue-code the tiles" default:"true"`
	} `cmd:"" help:"Texture-debug grid"`
	Bumpdimple struct {
		outParams
		Tile   int  `help:"Tile size in pixels" default:"8"`
		Normal bool `help:"Convert the height field to a normal map" default:"false"`
	} `cmd:"" help:"Bump/dimple height field"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	switch kctx.Selected().Name {
	case "sunsky":
		if c.Sunsky.ground, err = parseColor(c.Sunsky.Ground); err != nil {
			return err
		}
	case "checker":
		err = c.Checker.tileParams.parse()
	case "grid":
		err = c.Grid.tileParams.parse()
	case "ramp":
		if c.Ramp.c0, err = parseColor(c.Ramp.Color0); err != nil {
			return err
		}
		c.Ramp.c1, err = parseColor(c.Ramp.Color1)
	}
	return err
}

func (t *tileParams) parse() error {
	var err error
	if t.c0, err = parseColor(t.Color0); err != nil {
		return err
	}
	t.c1, err = parseColor(t.Color1)
	return err
}

// Run renders the selected generator and saves the result. subCmd is the
// leaf command name from the parse context.
func (c *CLICmd) Run(subCmd string) error {
	img, out, err := c.render(subCmd)
	if err != nil {
		return err
	}

	format := out.Format
	if format == "auto" {
		format = imgio.FormatFromExt(out.Out)
	}

	dir, name := filepath.Split(out.Out)
	if dir == "" {
		dir = "."
	}
	slog.Info("writing", "file", out.Out, "format", format, "width", img.Width(), "height", img.Height())
	return imgio.Save(img.ToNRGBA(), dir, name, format)
}

func (c *CLICmd) render(subCmd string) (*fimg.Image, *outParams, error) {
	switch subCmd {
	case "sunsky":
		p := &c.Sunsky
		img, err := sky.MakeSunSky(p.Width, p.Height, radians(p.SunAngle), p.Turbidity, p.Sun, p.ground)
		if err != nil {
			return nil, nil, err
		}
		return fimg.Tonemap(img, p.Exposure, p.Gamma, p.Filmic), &p.outParams, nil
	case "lights":
		p := &c.Lights
		img, err := sky.MakeLights(p.Width, p.Height, fcolor.RGB{R: 1, G: 1, B: 1},
			p.Num, radians(p.Angle), radians(p.Extent), radians(p.Extent))
		if err != nil {
			return nil, nil, err
		}
		return fimg.Tonemap(img, p.Exposure, p.Gamma, p.Filmic), &p.outParams, nil
	case "noise":
		p := &c.Noise
		img, err := noise.MakeNoise(p.Width, p.Height, p.Scale, p.Wrap)
		return img, &p.outParams, err
	case "fbm":
		p := &c.Fbm
		img, err := noise.MakeFBM(p.Width, p.Height, p.Scale, p.Lacunarity, p.Gain, p.Octaves, p.Wrap)
		return img, &p.outParams, err
	case "ridge":
		p := &c.Ridge
		img, err := noise.MakeRidge(p.Width, p.Height, p.Scale, p.Lacunarity, p.Gain, p.Offset, p.Octaves, p.Wrap)
		return img, &p.outParams, err
	case "turbulence":
		p := &c.Turbulence
		img, err := noise.MakeTurbulence(p.Width, p.Height, p.Scale, p.Lacunarity, p.Gain, p.Octaves, p.Wrap)
		return img, &p.outParams, err
	case "checker":
		p := &c.Checker
		img, err := pattern.MakeChecker(p.Width, p.Height, p.Tile, p.c0, p.c1)
		return img, &p.outParams, err
	case "grid":
		p := &c.Grid
		img, err := pattern.MakeGrid(p.Width, p.Height, p.Tile, p.c0, p.c1)
		return img, &p.outParams, err
	case "ramp":
		p := &c.Ramp
		img, err := pattern.MakeRamp(p.Width, p.Height, p.c0, p.c1)
		return img, &p.outParams, err
	case "gammaramp":
		p := &c.Gammaramp
		img, err := pattern.MakeGammaRamp(p.Width, p.Height)
		return img, &p.outParams, err
	case "uv":
		p := &c.Uv
		img, err := pattern.MakeUV(p.Width, p.Height)
		return img, &p.outParams, err
	case "uvgrid":
		p := &c.Uvgrid
		img, err := pattern.MakeUVGrid(p.Width, p.Height, p.Tile, p.Colored)
		return img, &p.outParams, err
	case "bumpdimple":
		p := &c.Bumpdimple
		img, err := pattern.MakeBumpDimple(p.Width, p.Height, p.Tile)
		if err != nil {
			return nil, nil, err
		}
		if p.Normal {
			if img, err = pattern.BumpToNormal(img, 1); err != nil {
				return nil, nil, err
			}
		}
		return img, &p.outParams, nil
	default:
		return nil, nil, fmt.Errorf("unsupported generator: %s", subCmd)
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// parseColor reads a #RGB, #RGBA, #RRGGBB or #RRGGBBAA hex color into real
// components; alpha, if present, is ignored by the generators.
func parseColor(s string) (fcolor.RGB, error) {
	var r, g, b, a uint8
	a = 0xff
	var n int
	var err error
	switch len(s) {
	case 4:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 5:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 7:
		n, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	case 9:
		n, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return fcolor.RGB{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return fcolor.RGB{}, fmt.Errorf("could not read color %q: %w", s, err)
	}
	if n < 3 {
		return fcolor.RGB{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}
	return fcolor.RGB{
		R: fcolor.ByteToFloat(r),
		G: fcolor.ByteToFloat(g),
		B: fcolor.ByteToFloat(b),
	}, nil
}
