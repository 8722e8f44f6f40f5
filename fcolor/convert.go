package fcolor

import "math"

// DefaultGamma is the display gamma assumed when callers do not pass one.
const DefaultGamma = 2.2

// FloatToByte converts one real component to its 8-bit form, clamping to
// [0,255]. The 256 factor gives every byte value an equal-width input bin.
func FloatToByte(x float64) uint8 {
	n := int(x * 256)
	if n < 0 {
		n = 0
	} else if n > 255 {
		n = 255
	}
	return uint8(n)
}

// ByteToFloat converts one 8-bit component to its real form in [0,1].
func ByteToFloat(b uint8) float64 {
	return float64(b) / 255
}

// GammaToLinear decodes a gamma-encoded color with a pure power law.
func GammaToLinear(c RGB, gamma float64) RGB {
	return RGB{
		math.Pow(c.R, gamma),
		math.Pow(c.G, gamma),
		math.Pow(c.B, gamma),
	}
}

// LinearToGamma encodes a linear color with a pure power law.
func LinearToGamma(c RGB, gamma float64) RGB {
	inv := 1 / gamma
	return RGB{
		math.Pow(c.R, inv),
		math.Pow(c.G, inv),
		math.Pow(c.B, inv),
	}
}

// Luminance is the unweighted channel mean. This is a deliberate
// approximation, not the CIE-weighted luminance.
func Luminance(c RGB) float64 {
	return (c.R + c.G + c.B) / 3
}

// HSVToRGB converts hue/saturation/value, all in [0,1], to RGB.
func HSVToRGB(hsv RGB) RGB {
	h, s, v := hsv.R, hsv.G, hsv.B
	if s == 0 {
		return RGB{v, v, v}
	}

	h = math.Mod(h, 1) * 6
	sector := int(h)
	f := h - float64(sector)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch sector {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}

// RGBToHSV converts RGB to hue/saturation/value, all in [0,1].
func RGBToHSV(rgb RGB) RGB {
	r, g, b := rgb.R, rgb.G, rgb.B
	k := 0.0
	if g < b {
		g, b = b, g
		k = -1
	}
	if r < g {
		r, g = g, r
		k = -2.0/6.0 - k
	}
	chroma := r - math.Min(g, b)
	return RGB{
		math.Abs(k + (g-b)/(6*chroma+1e-20)),
		chroma / (r + 1e-20),
		r,
	}
}

// XYZToXyY converts CIE XYZ to chromaticity plus luminance.
func XYZToXyY(xyz RGB) RGB {
	sum := xyz.R + xyz.G + xyz.B
	if sum == 0 {
		return RGB{}
	}
	return RGB{xyz.R / sum, xyz.G / sum, xyz.G}
}

// XyYToXYZ converts chromaticity plus luminance back to CIE XYZ.
func XyYToXYZ(xyY RGB) RGB {
	if xyY.G == 0 {
		return RGB{}
	}
	return RGB{
		xyY.R * xyY.B / xyY.G,
		xyY.B,
		(1 - xyY.R - xyY.G) * xyY.B / xyY.G,
	}
}

// XYZToRGB converts CIE XYZ to linear sRGB primaries.
// Matrix from https://en.wikipedia.org/wiki/SRGB
func XYZToRGB(xyz RGB) RGB {
	return RGB{
		+3.2404542*xyz.R - 1.5371385*xyz.G - 0.4985314*xyz.B,
		-0.9692660*xyz.R + 1.8760108*xyz.G + 0.0415560*xyz.B,
		+0.0556434*xyz.R - 0.2040259*xyz.G + 1.0572252*xyz.B,
	}
}

// RGBToXYZ converts linear sRGB primaries to CIE XYZ.
// Matrix from https://en.wikipedia.org/wiki/SRGB
func RGBToXYZ(rgb RGB) RGB {
	return RGB{
		0.4124564*rgb.R + 0.3575761*rgb.G + 0.1804375*rgb.B,
		0.2126729*rgb.R + 0.7151522*rgb.G + 0.0721750*rgb.B,
		0.0193339*rgb.R + 0.1191920*rgb.G + 0.9503041*rgb.B,
	}
}
