package fcolor

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func rgbAlmostEqual(a, b RGB, tol float64) bool {
	return almostEqual(a.R, b.R, tol) && almostEqual(a.G, b.G, tol) && almostEqual(a.B, b.B, tol)
}

func TestByteFloatRoundTrip(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		x := float64(i) / 1000
		got := ByteToFloat(FloatToByte(x))
		if !almostEqual(got, x, 1.0/255) {
			t.Errorf("round trip of %v gave %v, off by more than 1/255", x, got)
		}
	}
}

func TestFloatToByteClamps(t *testing.T) {
	cases := []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{1, 255},
		{2.5, 255},
		{0.5, 128},
	}
	for _, c := range cases {
		if got := FloatToByte(c.in); got != c.want {
			t.Errorf("FloatToByte(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestGammaRoundTrip(t *testing.T) {
	c := RGB{R: 0.2, G: 0.5, B: 0.9}
	got := GammaToLinear(LinearToGamma(c, DefaultGamma), DefaultGamma)
	if !rgbAlmostEqual(got, c, 1e-12) {
		t.Errorf("gamma round trip of %v gave %v", c, got)
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(RGB{R: 0.3, G: 0.6, B: 0.9}); !almostEqual(got, 0.6, 1e-12) {
		t.Errorf("Luminance = %v, want 0.6", got)
	}
}

func TestRGBXYZRoundTrip(t *testing.T) {
	colors := []RGB{
		{0.1, 0.2, 0.3},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.7, 0.7, 0.7},
	}
	for _, c := range colors {
		got := XYZToRGB(RGBToXYZ(c))
		if !rgbAlmostEqual(got, c, 1e-5) {
			t.Errorf("rgb->xyz->rgb of %v gave %v", c, got)
		}
	}
}

func TestXyYRoundTrip(t *testing.T) {
	xyz := RGB{R: 0.4, G: 0.5, B: 0.3}
	got := XyYToXYZ(XYZToXyY(xyz))
	if !rgbAlmostEqual(got, xyz, 1e-12) {
		t.Errorf("xyz->xyY->xyz of %v gave %v", xyz, got)
	}
	if got := XYZToXyY(RGB{}); got != (RGB{}) {
		t.Errorf("XYZToXyY of black = %v, want zero", got)
	}
	if got := XyYToXYZ(RGB{}); got != (RGB{}) {
		t.Errorf("XyYToXYZ of zero = %v, want zero", got)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := []RGB{
		{0.8, 0.2, 0.1},
		{0.1, 0.8, 0.2},
		{0.2, 0.1, 0.8},
		{0.9, 0.9, 0.1},
		{0.25, 0.5, 0.75},
	}
	for _, c := range colors {
		got := HSVToRGB(RGBToHSV(c))
		if !rgbAlmostEqual(got, c, 1e-6) {
			t.Errorf("rgb->hsv->rgb of %v gave %v", c, got)
		}
	}
}

func TestHSVGray(t *testing.T) {
	got := HSVToRGB(RGB{R: 0.37, G: 0, B: 0.6})
	if !rgbAlmostEqual(got, RGB{0.6, 0.6, 0.6}, 1e-12) {
		t.Errorf("zero saturation gave %v, want gray", got)
	}
}

func TestLerp(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{1, 2, 3}
	if got := a.Lerp(b, 0.5); !rgbAlmostEqual(got, RGB{0.5, 1, 1.5}, 1e-12) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at 0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at 1 = %v, want %v", got, b)
	}
}
