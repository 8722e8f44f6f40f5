package sky

import (
	"math"
	"testing"

	"pixsynth/fcolor"
)

func TestSunSkyGroundFill(t *testing.T) {
	img, err := MakeSunSky(64, 32, math.Pi/4, 3, false, DefaultGroundAlbedo)
	if err != nil {
		t.Fatalf("MakeSunSky failed: %v", err)
	}
	want := DefaultGroundAlbedo.WithAlpha(1)
	for j := 16; j < 32; j++ {
		for i := range 64 {
			if got := img.At(i, j); got != want {
				t.Fatalf("below-horizon pixel (%d,%d) = %v, want ground albedo %v", i, j, got, want)
			}
		}
	}
}

func TestSunSkyAboveHorizonFinite(t *testing.T) {
	for _, turbidity := range []float64{1.7, 3, 6, 10} {
		for _, thetaSun := range []float64{0, math.Pi / 6, math.Pi / 4, math.Pi/2 - 0.05} {
			img, err := MakeSunSky(32, 16, thetaSun, turbidity, true, DefaultGroundAlbedo)
			if err != nil {
				t.Fatalf("MakeSunSky failed: %v", err)
			}
			for j := range 8 {
				for i := range 32 {
					c := img.At(i, j)
					for _, v := range []float64{c.R, c.G, c.B} {
						if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
							t.Fatalf("turbidity %v sun %v: pixel (%d,%d) = %v",
								turbidity, thetaSun, i, j, c)
						}
					}
					if c.A != 1 {
						t.Fatalf("pixel (%d,%d) alpha = %v, want 1", i, j, c.A)
					}
				}
			}
		}
	}
}

func TestSunSkyDeterministic(t *testing.T) {
	a, _ := MakeSunSky(32, 16, math.Pi/4, 3, true, DefaultGroundAlbedo)
	b, _ := MakeSunSky(32, 16, math.Pi/4, 3, true, DefaultGroundAlbedo)
	for j := range 16 {
		for i := range 32 {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("pixel (%d,%d) differs between identical renders", i, j)
			}
		}
	}
}

func TestSunAddsRadiance(t *testing.T) {
	// The solar disk is smaller than a pixel at modest resolutions, so put the
	// sun exactly on a pixel center: θ hits row 31 of 128 and φ=π/2 hits
	// column 31 of 126.
	thetaSun := math.Pi * 31.5 / 128
	withSun, err := MakeSunSky(126, 128, thetaSun, 3, true, DefaultGroundAlbedo)
	if err != nil {
		t.Fatalf("MakeSunSky failed: %v", err)
	}
	noSun, err := MakeSunSky(126, 128, thetaSun, 3, false, DefaultGroundAlbedo)
	if err != nil {
		t.Fatalf("MakeSunSky failed: %v", err)
	}

	a, b := withSun.At(31, 31), noSun.At(31, 31)
	if lum(a) <= lum(b) {
		t.Errorf("sun pixel %v not brighter than sunless sky %v", a, b)
	}

	// The disk is tiny; pixels away from it must be untouched.
	if got, want := withSun.At(90, 20), noSun.At(90, 20); got != want {
		t.Errorf("far-from-sun pixel changed: %v != %v", got, want)
	}
}

func TestSunSkyBrighterTowardSun(t *testing.T) {
	// Forward scattering: the sky near the sun outshines the opposite azimuth.
	img, _ := MakeSunSky(64, 32, math.Pi/4, 3, false, DefaultGroundAlbedo)
	// Sun azimuth is π/2 (direction {0,cosθ,sinθ}), i.e. column 15 of 64.
	near := img.At(15, 8)
	far := img.At(47, 8)
	if lum(near) <= lum(far) {
		t.Errorf("near-sun sky %v not brighter than opposite sky %v", near, far)
	}
}

func TestSunSkyValidation(t *testing.T) {
	if _, err := MakeSunSky(0, 16, math.Pi/4, 3, false, DefaultGroundAlbedo); err == nil {
		t.Error("zero width accepted")
	}
}

func TestMakeLights(t *testing.T) {
	le := fcolor.RGB{R: 10, G: 10, B: 10}
	img, err := MakeLights(128, 64, le, 4, math.Pi/4, math.Pi/16, math.Pi/16)
	if err != nil {
		t.Fatalf("MakeLights failed: %v", err)
	}

	lit, unlit := 0, 0
	emit := le.WithAlpha(1)
	black := fcolor.RGBA{A: 1}
	for j := range 64 {
		for i := range 128 {
			switch img.At(i, j) {
			case emit:
				lit++
			case black:
				unlit++
			default:
				t.Fatalf("pixel (%d,%d) = %v, want emitter or black", i, j, img.At(i, j))
			}
		}
	}
	if lit == 0 {
		t.Error("no emitter pixels rendered")
	}
	if unlit == 0 {
		t.Error("whole image lit")
	}

	// First emitter center: θ=π/4 (row 15 of 64), φ=π/4 (column 15 of 128).
	if img.At(15, 15) != emit {
		t.Errorf("emitter center = %v, want %v", img.At(15, 15), emit)
	}
	if img.At(64, 40) != black {
		t.Errorf("far-from-emitter pixel = %v, want black", img.At(64, 40))
	}
}

func TestMakeLightsValidation(t *testing.T) {
	if _, err := MakeLights(16, 0, fcolor.RGB{}, 4, math.Pi/4, math.Pi/16, math.Pi/16); err == nil {
		t.Error("zero height accepted")
	}
}

func lum(c fcolor.RGBA) float64 {
	return c.R + c.G + c.B
}
