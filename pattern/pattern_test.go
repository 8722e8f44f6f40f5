package pattern

import (
	"math"
	"testing"

	"pixsynth/fcolor"
)

var (
	red  = fcolor.RGB{R: 1}
	blue = fcolor.RGB{B: 1}
)

func TestMakeChecker(t *testing.T) {
	img, err := MakeChecker(16, 16, 4, red, blue)
	if err != nil {
		t.Fatalf("MakeChecker failed: %v", err)
	}
	cases := []struct {
		i, j int
		want fcolor.RGB
	}{
		{0, 0, red},
		{3, 3, red},
		{4, 0, blue},
		{0, 4, blue},
		{4, 4, red},
		{15, 15, red},
		{12, 8, blue},
	}
	for _, c := range cases {
		if got := img.At(c.i, c.j); got != c.want.WithAlpha(1) {
			t.Errorf("checker pixel (%d,%d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestMakeGrid(t *testing.T) {
	img, err := MakeGrid(16, 16, 4, red, blue)
	if err != nil {
		t.Fatalf("MakeGrid failed: %v", err)
	}
	border := red.WithAlpha(1)
	interior := blue.WithAlpha(1)
	if got := img.At(0, 5); got != border {
		t.Errorf("left border = %v, want %v", got, border)
	}
	if got := img.At(3, 5); got != border {
		t.Errorf("tile-edge column = %v, want %v", got, border)
	}
	if got := img.At(5, 6); got != interior {
		t.Errorf("interior = %v, want %v", got, interior)
	}
}

func TestTileValidation(t *testing.T) {
	if _, err := MakeChecker(16, 16, 0, red, blue); err == nil {
		t.Error("zero tile accepted")
	}
	if _, err := MakeGrid(16, 16, -2, red, blue); err == nil {
		t.Error("negative tile accepted")
	}
	if _, err := MakeUVGrid(16, 16, 0, true); err == nil {
		t.Error("zero tile accepted by uv grid")
	}
	if _, err := MakeChecker(0, 16, 4, red, blue); err == nil {
		t.Error("zero width accepted")
	}
}

func TestMakeRampEndpoints(t *testing.T) {
	img, err := MakeRamp(8, 2, red, blue)
	if err != nil {
		t.Fatalf("MakeRamp failed: %v", err)
	}
	if got := img.At(0, 0); got != red.WithAlpha(1) {
		t.Errorf("left edge = %v, want %v", got, red)
	}
	if got := img.At(7, 1); got != blue.WithAlpha(1) {
		t.Errorf("right edge = %v, want %v", got, blue)
	}
	mid := img.At(3, 0)
	if mid.R <= 0 || mid.R >= 1 || mid.B <= 0 || mid.B >= 1 {
		t.Errorf("midpoint = %v, want a blend", mid)
	}
}

func TestMakeGammaRampBands(t *testing.T) {
	img, err := MakeGammaRamp(9, 9)
	if err != nil {
		t.Fatalf("MakeGammaRamp failed: %v", err)
	}
	u := 4.0 / 8
	linear := img.At(4, 1).R
	encoded := img.At(4, 4).R
	decoded := img.At(4, 7).R
	if math.Abs(linear-u) > 1e-12 {
		t.Errorf("linear band = %v, want %v", linear, u)
	}
	if math.Abs(encoded-math.Pow(u, 1/fcolor.DefaultGamma)) > 1e-12 {
		t.Errorf("encoded band = %v", encoded)
	}
	if math.Abs(decoded-math.Pow(u, fcolor.DefaultGamma)) > 1e-12 {
		t.Errorf("decoded band = %v", decoded)
	}
	// Both edges stay gray in every band.
	for _, j := range []int{1, 4, 7} {
		if c := img.At(0, j); c.R != 0 || c.G != 0 || c.B != 0 {
			t.Errorf("band %d left edge = %v, want black", j, c)
		}
		if c := img.At(8, j); c.R != 1 || c.G != 1 || c.B != 1 {
			t.Errorf("band %d right edge = %v, want white", j, c)
		}
	}
}

func TestMakeUVCorners(t *testing.T) {
	img, err := MakeUV(8, 4)
	if err != nil {
		t.Fatalf("MakeUV failed: %v", err)
	}
	cases := []struct {
		i, j int
		want fcolor.RGBA
	}{
		{0, 0, fcolor.RGBA{A: 1}},
		{7, 0, fcolor.RGBA{R: 1, A: 1}},
		{0, 3, fcolor.RGBA{G: 1, A: 1}},
		{7, 3, fcolor.RGBA{R: 1, G: 1, A: 1}},
	}
	for _, c := range cases {
		if got := img.At(c.i, c.j); got != c.want {
			t.Errorf("uv corner (%d,%d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestMakeUVGrid(t *testing.T) {
	img, err := MakeUVGrid(32, 32, 8, true)
	if err != nil {
		t.Fatalf("MakeUVGrid failed: %v", err)
	}
	// Tiles are flat: every pixel inside a tile matches its top-left corner.
	c := img.At(8, 8)
	for j := 8; j < 16; j++ {
		for i := 8; i < 16; i++ {
			if img.At(i, j) != c {
				t.Fatalf("tile not flat at (%d,%d): %v != %v", i, j, img.At(i, j), c)
			}
		}
	}
	// Neighboring tiles differ.
	if img.At(8, 8) == img.At(16, 8) {
		t.Error("adjacent tiles identical")
	}

	gray, err := MakeUVGrid(32, 32, 8, false)
	if err != nil {
		t.Fatalf("MakeUVGrid failed: %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {12, 20}, {31, 31}} {
		c := gray.At(p[0], p[1])
		if c.R != c.G || c.G != c.B {
			t.Errorf("uncolored grid pixel (%d,%d) = %v, want gray", p[0], p[1], c)
		}
	}
}

func TestMakeBumpDimpleRange(t *testing.T) {
	img, err := MakeBumpDimple(32, 32, 8)
	if err != nil {
		t.Fatalf("MakeBumpDimple failed: %v", err)
	}
	sawBump, sawDimple := false, false
	for j := range 32 {
		for i := range 32 {
			c := img.At(i, j)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("pixel (%d,%d) = %v, want gray height", i, j, c)
			}
			if c.R < 0 || c.R > 1 {
				t.Fatalf("height %v outside [0,1]", c.R)
			}
			if c.R > 0.5 {
				sawBump = true
			}
			if c.R < 0.5 {
				sawDimple = true
			}
		}
	}
	if !sawBump || !sawDimple {
		t.Errorf("bump/dimple pattern missing a side: bump=%v dimple=%v", sawBump, sawDimple)
	}
}

func TestBumpToNormalFlat(t *testing.T) {
	flat, err := MakeRamp(8, 8, fcolor.RGB{R: 0.5, G: 0.5, B: 0.5}, fcolor.RGB{R: 0.5, G: 0.5, B: 0.5})
	if err != nil {
		t.Fatalf("MakeRamp failed: %v", err)
	}
	normals, err := BumpToNormal(flat, 1)
	if err != nil {
		t.Fatalf("BumpToNormal failed: %v", err)
	}
	want := fcolor.RGBA{R: 0.5, G: 0.5, B: 1, A: 1}
	for j := range 8 {
		for i := range 8 {
			got := normals.At(i, j)
			if math.Abs(got.R-want.R) > 1e-12 || math.Abs(got.G-want.G) > 1e-12 ||
				math.Abs(got.B-want.B) > 1e-12 || got.A != 1 {
				t.Fatalf("flat normal at (%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestBumpToNormalUnitLength(t *testing.T) {
	bump, err := MakeBumpDimple(16, 16, 8)
	if err != nil {
		t.Fatalf("MakeBumpDimple failed: %v", err)
	}
	normals, err := BumpToNormal(bump, 0.05)
	if err != nil {
		t.Fatalf("BumpToNormal failed: %v", err)
	}
	for j := range 16 {
		for i := range 16 {
			c := normals.At(i, j)
			nx := c.R*2 - 1
			ny := c.G*2 - 1
			nz := c.B*2 - 1
			if nz <= 0 {
				t.Fatalf("normal at (%d,%d) points into the surface: %v", i, j, c)
			}
			if n := math.Sqrt(nx*nx + ny*ny + nz*nz); math.Abs(n-1) > 1e-9 {
				t.Fatalf("normal at (%d,%d) has length %v", i, j, n)
			}
		}
	}
}
