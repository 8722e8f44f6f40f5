// Package noise implements a deterministic gradient-noise field over an
// implicit integer lattice, fractal combinators built on it, and grayscale
// image synthesis from both. There is no seed: the coordinate is the seed,
// and identical inputs always produce bit-identical outputs.
package noise

import "math"

// Wrap folds lattice coordinates modulo a per-axis period, producing a field
// that tiles seamlessly with that period. A zero period disables wrapping on
// that axis. Periods must be powers of two; the lattice hash wraps at 256
// regardless. A non-power-of-two period is not rejected and yields a visible
// seam (see DESIGN.md).
type Wrap struct {
	X, Y, Z int
}

// NoWrap is the unwrapped infinite field.
var NoWrap = Wrap{}

// Noise evaluates revised Perlin gradient noise at (x,y,z). The result is
// continuous with continuous first derivatives (quintic fade, so no seams at
// cell boundaries), lies within [-1,1] and is exactly 0 at integer lattice
// points.
func Noise(x, y, z float64, wrap Wrap) float64 {
	maskX := wrapMask(wrap.X)
	maskY := wrapMask(wrap.Y)
	maskZ := wrapMask(wrap.Z)

	fx := math.Floor(x)
	fy := math.Floor(y)
	fz := math.Floor(z)
	x -= fx
	y -= fy
	z -= fz

	x0 := int(fx) & maskX
	y0 := int(fy) & maskY
	z0 := int(fz) & maskZ
	x1 := (x0 + 1) & maskX
	y1 := (y0 + 1) & maskY
	z1 := (z0 + 1) & maskZ

	u := fade(x)
	v := fade(y)
	w := fade(z)

	n000 := grad(hash(x0, y0, z0), x, y, z)
	n100 := grad(hash(x1, y0, z0), x-1, y, z)
	n010 := grad(hash(x0, y1, z0), x, y-1, z)
	n110 := grad(hash(x1, y1, z0), x-1, y-1, z)
	n001 := grad(hash(x0, y0, z1), x, y, z-1)
	n101 := grad(hash(x1, y0, z1), x-1, y, z-1)
	n011 := grad(hash(x0, y1, z1), x, y-1, z-1)
	n111 := grad(hash(x1, y1, z1), x-1, y-1, z-1)

	return lerp(w,
		lerp(v, lerp(u, n000, n100), lerp(u, n010, n110)),
		lerp(v, lerp(u, n001, n101), lerp(u, n011, n111)))
}

// FBM sums octaves of noise at geometrically increasing frequency and
// decreasing amplitude. Good defaults: lacunarity 2, gain 0.5, 6 octaves.
func FBM(x, y, z, lacunarity, gain float64, octaves int, wrap Wrap) float64 {
	frequency := 1.0
	amplitude := 1.0
	sum := 0.0
	for range octaves {
		sum += Noise(x*frequency, y*frequency, z*frequency, wrap) * amplitude
		frequency *= lacunarity
		amplitude *= gain
	}
	return sum
}

// Turbulence is FBM with each octave rectified, giving the billowy look of
// absolute-value noise.
func Turbulence(x, y, z, lacunarity, gain float64, octaves int, wrap Wrap) float64 {
	frequency := 1.0
	amplitude := 1.0
	sum := 0.0
	for range octaves {
		sum += math.Abs(Noise(x*frequency, y*frequency, z*frequency, wrap)) * amplitude
		frequency *= lacunarity
		amplitude *= gain
	}
	return sum
}

// Ridge transforms each octave as (offset-|n|)² and additionally weights it
// by the previous octave's value, carving sharp ridges along the zero set.
// offset 1 inverts the ridges into crests; good defaults otherwise match FBM.
func Ridge(x, y, z, lacunarity, gain, offset float64, octaves int, wrap Wrap) float64 {
	frequency := 1.0
	amplitude := 0.5
	prev := 1.0
	sum := 0.0
	for range octaves {
		r := offset - math.Abs(Noise(x*frequency, y*frequency, z*frequency, wrap))
		r *= r
		sum += r * amplitude * prev
		prev = r
		frequency *= lacunarity
		amplitude *= gain
	}
	return sum
}

// wrapMask turns a power-of-two period into a lattice mask, folding at 256
// like the hash table does.
func wrapMask(period int) int {
	if period <= 0 {
		return 255
	}
	return (period - 1) & 255
}

// fade is the quintic 6t⁵-15t⁴+10t³, whose first and second derivatives
// vanish at the lattice.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func hash(x, y, z int) int {
	return int(perm[int(perm[int(perm[x])+y])+z])
}

// grad projects the offset onto one of twelve edge-direction gradients
// chosen by the hash.
func grad(h int, x, y, z float64) float64 {
	h &= 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// perm is Perlin's reference permutation, doubled so indices up to 511 need
// no masking.
var perm = [512]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,

	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}
