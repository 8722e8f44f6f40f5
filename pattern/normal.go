package pattern

import (
	"math"

	"pixsynth/fcolor"
	"pixsynth/fimg"
)

// BumpToNormal converts a height field (read as luminance) into a
// tangent-space normal map, packed into [0,1] with 0.5 meaning flat. Forward
// differences wrap around the image edges so tiling height fields produce
// tiling normal maps. scale exaggerates the slopes.
func BumpToNormal(src *fimg.Image, scale float64) (*fimg.Image, error) {
	w, h := src.Width(), src.Height()
	dst, err := fimg.New(w, h)
	if err != nil {
		return nil, err
	}
	dx := 1 / float64(w)
	dy := 1 / float64(h)

	for j := range h {
		row := dst.Row(j)
		j1 := (j + 1) % h
		for i := range row {
			i1 := (i + 1) % w
			g00 := fcolor.Luminance(src.At(i, j).RGB())
			g10 := fcolor.Luminance(src.At(i1, j).RGB())
			g01 := fcolor.Luminance(src.At(i, j1).RGB())

			nx := scale * (g00 - g10) / dx
			ny := scale * (g00 - g01) / dy
			nz := 1.0
			norm := math.Sqrt(nx*nx + ny*ny + nz*nz)

			row[i] = fcolor.RGB{
				R: nx/norm*0.5 + 0.5,
				G: ny/norm*0.5 + 0.5,
				B: nz/norm*0.5 + 0.5,
			}.WithAlpha(1)
		}
	}
	return dst, nil
}
