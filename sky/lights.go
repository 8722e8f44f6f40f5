package sky

import (
	"math"

	"pixsynth/fcolor"
	"pixsynth/fimg"
	"pixsynth/parallel"
)

// MakeLights renders a black environment with nlights rectangular emitters
// of radiance le, centered at elevation angle langle from the zenith and
// evenly spaced in azimuth. lwidth and lheight are the angular extents of
// each emitter in φ and θ. Typical values: 4 lights at langle π/4 with
// extents π/16. Projection matches MakeSunSky.
func MakeLights(width, height int, le fcolor.RGB, nlights int, langle, lwidth, lheight float64) (*fimg.Image, error) {
	img, err := fimg.New(width, height)
	if err != nil {
		return nil, err
	}

	emit := le.WithAlpha(1)
	black := fcolor.RGBA{A: 1}

	parallel.Rows(0, height, func(j int) {
		row := img.Row(j)
		theta := math.Pi * (float64(j) + 0.5) / float64(height)
		if math.Abs(theta-langle) > lheight/2 {
			for i := range row {
				row[i] = black
			}
			return
		}
		for i := range row {
			phi := 2 * math.Pi * (float64(i) + 0.5) / float64(width)
			inside := false
			for l := range nlights {
				lphi := 2 * math.Pi * (float64(l) + 0.5) / float64(nlights)
				if math.Abs(phi-lphi) <= lwidth/2 {
					inside = true
					break
				}
			}
			if inside {
				row[i] = emit
			} else {
				row[i] = black
			}
		}
	})
	return img, nil
}
