// Package sky synthesizes analytic environment images: a physically based
// sun-sky radiance model and a simple area-lights environment. Output is
// unclamped linear radiance in a latitude-longitude projection; tone mapping
// to displayable form is the caller's downstream step.
package sky

import (
	"math"

	"pixsynth/fcolor"
	"pixsynth/fimg"
	"pixsynth/parallel"
)

// DefaultGroundAlbedo is the ground color used when callers have no
// preference.
var DefaultGroundAlbedo = fcolor.RGB{R: 0.7, G: 0.7, B: 0.7}

// Solar disk angular radius, radians. Half the ~0.535° apparent diameter.
const sunAngularRadius = 9.35e-3 / 2

// MakeSunSky renders a width×height radiance image of the sky hemisphere
// using the Preetham analytic daylight model with Perez luminance
// distribution. Rows map to zenith angle θ = π(j+0.5)/height and columns to
// azimuth φ = 2π(i+0.5)/width; pixels with θ > π/2 are below the horizon and
// are filled with the ground-albedo color, giving a sharp horizon row.
//
// thetaSun is the sun's angle from the zenith in [0,π/2] and turbidity the
// atmospheric haze in [1.7,10]; values outside the documented range
// extrapolate rather than fail. With hasSun set, a solar disk with a soft
// edge is added on top of the sky term. Radiance is not clamped above;
// negative excursions of the model are clamped to zero.
func MakeSunSky(width, height int, thetaSun, turbidity float64, hasSun bool, groundAlbedo fcolor.RGB) (*fimg.Image, error) {
	img, err := fimg.New(width, height)
	if err != nil {
		return nil, err
	}

	model := newSunSky(thetaSun, turbidity, hasSun)
	ground := groundAlbedo.WithAlpha(1)

	parallel.Rows(0, height, func(j int) {
		row := img.Row(j)
		theta := math.Pi * (float64(j) + 0.5) / float64(height)
		if theta > math.Pi/2 {
			for i := range row {
				row[i] = ground
			}
			return
		}

		// The Perez formula divides by cos(theta); keep a hair away from
		// the horizon so the exponent stays finite.
		theta = math.Min(theta, math.Pi/2-1e-4)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)
		for i := range row {
			phi := 2 * math.Pi * (float64(i) + 0.5) / float64(width)
			w := vec3{math.Cos(phi) * sinTheta, cosTheta, math.Sin(phi) * sinTheta}
			gamma := math.Acos(clamp(w.dot(model.sunDir), -1, 1))
			row[i] = model.radiance(theta, gamma).WithAlpha(1)
		}
	})
	return img, nil
}

// sunSky holds the per-image constants of the model so the per-pixel work is
// just the two Perez evaluations.
type sunSky struct {
	thetaSun float64
	sunDir   vec3

	// Perez coefficients and zenith values for the x, y chromaticities and
	// the luminance Y.
	perez  [3][5]float64
	zenith [3]float64

	hasSun bool
	sunLe  fcolor.RGB
}

func newSunSky(thetaSun, turbidity float64, hasSun bool) *sunSky {
	t := turbidity
	s := thetaSun
	m := &sunSky{
		thetaSun: s,
		sunDir:   vec3{0, math.Cos(s), math.Sin(s)},
		hasSun:   hasSun,
	}

	// Zenith chromaticity and luminance polynomials and Perez distribution
	// coefficients from Preetham, Shirley, Smits, "A Practical Analytic
	// Model for Daylight", SIGGRAPH 1999.
	m.zenith = [3]float64{
		(0.00165*s*s*s-0.00374*s*s+0.00208*s+0)*t*t +
			(-0.02902*s*s*s+0.06377*s*s-0.03202*s+0.00394)*t +
			(0.11693*s*s*s - 0.21196*s*s + 0.06052*s + 0.25885),
		(0.00275*s*s*s-0.00610*s*s+0.00316*s+0)*t*t +
			(-0.04214*s*s*s+0.08970*s*s-0.04153*s+0.00515)*t +
			(0.15346*s*s*s - 0.26756*s*s + 0.06669*s + 0.26688),
		1000*(4.0453*t-4.9710)*math.Tan((4.0/9.0-t/120.0)*(math.Pi-2*s)) -
			0.2155*t + 2.4192,
	}
	m.perez = [3][5]float64{
		{-0.01925*t - 0.25922, -0.06651*t + 0.00081, -0.00041*t + 0.21247,
			-0.06409*t - 0.89887, -0.00325*t + 0.04517},
		{-0.01669*t - 0.26078, -0.09495*t + 0.00921, -0.00792*t + 0.21023,
			-0.04405*t - 0.65369, -0.01092*t + 0.05291},
		{0.17872*t - 1.46303, -0.35540*t + 0.42749, -0.02266*t + 5.32505,
			0.12064*t - 2.57705, -0.06696*t + 0.37027},
	}

	if hasSun {
		m.sunLe = sunRadiance(s, t)
	}
	return m
}

// radiance evaluates the sky (and sun, if visible) toward the direction at
// view zenith angle theta and angular distance gamma from the sun.
func (m *sunSky) radiance(theta, gamma float64) fcolor.RGB {
	xyY := fcolor.RGB{
		R: m.perezEval(0, theta, gamma),
		G: m.perezEval(1, theta, gamma),
		B: m.perezEval(2, theta, gamma),
	}
	// The model works in cd/m²-scale units; bring it to the renderer scale.
	rgb := fcolor.XYZToRGB(fcolor.XyYToXYZ(xyY)).Scale(1.0 / 10000)
	rgb = fcolor.RGB{R: math.Max(rgb.R, 0), G: math.Max(rgb.G, 0), B: math.Max(rgb.B, 0)}

	if m.hasSun && gamma < sunAngularRadius {
		// Soft edge over the outer fifth of the disk keeps the profile
		// continuous at the rim.
		edge := clamp((sunAngularRadius-gamma)/(0.2*sunAngularRadius), 0, 1)
		rgb = rgb.Add(m.sunLe.Scale(edge * edge * (3 - 2*edge)))
	}
	return rgb
}

// perezEval is the five-coefficient Perez luminance distribution, normalized
// so the zenith value is reproduced when looking straight up with the sun at
// the zenith distance thetaSun.
func (m *sunSky) perezEval(c int, theta, gamma float64) float64 {
	p := m.perez[c]
	cosG := math.Cos(gamma)
	num := (1 + p[0]*math.Exp(p[1]/math.Cos(theta))) *
		(1 + p[2]*math.Exp(p[3]*gamma) + p[4]*cosG*cosG)
	cosS := math.Cos(m.thetaSun)
	den := (1 + p[0]*math.Exp(p[1])) *
		(1 + p[2]*math.Exp(p[3]*m.thetaSun) + p[4]*cosS*cosS)
	return m.zenith[c] * num / den
}

// sunRadiance computes the transmitted solar radiance per channel through
// Rayleigh scattering, aerosols, ozone, mixed gases and water vapor, following
// the spectral attenuation terms of the Preetham paper collapsed to the three
// sRGB primaries.
func sunRadiance(thetaSun, turbidity float64) fcolor.RGB {
	lambda := [3]float64{680, 530, 480} // nm
	sol := [3]float64{20000, 27000, 30000}
	ko := [3]float64{0.48, 0.75, 0.14}
	kg := [3]float64{0.1, 0, 0}
	kwa := [3]float64{0.02, 0, 0}

	beta := 0.04608365822050*turbidity - 0.04586025928522
	sunDeg := thetaSun * 180 / math.Pi
	// Relative optical mass (Kasten-Young).
	mass := 1 / (math.Cos(thetaSun) + 0.15*math.Pow(93.885-sunDeg, -1.253))

	var out [3]float64
	for i := range out {
		l := lambda[i] / 1000 // µm
		tauR := math.Exp(-mass * 0.008735 * math.Pow(l, -4.08))
		tauA := math.Exp(-mass * beta * math.Pow(l, -1.3))
		tauO := math.Exp(-mass * ko[i] * 0.35)
		tauG := math.Exp(-1.41 * kg[i] * mass / math.Pow(1+118.93*kg[i]*mass, 0.45))
		tauWA := math.Exp(-0.2385 * kwa[i] * 2 * mass / math.Pow(1+20.07*kwa[i]*2*mass, 0.45))
		out[i] = sol[i] * tauR * tauA * tauO * tauG * tauWA
	}
	return fcolor.RGB{R: out[0], G: out[1], B: out[2]}.Scale(1.0 / 10000)
}

type vec3 struct {
	x, y, z float64
}

func (v vec3) dot(o vec3) float64 {
	return v.x*o.x + v.y*o.y + v.z*o.z
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}
