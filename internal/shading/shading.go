package shading

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// WireColor is the line color of every wireframe.
	WireColor = FromNRGBA(color.NRGBA{60, 68, 70, 255})

	// BackgroundColor and ForegroundColor clear the two scenes.
	BackgroundColor = FromNRGBA(color.NRGBA{0, 32, 41, 255})
	ForegroundColor = FromNRGBA(color.NRGBA{0, 43, 54, 255})
)

// basis columns, one per gradient direction plus the center term
var basis = [4]mgl64.Vec3{
	mgl64.Vec3{150, 68, 88}.Mul(1.0 / 256),
	mgl64.Vec3{138, 99, 156}.Mul(1.0 / 256),
	mgl64.Vec3{246, 183, 106}.Mul(1.0 / 256),
	mgl64.Vec3{0, 43, 54}.Mul(1.0 / 256),
}

var (
	sin60 = math.Sqrt(0.75)

	glintDir = mgl64.Vec3{0.5, 0.3, 0.1}.Normalize()
)

const (
	brightTarget  = 0.88
	glintSharp    = 16.0
	glintStrength = 0.1
	edgeGlint     = 0.1
)

// Solid shades a face of a solid mesh. n is the view-space face normal.
func Solid(n mgl64.Vec3, bright, opacity float64) RGBA {
	n = safeNormalize(n)

	// weights of three directions 120 degrees apart plus facing
	w := [4]float64{
		math.Max(0, n.Y()),
		math.Max(0, sin60*n.X()-0.5*n.Y()),
		math.Max(0, -sin60*n.X()-0.5*n.Y()),
		math.Max(0, n.Z()*n.Z()),
	}
	var c mgl64.Vec3
	for i, b := range basis {
		c = c.Add(b.Mul(w[i]))
	}

	lo := math.Min(c.X(), math.Min(c.Y(), c.Z()))
	c = c.Sub(mgl64.Vec3{1, 1, 1}.Mul(0.5 * lo))

	glint := 1 - math.Pow(math.Max(0, n.Z()), edgeGlint)
	c = c.Add(mgl64.Vec3{glint, glint, glint})

	k := smoothstep(0, 1, bright)
	c = mix(c, mgl64.Vec3{brightTarget, brightTarget, brightTarget}, k)

	return RGBA{c.X(), c.Y(), c.Z(), opacity}.Clamp()
}

// Glint shades a face of a glassy overlay: a narrow white highlight that
// pulses with opacity.
func Glint(n mgl64.Vec3, opacity float64) RGBA {
	n = safeNormalize(n)
	facing := math.Max(0, n.Dot(glintDir)-0.01)
	a := math.Sin(opacity*math.Pi) * math.Pow(facing, glintSharp) * glintStrength
	return RGBA{1, 1, 1, clamp01(a)}
}

// Halo is the flat cyan of a halo sphere.
func Halo(opacity float64) RGBA {
	return RGBA{0, 0.9, 1, clamp01(opacity)}
}

// Wire is the wireframe line color at the given opacity.
func Wire(opacity float64) RGBA {
	return WireColor.WithAlpha(clamp01(opacity))
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

func mix(a, b mgl64.Vec3, k float64) mgl64.Vec3 {
	return a.Mul(1 - k).Add(b.Mul(k))
}

func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < 1e-12 {
		return mgl64.Vec3{0, 0, 1}
	}
	return v.Normalize()
}
