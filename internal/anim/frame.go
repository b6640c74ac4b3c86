package anim

import (
	"math"
	"time"
)

// Variant selects which representations a scene carries.
type Variant int

const (
	// Background carries wireframes only.
	Background Variant = iota
	// Foreground adds solid, glassy and halo sphere meshes.
	Foreground
)

func (v Variant) String() string {
	switch v {
	case Background:
		return "background"
	case Foreground:
		return "foreground"
	default:
		return "unknown"
	}
}

// Rich reports whether the variant draws solids, glints and halos.
func (v Variant) Rich() bool { return v == Foreground }

const (
	scaleBase   = 3.0
	scaleOffset = 1.5
	haloGrow    = 1.05
	restTiltX   = -0.9553 // tips the cube onto a vertex
	recede      = 0.03
)

// cubeFit makes a cube and an octahedron the same visual size at crossover.
var cubeFit = math.Log(2.0/3.0) / math.Log(3)

// Params are the visual parameters of one representation.
type Params struct {
	Scale   float64
	Opacity float64
	Bright  float64
	Order   int
}

// ShapeFrame groups the representations of one shape.
type ShapeFrame struct {
	Wire   Params
	Solid  Params
	Glassy Params
	Sphere Params
}

// Frame is everything a scene needs to pose itself for one redraw.
type Frame struct {
	Phase
	Seconds float64

	Cube ShapeFrame
	Octa ShapeFrame

	// CubeOnTop is T1 < 0.5; it selects which solid draws first.
	CubeOnTop bool

	RotX, RotY, RotZ float64
	RotatorZ         float64
	CameraRoll       float64
}

// Update computes the frame for variant v at the given elapsed time.
func Update(v Variant, elapsed time.Duration) Frame {
	return UpdateSeconds(v, Seconds(elapsed))
}

// UpdateSeconds is Update on a clock already in animation seconds.
func UpdateSeconds(v Variant, s float64) Frame {
	ph := phaseAtSeconds(s)
	f := Frame{Phase: ph, Seconds: s}

	t1, t2 := ph.T1, ph.T2
	f.Cube.Wire.Scale = pow3(cubeFit + scaleOffset + t1)
	f.Octa.Wire.Scale = pow3(scaleOffset + t2 - 0.5)
	f.Cube.Wire.Opacity = Tent(t1)
	f.Octa.Wire.Opacity = Tent(t2)

	if v.Rich() {
		f.Cube.Solid.Scale = pow3(cubeFit + scaleOffset + t2 - 0.5)
		f.Cube.Glassy.Scale = f.Cube.Wire.Scale
		f.Cube.Sphere.Scale = haloGrow * f.Cube.Wire.Scale
		f.Octa.Solid.Scale = pow3(scaleOffset + t1 - 1)
		f.Octa.Glassy.Scale = f.Octa.Wire.Scale
		f.Octa.Sphere.Scale = haloGrow * f.Octa.Wire.Scale

		f.Cube.Solid.Opacity = clamp01(math.Min(1, 2-2*t2))
		f.Cube.Solid.Bright = 1 - 2*t2
		f.Cube.Sphere.Opacity = clamp01(math.Min(t1*0.3, 0.2-t1*0.25))
		f.Cube.Glassy.Opacity = clamp01(math.Min(t1, 1-t1))

		f.Octa.Solid.Opacity = clamp01(math.Min(1, 2-2*t1))
		f.Octa.Solid.Bright = 1 - 2*t1
		f.Octa.Sphere.Opacity = clamp01(math.Min(t2*0.3, 0.2-t2*0.25))
		f.Octa.Glassy.Opacity = clamp01(math.Min(t2, 1-t2))
	}

	// the octahedron has not been born yet during the first half period
	if ph.T < Period*0.5 {
		f.Octa.Wire.Opacity = 0
		f.Octa.Sphere.Opacity = 0
	}

	f.CubeOnTop = t1 < 0.5
	f.Cube.Solid.Order, f.Octa.Solid.Order = SolidOrders(f.CubeOnTop)
	f.Cube.Wire.Order, f.Octa.Wire.Order = f.Octa.Solid.Order+1, f.Cube.Solid.Order+1
	f.Cube.Glassy.Order, f.Octa.Glassy.Order = f.Cube.Wire.Order, f.Octa.Wire.Order

	tilt := EaseTilt(s)
	f.RotX = restTiltX + tilt*0.5
	f.RotY = tilt * 0.15
	f.RotZ = math.Pi/4 + tilt*0.1
	f.CameraRoll = EaseRoll(s)
	f.RotatorZ = -1 / (math.Max(s, MinSeconds) * recede)
	return f
}

// SolidOrders returns the render orders of the cube and octahedron solids.
// The shape on top gets 3 and draws after the other, which gets 1.
func SolidOrders(cubeOnTop bool) (cube, octa int) {
	if cubeOnTop {
		return 3, 1
	}
	return 1, 3
}

func pow3(x float64) float64 { return math.Pow(scaleBase, x) }
