package anim

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// secondsAt returns the clock reading where T1 == p, one cycle past the
// start-up suppression window.
func secondsAt(p float64) float64 {
	return PhaseShift + 2*Period + p*Period
}

func allParams(f Frame) []Params {
	return []Params{
		f.Cube.Wire, f.Cube.Solid, f.Cube.Glassy, f.Cube.Sphere,
		f.Octa.Wire, f.Octa.Solid, f.Octa.Glassy, f.Octa.Sphere,
	}
}

func TestUpdateOpacity(t *testing.T) {
	Convey("Wireframe opacity", t, func() {
		Convey("quarter phase shows the cube and hides the octahedron", func() {
			f := UpdateSeconds(Foreground, secondsAt(0.25))
			So(f.T1, ShouldAlmostEqual, 0.25, 1e-12)
			So(f.Cube.Wire.Opacity, ShouldAlmostEqual, 1, 1e-9)
			So(f.Octa.Wire.Opacity, ShouldAlmostEqual, 0, 1e-9)
		})

		Convey("three-quarter phase is the reverse", func() {
			f := UpdateSeconds(Foreground, secondsAt(0.75))
			So(f.T1, ShouldAlmostEqual, 0.75, 1e-12)
			So(f.Cube.Wire.Opacity, ShouldAlmostEqual, 0, 1e-9)
			So(f.Octa.Wire.Opacity, ShouldAlmostEqual, 1, 1e-9)
		})

		Convey("the background variant shares the fade", func() {
			f := UpdateSeconds(Background, secondsAt(0.25))
			So(f.Cube.Wire.Opacity, ShouldAlmostEqual, 1, 1e-9)
			So(f.Octa.Wire.Opacity, ShouldAlmostEqual, 0, 1e-9)
		})
	})

	Convey("Every opacity stays within [0,1]", t, func() {
		for _, v := range []Variant{Background, Foreground} {
			for s := 0.0; s < 120; s += 0.05 {
				for _, p := range allParams(UpdateSeconds(v, s)) {
					So(p.Opacity, ShouldBeBetweenOrEqual, 0, 1)
				}
			}
		}
	})

	Convey("The octahedron is suppressed during the first half period", t, func() {
		f := UpdateSeconds(Foreground, PhaseShift+1)
		So(f.T, ShouldBeLessThan, Period*0.5)
		So(Tent(f.T2), ShouldBeGreaterThan, 0)
		So(f.Octa.Wire.Opacity, ShouldEqual, 0)
		So(f.Octa.Sphere.Opacity, ShouldEqual, 0)
		So(f.Octa.Solid.Opacity, ShouldBeGreaterThan, 0)
	})

	Convey("The background variant carries wireframes only", t, func() {
		f := UpdateSeconds(Background, secondsAt(0.3))
		So(f.Cube.Solid, ShouldResemble, Params{Order: f.Cube.Solid.Order})
		So(f.Octa.Glassy.Scale, ShouldEqual, 0)
		So(f.Cube.Sphere.Opacity, ShouldEqual, 0)
	})
}

func TestUpdateOrder(t *testing.T) {
	Convey("Render order follows the phase half", t, func() {
		Convey("SolidOrders swaps with its argument", func() {
			c1, o1 := SolidOrders(true)
			c2, o2 := SolidOrders(false)
			So(c1, ShouldEqual, o2)
			So(o1, ShouldEqual, c2)
			So(c1, ShouldBeGreaterThan, o1)
		})

		Convey("first half puts the cube solid last", func() {
			f := UpdateSeconds(Foreground, secondsAt(0.2))
			So(f.CubeOnTop, ShouldBeTrue)
			So(f.Cube.Solid.Order, ShouldEqual, 3)
			So(f.Octa.Solid.Order, ShouldEqual, 1)
			So(f.Cube.Wire.Order, ShouldEqual, 2)
			So(f.Octa.Wire.Order, ShouldEqual, 4)
			So(f.Cube.Glassy.Order, ShouldEqual, f.Cube.Wire.Order)
			So(f.Octa.Glassy.Order, ShouldEqual, f.Octa.Wire.Order)
			So(f.Cube.Sphere.Order, ShouldEqual, 0)
		})

		Convey("second half puts the octahedron solid last", func() {
			f := UpdateSeconds(Foreground, secondsAt(0.7))
			So(f.CubeOnTop, ShouldBeFalse)
			So(f.Cube.Solid.Order, ShouldEqual, 1)
			So(f.Octa.Solid.Order, ShouldEqual, 3)
			So(f.Cube.Wire.Order, ShouldEqual, 4)
			So(f.Octa.Wire.Order, ShouldEqual, 2)
		})
	})
}

func TestUpdateScale(t *testing.T) {
	Convey("Scale", t, func() {
		Convey("grows by a factor of three over a cycle", func() {
			a := UpdateSeconds(Foreground, secondsAt(0.1))
			b := UpdateSeconds(Foreground, secondsAt(0.6))
			So(b.Cube.Wire.Scale/a.Cube.Wire.Scale, ShouldAlmostEqual, math.Sqrt(3), 1e-9)
		})

		Convey("halo spheres sit just outside the wireframe", func() {
			f := UpdateSeconds(Foreground, secondsAt(0.4))
			So(f.Cube.Sphere.Scale, ShouldAlmostEqual, 1.05*f.Cube.Wire.Scale, 1e-12)
			So(f.Octa.Sphere.Scale, ShouldAlmostEqual, 1.05*f.Octa.Wire.Scale, 1e-12)
		})

		Convey("cube and octahedron share a circumsphere at equal phase", func() {
			f := UpdateSeconds(Foreground, secondsAt(0.25))
			g := UpdateSeconds(Foreground, secondsAt(0.75))
			So(g.T2, ShouldAlmostEqual, f.T1, 1e-12)
			So(math.Sqrt(3)/2*f.Cube.Wire.Scale, ShouldAlmostEqual, g.Octa.Wire.Scale, 1e-9)
		})
	})
}

func TestUpdateMotion(t *testing.T) {
	Convey("Rotator depth", t, func() {
		Convey("is negative and approaches the camera", func() {
			prev := math.Inf(1)
			for s := 0.01; s < 200; s *= 1.1 {
				z := UpdateSeconds(Background, s).RotatorZ
				So(z, ShouldBeLessThan, 0)
				So(math.Abs(z), ShouldBeLessThan, prev)
				prev = math.Abs(z)
			}
		})

		Convey("is finite at time zero", func() {
			f := Update(Foreground, 0)
			So(math.IsInf(f.RotatorZ, 0), ShouldBeFalse)
			So(f.RotatorZ, ShouldBeLessThan, -1000)
			So(f.CameraRoll, ShouldEqual, 0)
			So(f.RotX, ShouldAlmostEqual, -0.9553, 1e-12)
			So(f.RotZ, ShouldAlmostEqual, math.Pi/4, 1e-12)
		})
	})
}
