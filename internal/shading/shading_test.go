package shading

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSolidFacingCamera(t *testing.T) {
	c := Solid(mgl64.Vec3{0, 0, 1}, 0, 0.5)
	if !near(c.R, 0) || !near(c.G, 43.0/256) || !near(c.B, 54.0/256) || !near(c.A, 0.5) {
		t.Fatalf("facing color=%+v", c)
	}
}

func TestSolidBrightWashesOut(t *testing.T) {
	for _, n := range []mgl64.Vec3{{0, 1, 0}, {1, 0, 0.2}, {-0.3, -0.5, 0.8}} {
		c := Solid(n, 1, 1)
		if !near(c.R, 0.88) || !near(c.G, 0.88) || !near(c.B, 0.88) {
			t.Fatalf("bright color for %v=%+v, want 0.88 grey", n, c)
		}
	}
	// negative bright behaves like zero
	if a, b := Solid(mgl64.Vec3{0, 1, 1}, -1, 1), Solid(mgl64.Vec3{0, 1, 1}, 0, 1); a != b {
		t.Fatalf("bright -1=%+v, want %+v", a, b)
	}
}

func TestSolidClamped(t *testing.T) {
	for x := -1.0; x <= 1; x += 0.25 {
		for y := -1.0; y <= 1; y += 0.25 {
			for z := -1.0; z <= 1; z += 0.25 {
				c := Solid(mgl64.Vec3{x, y, z}, 0.3, 2)
				for _, v := range []float64{c.R, c.G, c.B, c.A} {
					if v < 0 || v > 1 || math.IsNaN(v) {
						t.Fatalf("Solid(%v,%v,%v)=%+v out of range", x, y, z, c)
					}
				}
			}
		}
	}
}

func TestSolidEdgeGlint(t *testing.T) {
	// side-on faces whiten towards the silhouette
	side := Solid(mgl64.Vec3{0, 1, 0.01}, 0, 1)
	front := Solid(mgl64.Vec3{0, 1, 1}, 0, 1)
	if side.R <= front.R {
		t.Fatalf("side R=%v, front R=%v; want side brighter", side.R, front.R)
	}
}

func TestGlint(t *testing.T) {
	g := Glint(glintDir, 0.5)
	want := math.Pow(0.99, 16) * 0.1
	if !near(g.A, want) || g.R != 1 || g.G != 1 || g.B != 1 {
		t.Fatalf("glint=%+v, want white alpha %v", g, want)
	}
	if a := Glint(glintDir, 0).A; a != 0 {
		t.Fatalf("glint at opacity 0=%v", a)
	}
	if a := Glint(mgl64.Vec3{0, 0, -1}, 0.5).A; a != 0 {
		t.Fatalf("glint facing away=%v", a)
	}
}

func TestHaloAndWire(t *testing.T) {
	if h := Halo(-0.2); h.A != 0 || h.G != 0.9 || h.B != 1 {
		t.Fatalf("halo=%+v", h)
	}
	if w := Wire(3); w.A != 1 {
		t.Fatalf("wire alpha=%v, want 1", w.A)
	}
}

// over composites c onto an opaque dst the way the surfaces blend.
func over(c, dst RGBA) RGBA {
	c = c.Clamp()
	return RGBA{
		R: c.R*c.A + dst.R*(1-c.A),
		G: c.G*c.A + dst.G*(1-c.A),
		B: c.B*c.A + dst.B*(1-c.A),
		A: 1,
	}
}

func TestWireOverBackground(t *testing.T) {
	got := over(Wire(1), BackgroundColor)
	if got != WireColor {
		t.Fatalf("opaque over=%+v, want %+v", got, WireColor)
	}
	got = over(Wire(0), BackgroundColor)
	if got != BackgroundColor {
		t.Fatalf("clear over=%+v, want %+v", got, BackgroundColor)
	}
	half := over(RGBA{1, 1, 1, 0.5}, RGBA{0, 0, 0, 1})
	if !near(half.R, 0.5) || half.A != 1 {
		t.Fatalf("half over=%+v", half)
	}
}

func TestNRGBA(t *testing.T) {
	in := color.NRGBA{60, 68, 70, 255}
	if got := FromNRGBA(in).NRGBA(); got != in {
		t.Fatalf("round trip=%v, want %v", got, in)
	}
	if got := (RGBA{2, -1, 0.5, 1}).NRGBA(); got != (color.NRGBA{255, 0, 128, 255}) {
		t.Fatalf("clamped=%v", got)
	}
}
