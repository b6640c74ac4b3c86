// Package scene builds the cube and octahedron groups of a scene and poses
// them from animation frames.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/shading"
)

// Kind is the representation a mesh draws.
type Kind int

const (
	Wire Kind = iota
	Solid
	Glassy
	Sphere
)

func (k Kind) String() string {
	switch k {
	case Wire:
		return "wire"
	case Solid:
		return "solid"
	case Glassy:
		return "glassy"
	case Sphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Mesh is one drawable representation of a shape.
type Mesh struct {
	Kind   Kind
	Geom   *Geometry // nil for spheres
	Radius float64   // sphere radius before scaling

	Scale   float64
	Opacity float64
	Bright  float64
	Order   int

	// ID is the insertion index; it breaks render order ties.
	ID int
}

// Model returns the mesh-local transform.
func (m *Mesh) Model() mgl64.Mat4 {
	return mgl64.Scale3D(m.Scale, m.Scale, m.Scale)
}

// Visible reports whether the mesh contributes any pixels.
func (m *Mesh) Visible() bool {
	return m.Opacity > 0 && m.Scale > 0
}

// Group holds the representations of one shape. Absent ones are nil.
type Group struct {
	Name   string
	Wire   *Mesh
	Solid  *Mesh
	Glassy *Mesh
	Sphere *Mesh
}

func (g *Group) meshes() []*Mesh {
	out := make([]*Mesh, 0, 4)
	for _, m := range []*Mesh{g.Solid, g.Glassy, g.Sphere, g.Wire} {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

func (g *Group) apply(f anim.ShapeFrame) {
	set := func(m *Mesh, p anim.Params) {
		if m == nil {
			return
		}
		m.Scale, m.Opacity, m.Bright, m.Order = p.Scale, p.Opacity, p.Bright, p.Order
	}
	set(g.Wire, f.Wire)
	set(g.Solid, f.Solid)
	set(g.Glassy, f.Glassy)
	set(g.Sphere, f.Sphere)
}

// Rotator is the parent transform both groups hang from.
type Rotator struct {
	Rotation mgl64.Vec3 // Euler angles applied in X, Y, Z order
	Position mgl64.Vec3
}

// Model returns the rotator's world transform.
func (r Rotator) Model() mgl64.Mat4 {
	t := mgl64.Translate3D(r.Position.X(), r.Position.Y(), r.Position.Z())
	rx := mgl64.HomogRotate3DX(r.Rotation.X())
	ry := mgl64.HomogRotate3DY(r.Rotation.Y())
	rz := mgl64.HomogRotate3DZ(r.Rotation.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz)
}

// Scene is the full per-scene state posed by Apply each frame.
type Scene struct {
	Variant    anim.Variant
	Background shading.RGBA

	Cube *Group
	Octa *Group

	Rotator    Rotator
	CameraRoll float64

	// Last is the frame most recently applied.
	Last anim.Frame
}

// Build constructs the scene hierarchy for a variant.
func Build(v anim.Variant) *Scene {
	s := &Scene{Variant: v, Background: shading.BackgroundColor}
	if v.Rich() {
		s.Background = shading.ForegroundColor
	}

	var id int
	next := func(k Kind, g *Geometry, radius float64) *Mesh {
		m := &Mesh{Kind: k, Geom: g, Radius: radius, Scale: 1, ID: id}
		id++
		return m
	}
	group := func(name string, g *Geometry, radius float64) *Group {
		grp := &Group{Name: name}
		if v.Rich() {
			grp.Solid = next(Solid, g, 0)
			grp.Glassy = next(Glassy, g, 0)
			grp.Sphere = next(Sphere, nil, radius)
		}
		grp.Wire = next(Wire, g, 0)
		return grp
	}

	s.Cube = group("cube", Box(1), math.Sqrt(3)/2)
	s.Octa = group("octahedron", Octahedron(1), 1)
	return s
}

// Apply poses the scene for frame f.
func (s *Scene) Apply(f anim.Frame) {
	s.Cube.apply(f.Cube)
	s.Octa.apply(f.Octa)
	s.Rotator.Rotation = mgl64.Vec3{f.RotX, f.RotY, f.RotZ}
	s.Rotator.Position = mgl64.Vec3{0, 0, f.RotatorZ}
	s.CameraRoll = f.CameraRoll
	s.Last = f
}

// Meshes returns every mesh in insertion order.
func (s *Scene) Meshes() []*Mesh {
	return append(s.Cube.meshes(), s.Octa.meshes()...)
}
