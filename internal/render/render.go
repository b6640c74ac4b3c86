package render

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/polyhedra/internal/scene"
	"github.com/iburimskiy/polyhedra/internal/shading"
)

// Viewport is the canvas being drawn and its view offset.
type Viewport struct {
	W, H   int
	Offset ViewOffset
}

// Renderer converts scenes into draw lists. It is not safe for concurrent use.
type Renderer struct {
	Camera    Camera
	LineWidth float64

	sorted    []*scene.Mesh
	occluders []occluder
}

// NewRenderer returns a renderer with the default camera.
func NewRenderer(lineWidth float64) *Renderer {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	return &Renderer{Camera: DefaultCamera(), LineWidth: lineWidth}
}

type transform struct {
	mv       mgl64.Mat4
	w, h     float64
	proj     mgl64.Mat4
	lineWide float64
}

// project maps a local point to canvas pixels. ok is false outside the
// depth range.
func (t *transform) project(v mgl64.Vec3) (Point, bool) {
	return t.projectEye(t.eye(v))
}

// eye maps a local point into camera space.
func (t *transform) eye(v mgl64.Vec3) mgl64.Vec3 {
	return t.mv.Mul4x1(v.Vec4(1)).Vec3()
}

// projectEye maps a camera-space point to canvas pixels.
func (t *transform) projectEye(e mgl64.Vec3) (Point, bool) {
	c := t.proj.Mul4x1(e.Vec4(1))
	if c.W() <= 0 {
		return Point{}, false
	}
	x, y, z := c.X()/c.W(), c.Y()/c.W(), c.Z()/c.W()
	if z < -1 || z > 1 {
		return Point{}, false
	}
	return Point{X: (x + 1) / 2 * t.w, Y: (1 - y) / 2 * t.h}, true
}

// Render appends scene s, as seen through vp, to dl. Meshes are drawn in
// ascending render order, ties broken by insertion order. Solids write
// depth: wire edges drawn after a visible solid are clipped where it hides
// them.
func (r *Renderer) Render(s *scene.Scene, vp Viewport, dl *DrawList) {
	dl.Reset(vp.W, vp.H, s.Background)
	if vp.W <= 0 || vp.H <= 0 {
		return
	}

	cam := r.Camera
	cam.Roll = s.CameraRoll
	proj := cam.Projection(vp.Offset)
	view := cam.View().Mul4(s.Rotator.Model())

	r.occluders = r.occluders[:0]
	r.sorted = append(r.sorted[:0], s.Meshes()...)
	sort.SliceStable(r.sorted, func(i, j int) bool {
		a, b := r.sorted[i], r.sorted[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})

	for _, m := range r.sorted {
		if !m.Visible() {
			continue
		}
		mv := view.Mul4(m.Model())
		t := &transform{mv: mv, w: float64(vp.W), h: float64(vp.H), proj: proj, lineWide: r.LineWidth}
		switch m.Kind {
		case scene.Wire:
			t.wire(m, r.occluders, dl)
		case scene.Solid:
			t.faces(m, dl)
			r.occluders = append(r.occluders, t.occluder(m))
		case scene.Glassy:
			t.faces(m, dl)
		case scene.Sphere:
			t.disc(m, dl)
		}
	}
}

func (t *transform) wire(m *scene.Mesh, occ []occluder, dl *DrawList) {
	c := shading.Wire(m.Opacity)
	for _, e := range m.Geom.Edges {
		a, b := t.eye(m.Geom.Vertices[e[0]]), t.eye(m.Geom.Vertices[e[1]])
		if _, ok := t.projectEye(a); !ok {
			continue
		}
		if _, ok := t.projectEye(b); !ok {
			continue
		}
		for _, sp := range visibleSpans(a, b, occ) {
			p0, _ := t.projectEye(lerp(a, b, sp[0]))
			p1, _ := t.projectEye(lerp(a, b, sp[1]))
			dl.Items = append(dl.Items, Item{Kind: ItemLine, Color: c, P: [3]Point{p0, p1}, Width: t.lineWide, Source: m.ID})
		}
	}
}

// occluder returns the camera-space half-spaces bounding a convex mesh.
func (t *transform) occluder(m *scene.Mesh) occluder {
	g := m.Geom
	o := make(occluder, 0, len(g.Faces))
	for _, f := range g.Faces {
		a, b, c := t.eye(g.Vertices[f[0]]), t.eye(g.Vertices[f[1]]), t.eye(g.Vertices[f[2]])
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
			o = append(o, plane{n: n, d: n.Dot(a)})
		}
	}
	return o
}

func (t *transform) faces(m *scene.Mesh, dl *DrawList) {
	g := m.Geom
	normal := t.mv.Mat3()
	for fi, f := range g.Faces {
		var p [3]Point
		visible := true
		for j := 0; j < 3; j++ {
			var ok bool
			if p[j], ok = t.project(g.Vertices[f[j]]); !ok {
				visible = false
				break
			}
		}
		// front faces wind anticlockwise on screen; y points down here
		if !visible || cross(p[0], p[1], p[2]) >= 0 {
			continue
		}
		n := normal.Mul3x1(g.Normals[fi])
		var c shading.RGBA
		if m.Kind == scene.Solid {
			c = shading.Solid(n, m.Bright, m.Opacity)
		} else {
			c = shading.Glint(n, m.Opacity)
		}
		if c.A <= 0 {
			continue
		}
		dl.Items = append(dl.Items, Item{Kind: ItemTriangle, Color: c, P: p, Source: m.ID})
	}
}

// disc emits a halo sphere as a filled ellipse centred on the projected
// sphere centre. The rotator only moves along the optical axis and a view
// offset crops the full view without moving its principal point, so the
// centre projects exactly. A sphere off the axis would need its silhouette
// centre shifted outwards.
func (t *transform) disc(m *scene.Mesh, dl *DrawList) {
	center, ok := t.project(mgl64.Vec3{})
	if !ok {
		return
	}
	vc := t.mv.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	r := m.Radius * m.Scale
	d := vc.Len()
	if d <= r {
		return
	}
	// tangent of the silhouette cone's half angle
	k := r / math.Sqrt(d*d-r*r)
	rx := k * t.proj.At(0, 0) * t.w / 2
	ry := k * t.proj.At(1, 1) * t.h / 2
	dl.Items = append(dl.Items, Item{Kind: ItemDisc, Color: shading.Halo(m.Opacity), P: [3]Point{center}, RX: rx, RY: ry, Source: m.ID})
}

func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
