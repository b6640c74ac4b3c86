package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// featureAngle is the minimum crease, in degrees, for an edge to be drawn
// as part of a wireframe.
const featureAngle = 1.0

// Geometry is an indexed triangle mesh with flat face normals and the list
// of crease edges used for wireframes.
type Geometry struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int
	Normals  []mgl64.Vec3 // one per face
	Edges    [][2]int
}

// Box returns an axis-aligned cube of the given edge length centred on the origin.
func Box(size float64) *Geometry {
	h := size / 2
	verts := make([]mgl64.Vec3, 8)
	for i := range verts {
		verts[i] = mgl64.Vec3{sign(i&1 != 0) * h, sign(i&2 != 0) * h, sign(i&4 != 0) * h}
	}
	quads := [6][4]int{
		{0, 2, 6, 4}, {1, 3, 7, 5}, // x
		{0, 1, 5, 4}, {2, 3, 7, 6}, // y
		{0, 1, 3, 2}, {4, 5, 7, 6}, // z
	}
	faces := make([][3]int, 0, 12)
	for _, q := range quads {
		faces = append(faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return newGeometry(verts, faces)
}

// Octahedron returns a regular octahedron with its vertices on the axes at
// the given radius.
func Octahedron(radius float64) *Geometry {
	verts := []mgl64.Vec3{
		{radius, 0, 0}, {-radius, 0, 0},
		{0, radius, 0}, {0, -radius, 0},
		{0, 0, radius}, {0, 0, -radius},
	}
	faces := make([][3]int, 0, 8)
	for i := 0; i < 8; i++ {
		faces = append(faces, [3]int{i & 1, 2 + (i>>1)&1, 4 + (i>>2)&1})
	}
	return newGeometry(verts, faces)
}

// newGeometry orients faces outward and derives normals and crease edges.
// It assumes a convex mesh around the origin.
func newGeometry(verts []mgl64.Vec3, faces [][3]int) *Geometry {
	g := &Geometry{Vertices: verts, Faces: faces, Normals: make([]mgl64.Vec3, len(faces))}
	for i, f := range faces {
		a, b, c := verts[f[0]], verts[f[1]], verts[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c)
		if n.Dot(centroid) < 0 {
			faces[i] = [3]int{f[0], f[2], f[1]}
			n = n.Mul(-1)
		}
		g.Normals[i] = n.Normalize()
	}
	g.Edges = creaseEdges(faces, g.Normals)
	return g
}

func creaseEdges(faces [][3]int, normals []mgl64.Vec3) [][2]int {
	type key [2]int
	owners := make(map[key][]int)
	var order []key
	for fi, f := range faces {
		for j := 0; j < 3; j++ {
			a, b := f[j], f[(j+1)%3]
			if a > b {
				a, b = b, a
			}
			k := key{a, b}
			if _, ok := owners[k]; !ok {
				order = append(order, k)
			}
			owners[k] = append(owners[k], fi)
		}
	}

	limit := math.Cos(mgl64.DegToRad(featureAngle))
	edges := make([][2]int, 0, len(order))
	for _, k := range order {
		fs := owners[k]
		if len(fs) == 2 && normals[fs[0]].Dot(normals[fs[1]]) > limit {
			continue
		}
		edges = append(edges, [2]int(k))
	}
	return edges
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}
