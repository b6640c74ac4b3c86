// Package render turns a posed scene into a flat list of 2D primitives in
// draw order, independent of the surface that rasterises them.
package render

import "github.com/iburimskiy/polyhedra/internal/shading"

// ItemKind tags a draw list primitive.
type ItemKind uint8

const (
	ItemLine ItemKind = iota + 1
	ItemTriangle
	ItemDisc
)

// Point is a position in canvas pixels, y down.
type Point struct {
	X, Y float64
}

// Item is one primitive. Lines use P[0..1], triangles P[0..2], discs P[0]
// with radii RX and RY.
type Item struct {
	Kind   ItemKind
	Color  shading.RGBA
	P      [3]Point
	RX, RY float64
	Width  float64

	// Source is the ID of the mesh that produced the item.
	Source int
}

// DrawList is a complete frame for one canvas.
type DrawList struct {
	Width, Height int
	Clear         shading.RGBA
	Items         []Item
}

// Reset empties the list, keeping its storage.
func (dl *DrawList) Reset(w, h int, bg shading.RGBA) {
	dl.Width, dl.Height, dl.Clear = w, h, bg
	dl.Items = dl.Items[:0]
}
