// Package raster draws render draw lists into an image.RGBA in software.
// The terminal and headless surfaces use it; the window surface draws with
// the GPU instead.
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/polyhedra/internal/render"
	"github.com/iburimskiy/polyhedra/internal/shading"
)

// Canvas paints draw lists with a gg context that is kept between frames
// and rebuilt only when the target size changes. It is not safe for
// concurrent use.
type Canvas struct {
	dc   *gg.Context
	w, h int
}

// context returns a context of w by h pixels.
func (c *Canvas) context(w, h int) *gg.Context {
	if c.dc == nil || c.w != w || c.h != h {
		c.dc = gg.NewContext(w, h)
		c.w, c.h = w, h
	}
	return c.dc
}

// Draw clears dst and paints every item of dl in order with source-over
// blending. Items are scaled from the list's canvas size to dst's bounds.
func (c *Canvas) Draw(dst *image.RGBA, dl *render.DrawList) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	dc := c.context(b.Dx(), b.Dy())

	setColor(dc, dl.Clear.WithAlpha(1))
	dc.DrawRectangle(0, 0, float64(b.Dx()), float64(b.Dy()))
	dc.Fill()

	if dl.Width > 0 && dl.Height > 0 {
		sx := float64(b.Dx()) / float64(dl.Width)
		sy := float64(b.Dy()) / float64(dl.Height)
		for i := range dl.Items {
			paint(dc, &dl.Items[i], sx, sy)
		}
	}
	draw.Draw(dst, b, dc.Image(), image.Point{}, draw.Src)
}

func paint(dc *gg.Context, it *render.Item, sx, sy float64) {
	col := it.Color.Clamp()
	if col.A == 0 {
		return
	}
	setColor(dc, col)
	p := it.P
	switch it.Kind {
	case render.ItemLine:
		dc.SetLineWidth(math.Max(1, it.Width*math.Min(sx, sy)))
		dc.DrawLine(p[0].X*sx, p[0].Y*sy, p[1].X*sx, p[1].Y*sy)
		dc.Stroke()
	case render.ItemTriangle:
		dc.MoveTo(p[0].X*sx, p[0].Y*sy)
		dc.LineTo(p[1].X*sx, p[1].Y*sy)
		dc.LineTo(p[2].X*sx, p[2].Y*sy)
		dc.ClosePath()
		dc.Fill()
	case render.ItemDisc:
		if it.RX <= 0 || it.RY <= 0 {
			return
		}
		dc.DrawEllipse(p[0].X*sx, p[0].Y*sy, it.RX*sx, it.RY*sy)
		dc.Fill()
	}
}

// setColor sets the straight-alpha paint color.
func setColor(dc *gg.Context, c shading.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
