package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/polyhedra/internal/render"
)

const discSegments = 64

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// painter draws draw lists onto ebiten images, batching runs of triangles.
type painter struct {
	verts []ebiten.Vertex
	idx   []uint16
}

func (p *painter) draw(dst *ebiten.Image, dl *render.DrawList) {
	dst.Fill(toColor(dl.Clear.WithAlpha(1)))
	for i := range dl.Items {
		it := &dl.Items[i]
		switch it.Kind {
		case render.ItemLine:
			p.flush(dst)
			vector.StrokeLine(dst,
				float32(it.P[0].X), float32(it.P[0].Y), float32(it.P[1].X), float32(it.P[1].Y),
				float32(it.Width), toColor(it.Color), true)
		case render.ItemTriangle:
			if len(p.verts)+3 > math.MaxUint16 {
				p.flush(dst)
			}
			base := uint16(len(p.verts))
			for _, pt := range it.P {
				p.verts = append(p.verts, vertex(pt, it.Color))
			}
			p.idx = append(p.idx, base, base+1, base+2)
		case render.ItemDisc:
			p.flush(dst)
			if math.Abs(it.RX-it.RY) < 0.5 {
				vector.DrawFilledCircle(dst, float32(it.P[0].X), float32(it.P[0].Y), float32((it.RX+it.RY)/2), toColor(it.Color), true)
				continue
			}
			p.ellipse(it)
			p.flush(dst)
		}
	}
	p.flush(dst)
}

// ellipse queues a triangle fan approximating an elliptical disc.
func (p *painter) ellipse(it *render.Item) {
	c := it.P[0]
	base := uint16(len(p.verts))
	p.verts = append(p.verts, vertex(c, it.Color))
	for i := 0; i < discSegments; i++ {
		a := 2 * math.Pi * float64(i) / discSegments
		pt := render.Point{X: c.X + it.RX*math.Cos(a), Y: c.Y + it.RY*math.Sin(a)}
		p.verts = append(p.verts, vertex(pt, it.Color))
	}
	for i := 0; i < discSegments; i++ {
		next := (i+1)%discSegments + 1
		p.idx = append(p.idx, base, base+uint16(i+1), base+uint16(next))
	}
}

func (p *painter) flush(dst *ebiten.Image) {
	if len(p.idx) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(p.verts, p.idx, whiteSubImage, op)
	p.verts = p.verts[:0]
	p.idx = p.idx[:0]
}
