package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/polyhedra/internal/render"
	"github.com/iburimskiy/polyhedra/internal/shading"
)

// vertex builds a straight-alpha ebiten vertex sampling the white pixel.
func vertex(p render.Point, c shading.RGBA) ebiten.Vertex {
	c = c.Clamp()
	return ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 1, SrcY: 1,
		ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: float32(c.A),
	}
}

func toColor(c shading.RGBA) color.Color {
	return c.NRGBA()
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
