package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera on the z axis looking at the origin.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64
	Z      float64
	Roll   float64
}

// DefaultCamera matches both scenes: narrow field of view from z=50. The
// aspect stays 1; the view offset carries the canvas proportions.
func DefaultCamera() Camera {
	return Camera{FOV: 20, Aspect: 1, Near: 1, Far: 1000, Z: 50}
}

// ViewOffset places the rendered canvas as a W x H window into a larger
// FullW x FullH virtual canvas, X/Y being the window's top-left corner.
type ViewOffset struct {
	FullW, FullH float64
	X, Y         float64
	W, H         float64
}

// Enabled reports whether the offset describes a usable window.
func (o ViewOffset) Enabled() bool {
	return o.FullW > 0 && o.FullH > 0 && o.W > 0 && o.H > 0
}

// ForegroundOffset frames the center graphic on a w x h canvas, pushing the
// content off-center so it sits where it reads as centred.
func ForegroundOffset(w, h float64) ViewOffset {
	return ViewOffset{FullW: w * 2, FullH: h * 2, X: h * 0.4, Y: h * 0.6, W: w, H: h}
}

// BackgroundOffset frames a w x h background canvas so its content lines
// up with an iw x ih center graphic placed in the middle of it.
func BackgroundOffset(w, h, iw, ih float64) ViewOffset {
	ox := (w - iw) / 2
	oy := (h - ih) / 2
	return ViewOffset{FullW: iw * 2, FullH: ih * 2, X: ih*0.4 - ox, Y: ih*0.6 - oy, W: w, H: h}
}

// Projection returns the projection matrix for the given view offset.
func (c Camera) Projection(o ViewOffset) mgl64.Mat4 {
	top := c.Near * math.Tan(mgl64.DegToRad(0.5*c.FOV))
	height := 2 * top
	width := c.Aspect * height
	left := -0.5 * width
	if o.Enabled() {
		left += o.X * width / o.FullW
		top -= o.Y * height / o.FullH
		width *= o.W / o.FullW
		height *= o.H / o.FullH
	}
	return mgl64.Frustum(left, left+width, top-height, top, c.Near, c.Far)
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(-c.Roll).Mul4(mgl64.Translate3D(0, 0, -c.Z))
}
