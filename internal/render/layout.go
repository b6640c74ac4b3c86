package render

import "image"

// Layout sizes the two canvases for a w x h surface with a square center
// graphic of edge inside, shrunk to fit. It returns the background viewport,
// the foreground viewport and where the foreground's top-left corner sits on
// the background. A zero-sized foreground means there is no center graphic.
func Layout(w, h, inside int) (bg, fg Viewport, at image.Point) {
	inside = max(0, min(inside, w, h))

	ref := float64(inside)
	if inside == 0 {
		ref = float64(min(w, h))
	}
	bg = Viewport{W: w, H: h, Offset: BackgroundOffset(float64(w), float64(h), ref, ref)}
	if inside == 0 {
		return bg, Viewport{}, image.Point{}
	}
	fg = Viewport{W: inside, H: inside, Offset: ForegroundOffset(float64(inside), float64(inside))}
	at = image.Point{X: (w - inside) / 2, Y: (h - inside) / 2}
	return bg, fg, at
}
