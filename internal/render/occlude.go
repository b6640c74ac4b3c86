package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// spanSamples is how many pieces an edge is tested in before the
	// visibility boundaries are refined.
	spanSamples = 24
	spanRefine  = 10

	// depthEpsilon keeps a point lying on a solid's surface visible.
	depthEpsilon = 1e-4
)

// plane is the half-space n·x <= d, n pointing out of the solid.
type plane struct {
	n mgl64.Vec3
	d float64
}

// occluder is a convex solid in camera space. Points are hidden when the
// ray from the camera reaches the solid before reaching them.
type occluder []plane

// hides reports whether p, in camera space, lies behind or inside o.
func (o occluder) hides(p mgl64.Vec3) bool {
	if len(o) == 0 {
		return false
	}
	// clip the ray t*p, t in (0, inf), against every half-space
	enter, exit := math.Inf(-1), math.Inf(1)
	for _, pl := range o {
		den := pl.n.Dot(p)
		switch {
		case den > 0:
			exit = math.Min(exit, pl.d/den)
		case den < 0:
			enter = math.Max(enter, pl.d/den)
		case pl.d < 0:
			return false
		}
	}
	return enter <= exit && enter > 0 && enter < 1-depthEpsilon
}

func hidden(p mgl64.Vec3, occ []occluder) bool {
	for _, o := range occ {
		if o.hides(p) {
			return true
		}
	}
	return false
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// visibleSpans returns the parameter ranges of segment a-b not hidden by
// any occluder, in order along the segment.
func visibleSpans(a, b mgl64.Vec3, occ []occluder) [][2]float64 {
	if len(occ) == 0 {
		return [][2]float64{{0, 1}}
	}
	var spans [][2]float64
	start := -1.0
	prevT, prevHidden := 0.0, false
	for i := 0; i < spanSamples; i++ {
		t := (float64(i) + 0.5) / spanSamples
		h := hidden(lerp(a, b, t), occ)
		switch {
		case i == 0:
			if !h {
				start = 0
			}
		case h != prevHidden:
			cut := boundary(a, b, prevT, t, prevHidden, occ)
			if h {
				spans = append(spans, [2]float64{start, cut})
			} else {
				start = cut
			}
		}
		prevT, prevHidden = t, h
	}
	if !prevHidden {
		spans = append(spans, [2]float64{start, 1})
	}
	return spans
}

// boundary bisects between lo and hi, whose hidden states differ, for the
// point where visibility changes.
func boundary(a, b mgl64.Vec3, lo, hi float64, loHidden bool, occ []occluder) float64 {
	for i := 0; i < spanRefine; i++ {
		mid := (lo + hi) / 2
		if hidden(lerp(a, b, mid), occ) == loHidden {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
