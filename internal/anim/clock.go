package anim

import (
	"math"
	"time"
)

const (
	// Period is the length of one cross-fade cycle in animation seconds.
	Period = 8.0
	// TimeScale converts elapsed milliseconds into animation seconds.
	TimeScale = 0.0012
	// PhaseShift offsets the clock so the first frame starts mid-cycle.
	PhaseShift = 5.0
	// MinSeconds bounds the clock away from zero for the reciprocal terms.
	MinSeconds = 0.001
)

// Phase holds the per-frame phase scalars.
type Phase struct {
	T  float64 // shifted animation time in seconds
	T1 float64 // phase of T within Period, in [0,1)
	T2 float64 // T1 shifted by half a period, in [0,1)
}

// Seconds converts elapsed wall time into animation seconds.
func Seconds(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return ms * TimeScale
}

// PhaseAt derives the phase scalars from elapsed wall time.
func PhaseAt(elapsed time.Duration) Phase {
	return phaseAtSeconds(Seconds(elapsed))
}

func phaseAtSeconds(s float64) Phase {
	t := s - PhaseShift
	t1 := Mod1(t / Period)
	return Phase{T: t, T1: t1, T2: Mod1(t1 + 0.5)}
}

// Mod1 returns the floored fractional part of x, always in [0,1).
func Mod1(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 || f < 0 {
		// rounding on huge or tiny negative x
		return 0
	}
	return f
}

// EaseRoll is the slow-start curve driving the camera roll. It stays at zero
// for the first 2.5 seconds.
func EaseRoll(s float64) float64 {
	d := math.Max(0, s-2.5)
	if d == 0 {
		return 0
	}
	return d / (1 + 20/d + d/5)
}

// EaseTilt is the slow-start curve driving the rotator tilt. It stays at zero
// for the first 10 seconds and then tends towards linear growth.
func EaseTilt(s float64) float64 {
	d := math.Max(0, s-10)
	if d == 0 {
		return 0
	}
	return d / (1 + 20/d)
}

// Tent is the wireframe fade: zero at p=0, full at p=0.25, zero again from
// p=0.75 until the phase wraps.
func Tent(p float64) float64 {
	return clamp01(math.Min(4*p, 1.5-2*p))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
