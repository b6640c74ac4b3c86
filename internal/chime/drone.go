// Package chime plays a quiet two-voice drone whose voices fade with the
// cube and octahedron wireframes.
package chime

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/polyhedra/internal/anim"
)

const (
	cubeHz    = 110.0  // A2
	octaHz    = 164.81 // E3
	voiceGain = 0.2
	glideSecs = 0.05
	pan       = 0.3
)

// Drone is a beep.Streamer. Set is called from the render path, Stream
// from the speaker's goroutine.
type Drone struct {
	mu     sync.RWMutex
	target [2]float64
	gain   [2]float64

	sr    beep.SampleRate
	freq  [2]float64
	phase [2]float64
	glide float64
}

// NewDrone returns a silent drone at sample rate sr.
func NewDrone(sr beep.SampleRate) *Drone {
	return &Drone{
		sr:    sr,
		freq:  [2]float64{cubeHz, octaHz},
		glide: 1 - math.Exp(-1/(float64(sr)*glideSecs)),
	}
}

// Set retargets the voice gains from a frame's wireframe opacities.
func (d *Drone) Set(f anim.Frame) {
	d.mu.Lock()
	d.target = [2]float64{f.Cube.Wire.Opacity, f.Octa.Wire.Opacity}
	d.mu.Unlock()
}

// Stream fills samples; it never ends.
func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	d.mu.RLock()
	target, gain := d.target, d.gain
	d.mu.RUnlock()

	step := [2]float64{
		2 * math.Pi * d.freq[0] / float64(d.sr),
		2 * math.Pi * d.freq[1] / float64(d.sr),
	}
	for i := range samples {
		var l, r float64
		for v := 0; v < 2; v++ {
			gain[v] += (target[v] - gain[v]) * d.glide
			s := math.Sin(d.phase[v]) * gain[v] * voiceGain
			d.phase[v] = math.Mod(d.phase[v]+step[v], 2*math.Pi)
			// cube leans left, octahedron right
			if v == 0 {
				l, r = l+s*(1+pan), r+s*(1-pan)
			} else {
				l, r = l+s*(1-pan), r+s*(1+pan)
			}
		}
		samples[i] = [2]float64{l, r}
	}

	d.mu.Lock()
	d.gain = gain
	d.mu.Unlock()
	return len(samples), true
}

// Err implements beep.Streamer.
func (d *Drone) Err() error { return nil }

// Gains returns the smoothed voice gains reached by the last Stream call.
func (d *Drone) Gains() (cube, octa float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gain[0], d.gain[1]
}
