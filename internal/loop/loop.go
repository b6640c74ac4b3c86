// Package loop drives scenes from a frame scheduler: every frame poses each
// scene for the elapsed time and asks for the next frame.
package loop

import (
	"time"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/scene"
)

// FrameFunc receives the time elapsed since the first frame.
type FrameFunc func(elapsed time.Duration)

// Scheduler runs a callback on the next display frame. Implementations run
// one callback to completion before the next may start.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// Hook observes each posed frame of a scene.
type Hook func(v anim.Variant, f anim.Frame)

// Loop animates a set of scenes forever.
type Loop struct {
	sched  Scheduler
	scenes []*scene.Scene
	hooks  []Hook

	frames  uint64
	elapsed time.Duration
}

// New returns a loop over scenes, not yet started.
func New(s Scheduler, scenes ...*scene.Scene) *Loop {
	return &Loop{sched: s, scenes: scenes}
}

// OnFrame registers h to run after each scene is posed.
func (l *Loop) OnFrame(h Hook) {
	l.hooks = append(l.hooks, h)
}

// Start requests the first frame.
func (l *Loop) Start() {
	l.sched.RequestFrame(l.frame)
}

func (l *Loop) frame(elapsed time.Duration) {
	l.elapsed = elapsed
	for _, sc := range l.scenes {
		f := anim.Update(sc.Variant, elapsed)
		sc.Apply(f)
		for _, h := range l.hooks {
			h(sc.Variant, f)
		}
	}
	l.frames++
	l.sched.RequestFrame(l.frame)
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 { return l.frames }

// Elapsed returns the elapsed time of the current or latest frame.
func (l *Loop) Elapsed() time.Duration { return l.elapsed }
