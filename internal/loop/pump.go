package loop

import "time"

// Pump is a Scheduler fed by an outside frame source, such as a game
// engine's update callback. It holds at most one pending callback.
type Pump struct {
	pending FrameFunc
	start   time.Time
	started bool
}

// RequestFrame implements Scheduler.
func (p *Pump) RequestFrame(fn FrameFunc) {
	p.pending = fn
}

// Fire runs the pending callback with the time elapsed since the first
// Fire. It reports whether a callback ran.
func (p *Pump) Fire(now time.Time) bool {
	fn := p.pending
	if fn == nil {
		return false
	}
	p.pending = nil
	if !p.started {
		p.start, p.started = now, true
	}
	fn(now.Sub(p.start))
	return true
}
