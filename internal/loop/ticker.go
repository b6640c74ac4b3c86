package loop

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStopped is returned by Ticker.Run when no frame was requested.
var ErrStopped = errors.New("loop: no frame requested")

// TickerConfig controls the headless scheduler.
type TickerConfig struct {
	Hz    int
	Ticks uint64 // stop after this many frames; 0 runs until ctx ends
}

// Ticker is a Scheduler that fires frames from a time.Ticker, for running
// without a display.
type Ticker struct {
	cfg  TickerConfig
	pump Pump
	now  func() time.Time
}

// NewTicker returns a headless scheduler. A non-positive Hz means 60.
func NewTicker(cfg TickerConfig) *Ticker {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	return &Ticker{cfg: cfg, now: time.Now}
}

// RequestFrame implements Scheduler.
func (t *Ticker) RequestFrame(fn FrameFunc) { t.pump.RequestFrame(fn) }

// Run fires frames until ctx is done, the tick limit is reached, or nothing
// asks for another frame.
func (t *Ticker) Run(ctx context.Context) error {
	d := time.Second / time.Duration(t.cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", t.cfg.Hz)
	}
	tk := time.NewTicker(d)
	defer tk.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			if !t.pump.Fire(t.now()) {
				return ErrStopped
			}
			n++
			if t.cfg.Ticks > 0 && n >= t.cfg.Ticks {
				return nil
			}
		}
	}
}
