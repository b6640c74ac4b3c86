package chime

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Player owns the speaker while the drone plays.
type Player struct {
	ctrl *beep.Ctrl
}

// Play initialises the speaker and starts d. volume is a power-of-two gain
// (0 is unity, -1 half).
func Play(d *Drone, volume float64, latency time.Duration) (*Player, error) {
	if err := speaker.Init(d.sr, d.sr.N(latency)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	vol := &effects.Volume{Streamer: d, Base: 2, Volume: volume}
	ctrl := &beep.Ctrl{Streamer: vol}
	speaker.Play(ctrl)
	return &Player{ctrl: ctrl}, nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
}
