package config

import (
	"errors"
	"fmt"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Center graphic, drawn in the middle of the background
	InsideSize = 320

	TPS       = 60
	LineWidth = 1.0

	// Audio
	SampleRate   = 44100
	AudioLatency = 20 // buffer, in milliseconds
	DroneVolume  = -2.5
)

// Mode selects the output surface.
type Mode string

const (
	ModeWindow   Mode = "window"
	ModeTerm     Mode = "term"
	ModeHeadless Mode = "headless"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration assembled from flags.
type Config struct {
	Mode   Mode
	Width  int
	Height int
	Inside int // center graphic edge length; 0 hides it

	Hz    int
	Ticks uint64

	Audio  bool
	Volume float64 // drone gain, as a power of two

	Debug bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Mode:   ModeWindow,
		Width:  WindowWidth,
		Height: WindowHeight,
		Inside: InsideSize,
		Hz:     TPS,
		Volume: DroneVolume,
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeTerm, ModeHeadless:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Inside < 0 || c.Inside > c.Width || c.Inside > c.Height {
		return fmt.Errorf("%w: center graphic size %d does not fit %dx%d", ErrInvalid, c.Inside, c.Width, c.Height)
	}
	if c.Hz <= 0 || c.Hz > 1000 {
		return fmt.Errorf("%w: hz %d", ErrInvalid, c.Hz)
	}
	if c.Volume > 0 {
		return fmt.Errorf("%w: volume %v above unity", ErrInvalid, c.Volume)
	}
	return nil
}
