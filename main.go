package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/chime"
	"github.com/iburimskiy/polyhedra/internal/config"
	"github.com/iburimskiy/polyhedra/internal/game"
	"github.com/iburimskiy/polyhedra/internal/headless"
	"github.com/iburimskiy/polyhedra/internal/loop"
	"github.com/iburimskiy/polyhedra/internal/term"
)

func parseFlags() config.Config {
	cfg := config.Default()
	mode := string(cfg.Mode)
	flag.StringVar(&mode, "mode", mode, "Output surface: window, term or headless.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	flag.IntVar(&cfg.Inside, "inside", cfg.Inside, "Center graphic size in pixels (0 = background only).")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in term and headless modes (0 = run forever).")
	flag.BoolVar(&cfg.Audio, "audio", false, "Play the ambient drone.")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Drone volume as a power of two (0 = unity).")
	flag.BoolVar(&cfg.Debug, "debug", false, "Show frame parameters on screen.")
	flag.Parse()
	cfg.Mode = config.Mode(mode)
	return cfg
}

// startAudio plays the drone and returns a hook feeding it foreground frames.
func startAudio(cfg config.Config) (loop.Hook, func(), error) {
	d := chime.NewDrone(beep.SampleRate(config.SampleRate))
	p, err := chime.Play(d, cfg.Volume, config.AudioLatency*time.Millisecond)
	if err != nil {
		return nil, nil, err
	}
	hook := func(v anim.Variant, f anim.Frame) {
		if v == anim.Foreground {
			d.Set(f)
		}
	}
	return hook, p.Close, nil
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var hooks []loop.Hook
	if cfg.Audio {
		hook, stop, err := startAudio(cfg)
		if err != nil {
			// the animation does not need sound
			log.Printf("audio disabled: %v", err)
		} else {
			defer stop()
			hooks = append(hooks, hook)
		}
	}

	switch cfg.Mode {
	case config.ModeWindow:
		err := game.Run(cfg, hooks...)
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		return err
	case config.ModeTerm:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		// terminal output belongs to the screen while it runs
		prev := log.Writer()
		log.SetOutput(io.Discard)
		defer log.SetOutput(prev)
		return term.Run(ctx, cfg, hooks...)
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		st, err := headless.Run(ctx, cfg, log.Default(), hooks...)
		log.Printf("headless: %d frames over %v", st.Frames, st.Elapsed.Round(time.Millisecond))
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}

func main() {
	log.SetPrefix("[polyhedra] ")
	log.SetFlags(log.Ltime)

	cfg := parseFlags()
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if cfg.Mode == config.ModeWindow {
			_ = zenity.Error(err.Error(), zenity.Title("Polyhedra"), zenity.ErrorIcon)
		}
		os.Exit(1)
	}
}
