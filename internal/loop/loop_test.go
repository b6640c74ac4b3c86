package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/scene"
)

// fakeScheduler queues callbacks and runs them on demand.
type fakeScheduler struct {
	queue    []FrameFunc
	requests int
}

func (f *fakeScheduler) RequestFrame(fn FrameFunc) {
	f.queue = append(f.queue, fn)
	f.requests++
}

func (f *fakeScheduler) step(elapsed time.Duration) {
	fn := f.queue[0]
	f.queue = f.queue[1:]
	fn(elapsed)
}

func TestLoopPosesScenes(t *testing.T) {
	bg, fg := scene.Build(anim.Background), scene.Build(anim.Foreground)
	s := &fakeScheduler{}
	l := New(s, bg, fg)

	var seen []anim.Variant
	l.OnFrame(func(v anim.Variant, f anim.Frame) { seen = append(seen, v) })

	l.Start()
	if s.requests != 1 || l.Frames() != 0 {
		t.Fatalf("after Start requests=%d frames=%d", s.requests, l.Frames())
	}

	elapsed := 20 * time.Second
	s.step(elapsed)
	want := anim.Update(anim.Foreground, elapsed)
	if fg.Last != want {
		t.Fatalf("foreground frame=%+v, want %+v", fg.Last, want)
	}
	if bg.Last != anim.Update(anim.Background, elapsed) {
		t.Fatalf("background frame not applied")
	}
	if len(seen) != 2 || seen[0] != anim.Background || seen[1] != anim.Foreground {
		t.Fatalf("hooks saw %v", seen)
	}
	if l.Elapsed() != elapsed {
		t.Fatalf("elapsed=%v", l.Elapsed())
	}

	// the loop always asks for exactly one more frame
	for i := 0; i < 10; i++ {
		if len(s.queue) != 1 {
			t.Fatalf("frame %d: queue=%d, want 1", i, len(s.queue))
		}
		s.step(elapsed + time.Duration(i)*time.Millisecond)
	}
	if l.Frames() != 11 || s.requests != 12 {
		t.Fatalf("frames=%d requests=%d", l.Frames(), s.requests)
	}
}

func TestPump(t *testing.T) {
	var p Pump
	if p.Fire(time.Now()) {
		t.Fatalf("Fire with nothing pending ran")
	}

	var got []time.Duration
	var fn FrameFunc
	fn = func(d time.Duration) {
		got = append(got, d)
		p.RequestFrame(fn)
	}
	p.RequestFrame(fn)

	base := time.Unix(1000, 0)
	for _, off := range []time.Duration{0, 16 * time.Millisecond, 33 * time.Millisecond} {
		if !p.Fire(base.Add(off)) {
			t.Fatalf("Fire at %v ran nothing", off)
		}
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 33*time.Millisecond {
		t.Fatalf("elapsed=%v", got)
	}
	if p.pending == nil {
		t.Fatalf("callback did not re-request")
	}
}

func TestTickerRunsTickLimit(t *testing.T) {
	tk := NewTicker(TickerConfig{Hz: 1000, Ticks: 5})
	l := New(tk, scene.Build(anim.Background))
	l.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tk.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 5 {
		t.Fatalf("frames=%d, want 5", l.Frames())
	}
}

func TestTickerStopsWithoutRequest(t *testing.T) {
	tk := NewTicker(TickerConfig{Hz: 1000})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tk.Run(ctx); !errors.Is(err, ErrStopped) {
		t.Fatalf("Run=%v, want ErrStopped", err)
	}
}

func TestTickerCancel(t *testing.T) {
	tk := NewTicker(TickerConfig{Hz: 1000})
	New(tk, scene.Build(anim.Background)).Start()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := tk.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run=%v, want deadline exceeded", err)
	}
}

func TestTickerDefaultsHz(t *testing.T) {
	if tk := NewTicker(TickerConfig{}); tk.cfg.Hz != 60 {
		t.Fatalf("hz=%d", tk.cfg.Hz)
	}
}
