// Package headless runs the animation without a display, rasterising every
// frame in memory. It is meant for soak runs and CI.
package headless

import (
	"context"
	"image"
	"log"
	"time"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/config"
	"github.com/iburimskiy/polyhedra/internal/loop"
	"github.com/iburimskiy/polyhedra/internal/raster"
	"github.com/iburimskiy/polyhedra/internal/render"
	"github.com/iburimskiy/polyhedra/internal/scene"
)

// Stats summarises a headless run.
type Stats struct {
	Frames  uint64
	Items   int // draw list items in the latest frame
	Elapsed time.Duration
}

// Run animates both scenes at cfg.Hz for cfg.Ticks frames (or until ctx
// ends), logging once per second of elapsed time.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger, hooks ...loop.Hook) (Stats, error) {
	tk := loop.NewTicker(loop.TickerConfig{Hz: cfg.Hz, Ticks: cfg.Ticks})
	bg, fg := scene.Build(anim.Background), scene.Build(anim.Foreground)
	l := loop.New(tk, bg, fg)
	for _, h := range hooks {
		l.OnFrame(h)
	}

	r := render.NewRenderer(config.LineWidth)
	bgView, fgView, _ := render.Layout(cfg.Width, cfg.Height, cfg.Inside)
	bgPix := image.NewRGBA(image.Rect(0, 0, bgView.W, bgView.H))
	var fgPix *image.RGBA
	if fgView.W > 0 {
		fgPix = image.NewRGBA(image.Rect(0, 0, fgView.W, fgView.H))
	}

	var st Stats
	var bgList, fgList render.DrawList
	var bgCanvas, fgCanvas raster.Canvas
	var lastLog time.Duration
	l.OnFrame(func(v anim.Variant, f anim.Frame) {
		if v != anim.Foreground {
			return
		}
		r.Render(bg, bgView, &bgList)
		bgCanvas.Draw(bgPix, &bgList)
		st.Items = len(bgList.Items)
		if fgPix != nil {
			r.Render(fg, fgView, &fgList)
			fgCanvas.Draw(fgPix, &fgList)
			st.Items += len(fgList.Items)
		}
		if el := l.Elapsed(); el-lastLog >= time.Second && logger != nil {
			lastLog = el
			logger.Printf("frame %d t1=%.3f t2=%.3f roll=%.3f z=%.2f items=%d", l.Frames(), f.T1, f.T2, f.CameraRoll, f.RotatorZ, st.Items)
		}
	})

	l.Start()
	err := tk.Run(ctx)
	st.Frames = l.Frames()
	st.Elapsed = l.Elapsed()
	return st, err
}
