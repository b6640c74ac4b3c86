// Package term shows the animation in a terminal, two pixels per cell.
package term

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/config"
	"github.com/iburimskiy/polyhedra/internal/loop"
	"github.com/iburimskiy/polyhedra/internal/raster"
	"github.com/iburimskiy/polyhedra/internal/render"
	"github.com/iburimskiy/polyhedra/internal/scene"
)

// halfBlock paints the top pixel as foreground, the bottom as background.
const halfBlock = '▀'

type surface struct {
	screen tcell.Screen
	cfg    config.Config

	pump *loop.Pump
	loop *loop.Loop

	bg, fg   *scene.Scene
	renderer *render.Renderer
	canvas   raster.Canvas
	fgCanvas raster.Canvas

	bgList, fgList render.DrawList
	pix, fgPix     *image.RGBA
}

func newSurface(screen tcell.Screen, cfg config.Config, hooks ...loop.Hook) *surface {
	s := &surface{
		screen:   screen,
		cfg:      cfg,
		pump:     &loop.Pump{},
		bg:       scene.Build(anim.Background),
		fg:       scene.Build(anim.Foreground),
		renderer: render.NewRenderer(config.LineWidth),
	}
	s.loop = loop.New(s.pump, s.bg, s.fg)
	for _, h := range hooks {
		s.loop.OnFrame(h)
	}
	s.loop.Start()
	return s
}

// insideFor scales the center graphic with the terminal the way it scales
// with the window height.
func (s *surface) insideFor(h int) int {
	return s.cfg.Inside * h / s.cfg.Height
}

// frame advances the animation and repaints the whole screen.
func (s *surface) frame(now time.Time) {
	s.pump.Fire(now)

	cols, rows := s.screen.Size()
	w, h := cols, rows*2
	if w <= 0 || h <= 0 {
		return
	}
	bgView, fgView, at := render.Layout(w, h, s.insideFor(h))

	s.pix = ensure(s.pix, w, h)
	s.renderer.Render(s.bg, bgView, &s.bgList)
	s.canvas.Draw(s.pix, &s.bgList)

	if fgView.W > 0 {
		s.fgPix = ensure(s.fgPix, fgView.W, fgView.H)
		s.renderer.Render(s.fg, fgView, &s.fgList)
		s.fgCanvas.Draw(s.fgPix, &s.fgList)
		r := image.Rectangle{Min: at, Max: at.Add(s.fgPix.Bounds().Size())}
		draw.Draw(s.pix, r, s.fgPix, image.Point{}, draw.Src)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bot := s.pix.RGBAAt(x, 2*y), s.pix.RGBAAt(x, 2*y+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			s.screen.SetContent(x, y, halfBlock, nil, st)
		}
	}
	s.screen.Show()
}

func ensure(img *image.RGBA, w, h int) *image.RGBA {
	if img != nil && img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// quitKey reports whether ev asks to leave.
func quitKey(ev tcell.Event) bool {
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlC ||
		(k.Key() == tcell.KeyRune && (k.Rune() == 'q' || k.Rune() == 'Q'))
}

// Run takes over the terminal until ctx ends or a quit key is pressed.
func Run(ctx context.Context, cfg config.Config, hooks ...loop.Hook) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	return run(ctx, screen, cfg, hooks...)
}

func run(ctx context.Context, screen tcell.Screen, cfg config.Config, hooks ...loop.Hook) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.HideCursor()
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if quitKey(ev) {
				cancel()
				return
			}
		}
	}()

	s := newSurface(screen, cfg, hooks...)
	tk := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer tk.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tk.C:
			s.frame(now)
			n++
			if cfg.Ticks > 0 && n >= cfg.Ticks {
				return nil
			}
		}
	}
}
