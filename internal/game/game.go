// Package game shows the animation in a desktop window.
package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/polyhedra/internal/anim"
	"github.com/iburimskiy/polyhedra/internal/config"
	"github.com/iburimskiy/polyhedra/internal/loop"
	"github.com/iburimskiy/polyhedra/internal/render"
	"github.com/iburimskiy/polyhedra/internal/scene"
)

type game struct {
	cfg config.Config

	pump *loop.Pump
	loop *loop.Loop

	bg, fg   *scene.Scene
	renderer *render.Renderer
	painter  painter

	bgList, fgList render.DrawList
	inside         *ebiten.Image
}

func newGame(cfg config.Config, hooks ...loop.Hook) *game {
	g := &game{
		cfg:      cfg,
		pump:     &loop.Pump{},
		bg:       scene.Build(anim.Background),
		fg:       scene.Build(anim.Foreground),
		renderer: render.NewRenderer(config.LineWidth),
	}
	g.loop = loop.New(g.pump, g.bg, g.fg)
	for _, h := range hooks {
		g.loop.OnFrame(h)
	}
	g.loop.Start()
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.pump.Fire(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// sizes are polled every frame; the window may have been resized
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.renderer.LineWidth = config.LineWidth * scale
	b := screen.Bounds()
	bgView, fgView, at := render.Layout(b.Dx(), b.Dy(), int(float64(g.cfg.Inside)*scale))

	g.renderer.Render(g.bg, bgView, &g.bgList)
	g.painter.draw(screen, &g.bgList)

	if fgView.W > 0 {
		img := g.insideImage(fgView.W, fgView.H)
		g.renderer.Render(g.fg, fgView, &g.fgList)
		g.painter.draw(img, &g.fgList)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(at.X), float64(at.Y))
		screen.DrawImage(img, op)
	}

	if g.cfg.Debug {
		f := g.fg.Last
		status := fmt.Sprintf("%s  t1 %.3f  t2 %.3f  roll %.3f  z %.2f  TPS %.0f  items %d/%d",
			formatDuration(g.loop.Elapsed()), f.T1, f.T2, f.CameraRoll, f.RotatorZ,
			ebiten.ActualTPS(), len(g.bgList.Items), len(g.fgList.Items))
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *game) insideImage(w, h int) *ebiten.Image {
	if g.inside != nil {
		if s := g.inside.Bounds().Size(); s.X == w && s.Y == h {
			return g.inside
		}
		g.inside.Deallocate()
	}
	g.inside = ebiten.NewImage(w, h)
	return g.inside
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// Run opens the window and animates until it is closed. hooks observe every
// posed frame.
func Run(cfg config.Config, hooks ...loop.Hook) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Polyhedra - Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)

	g := newGame(cfg, hooks...)
	log.Printf("window %dx%d, center graphic %d", cfg.Width, cfg.Height, cfg.Inside)
	return ebiten.RunGame(g)
}
