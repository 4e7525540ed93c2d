//go:build ebiten

package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/ui"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	scale   int
}

// New constructs a Game that advances sim once per interval and stops when
// ctx is cancelled.
func New(ctx context.Context, sim core.Sim, scale int, interval time.Duration) *Game {
	return &Game{
		ctx:     ctx,
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), render.DefaultPalette()),
		hud:     ui.NewHUD(sim),
		pacer:   core.NewFixedStep(interval),
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.pacer.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.scale)
	g.hud.Draw(screen, g.sim.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.HUDHeight
}

// Window opens a window and animates sim until the user closes it or ctx is
// cancelled.
func Window(ctx context.Context, sim core.Sim, cfg *Config, log *slog.Logger) error {
	game := New(ctx, sim, cfg.Scale, cfg.Interval())
	size := sim.Size()

	// The pacer can only fire once per tick, so short intervals need more ticks.
	tps := ebiten.DefaultTPS
	if perSecond := int(time.Second / cfg.Interval()); perSecond > tps {
		tps = perSecond
	}

	ebiten.SetWindowTitle("game of life: " + sim.Name())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.HUDHeight)
	log.Info("opening window", "width", size.W*cfg.Scale, "tps", tps)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("window closed", "generation", sim.Generation())
	return nil
}
