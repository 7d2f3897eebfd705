//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"torus-life/internal/render"
	"torus-life/internal/ui"
	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxTPS = 240

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *core.FixedStep

	scale    int
	tps      int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size(), color.White, color.Black),
		overlay: ui.NewOverlay(),
		pacer:   core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
		tps:     cfg.TPS,
		paused:  cfg.Paused,
	}
	g.painter.Full(sim.State())
	return g
}

func (g *Game) repaint() {
	g.painter.Delta(g.sim.State(), g.sim.Flipped())
}

func (g *Game) setTPS(tps int) {
	g.tps = min(max(tps, 1), maxTPS)
	g.pacer.SetTPS(g.tps)
}

func (g *Game) toggleAtCursor() {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 {
		return
	}
	if err := g.sim.ToggleCell(y/g.scale, x/g.scale); err != nil {
		// Clicks in the window margin land outside the board.
		log.Printf("toggle: %v", err)
		return
	}
	g.repaint()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		g.repaint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
		g.repaint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTPS(g.tps / 2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}

	g.overlay.Update()

	steps := g.pacer.Advance(time.Now())
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps, g.tickOnce = 1, false
	}
	for i := 0; i < steps; i++ {
		g.sim.Tick()
		g.repaint()
	}
	g.overlay.SetLine(ui.Status(g.sim, g.paused, g.tps))
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s * g.scale, s * g.scale
}
