//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"mutalife/internal/core"
	"mutalife/internal/render"
	"mutalife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an automaton to the ebiten.Game interface.
type Game struct {
	sim     core.Automaton
	painter *render.GridPainter
	hud     *ui.HUD
	stats   *Stats

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seeds    seedTracker

	generation int
}

// New constructs a Game for the provided automaton. A positive hudWidth adds a
// parameter panel to the right of the grid.
func New(sim core.Automaton, scale int, seed int64, hudWidth int) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		stats:    NewStats(time.Now()),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		hudWidth: hudWidth,
		seeds:    newSeedTracker(seed),
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed. The
// configured seed is kept for the R key.
func (g *Game) Reset(seed int64) {
	g.seeds.current = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.generation = 0
	log.Printf("reset with seed %d", seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logStats()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sim.Mutate()
		g.stats.Mutated()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seeds.replay())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.seeds.reseed(core.NewSeed()))
	}

	if g.hud != nil {
		g.hud.Update(g.gridWidth())
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.generation++
		g.stats.Update(g.generation, population(g.sim.Cells()), time.Now())
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.gridWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.sim.Size().W * g.scale }

func (g *Game) logStats() {
	s := g.stats.Snapshot(time.Now())
	log.Printf("final stats: %d generations in %.1fs | avg pop %.1f | mutations %d",
		s.Generation, s.Elapsed.Seconds(), s.AveragePopulation, s.Mutations)
}
