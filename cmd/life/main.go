//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mutalife/internal/app"
	"mutalife/internal/core"
	"mutalife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 240

func main() {
	log.SetPrefix("[LIFE] ")

	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sim, err := life.New(cfg.Life())
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	width := 0
	if cfg.HUD {
		width = hudWidth
	}
	game := app.New(sim, cfg.Scale, sim.Seed(), width)
	size := sim.Size()

	ebiten.SetWindowTitle(windowTitle(sim.Name()))
	ebiten.SetTPS(core.TicksPerSecond(cfg.Period()))
	ebiten.SetWindowSize(size.W*cfg.Scale+width, size.H*cfg.Scale)

	log.Printf("running %dx%d grid, seed %d, mutation rate %v, frame period %v",
		size.W, size.H, sim.Seed(), sim.MutationRate(), cfg.Period())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
