// Command life-headless runs the simulation without a window. Frames go to the
// terminal; typing q or m followed by enter quits or mutates.
package main

import (
	"bufio"
	"context"
	"flag"
	"image/color"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"mutalife/internal/app"
	"mutalife/internal/render"
	"mutalife/internal/sims/life"
)

const reportInterval = 5 * time.Second

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &app.Loop{
		Sim:            sim,
		Keys:           readKeys(os.Stdin),
		Period:         cfg.Period(),
		Stats:          app.NewStats(time.Now()),
		MaxGenerations: cfg.Generations,
		LogEvery:       cfg.LogEvery,
	}
	if cfg.Render == app.RenderTerminal {
		loop.Renderer = render.NewTerminalRenderer(os.Stdout, true)
	}

	log.Printf("running %dx%d grid, seed %d, mutation rate %v, frame period %v",
		cfg.Size, cfg.Size, sim.Seed(), sim.MutationRate(), cfg.Period())

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return report(gctx, done, loop.Stats)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("run: %v", err)
	}

	s := loop.Stats.Snapshot(time.Now())
	log.Printf("final stats: %d generations in %.1fs | avg pop %.1f | mutations %d",
		s.Generation, s.Elapsed.Seconds(), s.AveragePopulation, s.Mutations)

	if cfg.Snapshot != "" {
		size := sim.Size()
		img := render.Frame(sim.Cells(), size.W, size.H, cfg.Scale, color.White, color.Black)
		if err := render.WriteSnapshot(cfg.Snapshot, img); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("wrote %s", cfg.Snapshot)
	}
}

// readKeys forwards the first character of each input line. The reader
// goroutine lives until r reaches EOF.
func readKeys(r io.Reader) <-chan app.Key {
	keys := make(chan app.Key, 1)
	go func() {
		defer close(keys)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				continue
			}
			if k := app.ParseKey(rune(line[0])); k != app.KeyNone {
				keys <- k
			}
		}
	}()
	return keys
}

// report logs throughput every reportInterval until the loop finishes.
func report(ctx context.Context, done <-chan struct{}, stats *app.Stats) error {
	ticker := time.NewTicker(reportInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			return nil
		case <-ticker.C:
			s := stats.Snapshot(time.Now())
			log.Printf("%.0fs elapsed | gen %d | %.1f gen/sec", s.Elapsed.Seconds(), s.Generation, s.GenerationsPerSecond)
		}
	}
}
