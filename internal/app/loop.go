package app

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"mutalife/internal/core"
)

// Key is a driver input event.
type Key int

const (
	// KeyNone means the frame wait timed out without input.
	KeyNone Key = iota
	// KeyQuit stops the loop.
	KeyQuit
	// KeyMutate applies one mutation before the next step.
	KeyMutate
)

// ParseKey maps a typed character to a Key.
func ParseKey(r rune) Key {
	switch r {
	case 'q', 'Q':
		return KeyQuit
	case 'm', 'M':
		return KeyMutate
	}
	return KeyNone
}

// Renderer draws one generation.
type Renderer interface {
	Render(cells []uint8, w, h int) error
}

// Loop drives an automaton without a window: render, wait up to one frame
// period for input, then quit, mutate and step, or step.
type Loop struct {
	Sim      core.Automaton
	Renderer Renderer
	Keys     <-chan Key
	Period   time.Duration
	Stats    *Stats

	// MaxGenerations stops the loop once reached; zero means unbounded.
	MaxGenerations int
	// LogEvery logs stats every n generations; zero disables logging.
	LogEvery int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Run blocks until the quit key arrives, the generation limit is reached or
// ctx is cancelled. Cancellation is a clean stop and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	if l.Stats == nil {
		l.Stats = NewStats(now())
	}
	keys := l.Keys
	size := l.Sim.Size()
	timer := time.NewTimer(l.Period)
	defer timer.Stop()

	for generation := 0; ; {
		if l.Renderer != nil {
			if err := l.Renderer.Render(l.Sim.Cells(), size.W, size.H); err != nil {
				return errors.Wrapf(err, "[Loop] failed to render generation %d", generation)
			}
		}
		if l.MaxGenerations > 0 && generation >= l.MaxGenerations {
			return nil
		}

		key := KeyNone
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				keys = nil
			}
			key = k
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}
		timer.Reset(l.Period)

		switch key {
		case KeyQuit:
			return nil
		case KeyMutate:
			l.Sim.Mutate()
			l.Stats.Mutated()
		}
		l.Sim.Step()
		generation++

		l.Stats.Update(generation, population(l.Sim.Cells()), now())
		if l.LogEvery > 0 && generation%l.LogEvery == 0 {
			s := l.Stats.Snapshot(now())
			log.Printf("gen %d | living %d | %.1f gen/sec | avg pop %.1f | mutations %d",
				s.Generation, s.Population, s.GenerationsPerSecond, s.AveragePopulation, s.Mutations)
		}
	}
}

func population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c != 0 {
			n++
		}
	}
	return n
}
