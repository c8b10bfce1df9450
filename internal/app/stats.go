package app

import (
	"sync"
	"time"
)

// Stats tracks throughput and population for a running simulation. It is safe
// for concurrent use so a reporter can read it while the loop writes.
type Stats struct {
	mu sync.Mutex

	generationsPerSecond float64
	averagePopulation    float64
	averageSeeded        bool
	population           int
	generation           int
	mutations            int
	startTime            time.Time
	lastStep             time.Time
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Generation           int
	Population           int
	Mutations            int
	GenerationsPerSecond float64
	AveragePopulation    float64
	Elapsed              time.Duration
}

// NewStats starts the clock at now.
func NewStats(now time.Time) *Stats {
	return &Stats{startTime: now, lastStep: now}
}

// Update records a completed generation observed at now.
func (s *Stats) Update(generation, population int, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation = generation
	s.population = population
	if d := now.Sub(s.lastStep); d > 0 {
		s.generationsPerSecond = 1.0 / d.Seconds()
	}
	s.lastStep = now

	// Exponential moving average, seeded by the first observation.
	if !s.averageSeeded {
		s.averagePopulation = float64(population)
		s.averageSeeded = true
	} else {
		s.averagePopulation = (s.averagePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Mutated counts one mutation pass.
func (s *Stats) Mutated() {
	s.mu.Lock()
	s.mutations++
	s.mu.Unlock()
}

// Snapshot returns the current values with elapsed time measured to now.
func (s *Stats) Snapshot(now time.Time) StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsSnapshot{
		Generation:           s.generation,
		Population:           s.population,
		Mutations:            s.mutations,
		GenerationsPerSecond: s.generationsPerSecond,
		AveragePopulation:    s.averagePopulation,
		Elapsed:              now.Sub(s.startTime),
	}
}
