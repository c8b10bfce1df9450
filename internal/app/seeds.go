package app

// seedTracker keeps the configured seed apart from the seed of the running
// world, so a replay always returns to the configured run.
type seedTracker struct {
	configured int64
	current    int64
}

func newSeedTracker(seed int64) seedTracker {
	return seedTracker{configured: seed, current: seed}
}

// replay selects the configured seed again.
func (s *seedTracker) replay() int64 {
	s.current = s.configured
	return s.current
}

// reseed switches to fresh without forgetting the configured seed.
func (s *seedTracker) reseed(fresh int64) int64 {
	s.current = fresh
	return s.current
}
