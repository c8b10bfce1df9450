package app

import "testing"

func TestReplayAfterReseedUsesConfiguredSeed(t *testing.T) {
	s := newSeedTracker(10)
	if got := s.reseed(987654321); got != 987654321 {
		t.Fatalf("reseed returned %d, expected 987654321", got)
	}
	if s.current != 987654321 {
		t.Fatalf("current=%d after reseed", s.current)
	}
	if got := s.replay(); got != 10 {
		t.Fatalf("replay after reseed returned %d, expected configured seed 10", got)
	}
	if got := s.replay(); got != 10 {
		t.Fatalf("second replay returned %d, expected 10", got)
	}
}
