package life

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidConfiguration is returned when an engine is constructed or
// reconfigured with values outside their documented ranges.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the parameters for a Life engine.
type Config struct {
	Size         int
	Seed         *int64
	MutationRate float64
}

// DefaultSeed is the seed used when none is configured explicitly.
const DefaultSeed int64 = 10

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	seed := DefaultSeed
	return Config{Size: 100, Seed: &seed, MutationRate: 0.001}
}

// Validate reports whether the configuration can build an engine.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "size must be positive, got %d", c.Size)
	}
	return validateMutationRate(c.MutationRate)
}

func validateMutationRate(rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "mutation rate must lie in [0,1], got %v", rate)
	}
	return nil
}
