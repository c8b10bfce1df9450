// Package life implements Conway's Game of Life on a bounded square grid with
// an optional stochastic mutation operator.
//
// Cells are addressed as (x, y) with x the column and y the row. Neighbours
// that fall outside the grid are not counted; the grid never wraps.
package life

import (
	"github.com/pkg/errors"

	"mutalife/internal/core"
)

const (
	// Dead is the stored value of a dead cell.
	Dead uint8 = 0
	// Alive is the stored value of a live cell. No other value is ever stored.
	Alive uint8 = 1
)

// Life holds the grid and the randomness that drives it.
type Life struct {
	size int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid

	mutationRate float64
	rng          *core.RNG
	seed         int64
	generation   int
}

// New validates cfg, allocates the grid and fills it from cfg.Seed.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Life{
		size:         cfg.Size,
		cur:          core.NewByteGrid(cfg.Size, cfg.Size),
		nxt:          core.NewByteGrid(cfg.Size, cfg.Size),
		mutationRate: cfg.MutationRate,
	}
	l.Initialize(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.size, H: l.size} }

// Cells exposes the current generation in row-major order. The slice is
// reused by later steps; copy it to keep a generation around.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of steps since the last initialization.
func (l *Life) Generation() int { return l.generation }

// Seed returns the seed used by the last initialization.
func (l *Life) Seed() int64 { return l.seed }

// MutationRate returns the per-cell flip probability used by Mutate.
func (l *Life) MutationRate() float64 { return l.mutationRate }

// SetMutationRate changes the flip probability. Values outside [0,1] are
// rejected and leave the rate unchanged.
func (l *Life) SetMutationRate(rate float64) error {
	if err := validateMutationRate(rate); err != nil {
		return err
	}
	l.mutationRate = rate
	return nil
}

// Initialize reseeds the engine and fills every cell with an independent fair
// coin flip. A nil seed draws one from the system entropy source.
func (l *Life) Initialize(seed *int64) {
	if seed != nil {
		l.seed = *seed
	} else {
		l.seed = core.NewSeed()
	}
	l.rng = core.NewRNG(l.seed)
	core.FillBinary(l.rng.Source(), l.cur.Cells())
	l.generation = 0
}

// Reset reinitializes the grid from the given seed.
func (l *Life) Reset(seed int64) { l.Initialize(&seed) }

// Cell returns the state at (x, y). Out of bounds coordinates read as Dead.
func (l *Life) Cell(x, y int) uint8 { return l.cur.At(x, y) }

// Set forces the cell at (x, y) alive or dead. Out of bounds writes are ignored.
func (l *Life) Set(x, y int, alive bool) {
	v := Dead
	if alive {
		v = Alive
	}
	l.cur.Set(x, y, v)
}

// Load replaces the current grid with cells, which must hold exactly size*size
// binary values in row-major order.
func (l *Life) Load(cells []uint8) error {
	if len(cells) != l.size*l.size {
		return errors.Wrapf(ErrInvalidConfiguration, "expected %d cells, got %d", l.size*l.size, len(cells))
	}
	for i, v := range cells {
		if v != Dead && v != Alive {
			return errors.Wrapf(ErrInvalidConfiguration, "cell %d has non-binary state %d", i, v)
		}
	}
	copy(l.cur.Cells(), cells)
	return nil
}

// Clear kills every cell.
func (l *Life) Clear() { l.cur.Clear() }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// LiveNeighbours counts the live cells among the up to eight neighbours of
// (x, y) that lie inside the grid.
func (l *Life) LiveNeighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !l.cur.InBounds(nx, ny) {
				continue
			}
			n += int(l.cur.Cells()[l.cur.Index(nx, ny)])
		}
	}
	return n
}

// NextState evaluates the rule for (x, y) against the current generation.
func (l *Life) NextState(x, y int) uint8 {
	n := l.LiveNeighbours(x, y)
	if l.cur.At(x, y) == Dead {
		if n == 3 {
			return Alive
		}
		return Dead
	}
	if n < 2 || n > 3 {
		return Dead
	}
	return Alive
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	next := l.nxt.Cells()
	for y := 0; y < l.size; y++ {
		for x := 0; x < l.size; x++ {
			next[l.nxt.Index(x, y)] = l.NextState(x, y)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Mutate flips each cell independently with probability MutationRate.
func (l *Life) Mutate() {
	cells := l.cur.Cells()
	for i := range cells {
		if l.rng.Float64() < l.mutationRate {
			cells[i] = Alive - cells[i]
		}
	}
}
