package life

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func newEmpty(t *testing.T, size int) *Life {
	t.Helper()
	seed := int64(1)
	l, err := New(Config{Size: size, Seed: &seed})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	l.Clear()
	return l
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	seed := int64(3)
	cases := []Config{
		{Size: 0, Seed: &seed},
		{Size: -4, Seed: &seed},
		{Size: 10, Seed: &seed, MutationRate: -0.1},
		{Size: 10, Seed: &seed, MutationRate: 1.5},
		{Size: 10, Seed: &seed, MutationRate: math.NaN()},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("config %+v: expected ErrInvalidConfiguration, got %v", cfg, err)
		}
	}
}

func TestSingleCellNeighbourCounts(t *testing.T) {
	l := newEmpty(t, 6)
	l.Set(2, 3, true)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := 0
			dx, dy := x-2, y-3
			if (dx != 0 || dy != 0) && dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
				want = 1
			}
			if got := l.LiveNeighbours(x, y); got != want {
				t.Fatalf("cell (%d,%d) neighbours=%d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestNeighbourCountingClipsAtEdges(t *testing.T) {
	l := newEmpty(t, 3)
	for i := range l.Cells() {
		l.Cells()[i] = Alive
	}
	checks := []struct {
		x, y, want int
	}{
		{0, 0, 3},
		{2, 2, 3},
		{1, 0, 5},
		{0, 1, 5},
		{1, 1, 8},
	}
	for _, c := range checks {
		if got := l.LiveNeighbours(c.x, c.y); got != c.want {
			t.Fatalf("cell (%d,%d) neighbours=%d, expected %d", c.x, c.y, got, c.want)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	l := newEmpty(t, 6)
	l.Set(2, 2, true)
	l.Set(3, 2, true)
	l.Set(2, 3, true)
	l.Set(3, 3, true)
	before := append([]uint8(nil), l.Cells()...)

	for i := 0; i < 10; i++ {
		l.Step()
	}

	for i, v := range l.Cells() {
		if v != before[i] {
			t.Fatalf("cell %d changed from %d to %d after 10 steps", i, before[i], v)
		}
	}
	if got := l.Generation(); got != 10 {
		t.Fatalf("generation=%d, expected 10", got)
	}
}

func TestIsolatedCellDies(t *testing.T) {
	l := newEmpty(t, 5)
	l.Set(2, 2, true)
	l.Step()
	if l.Cell(2, 2) != Dead {
		t.Fatal("isolated cell survived")
	}
	if l.Population() != 0 {
		t.Fatalf("population=%d, expected 0", l.Population())
	}
}

func TestTrominoReproduces(t *testing.T) {
	l := newEmpty(t, 4)
	l.Set(1, 1, true)
	l.Set(2, 1, true)
	l.Set(1, 2, true)
	if got := l.NextState(2, 2); got != Alive {
		t.Fatalf("next state of (2,2)=%d, expected alive", got)
	}

	l.Step()

	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if l.Cell(p[0], p[1]) != Alive {
			t.Fatalf("cell (%d,%d) should be alive", p[0], p[1])
		}
	}
	if l.Population() != 4 {
		t.Fatalf("population=%d, expected 4", l.Population())
	}
}

func TestBlinkerOscillatesWithoutWrapping(t *testing.T) {
	l := newEmpty(t, 5)
	l.Set(2, 1, true)
	l.Set(2, 2, true)
	l.Set(2, 3, true)

	l.Step()

	expects := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := l.Cell(x, y) == Alive
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOnEdgeDoesNotWrap(t *testing.T) {
	l := newEmpty(t, 5)
	// Vertical blinker in the first column: on a torus it would keep oscillating
	// through the last column.
	l.Set(0, 1, true)
	l.Set(0, 2, true)
	l.Set(0, 3, true)

	l.Step()

	if l.Cell(4, 2) != Dead {
		t.Fatal("cell (4,2) became alive, grid wrapped")
	}
	if l.Cell(0, 2) != Alive || l.Cell(1, 2) != Alive {
		t.Fatal("expected (0,2) and (1,2) alive after one step")
	}
	if l.Population() != 2 {
		t.Fatalf("population=%d, expected 2", l.Population())
	}
}

func TestSameSeedProducesSameGrid(t *testing.T) {
	seed := int64(42)
	a, err := New(Config{Size: 32, Seed: &seed})
	if err != nil {
		t.Fatalf("new a: %v", err)
	}
	b, err := New(Config{Size: 32, Seed: &seed})
	if err != nil {
		t.Fatalf("new b: %v", err)
	}
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs: %d vs %d", i, a.Cells()[i], b.Cells()[i])
		}
	}
	if a.Population() == 0 || a.Population() == 32*32 {
		t.Fatalf("implausible random fill population %d", a.Population())
	}
}

func TestResetReplaysSeed(t *testing.T) {
	seed := int64(7)
	l, err := New(Config{Size: 16, Seed: &seed})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	initial := append([]uint8(nil), l.Cells()...)
	l.Step()
	l.Step()
	l.Reset(7)
	if l.Generation() != 0 {
		t.Fatalf("generation=%d after reset, expected 0", l.Generation())
	}
	for i, v := range l.Cells() {
		if v != initial[i] {
			t.Fatalf("cell %d=%d after reset, expected %d", i, v, initial[i])
		}
	}
}

func TestUnseededInitializeRecordsSeed(t *testing.T) {
	l, err := New(Config{Size: 8})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	replay, err := New(Config{Size: 8, Seed: func() *int64 { s := l.Seed(); return &s }()})
	if err != nil {
		t.Fatalf("new replay: %v", err)
	}
	for i := range l.Cells() {
		if l.Cells()[i] != replay.Cells()[i] {
			t.Fatalf("cell %d differs from replay of recorded seed", i)
		}
	}
}

func TestMutateZeroRateNeverChangesGrid(t *testing.T) {
	seed := int64(5)
	l, err := New(Config{Size: 20, Seed: &seed, MutationRate: 0})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	before := append([]uint8(nil), l.Cells()...)
	for i := 0; i < 100; i++ {
		l.Mutate()
	}
	for i, v := range l.Cells() {
		if v != before[i] {
			t.Fatalf("cell %d mutated with zero rate", i)
		}
	}
}

func TestMutateFullRateFlipsEveryCell(t *testing.T) {
	seed := int64(5)
	l, err := New(Config{Size: 20, Seed: &seed, MutationRate: 1})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for round := 0; round < 3; round++ {
		before := append([]uint8(nil), l.Cells()...)
		l.Mutate()
		for i, v := range l.Cells() {
			if v != 1-before[i] {
				t.Fatalf("round %d: cell %d=%d, expected %d", round, i, v, 1-before[i])
			}
		}
	}
}

func TestMutateKeepsStatesBinary(t *testing.T) {
	seed := int64(9)
	l, err := New(Config{Size: 30, Seed: &seed, MutationRate: 0.3})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	before := append([]uint8(nil), l.Cells()...)
	l.Mutate()
	changed := 0
	for i, v := range l.Cells() {
		if v != Dead && v != Alive {
			t.Fatalf("cell %d holds non-binary state %d", i, v)
		}
		if v != before[i] {
			changed++
		}
	}
	if changed == 0 || changed == len(before) {
		t.Fatalf("implausible mutation count %d of %d at rate 0.3", changed, len(before))
	}
}

func TestStepPreservesShapeAndBinaryStates(t *testing.T) {
	seed := int64(11)
	l, err := New(Config{Size: 25, Seed: &seed})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 20; i++ {
		l.Step()
		if len(l.Cells()) != 25*25 {
			t.Fatalf("step %d: grid has %d cells", i, len(l.Cells()))
		}
		for j, v := range l.Cells() {
			if v != Dead && v != Alive {
				t.Fatalf("step %d: cell %d holds %d", i, j, v)
			}
		}
	}
	if s := l.Size(); s.W != 25 || s.H != 25 {
		t.Fatalf("size changed to %+v", s)
	}
}

func TestLoadValidatesCells(t *testing.T) {
	l := newEmpty(t, 2)
	if err := l.Load([]uint8{0, 1, 1}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("short load: expected ErrInvalidConfiguration, got %v", err)
	}
	if err := l.Load([]uint8{0, 1, 2, 0}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("non-binary load: expected ErrInvalidConfiguration, got %v", err)
	}
	if err := l.Load([]uint8{0, 1, 1, 0}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if l.Cell(1, 0) != Alive || l.Cell(0, 1) != Alive || l.Population() != 2 {
		t.Fatalf("unexpected grid after load: %v", l.Cells())
	}
}

func TestSetMutationRate(t *testing.T) {
	l := newEmpty(t, 2)
	if err := l.SetMutationRate(0.25); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := l.SetMutationRate(2); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if l.MutationRate() != 0.25 {
		t.Fatalf("rate=%v after rejected update, expected 0.25", l.MutationRate())
	}
}
