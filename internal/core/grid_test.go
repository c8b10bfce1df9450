package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 1)
	g.Set(3, 0, 1)
	g.Set(-1, 0, 1)
	if g.At(2, 1) != 1 {
		t.Fatal("expected (2,1) to be set")
	}
	if g.At(3, 0) != 0 || g.At(-1, 0) != 0 {
		t.Fatal("out of bounds reads must return 0")
	}
	if g.Count() != 1 {
		t.Fatalf("count=%d, expected 1", g.Count())
	}
	if g.Index(2, 1) != 5 {
		t.Fatalf("index=%d, expected 5", g.Index(2, 1))
	}
	g.Clear()
	if g.Count() != 0 {
		t.Fatalf("count=%d after clear", g.Count())
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("unexpected grid %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}
