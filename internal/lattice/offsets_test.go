package lattice

import (
	"testing"
)

func TestOffsets_Count(t *testing.T) {
	tests := []struct {
		dim      int
		expected int
	}{
		{1, 2},
		{2, 8},
		{3, 26},
		{4, 80},
		{5, 242},
	}

	for _, tt := range tests {
		offs := Offsets(tt.dim)
		if len(offs) != tt.expected {
			t.Errorf("dim %d: expected %d offsets, got %d", tt.dim, tt.expected, len(offs))
		}
		if NeighbourCount(tt.dim) != tt.expected {
			t.Errorf("dim %d: NeighbourCount = %d", tt.dim, NeighbourCount(tt.dim))
		}
	}
}

func TestOffsets_Members(t *testing.T) {
	for d := 1; d <= 4; d++ {
		seen := make(map[Coord]bool)
		for _, o := range Offsets(d) {
			if o.Dim() != d {
				t.Fatalf("dim %d: offset %v has %d components", d, o, o.Dim())
			}
			if o.IsZero() {
				t.Fatalf("dim %d: zero vector in table", d)
			}
			for i := 0; i < d; i++ {
				if v := o.At(i); v < -1 || v > 1 {
					t.Fatalf("dim %d: offset %v component out of range", d, o)
				}
			}
			if seen[o] {
				t.Fatalf("dim %d: duplicate offset %v", d, o)
			}
			seen[o] = true
		}
	}
}

func TestOffsets_OneDimension(t *testing.T) {
	offs := Offsets(1)
	want := map[Coord]bool{MustCoord(-1): true, MustCoord(1): true}
	for _, o := range offs {
		if !want[o] {
			t.Errorf("unexpected offset %v", o)
		}
	}
}

func TestOffsets_ReturnsCopy(t *testing.T) {
	offs := Offsets(2)
	offs[0] = Origin(2)

	for _, o := range Offsets(2) {
		if o.IsZero() {
			t.Fatal("mutation of returned slice leaked into cache")
		}
	}
}

func TestOffsets_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for dimension 0")
		}
	}()
	Offsets(0)
}

func TestNeighbours(t *testing.T) {
	c := MustCoord(5, 5)
	count := 0
	Neighbours(c, func(n Coord) {
		count++
		if n == c {
			t.Error("cell listed as its own neighbour")
		}
	})
	if count != 8 {
		t.Errorf("expected 8 neighbours, got %d", count)
	}
}
