package lattice

import (
	"errors"
	"math"
	"testing"
)

func TestCoord_Add(t *testing.T) {
	a := MustCoord(1, -2, 3)
	b := MustCoord(-1, 1, 1)

	sum := a.Add(b)
	if sum != MustCoord(0, -1, 4) {
		t.Errorf("Add failed: got %v", sum)
	}
	if a != MustCoord(1, -2, 3) {
		t.Errorf("Add mutated receiver: %v", a)
	}
}

func TestCoord_Equality(t *testing.T) {
	seen := map[Coord]bool{MustCoord(1, 2, 0): true}

	if !seen[MustCoord(1, 2, 0)] {
		t.Error("structurally equal coordinate not found in map")
	}
	if seen[MustCoord(1, 2)] {
		t.Error("coordinates of different dimension compared equal")
	}
	if seen[MustCoord(1, 2, 0, 0)] {
		t.Error("coordinates of different dimension compared equal")
	}
}

func TestNewCoord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"too many", MaxDimension + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCoord(make([]int, tt.n)...)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("expected ErrDimensionMismatch, got %v", err)
			}
		})
	}
}

func TestCoord_String(t *testing.T) {
	if got := MustCoord(3, -1, 0).String(); got != "(3, -1, 0)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCoord_Less(t *testing.T) {
	if !MustCoord(0, 5).Less(MustCoord(1, 0)) {
		t.Error("expected (0,5) < (1,0)")
	}
	if MustCoord(1, 0).Less(MustCoord(1, 0)) {
		t.Error("coordinate less than itself")
	}
}

func TestNewCoord_OutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		components []int
	}{
		{"above int32", []int{0, math.MaxInt32 + 1}},
		{"below int32", []int{math.MinInt32 - 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCoord(tt.components...); !errors.Is(err, ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}

	c, err := NewCoord(math.MaxInt32, math.MinInt32)
	if err != nil {
		t.Fatalf("boundary values rejected: %v", err)
	}
	if c.At(0) != math.MaxInt32 || c.At(1) != math.MinInt32 {
		t.Errorf("boundary values changed: %v", c)
	}
}

func TestCoord_AddDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding coordinates of different dimension")
		}
	}()
	MustCoord(1, 2, 3).Add(MustCoord(1, 2))
}
