package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/pocketdim/internal/engine"
	"github.com/san-kum/pocketdim/internal/lattice"
)

func TestSweep(t *testing.T) {
	newSim := func() *Simulator { return New(engine.New(engine.WithWorkers(2))) }
	sweep := NewSweep(newSim, 3, 4)

	results, err := sweep.Run(context.Background(), glider, Config{Rounds: 6})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ActiveCount() != 112 {
		t.Errorf("dimension 3: expected 112, got %d", results[0].ActiveCount())
	}
	if results[1].ActiveCount() != 848 {
		t.Errorf("dimension 4: expected 848, got %d", results[1].ActiveCount())
	}
}

func TestSweep_Errors(t *testing.T) {
	newSim := func() *Simulator { return New(nil) }

	tests := []struct {
		name   string
		grid   string
		dims   []int
		rounds int
		target error
	}{
		{"bad dimension", glider, []int{3, 1}, 6, lattice.ErrConfig},
		{"bad grid", ".#\n#", []int{3}, 6, lattice.ErrParse},
		{"negative rounds", glider, []int{3}, -2, lattice.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSweep(newSim, tt.dims...).Run(context.Background(), tt.grid, Config{Rounds: tt.rounds})
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}
