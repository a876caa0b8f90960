package sim

import (
	"fmt"

	"github.com/san-kum/pocketdim/internal/lattice"
)

// Stepper computes the next generation of a state without mutating it.
type Stepper interface {
	Advance(s *lattice.State) *lattice.State
}

// StepFunc adapts a plain function to Stepper.
type StepFunc func(s *lattice.State) *lattice.State

func (f StepFunc) Advance(s *lattice.State) *lattice.State { return f(s) }

type Metric interface {
	Name() string
	Observe(generation int, s *lattice.State)
	Value() float64
	Reset()
}

type Observer interface {
	OnGeneration(generation int, s *lattice.State)
}

type Config struct {
	Rounds int
	// Reference, when set, recomputes every generation independently and
	// fails the run on the first disagreement.
	Reference Stepper
}

type Result struct {
	Final       *lattice.State
	Populations []int
	Metrics     map[string]float64
	Generations int
}

// ActiveCount returns the population of the final generation.
func (r *Result) ActiveCount() int {
	return r.Final.ActiveCount()
}

// SimError reports a generation at which the run could not continue.
type SimError struct {
	Generation int
	Message    string
}

func (e SimError) Error() string {
	return fmt.Sprintf("generation %d: %s", e.Generation, e.Message)
}
