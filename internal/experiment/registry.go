package experiment

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/san-kum/pocketdim/internal/engine"
	"github.com/san-kum/pocketdim/internal/lattice"
	"github.com/san-kum/pocketdim/internal/metrics"
	"github.com/san-kum/pocketdim/internal/sim"
)

const DefaultEngine = "parallel"

type Registry struct {
	engines map[string]func(workers int) sim.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		engines: make(map[string]func(workers int) sim.Stepper),
	}

	r.engines["parallel"] = func(workers int) sim.Stepper {
		return engine.New(engine.WithWorkers(workers))
	}
	r.engines["sequential"] = func(int) sim.Stepper { return sim.StepFunc(engine.Advance) }
	r.engines["dense"] = func(int) sim.Stepper { return sim.StepFunc(engine.AdvanceDense) }

	return r
}

func (r *Registry) GetEngine(name string, workers int) (sim.Stepper, error) {
	fn, ok := r.engines[name]
	if !ok {
		return nil, errors.Wrapf(lattice.ErrConfig, "unknown engine %q", name)
	}
	return fn(workers), nil
}

func (r *Registry) ListEngines() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []sim.Metric {
	return metrics.Defaults()
}
