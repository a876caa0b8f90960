package sim

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/pocketdim/internal/lattice"
)

// Sweep runs one input grid at several dimensions concurrently. Each run
// gets its own Simulator from newSim since metrics carry per-run state.
type Sweep struct {
	newSim func() *Simulator
	dims   []int
}

func NewSweep(newSim func() *Simulator, dims ...int) *Sweep {
	return &Sweep{newSim: newSim, dims: dims}
}

// Run parses grid once per dimension and simulates every dimension in its
// own goroutine. Results are returned in the order of the dimensions. The
// first failure cancels the remaining runs.
func (w *Sweep) Run(ctx context.Context, grid string, cfg Config) ([]*Result, error) {
	if err := lattice.CheckRounds(cfg.Rounds); err != nil {
		return nil, err
	}

	states := make([]*lattice.State, len(w.dims))
	for i, d := range w.dims {
		st, err := lattice.ParseGrid(grid, d)
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %d", d)
		}
		states[i] = st
	}

	results := make([]*Result, len(w.dims))
	eg, ctx := errgroup.WithContext(ctx)
	for i := range w.dims {
		eg.Go(func() error {
			res, err := w.newSim().Run(ctx, states[i], cfg)
			if err != nil {
				return errors.Wrapf(err, "dimension %d", w.dims[i])
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
