package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/pocketdim/internal/lattice"
)

const defaultMinChunk = 512

// Engine evaluates candidates of a generation on a fixed number of workers.
type Engine struct {
	workers  int
	minChunk int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the worker count. Values below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// WithMinChunk sets the smallest number of candidates handed to one worker.
func WithMinChunk(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.minChunk = n
		}
	}
}

// New returns an Engine using runtime.NumCPU() workers unless configured
// otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		workers:  runtime.NumCPU(),
		minChunk: defaultMinChunk,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the configured worker count.
func (e *Engine) Workers() int { return e.workers }

// Advance returns the next generation of s. s is only read.
func (e *Engine) Advance(s *lattice.State) *lattice.State {
	cands := Candidates(s)

	workers := e.workers
	if n := len(cands) / e.minChunk; n < workers {
		workers = max(n, 1)
	}
	if workers == 1 {
		return collect(s.Dimension(), evaluate(s, cands))
	}

	var (
		eg        errgroup.Group
		parts     = make([][]lattice.Coord, workers)
		perWorker = (len(cands) + workers - 1) / workers
	)

	for i := range workers {
		var (
			start = i * perWorker
			end   = min(start+perWorker, len(cands))
		)
		if start >= end {
			break
		}

		eg.Go(func() error {
			parts[i] = evaluate(s, cands[start:end])
			return nil
		})
	}

	// workers never fail; Wait is the generation barrier
	_ = eg.Wait()

	return collect(s.Dimension(), parts...)
}

// Advance returns the next generation of s on the calling goroutine.
func Advance(s *lattice.State) *lattice.State {
	return collect(s.Dimension(), evaluate(s, Candidates(s)))
}

// Candidates returns every active cell of s together with every cell one
// offset away from an active cell, without duplicates and in no particular
// order. No cell outside this set can be active in the next generation.
func Candidates(s *lattice.State) []lattice.Coord {
	if s.ActiveCount() == 0 {
		return nil
	}

	seen := make(map[lattice.Coord]struct{}, s.ActiveCount()*lattice.NeighbourCount(s.Dimension()))
	s.Each(func(c lattice.Coord) {
		seen[c] = struct{}{}
		lattice.Neighbours(c, func(n lattice.Coord) {
			seen[n] = struct{}{}
		})
	})

	out := make([]lattice.Coord, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// ActiveNeighbours counts the active cells one offset away from c.
func ActiveNeighbours(s *lattice.State, c lattice.Coord) int {
	count := 0
	lattice.Neighbours(c, func(n lattice.Coord) {
		if s.Has(n) {
			count++
		}
	})
	return count
}

func evaluate(s *lattice.State, cands []lattice.Coord) []lattice.Coord {
	offsets := lattice.Offsets(s.Dimension())

	var next []lattice.Coord
	for _, c := range cands {
		// past 3 the rule cannot fire
		count := 0
		for _, o := range offsets {
			if s.Has(c.Add(o)) {
				count++
				if count > 3 {
					break
				}
			}
		}
		if ApplyRule(count, s.Has(c)) {
			next = append(next, c)
		}
	}
	return next
}

func collect(d int, parts ...[]lattice.Coord) *lattice.State {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	cells := make(map[lattice.Coord]struct{}, size)
	for _, p := range parts {
		for _, c := range p {
			cells[c] = struct{}{}
		}
	}
	return lattice.FromSet(d, cells)
}
