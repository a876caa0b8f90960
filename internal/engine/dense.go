package engine

import (
	"github.com/san-kum/pocketdim/internal/lattice"
)

// denseGrid is a row-major boolean array over a box of the lattice.
type denseGrid struct {
	box    lattice.Bounds
	stride []int
	cells  []bool
}

func newDenseGrid(box lattice.Bounds) *denseGrid {
	d := box.Min.Dim()
	g := &denseGrid{box: box, stride: make([]int, d)}

	size := 1
	for i := 0; i < d; i++ {
		g.stride[i] = size
		size *= box.Max.At(i) - box.Min.At(i) + 1
	}
	g.cells = make([]bool, size)
	return g
}

func (g *denseGrid) index(c lattice.Coord) int {
	idx := 0
	for i, st := range g.stride {
		idx += (c.At(i) - g.box.Min.At(i)) * st
	}
	return idx
}

// delta converts an offset vector into a linear index step.
func (g *denseGrid) delta(o lattice.Coord) int {
	step := 0
	for i, st := range g.stride {
		step += o.At(i) * st
	}
	return step
}

// AdvanceDense computes the next generation of s by evaluating every cell of
// the bounding box padded by one. Storage is padded by two so that every
// evaluated cell has all of its neighbours in the array. The cost is the
// full box volume times 3^d, which is only sensible for small inputs.
func AdvanceDense(s *lattice.State) *lattice.State {
	d := s.Dimension()
	b, ok := s.Bounds()
	if !ok {
		return lattice.FromSet(d, nil)
	}

	eval := b.Pad(1)
	g := newDenseGrid(b.Pad(2))
	s.Each(func(c lattice.Coord) {
		g.cells[g.index(c)] = true
	})

	offsets := lattice.Offsets(d)
	deltas := make([]int, len(offsets))
	for i, o := range offsets {
		deltas[i] = g.delta(o)
	}

	next := make(map[lattice.Coord]struct{})
	eval.Walk(func(c lattice.Coord) {
		idx := g.index(c)
		count := 0
		for _, dl := range deltas {
			if g.cells[idx+dl] {
				count++
			}
		}
		if ApplyRule(count, g.cells[idx]) {
			next[c] = struct{}{}
		}
	})
	return lattice.FromSet(d, next)
}
