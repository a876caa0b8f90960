package lattice

import (
	"sort"
)

// State is an immutable sparse set of active coordinates of one dimension.
// Inactive cells are never stored; the empty set is the all-inactive space.
type State struct {
	dim   int
	cells map[Coord]struct{}
}

// Empty returns the state with no active cells.
func Empty(d int) (*State, error) {
	if err := CheckDimension(d); err != nil {
		return nil, err
	}
	return &State{dim: d, cells: map[Coord]struct{}{}}, nil
}

// NewState builds a state from the given active coordinates. Duplicates are
// collapsed. Every coordinate must have exactly d components.
func NewState(d int, active ...Coord) (*State, error) {
	if err := CheckDimension(d); err != nil {
		return nil, err
	}
	cells := make(map[Coord]struct{}, len(active))
	for _, c := range active {
		if c.Dim() != d {
			return nil, &DimensionMismatchError{Want: d, Got: c.Dim()}
		}
		cells[c] = struct{}{}
	}
	return &State{dim: d, cells: cells}, nil
}

// FromSet adopts cells as the active set of a new state without copying.
// The caller must hand over ownership: cells is never written again and
// every key already has dimension d.
func FromSet(d int, cells map[Coord]struct{}) *State {
	if cells == nil {
		cells = map[Coord]struct{}{}
	}
	return &State{dim: d, cells: cells}
}

// Dimension returns the number of axes.
func (s *State) Dimension() int { return s.dim }

// ActiveCount returns the number of active cells.
func (s *State) ActiveCount() int { return len(s.cells) }

// IsActive reports whether c is active. It fails with a
// DimensionMismatchError when c does not have Dimension() components.
func (s *State) IsActive(c Coord) (bool, error) {
	if c.Dim() != s.dim {
		return false, &DimensionMismatchError{Want: s.dim, Got: c.Dim()}
	}
	return s.Has(c), nil
}

// Has is IsActive without the dimension check, for callers that build their
// coordinates from this state's own cells and offsets.
func (s *State) Has(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Each calls fn for every active cell in unspecified order.
func (s *State) Each(fn func(Coord)) {
	for c := range s.cells {
		fn(c)
	}
}

// Cells returns the active cells in lexicographic order.
func (s *State) Cells() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Equal reports whether both states have the same dimension and active set.
func (s *State) Equal(o *State) bool {
	if s.dim != o.dim || len(s.cells) != len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Bounds is the per-axis [Min, Max] interval containing every active cell.
type Bounds struct {
	Min Coord
	Max Coord
}

// Bounds returns the bounding box of the active cells. ok is false for the
// empty state.
func (s *State) Bounds() (b Bounds, ok bool) {
	for c := range s.cells {
		if !ok {
			b.Min, b.Max = c, c
			ok = true
			continue
		}
		for i := 0; i < s.dim; i++ {
			b.Min.v[i] = min(b.Min.v[i], c.v[i])
			b.Max.v[i] = max(b.Max.v[i], c.v[i])
		}
	}
	return b, ok
}

// Volume returns the number of lattice cells inside the box.
func (b Bounds) Volume() int {
	vol := 1
	for i := 0; i < b.Min.Dim(); i++ {
		vol *= b.Max.At(i) - b.Min.At(i) + 1
	}
	return vol
}

// Pad grows the box by n cells on every side of every axis.
func (b Bounds) Pad(n int) Bounds {
	for i := 0; i < b.Min.Dim(); i++ {
		b.Min.v[i] -= int32(n)
		b.Max.v[i] += int32(n)
	}
	return b
}

// Contains reports whether c lies inside the box.
func (b Bounds) Contains(c Coord) bool {
	for i := 0; i < b.Min.Dim(); i++ {
		if c.v[i] < b.Min.v[i] || c.v[i] > b.Max.v[i] {
			return false
		}
	}
	return true
}

// Walk calls fn for every cell of the box, first axis fastest.
func (b Bounds) Walk(fn func(Coord)) {
	d := b.Min.Dim()
	cur := b.Min
	for {
		fn(cur)
		i := 0
		for ; i < d; i++ {
			if cur.v[i] < b.Max.v[i] {
				cur.v[i]++
				break
			}
			cur.v[i] = b.Min.v[i]
		}
		if i == d {
			return
		}
	}
}
