package lattice

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// MaxDimension bounds the number of axes a Coord can carry. A d-dimensional
// cell has 3^d - 1 neighbours, so the bound sits well past anything that can
// be simulated in practice.
const MaxDimension = 10

// Coord is a point of the integer lattice. Components past Dim are always
// zero, which keeps == structural and lets Coord serve as a map key.
type Coord struct {
	dim uint8
	v   [MaxDimension]int32
}

// NewCoord builds a coordinate from its components.
func NewCoord(components ...int) (Coord, error) {
	if len(components) == 0 || len(components) > MaxDimension {
		return Coord{}, errors.Wrapf(ErrDimensionMismatch, "coordinate needs 1..%d components, got %d", MaxDimension, len(components))
	}
	c := Coord{dim: uint8(len(components))}
	for i, x := range components {
		if x < math.MinInt32 || x > math.MaxInt32 {
			return Coord{}, errors.Wrapf(ErrConfig, "component %d out of range: %d", i, x)
		}
		c.v[i] = int32(x)
	}
	return c, nil
}

// MustCoord is like NewCoord but panics on invalid input.
func MustCoord(components ...int) Coord {
	c, err := NewCoord(components...)
	if err != nil {
		panic(err)
	}
	return c
}

// Origin returns the all-zero coordinate of dimension d.
func Origin(d int) Coord {
	return Coord{dim: uint8(d)}
}

// Dim returns the number of components.
func (c Coord) Dim() int { return int(c.dim) }

// At returns the i-th component.
func (c Coord) At(i int) int { return int(c.v[i]) }

// Add returns the component-wise sum. It panics if the operands differ in
// dimension.
func (c Coord) Add(o Coord) Coord {
	if c.dim != o.dim {
		panic(fmt.Sprintf("lattice: adding %d-D coordinate to %d-D coordinate", o.dim, c.dim))
	}
	r := Coord{dim: c.dim}
	for i := 0; i < int(c.dim); i++ {
		r.v[i] = c.v[i] + o.v[i]
	}
	return r
}

// IsZero reports whether every component is zero.
func (c Coord) IsZero() bool {
	for i := 0; i < int(c.dim); i++ {
		if c.v[i] != 0 {
			return false
		}
	}
	return true
}

// Less orders coordinates lexicographically, first axis first.
func (c Coord) Less(o Coord) bool {
	for i := 0; i < int(c.dim); i++ {
		if c.v[i] != o.v[i] {
			return c.v[i] < o.v[i]
		}
	}
	return c.dim < o.dim
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < int(c.dim); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", c.v[i])
	}
	b.WriteByte(')')
	return b.String()
}
