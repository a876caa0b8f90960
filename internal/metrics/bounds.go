package metrics

import (
	"github.com/san-kum/pocketdim/internal/lattice"
)

// BoundingVolume reports the number of cells inside the bounding box of the
// last observed generation, 0 once the population dies out.
type BoundingVolume struct {
	name   string
	volume int
}

func NewBoundingVolume() *BoundingVolume {
	return &BoundingVolume{name: "bounding_volume"}
}

func (b *BoundingVolume) Name() string { return b.name }

func (b *BoundingVolume) Observe(gen int, s *lattice.State) {
	box, ok := s.Bounds()
	if !ok {
		b.volume = 0
		return
	}
	b.volume = box.Volume()
}

func (b *BoundingVolume) Value() float64 { return float64(b.volume) }

func (b *BoundingVolume) Reset() { b.volume = 0 }
