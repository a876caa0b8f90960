package lattice

import (
	"fmt"
	"sync"
)

var offsetCache = struct {
	mu     sync.RWMutex
	tables map[int][]Coord
}{tables: make(map[int][]Coord)}

// Offsets returns the 3^d - 1 non-zero vectors of {-1,0,1}^d. The table is
// computed once per d and cached for the life of the process; the returned
// slice is a copy. Callers must not depend on its order.
//
// Offsets panics unless 1 <= d <= MaxDimension.
func Offsets(d int) []Coord {
	table := offsetTable(d)
	out := make([]Coord, len(table))
	copy(out, table)
	return out
}

// offsetTable returns the shared cached table without copying.
func offsetTable(d int) []Coord {
	if d < 1 || d > MaxDimension {
		panic(fmt.Sprintf("lattice: offsets for dimension %d outside [1, %d]", d, MaxDimension))
	}

	offsetCache.mu.RLock()
	table, ok := offsetCache.tables[d]
	offsetCache.mu.RUnlock()
	if ok {
		return table
	}

	table = buildOffsets(d)

	offsetCache.mu.Lock()
	if cached, ok := offsetCache.tables[d]; ok {
		table = cached
	} else {
		offsetCache.tables[d] = table
	}
	offsetCache.mu.Unlock()
	return table
}

// buildOffsets walks {-1,0,1}^d as a base-3 odometer.
func buildOffsets(d int) []Coord {
	total := 1
	for i := 0; i < d; i++ {
		total *= 3
	}

	table := make([]Coord, 0, total-1)
	cur := Origin(d)
	for i := 0; i < d; i++ {
		cur.v[i] = -1
	}

	for n := 0; n < total; n++ {
		if !cur.IsZero() {
			table = append(table, cur)
		}
		for i := 0; i < d; i++ {
			if cur.v[i] < 1 {
				cur.v[i]++
				break
			}
			cur.v[i] = -1
		}
	}
	return table
}

// NeighbourCount returns 3^d - 1.
func NeighbourCount(d int) int {
	return len(offsetTable(d))
}

// Neighbours calls fn with every cell one offset away from c.
func Neighbours(c Coord, fn func(Coord)) {
	for _, o := range offsetTable(c.Dim()) {
		fn(c.Add(o))
	}
}
