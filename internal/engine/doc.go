// Package engine computes the next generation of a sparse lattice state.
//
// Only cells that are active or one offset away from an active cell can be
// active in the next generation, so each transition evaluates exactly that
// candidate set against a single immutable snapshot of the previous state.
// Candidates are independent of one another and [Engine] splits them across
// worker goroutines; [Advance] is the single-goroutine equivalent.
//
// [AdvanceDense] evaluates every cell of the padded bounding box over a
// dense array and exists as a brute-force reference for the sparse engine.
package engine
