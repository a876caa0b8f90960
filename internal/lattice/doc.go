// Package lattice provides the value types of the pocket-dimension simulator.
//
// The space is an unbounded integer lattice whose dimensionality is chosen
// at runtime:
//
//   - [Coord]: fixed-length integer vector, comparable and usable as a map key
//   - [Offsets]: the 3^d - 1 unit neighbour offsets of a d-dimensional cell
//   - [State]: immutable sparse set of active coordinates
//   - [ParseGrid]: embeds a 2-D '#'/'.' grid into d-dimensional space
//
// # Example
//
//	s, err := lattice.ParseGrid(".#.\n..#\n###", 3)
//	if err != nil {
//		return err
//	}
//	fmt.Println(s.ActiveCount()) // 5
//
// # Thread Safety
//
// State values are never mutated after construction and may be read from
// any number of goroutines.
package lattice
