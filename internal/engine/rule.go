package engine

/*
ApplyRule decides whether a cell is active in the next generation.

An inactive cell becomes active with exactly 3 active neighbours; an active
cell stays active with 2 or 3.
*/
func ApplyRule(neighbours int, active bool) bool {
	return neighbours == 3 || (active && neighbours == 2)
}
