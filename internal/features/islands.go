package features

import "github.com/lgbarn/chess-features/internal/chess"

// countIslands returns the number of 8-connected components in set.
func countIslands(set chess.SquareSet) int {
	var visited chess.SquareSet
	islands := 0
	for _, start := range set.Squares() {
		if visited.Has(start) {
			continue
		}
		islands++
		visited = visited.Add(start)
		stack := []chess.Square{start}
		for len(stack) > 0 {
			sq := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, o := range Ring1Offsets {
				next, ok := sq.Offset(o.File, o.Rank)
				if !ok || !set.Has(next) || visited.Has(next) {
					continue
				}
				visited = visited.Add(next)
				stack = append(stack, next)
			}
		}
	}
	return islands
}
