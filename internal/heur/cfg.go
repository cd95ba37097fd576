package heur

import "github.com/gopherboard/migo/internal/board"

// ComputeCFGDistances flood-fills from p computing common-fate-graph
// distance: every point in p's own block (if p is a stone) shares
// distance 0 with p, and crossing to an empty point or an opposing block
// increments the distance by one (spec.md §4.4). Used for PRIOR_CFG at
// distances 1, 2 and 3.
func ComputeCFGDistances(pos *board.Position, p board.Point) map[board.Point]int {
	dist := make(map[board.Point]int)
	visited := make(map[board.Point]bool)

	markBlock := func(seed board.Point, d int) []board.Point {
		var pts []board.Point
		switch pos.Color(seed) {
		case board.Ours, board.Theirs:
			pts, _ = pos.Block(seed)
		default:
			pts = []board.Point{seed}
		}
		for _, pt := range pts {
			if !visited[pt] {
				visited[pt] = true
				dist[pt] = d
			}
		}
		return pts
	}

	frontier := markBlock(p, 0)
	d := 0
	for len(frontier) > 0 {
		var next []board.Point
		seen := make(map[board.Point]bool)
		for _, pt := range frontier {
			for _, n := range pos.Neighbors4(pt) {
				if pos.Color(n) == board.Off || visited[n] || seen[n] {
					continue
				}
				seen[n] = true
				next = append(next, markBlock(n, d+1)...)
			}
		}
		frontier = next
		d++
	}
	return dist
}
