package heur

import "github.com/gopherboard/migo/internal/board"

// LineHeight returns the 0-based distance from p to the nearest board
// edge (spec.md §4.4): 0 on the first line, 1 on the second, and so on.
func LineHeight(pos *board.Position, p board.Point) int {
	col, row := pos.Coord(p)
	n := pos.Size()
	return minInt(edgeDist(col, n), edgeDist(row, n))
}

func edgeDist(v, n int) int {
	d1 := v - 1
	d2 := n - v
	if d1 < d2 {
		return d1
	}
	return d2
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// EmptyArea reports whether no stone exists within Manhattan distance
// dist of p (spec.md §4.4), recursing outward and treating off-board
// points as simply not a stone.
func EmptyArea(pos *board.Position, p board.Point, dist int) bool {
	// best[pt] is the largest remaining distance pt has been explored
	// with; a point reached again with more distance left is re-explored.
	best := make(map[board.Point]int)
	var rec func(cur board.Point, remaining int) bool
	rec = func(cur board.Point, remaining int) bool {
		if r, seen := best[cur]; seen && r >= remaining {
			return true
		}
		best[cur] = remaining
		switch pos.Color(cur) {
		case board.Ours, board.Theirs:
			return false
		case board.Off:
			return true
		}
		if remaining == 0 {
			return true
		}
		for _, n := range pos.Neighbors4(cur) {
			if !rec(n, remaining-1) {
				return false
			}
		}
		return true
	}
	return rec(p, dist)
}
