package mcts

import "github.com/gopherboard/migo/internal/board"

// descend walks from root picking the most urgent child at each step,
// expanding a freshly-reached leaf in place once it has accumulated
// EXPAND_VISITS visits so the *next* descent sees its children (spec.md
// §4.6). This descent stops at the just-expanded node: its new children
// have zero visits and nothing to rank them on yet, so the rollout for
// this simulation runs from cur's position rather than recursing into
// them. It returns the path from root to the resulting leaf and an AMAF
// map of first-touched moves, signed relative to root's side to move.
func (s *Searcher) descend(root *Node) (path []*Node, amaf map[board.Point]int) {
	amaf = make(map[board.Point]int)
	path = []*Node{root}
	cur := root
	consecutivePasses := 0
	ply := 0

	for len(cur.Children) > 0 {
		child := s.pickMostUrgent(cur.Children)
		recordTouch(amaf, child.Move, ply)
		path = append(path, child)
		ply++

		if child.Move == board.PassMove {
			consecutivePasses++
		} else {
			consecutivePasses = 0
		}
		cur = child

		if consecutivePasses >= 2 {
			break
		}
		if len(cur.Children) == 0 {
			if cur.V >= s.cfg.ExpandVisits {
				s.expand(cur)
			}
			break
		}
	}
	return path, amaf
}

// recordTouch is descend's AMAF bookkeeping: first touch of a point
// wins, signed +1 for root's own side to move, -1 for the opponent
// (spec.md §4.6, mirroring the rollout's AMAF convention).
func recordTouch(amaf map[board.Point]int, mv board.Point, ply int) {
	if _, seen := amaf[mv]; seen {
		return
	}
	if ply%2 == 0 {
		amaf[mv] = 1
	} else {
		amaf[mv] = -1
	}
}

// pickMostUrgent returns the child with the highest RAVE-blended urgency
// (spec.md §4.6), randomizing sibling order first so ties break randomly.
func (s *Searcher) pickMostUrgent(children []*Node) *Node {
	order := make([]int, len(children))
	for i := range order {
		order[i] = i
	}
	s.src.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	best := children[order[0]]
	bestU := s.urgency(best)
	for _, idx := range order[1:] {
		c := children[idx]
		u := s.urgency(c)
		if u > bestU {
			best, bestU = c, u
		}
	}
	return best
}

// urgency implements the RAVE-blended urgency formula (spec.md §4.6).
func (s *Searcher) urgency(n *Node) float64 {
	expectation := n.expectation()
	if n.AV == 0 {
		return expectation
	}
	denom := n.V + n.PV
	beta := n.AV / (n.AV + denom + denom*n.AV/s.cfg.RaveEquiv)
	return beta*(n.AW/n.AV) + (1-beta)*expectation
}
