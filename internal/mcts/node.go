// Package mcts implements Monte Carlo Tree Search with RAVE (spec.md
// §4.6): tree expansion with handcrafted priors, urgency-based descent,
// leaf-to-root statistics update, and a search loop with early-stop and
// resign rules.
package mcts

import "github.com/gopherboard/migo/internal/board"

// Node is one tree position. v/w are real playout counts; pv/pw are
// prior pseudo-counts folded into the same ratio; av/aw are the RAVE
// (AMAF) counterparts (spec.md §3, §4.6). Stats are kept for the side
// that just moved to reach this node, not the side now to move.
type Node struct {
	Move board.Point
	Pos  *board.Position

	V, W   float64
	PV, PW float64
	AV, AW float64

	Children []*Node
}

// Winrate is the empirical win rate used by the early-stop and resign
// rules (spec.md §4.6): raw playout wins over playout visits, ignoring
// the prior pseudo-counts that blend into descent urgency.
func (n *Node) Winrate() float64 {
	if n.V == 0 {
		return 0
	}
	return n.W / n.V
}

// expectation is (w+pw)/(v+pv), the blended value used by descent
// urgency (spec.md §4.6).
func (n *Node) expectation() float64 {
	return (n.W + n.PW) / (n.V + n.PV)
}
