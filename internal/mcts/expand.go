package mcts

import (
	"math"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/heur"
)

// PriorEven is the uniform "0.5 prior" every expanded child starts with
// (spec.md §3).
const PriorEven = 10

// emptyAreaDist bounds the empty_area opening-bias check (spec.md §4.6).
// The spec names the bias but not this radius; 3 matches the reach of
// the PRIOR_CFG distances it is meant to complement.
const emptyAreaDist = 3

// expand allocates a child node for every empty non-true-eye point that
// yields a legal move, seeded with PRIOR_EVEN and the second-pass prior
// additions (spec.md §4.6). If no legal move exists, it creates a single
// pass child.
func (s *Searcher) expand(n *Node) {
	pos := n.Pos
	var cfgDist map[board.Point]int
	if pos.Last[0] > board.NoPoint {
		cfgDist = heur.ComputeCFGDistances(pos, pos.Last[0])
	}

	var children []*Node
	for _, p := range pos.AllPoints() {
		if pos.Color(p) != board.Empty {
			continue
		}
		if pos.IsTrueEye(p) {
			continue
		}
		cp := pos.Copy()
		if err := cp.Play(p); err != nil {
			continue
		}
		child := &Node{Move: p, Pos: cp, PV: PriorEven, PW: PriorEven / 2}
		s.applyPriors(child, pos, cp, p, cfgDist)
		children = append(children, child)
	}

	if len(children) == 0 {
		cp := pos.Copy()
		cp.Pass()
		children = append(children, &Node{Move: board.PassMove, Pos: cp, PV: PriorEven, PW: PriorEven / 2})
	}
	n.Children = children
}

// applyPriors folds in the second pass of priors described in spec.md
// §4.6: capture, 3x3 pattern, cfg distance, empty-area opening bias,
// self-atari and large-pattern probability.
func (s *Searcher) applyPriors(child *Node, parent, after *board.Position, p board.Point, cfgDist map[board.Point]int) {
	add := func(dv, dw float64) {
		child.PV += dv
		child.PW += dw
	}

	captured := after.CapTheirs - parent.CapOurs
	switch {
	case captured == 1:
		add(15, 15)
	case captured >= 2:
		add(30, 30)
	}

	if s.m3 != nil && s.m3.MatchPoint(parent, p) {
		add(10, 10)
	}

	if cfgDist != nil {
		if d, ok := cfgDist[p]; ok {
			switch d {
			case 1:
				add(24, 24)
			case 2:
				add(22, 22)
			case 3:
				add(8, 8)
			}
		}
	}

	line := heur.LineHeight(parent, p)
	if heur.EmptyArea(parent, p, emptyAreaDist) {
		switch {
		case line <= 1:
			add(10, 0)
		case line == 2:
			add(10, 10)
		}
	}

	if isSelfAtari, _, _ := heur.FixAtari(after, p, true, false, false); isSelfAtari {
		add(10, 0)
	}

	if s.large != nil {
		if prob, _ := s.large.Probability(parent, p); prob > 0 {
			w := math.Sqrt(prob) * 100
			add(w, w)
		}
	}
}
