package mcts

import "github.com/gopherboard/migo/internal/board"

// update walks the descent path leaf to root, incrementing visit/win
// counts and the RAVE (AMAF) counterparts (spec.md §4.6). score is from
// the leaf position's own side-to-move perspective on entry, and is
// negated once per level on the way up since each step toward the root
// crosses one move (one color relabeling).
func update(path []*Node, score float64, amaf map[board.Point]int) {
	for i := len(path) - 1; i >= 0; i-- {
		node := path[i]
		node.V++
		if score < 0 {
			node.W++
		}

		expectedSign := 1
		if i%2 != 0 {
			expectedSign = -1
		}
		for _, child := range node.Children {
			if sign, ok := amaf[child.Move]; ok && sign == expectedSign {
				child.AV++
				// child stats belong to the side that moved into it, i.e.
				// this node's side to move, whose perspective score has.
				if score > 0 {
					child.AW++
				}
			}
		}

		score = -score
	}
}

// mergeAMAF folds the rollout's own AMAF map (signed relative to the
// leaf position's side to move) into the descent's AMAF map (signed
// relative to root's side to move), rebasing signs by the leaf's depth
// parity. Descent touches are chronologically earlier, so they are kept
// on collision (spec.md §4.6 "first-touch wins").
func mergeAMAF(descendAMAF, playoutAMAF map[board.Point]int, leafDepth int) {
	flip := 1
	if leafDepth%2 != 0 {
		flip = -1
	}
	for pt, sign := range playoutAMAF {
		if _, exists := descendAMAF[pt]; exists {
			continue
		}
		descendAMAF[pt] = sign * flip
	}
}
