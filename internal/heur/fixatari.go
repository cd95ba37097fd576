// Package heur implements the handcrafted move heuristics used as MCTS
// priors and playout biases: atari/ladder reading, common-fate-graph
// distance, line height, and the empty-area opening test (spec.md §4.4).
package heur

import "github.com/gopherboard/migo/internal/board"

// FixAtari computes the block at p with liberty bound 3 and reports
// whether it is in atari, together with the capture/escape/counter-capture
// moves available and the block's original stone count repeated once per
// move (spec.md §4.4).
//
// singlePtOK suppresses the atari report for single-stone blocks (used
// when the caller doesn't care about one-stone ataris, e.g. the self-atari
// test applied to a stone just played). twoLibTest enables ladder reading
// at exactly two liberties; twoLibEdgeOnly additionally skips the ladder
// read whenever a liberty sits away from the edge, to bound the cost of
// the recursive search to genuinely laddered shapes.
func FixAtari(pos *board.Position, p board.Point, singlePtOK, twoLibTest, twoLibEdgeOnly bool) (isAtari bool, moves []board.Point, sizes []int) {
	stones, libs, complete := pos.BlockBounded(p, 3)

	if singlePtOK && complete && len(stones) == 1 {
		return false, nil, nil
	}
	if len(libs) >= 3 {
		return false, nil, nil
	}

	switch len(libs) {
	case 0:
		return true, nil, nil

	case 2:
		if !twoLibTest {
			return false, nil, nil
		}
		if twoLibEdgeOnly {
			for _, lib := range libs {
				if LineHeight(pos, lib) >= 2 {
					return false, nil, nil
				}
			}
		}
		attacks := readLadderAttack(pos, p, libs)
		if len(attacks) == 0 {
			return false, nil, nil
		}
		return true, attacks, sizesFor(attacks, len(stones))

	default: // len(libs) == 1
		lib := libs[0]
		if pos.Color(p) == board.Theirs {
			return true, []board.Point{lib}, []int{len(stones)}
		}
		moves = fixAtariOwnBlock(pos, stones, lib)
		return true, moves, sizesFor(moves, len(stones))
	}
}

// fixAtariOwnBlock handles the case where the block in atari belongs to
// the side to move: counter-capture candidates from adjacent enemy blocks
// already in atari, plus an escape move if playing the last liberty
// leaves the block safe (spec.md §4.4).
func fixAtariOwnBlock(pos *board.Position, stones []board.Point, lib board.Point) []board.Point {
	var moves []board.Point
	add := func(pt board.Point) {
		for _, m := range moves {
			if m == pt {
				return
			}
		}
		moves = append(moves, pt)
	}

	for _, s := range stones {
		for _, n := range pos.Neighbors4(s) {
			if pos.Color(n) != board.Theirs {
				continue
			}
			_, oppLibs, oppComplete := pos.BlockBounded(n, 2)
			if oppComplete && len(oppLibs) == 1 {
				add(oppLibs[0])
			}
		}
	}

	cp := pos.Copy()
	if err := cp.Play(lib); err == nil {
		_, newLibs, _ := cp.BlockBounded(lib, 3)
		switch len(newLibs) {
		case 0, 1:
			// capture or still-single-liberty: not a real escape
		case 2:
			stillAtari, _, _ := FixAtari(cp, lib, false, true, false)
			if !stillAtari {
				add(lib)
			}
		default:
			add(lib)
		}
	}

	return moves
}

// readLadderAttack tests each of a two-liberty block's liberties: if
// playing it leaves the block in atari with no escape, it is a winning
// ladder attack (spec.md §4.4).
func readLadderAttack(pos *board.Position, p board.Point, libs []board.Point) []board.Point {
	var attacks []board.Point
	for _, lib := range libs {
		cp := pos.Copy()
		if err := cp.Play(lib); err != nil {
			continue
		}
		stillAtari, escapes, _ := FixAtari(cp, p, false, false, false)
		if stillAtari && len(escapes) == 0 {
			attacks = append(attacks, lib)
		}
	}
	return attacks
}

func sizesFor(moves []board.Point, size int) []int {
	sizes := make([]int, len(moves))
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}
