package board

// isEyeishFor reports whether every orthogonal neighbor of p is either
// off-board or color, i.e. p is eye-ish of color (spec.md §4.1).
func (pos *Position) isEyeishFor(p Point, color Stone) bool {
	for _, n := range pos.Neighbors4(p) {
		c := pos.Colors[n]
		if c != Off && c != color {
			return false
		}
	}
	return true
}

// IsEyeish reports whether p is eye-ish of Ours: every orthogonal
// neighbor is off-board or Ours, and no neighbor is Theirs.
func (pos *Position) IsEyeish(p Point) bool {
	return pos.isEyeishFor(p, Ours)
}

// IsTrueEye reports whether p is a true eye of Ours: eye-ish of Ours, and
// fewer than two false marks among its diagonal neighbors (any number of
// off-board diagonals together count as one false; each Theirs diagonal
// counts as one; threshold >=2 is false) (spec.md §4.1).
func (pos *Position) IsTrueEye(p Point) bool {
	if !pos.IsEyeish(p) {
		return false
	}
	falseCount := 0
	atEdge := false
	for _, n := range pos.Neighbors4d(p) {
		switch pos.Colors[n] {
		case Off:
			atEdge = true
		case Theirs:
			falseCount++
		}
	}
	if atEdge {
		falseCount++
	}
	return falseCount < 2
}

// Score computes the score for the side to play, assuming a terminal
// position with only single-point eyes (spec.md §4.1). Every point that
// is Ours or eye-ish of Ours scores +1, every point that is Theirs or
// eye-ish of Theirs scores -1; komi is subtracted when Ours is the first
// player and added otherwise. ownerMap, if non-nil and sized to pos.size,
// is incremented by +1/-1 per point, from the first player's perspective,
// for visualization (spec.md §4.5).
//
// Valid only at the end of a playout or a terminal position; calling it
// mid-game produces a meaningless number (spec.md §9 Open Questions).
func (pos *Position) Score(ownerMap []int) float64 {
	score := 0
	// ownerMap is kept from the first player's side; Ours is the first
	// player exactly when MoveNum is even (see the komi note below).
	owner := 1
	if pos.MoveNum%2 != 0 {
		owner = -1
	}
	for _, p := range pos.allPoints {
		switch pos.Colors[p] {
		case Ours:
			score++
			if ownerMap != nil {
				ownerMap[p] += owner
			}
		case Theirs:
			score--
			if ownerMap != nil {
				ownerMap[p] -= owner
			}
		case Empty:
			if pos.isEyeishFor(p, Ours) {
				score++
				if ownerMap != nil {
					ownerMap[p] += owner
				}
			} else if pos.isEyeishFor(p, Theirs) {
				score--
				if ownerMap != nil {
					ownerMap[p] -= owner
				}
			}
		}
	}
	// Komi counts negatively for the player who moved first (spec.md
	// §4.1): Ours is the first player exactly when MoveNum is even, since
	// MoveNum starts at 0 with Ours=first-player and every move/pass
	// increments it while swapping the Ours/Theirs labels.
	if pos.MoveNum%2 == 0 {
		return float64(score) - pos.Komi
	}
	return float64(score) + pos.Komi
}
