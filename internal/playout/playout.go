// Package playout implements the biased Monte Carlo rollout (mcplayout,
// spec.md §4.5): an ordered cascade of capture, 3x3 pattern and random
// move suggestions, each gated by a fixed probability and filtered by a
// self-atari test, run out to two passes or a move-count cap.
package playout

import (
	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/heur"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/rng"
)

const (
	ProbHeuristicCapture = 0.9
	ProbHeuristicPat3    = 0.95
	ProbSSAReject        = 0.9
	ProbRSAReject        = 0.5
)

// maxGameLenFactor is MAX_GAME_LEN's coefficient (spec.md §4.5):
// MAX_GAME_LEN = 3*N*N plies.
const maxGameLenFactor = 3

// Result is the outcome of one rollout: the scalar score from the
// perspective of the side to move in the position Rollout was given, and
// the AMAF map recording which points were first played by which side.
type Result struct {
	Score float64
	AMAF  map[board.Point]int
}

// Rollout plays pos (a private copy; the caller's Position is untouched)
// out to a terminal-ish state and returns its score (spec.md §4.5).
// ownerMap, if non-nil, is forwarded to Position.Score for territory
// accumulation across many rollouts.
func Rollout(pos *board.Position, m3 *pattern3.Matcher, src *rng.Source, ownerMap []int) Result {
	work := pos.Copy()
	n := work.Size()
	maxLen := maxGameLenFactor * n * n
	startMoveNum := work.MoveNum

	amaf := make(map[board.Point]int)
	passes := 0
	for plies := 0; passes < 2 && plies < maxLen; plies++ {
		plyIndex := work.MoveNum - startMoveNum
		mv, ok := chooseMove(work, m3, src)
		if !ok {
			work.Pass()
			passes++
			continue
		}
		// chooseMove already played and accepted mv (via playIfAccepted);
		// nothing left to do here but record it and keep rolling.
		passes = 0
		recordAMAF(amaf, mv, plyIndex)
	}

	raw := work.Score(ownerMap)
	flipped := (work.MoveNum-startMoveNum)%2 != 0
	score := raw
	if flipped {
		score = -raw
	}
	return Result{Score: score, AMAF: amaf}
}

// recordAMAF records the first-touch AMAF value for mv: +1 if it was
// played by the side to move when the rollout started, -1 otherwise
// (spec.md §4.5).
func recordAMAF(amaf map[board.Point]int, mv board.Point, plyIndex int) {
	if _, seen := amaf[mv]; seen {
		return
	}
	if plyIndex%2 == 0 {
		amaf[mv] = 1
	} else {
		amaf[mv] = -1
	}
}

// chooseMove runs the ordered suggestion cascade for one ply and plays
// the accepted move directly on pos, returning it. Returns ok=false if
// every source was exhausted without a playable move, meaning the ply
// should be a pass.
func chooseMove(pos *board.Position, m3 *pattern3.Matcher, src *rng.Source) (board.Point, bool) {
	candidates := buildCandidateList(pos, src)

	if src.Chance(ProbHeuristicCapture) {
		if mv, ok := tryCaptureSuggestions(pos, candidates, src); ok {
			return mv, true
		}
	}
	if src.Chance(ProbHeuristicPat3) {
		if mv, ok := tryPatternSuggestions(pos, m3, candidates, src); ok {
			return mv, true
		}
	}
	return tryRandomSuggestion(pos, src)
}

// buildCandidateList assembles the last move and its 8 neighbors
// (shuffled), followed by those of the move before (also shuffled),
// skipping duplicates and off-board points (spec.md §4.5).
func buildCandidateList(pos *board.Position, src *rng.Source) []board.Point {
	var list []board.Point
	seen := make(map[board.Point]bool)

	addGroup := func(center board.Point) {
		if center <= board.NoPoint {
			return
		}
		nb4 := pos.Neighbors4(center)
		nb4d := pos.Neighbors4d(center)
		group := make([]board.Point, 0, 9)
		group = append(group, center)
		group = append(group, nb4[:]...)
		group = append(group, nb4d[:]...)
		src.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		for _, p := range group {
			if pos.Color(p) == board.Off {
				continue
			}
			if !seen[p] {
				seen[p] = true
				list = append(list, p)
			}
		}
	}

	addGroup(pos.Last[0])
	addGroup(pos.Last[1])
	return list
}

func tryCaptureSuggestions(pos *board.Position, candidates []board.Point, src *rng.Source) (board.Point, bool) {
	var moves []board.Point
	seen := make(map[board.Point]bool)
	for _, c := range candidates {
		if pos.Color(c) != board.Ours && pos.Color(c) != board.Theirs {
			continue
		}
		_, ms, _ := heur.FixAtari(pos, c, false, true, true)
		for _, m := range ms {
			if !seen[m] {
				seen[m] = true
				moves = append(moves, m)
			}
		}
	}
	for _, m := range moves {
		if playIfAccepted(pos, m, src, true) {
			return m, true
		}
	}
	return board.NoPoint, false
}

func tryPatternSuggestions(pos *board.Position, m3 *pattern3.Matcher, candidates []board.Point, src *rng.Source) (board.Point, bool) {
	for _, c := range candidates {
		if pos.Color(c) != board.Empty {
			continue
		}
		if !m3.MatchPoint(pos, c) {
			continue
		}
		if playIfAccepted(pos, c, src, true) {
			return c, true
		}
	}
	return board.NoPoint, false
}

func tryRandomSuggestion(pos *board.Position, src *rng.Source) (board.Point, bool) {
	pts := pos.AllPoints()
	n := len(pts)
	if n == 0 {
		return board.NoPoint, false
	}
	start := src.Intn(n)
	for i := 0; i < n; i++ {
		p := pts[(start+i)%n]
		if pos.Color(p) != board.Empty {
			continue
		}
		if pos.IsTrueEye(p) {
			continue
		}
		if playIfAccepted(pos, p, src, false) {
			return p, true
		}
	}
	return board.NoPoint, false
}

// playIfAccepted plays mv, then applies the self-atari rejection test
// (spec.md §4.5): re-run FixAtari on the just-placed stone with
// singlePtOK=true; any returned move means self-atari, rejected with
// probability PROB_SSAREJECT for heuristic-sourced moves or
// PROB_RSAREJECT for random-sourced ones. A rejected move is undone; a
// move that captured more than one stone cannot be undone and is kept.
func playIfAccepted(pos *board.Position, mv board.Point, src *rng.Source, heuristicSourced bool) bool {
	if err := pos.Play(mv); err != nil {
		return false
	}
	isSelfAtari, _, _ := heur.FixAtari(pos, mv, true, false, false)
	if isSelfAtari {
		rejectProb := ProbRSAReject
		if heuristicSourced {
			rejectProb = ProbSSAReject
		}
		if src.Chance(rejectProb) && pos.Undo() == nil {
			return false
		}
	}
	return true
}
