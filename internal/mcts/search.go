package mcts

import (
	"github.com/rs/zerolog/log"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/pattern"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/playout"
	"github.com/gopherboard/migo/internal/rng"
)

// Config holds the search loop's tunable constants (spec.md §4.6).
type Config struct {
	NSims        int
	ReportPeriod int
	ExpandVisits float64
	RaveEquiv    float64
	ResignThres  float64
}

// DefaultConfig returns the spec's named constants: N_SIMS=1400,
// REPORT_PERIOD=200, EXPAND_VISITS=8, RAVE_EQUIV=3500,
// RESIGN_THRES=0.2.
func DefaultConfig() Config {
	return Config{
		NSims:        1400,
		ReportPeriod: 200,
		ExpandVisits: 8,
		RaveEquiv:    3500,
		ResignThres:  0.2,
	}
}

// Searcher owns everything one MCTS run needs: the pattern matchers that
// feed priors, the shared PRNG stream, and the loop's constants.
type Searcher struct {
	m3    *pattern3.Matcher
	large *pattern.Dict
	src   *rng.Source
	cfg   Config
}

func New(m3 *pattern3.Matcher, large *pattern.Dict, src *rng.Source, cfg Config) *Searcher {
	return &Searcher{m3: m3, large: large, src: src, cfg: cfg}
}

// Decision is genmove's result: a point to play, or the pass/resign
// sentinels (spec.md §4.6, §6).
type Decision struct {
	Move board.Point
}

// Search runs N_SIMS simulations from pos and returns the chosen move
// (spec.md §4.6's search loop and early-stop rules).
func (s *Searcher) Search(pos *board.Position) (Decision, *Node) {
	root := &Node{Pos: pos.Copy()}
	s.expand(root)

	for i := 1; i <= s.cfg.NSims; i++ {
		path, descendAMAF := s.descend(root)
		leaf := path[len(path)-1]

		result := playout.Rollout(leaf.Pos, s.m3, s.src, nil)
		mergeAMAF(descendAMAF, result.AMAF, len(path)-1)
		update(path, result.Score, descendAMAF)

		if s.cfg.ReportPeriod > 0 && i%s.cfg.ReportPeriod == 0 {
			s.reportProgress(root, i)
		}

		if best := bestByVisits(root.Children, nil); best != nil {
			switch {
			case i >= s.cfg.NSims*5/100 && best.Winrate() > 0.95:
				return Decision{Move: best.Move}, root
			case i >= s.cfg.NSims*20/100 && best.Winrate() > 0.8:
				return Decision{Move: best.Move}, root
			}
		}
	}

	best := bestByVisits(root.Children, nil)
	if best == nil {
		return Decision{Move: board.PassMove}, root
	}
	if best.Winrate() < s.cfg.ResignThres {
		return Decision{Move: board.ResignMove}, root
	}
	if best.Move == board.PassMove && pos.Last[0] == board.PassMove {
		return Decision{Move: board.PassMove}, root
	}
	return Decision{Move: best.Move}, root
}

func (s *Searcher) reportProgress(root *Node, iter int) {
	best := bestByVisits(root.Children, nil)
	ev := log.Info().Int("iteration", iter).Int("children", len(root.Children))
	if best != nil {
		ev = ev.Float64("best_winrate", best.Winrate()).Float64("best_visits", best.V)
	}
	ev.Msg("mcts progress")
}

// bestByVisits returns the child with the maximum visit count, skipping
// any move present in exclude (spec.md §4.6 "Best move").
func bestByVisits(children []*Node, exclude map[board.Point]bool) *Node {
	var best *Node
	for _, c := range children {
		if exclude != nil && exclude[c.Move] {
			continue
		}
		if best == nil || c.V > best.V {
			best = c
		}
	}
	return best
}

// TopMoves returns up to n children ranked by visit count, for a "top-5"
// style report (spec.md §4.6).
func TopMoves(root *Node, n int) []*Node {
	exclude := make(map[board.Point]bool)
	var out []*Node
	for i := 0; i < n; i++ {
		b := bestByVisits(root.Children, exclude)
		if b == nil {
			break
		}
		out = append(out, b)
		exclude[b.Move] = true
	}
	return out
}

// PrincipalVariation walks the most-visited child at each level, up to
// maxLen moves.
func PrincipalVariation(root *Node, maxLen int) []board.Point {
	var pv []board.Point
	node := root
	for i := 0; i < maxLen; i++ {
		b := bestByVisits(node.Children, nil)
		if b == nil {
			break
		}
		pv = append(pv, b.Move)
		if len(b.Children) == 0 {
			break
		}
		node = b
	}
	return pv
}
