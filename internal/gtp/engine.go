// Package gtp implements a Go Text Protocol front end over the engine's
// board and search packages (spec.md §6). It is the only place that
// tracks absolute stone color: internal/board always labels the side to
// move "Ours", so this package remembers which absolute color that is
// and realigns it (by inserting a pass) whenever the controller asks to
// play out of turn, matching GTP's usual lenient setup-position use.
package gtp

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/mcts"
	"github.com/gopherboard/migo/internal/pattern"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/rng"
)

// Color is the absolute stone color exposed over GTP, distinct from
// internal/board's relative Ours/Theirs labeling.
type Color int

const (
	Black Color = iota
	White
)

// Opponent returns the other absolute color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// ErrBadBoardSize is the error for a requested size other than the
// engine's own N (spec.md §6: "must equal compile-time N; otherwise
// refuse"). SetBoardSize reports that case as a false result and does not
// return this value.
var ErrBadBoardSize = errors.New("board size must match the compiled-in size")

// Engine is the GTP-facing wrapper around a Position and a Searcher.
type Engine struct {
	n     int
	pos   *board.Position
	mover Color

	m3    *pattern3.Matcher
	large *pattern.Dict
	src   *rng.Source
	cfg   mcts.Config
}

// NewEngine builds an Engine for an n x n board. probPath/spatPath name
// the large-pattern dictionary files (spec.md §6). pattern.Load itself
// handles missing files (it logs a warning and returns an empty
// dictionary); any other load error is logged here and the engine runs
// (weaker) without a dictionary.
func NewEngine(n int, seed int64, probPath, spatPath string) *Engine {
	src := rng.New(seed)
	dict, err := pattern.Load(probPath, spatPath, src)
	if err != nil {
		log.Warn().Err(err).Msg("large pattern dictionary failed to load; continuing without it")
		dict = nil
	}
	e := &Engine{
		n:     n,
		m3:    pattern3.New(),
		large: dict,
		src:   src,
		cfg:   mcts.DefaultConfig(),
	}
	e.ClearBoard()
	return e
}

// SetBoardSize reports whether n matches the engine's compiled-in size
// (spec.md §6).
func (e *Engine) SetBoardSize(n int) bool {
	return n == e.n
}

// ClearBoard resets the position to empty with Black to move.
func (e *Engine) ClearBoard() {
	e.pos = board.NewPosition(e.n)
	e.mover = Black
}

// SetKomi sets the komi applied by Score.
func (e *Engine) SetKomi(komi float64) {
	e.pos.Komi = komi
}

// BoardSize returns the engine's compiled-in board size.
func (e *Engine) BoardSize() int { return e.n }

// alignMover inserts a pass if the side asking to move isn't the one
// Position currently has as "Ours", so consecutive same-color setup
// moves behave the way the teacher's GoBoard.Play contract describes:
// "if the same player plays twice, it's assumed the other player
// passed".
func (e *Engine) alignMover(c Color) {
	if e.mover != c {
		e.pos.Pass()
		e.mover = e.mover.Opponent()
	}
}

// Play plays a stone for color c at (col, row), or passes if isPass.
func (e *Engine) Play(c Color, col, row int, isPass bool) error {
	e.alignMover(c)
	if isPass {
		e.pos.Pass()
		e.mover = e.mover.Opponent()
		return nil
	}
	p := e.pos.Point(col, row)
	if err := e.pos.Play(p); err != nil {
		return err
	}
	e.mover = e.mover.Opponent()
	return nil
}

// GenMoveResult mirrors spec.md §6's three genmove outcomes.
type GenMoveResult struct {
	Col, Row int
	Pass     bool
	Resign   bool
}

// GenMove runs a search for color c and plays the chosen move.
func (e *Engine) GenMove(c Color) GenMoveResult {
	e.alignMover(c)

	searcher := mcts.New(e.m3, e.large, e.src, e.cfg)
	decision, _ := searcher.Search(e.pos)

	switch decision.Move {
	case board.ResignMove:
		return GenMoveResult{Resign: true}
	case board.PassMove:
		e.pos.Pass()
		e.mover = e.mover.Opponent()
		return GenMoveResult{Pass: true}
	default:
		if err := e.pos.Play(decision.Move); err != nil {
			log.Error().Err(err).Msg("mcts chose an illegal move; passing instead")
			e.pos.Pass()
			e.mover = e.mover.Opponent()
			return GenMoveResult{Pass: true}
		}
		e.mover = e.mover.Opponent()
		col, row := e.pos.Coord(decision.Move)
		return GenMoveResult{Col: col, Row: row}
	}
}

// CellColor reports the absolute color of the stone at (col, row);
// occupied is false for an empty point.
func (e *Engine) CellColor(col, row int) (c Color, occupied bool) {
	p := e.pos.Point(col, row)
	switch e.pos.Color(p) {
	case board.Ours:
		return e.mover, true
	case board.Theirs:
		return e.mover.Opponent(), true
	default:
		return Black, false
	}
}
