package board

import "github.com/pkg/errors"

// Illegal-move errors surfaced from Play, per spec.md §7. They are
// created with github.com/pkg/errors and Play returns them unwrapped, so
// callers compare against the sentinels with errors.Is.
var (
	ErrRetakesKo = errors.New("Illegal move: retakes ko")
	ErrSuicide   = errors.New("Illegal move: suicide")
	ErrOccupied  = errors.New("Illegal move: point not EMPTY")
)

// ErrBadBoardSize is a configuration error (spec.md §7): requesting a
// board size other than the one this Position was built for.
var ErrBadBoardSize = errors.New("Error: incompatible board size")

// ErrUndoNotAvailable reports a violation of the one-move, <=1-capture
// undo contract (spec.md §4.1, §9).
var ErrUndoNotAvailable = errors.New("Error: undo not available for this move")
