package pattern

import (
	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/rng"
)

// Color codes for the large-pattern signature are distinct from the
// board package's env4 codes (spec.md §4.3): empty=0, off-board=1,
// theirs=2, ours=3.
func signatureColorCode(s board.Stone) uint64 {
	switch s {
	case board.Empty:
		return 0
	case board.Off:
		return 1
	case board.Theirs:
		return 2
	case board.Ours:
		return 3
	default:
		return 1
	}
}

// zobristTable[i][code] is a random 64-bit mask for neighborhood
// position i (an index into disp1d) and one of the 4 signature color
// codes, drawn deterministically from the engine's PRNG at startup
// (spec.md §4.3).
type zobristTable [][4]uint64

func newZobristTable(src *rng.Source) zobristTable {
	t := make(zobristTable, len(disp1d))
	for i := range t {
		for c := 0; c < 4; c++ {
			hi := uint64(src.Next())
			lo := uint64(src.Next())
			t[i][c] = hi<<32 | lo
		}
	}
	return t
}

// largeBoard is a copy of a Position's colors padded with a 7-cell
// border of off-board cells on every side, wide enough that every
// displacement in disp1d (at most 6 cells along either axis) stays in
// bounds for any on-board point of the source position (spec.md §4.3).
const largeBoardBorder = 7

type largeBoard struct {
	n      int
	stride int // n + 2*largeBoardBorder
	cells  []board.Stone
}

func newLargeBoard(pos *board.Position) *largeBoard {
	n := pos.Size()
	lb := &largeBoard{
		n:      n,
		stride: n + 2*largeBoardBorder,
	}
	lb.cells = make([]board.Stone, lb.stride*lb.stride)
	for i := range lb.cells {
		lb.cells[i] = board.Off
	}
	for _, p := range pos.AllPoints() {
		col, row := pos.Coord(p)
		lb.cells[lb.index(col, row)] = pos.Color(p)
	}
	return lb
}

func (lb *largeBoard) index(col, row int) int {
	return (row-1+largeBoardBorder)*lb.stride + (col - 1 + largeBoardBorder)
}

func (lb *largeBoard) colorAt(col, row, dx, dy int) board.Stone {
	c := col + dx
	r := row + dy
	if c < 1-largeBoardBorder || c > lb.n+largeBoardBorder || r < 1-largeBoardBorder || r > lb.n+largeBoardBorder {
		return board.Off
	}
	return lb.cells[lb.index(c, r)]
}

// signatureWalker incrementally builds the Zobrist signature ring by
// ring as size grows from 1 to 12, per spec.md §4.3's "Probability
// query" walk.
type signatureWalker struct {
	lb     *largeBoard
	col    int
	row    int
	zt     zobristTable
	sig    uint64
	atSize int // number of disp1d entries folded into sig so far
}

func newSignatureWalker(lb *largeBoard, col, row int, zt zobristTable) *signatureWalker {
	return &signatureWalker{lb: lb, col: col, row: row, zt: zt}
}

// extendTo folds in every displacement up through sizeBoundary[size],
// returning the updated running signature.
func (w *signatureWalker) extendTo(size int) uint64 {
	target := sizeBoundary[size]
	for w.atSize < target {
		d := disp1d[w.atSize]
		c := signatureColorCode(w.lb.colorAt(w.col, w.row, d.dx, d.dy))
		w.sig ^= w.zt[w.atSize][c]
		w.atSize++
	}
	return w.sig
}
