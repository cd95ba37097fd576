// Package pattern3 precomputes the set of 3x3 local shapes recognized by
// the engine (spec.md §4.2). Each shape is described as a 3x3 grid over a
// small alphabet, expanded at startup into every concrete coloring under
// all 8 board symmetries, and folded into a single 8192-byte bitset keyed
// by the same 16-bit neighborhood code the board's env4/env4d descriptors
// produce, so matching a point is an O(1) table lookup.
package pattern3

import "github.com/gopherboard/migo/internal/board"

// pat3src lists the recognized shapes. Alphabet: X=ours, O=theirs,
// .=empty, ?=any of X/O/. , x=not-ours (theirs, empty, or off-board),
// o=not-theirs (ours, empty, or off-board), #=off-board. The center
// cell is always empty and is never encoded; it is written as '.' here
// purely for readability.
var pat3src = [][3]string{
	{"XOX", "...", "???"}, // hane: enclosing hane
	{"XO.", "...", "?.?"}, // hane: non-cutting hane
	{"XO?", "X..", "x.?"}, // hane: magari
	{"XOO", "...", "?.?"}, // hane: double hane
	{".O.", "O.o", "???"}, // cut1: peep shape
	{".O.", "O.X", "???"}, // cut1: cutting peep
	{"?X?", "O.O", "ooo"}, // cut2: bamboo-joint cut
	{"OX?", "o.O", "???"}, // cut keima
	{"X.?", "O.?", "###"}, // edge: chase along the side
	{"OX?", "X.O", "###"}, // edge: block
	{"?X?", "x.O", "###"}, // edge: hane on the side
	{"?XO", "x.x", "###"}, // edge: sagari
	{"?OX", "X.O", "###"}, // edge: cutting on the side
}

const bitsetSize = 8192 // 2^16 codes / 8 bits per byte

// Matcher holds the precomputed 8192-byte bitset of recognized 16-bit
// neighborhood codes.
type Matcher struct {
	bits [bitsetSize]byte
}

// New builds the matcher by enumerating pat3src under all 8 symmetries
// and both color assignments (spec.md §4.2: "since playouts do not need
// to bias by color").
func New() *Matcher {
	m := &Matcher{}
	for _, src := range pat3src {
		for _, sym := range symmetries {
			transformed := applySymmetry(src, sym)
			for _, assignment := range colorAssignments {
				m.expand(transformed, assignment, 0)
			}
		}
	}
	return m
}

// slot order matches the bit layout of board.Env4/Env4d: low byte is
// N,E,S,W (env4), high byte is NE,SE,SW,NW (env4d).
var slotCoord = [8][2]int{
	{0, 1}, {1, 2}, {2, 1}, {1, 0}, // N, E, S, W
	{0, 2}, {2, 2}, {2, 0}, {0, 0}, // NE, SE, SW, NW
}

type colorSet []board.Stone

var (
	// assignment 0: X=ours, O=theirs (literal reading of the table)
	literalAssignment = map[byte]colorSet{
		'X': {board.Ours},
		'O': {board.Theirs},
		'.': {board.Empty},
		'?': {board.Ours, board.Theirs, board.Empty},
		'x': {board.Theirs, board.Empty, board.Off},
		'o': {board.Ours, board.Empty, board.Off},
		'#': {board.Off},
	}
	// assignment 1: X=theirs, O=ours (color-swapped reading)
	swappedAssignment = map[byte]colorSet{
		'X': {board.Theirs},
		'O': {board.Ours},
		'.': {board.Empty},
		'?': {board.Ours, board.Theirs, board.Empty},
		'x': {board.Ours, board.Empty, board.Off},
		'o': {board.Theirs, board.Empty, board.Off},
		'#': {board.Off},
	}
	colorAssignments = []map[byte]colorSet{literalAssignment, swappedAssignment}
)

// expand recursively enumerates every concrete coloring of the 8 slots
// and sets the corresponding bit, given a partially-filled code built up
// to slot index `slot`.
func (m *Matcher) expand(grid [3]string, assignment map[byte]colorSet, slot int) {
	m.expandFrom(grid, assignment, slot, 0)
}

func (m *Matcher) expandFrom(grid [3]string, assignment map[byte]colorSet, slot int, code uint16) {
	if slot == 8 {
		m.bits[code>>3] |= 1 << (code & 7)
		return
	}
	rc := slotCoord[slot]
	ch := grid[rc[0]][rc[1]]
	for _, c := range assignment[ch] {
		bit := uint16(c) // Stone values double as the 2-bit descriptor code
		shift := uint(slot)
		var next uint16
		if slot < 4 {
			next = code | (bit&1)<<shift | ((bit>>1)&1)<<(shift+4)
		} else {
			hishift := shift - 4
			next = code | (bit&1)<<(8+hishift) | ((bit>>1)&1)<<(8+hishift+4)
		}
		m.expandFrom(grid, assignment, slot+1, next)
	}
}

// Match reports whether the 16-bit neighborhood code assembled from p's
// env4d (high byte) and env4 (low byte) is a recognized 3x3 pattern
// (spec.md §4.2).
func (m *Matcher) Match(env4d, env4 uint8) bool {
	code := uint16(env4d)<<8 | uint16(env4)
	return m.bits[code>>3]&(1<<(code&7)) != 0
}

// MatchPoint is a convenience wrapper reading the descriptors directly
// from a Position.
func (m *Matcher) MatchPoint(pos *board.Position, p board.Point) bool {
	return m.Match(pos.Env4d(p), pos.Env4(p))
}

type transform func(r, c int) (int, int)

func identity(r, c int) (int, int) { return r, c }
func rot90(r, c int) (int, int)    { return c, 2 - r }
func rot180(r, c int) (int, int)   { r, c = rot90(r, c); return rot90(r, c) }
func rot270(r, c int) (int, int)   { r, c = rot180(r, c); return rot90(r, c) }
func mirror(r, c int) (int, int)   { return r, 2 - c }

func compose(f, g transform) transform {
	return func(r, c int) (int, int) {
		r, c = g(r, c)
		return f(r, c)
	}
}

var symmetries = []transform{
	identity, rot90, rot180, rot270,
	mirror, compose(mirror, rot90), compose(mirror, rot180), compose(mirror, rot270),
}

// applySymmetry returns the 3x3 grid obtained by moving each source cell
// (r,c) to sym(r,c).
func applySymmetry(src [3]string, sym transform) (out [3]string) {
	var grid [3][3]byte
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			r2, c2 := sym(r, c)
			grid[r2][c2] = src[r][c]
		}
	}
	for r := 0; r < 3; r++ {
		out[r] = string(grid[r][:])
	}
	return out
}
