package board

import "github.com/gopherboard/migo/internal/markset"

// DefaultN is the compiled-in board side used by the GTP front end
// (spec.md §6: boardsize must equal this, otherwise refuse). The board
// package itself is parameterized over N so tests and benchmarks can use
// smaller sizes.
const DefaultN = 13

// DefaultKomi is the standard komi applied by NewPosition (spec.md §3).
const DefaultKomi = 7.5

// undoInfo captures exactly the state Undo needs to reverse one Play or
// Pass call. Only the most recent move can be undone (spec.md §4.1, §9).
type undoInfo struct {
	valid         bool
	wasPass       bool
	played        Point
	prevKo        Point
	prevLast      [3]Point
	prevMoveNum   int
	prevCapOurs   int
	prevCapTheirs int
	capturedPoint Point // 0 if no single stone was captured
	multiCapture  bool  // true if >1 stone was captured (undo unavailable)
}

// Position is the complete mutable game state described in spec.md §3. Its
// mutable slice fields (colors, descriptors, marker sets) are owned by this
// Position and Copy() deep-copies them (allPoints, fixed after init, is
// shared), so ordinary assignment of the struct is never a correct
// snapshot, but Copy() always is.
type Position struct {
	N      int
	stride int // N+1; see spec.md §3's (N+1)*(N+2)+1 sizing.
	size   int

	Colors []Stone
	env4   []uint8 // orthogonal neighborhood descriptor, N/E/S/W
	env4d  []uint8 // diagonal neighborhood descriptor, NE/SE/SW/NW

	allPoints []Point // on-board points, in row-major order
	dirs4     [4]Point
	dirs4d    [4]Point

	MoveNum int
	Komi    float64

	Ko Point

	Last [3]Point // most recent moves, Last[0] is the most recent

	CapOurs   int // stones captured by the side now to move
	CapTheirs int // stones captured by the opponent

	undo undoInfo

	// Scratch marker sets for block()/flood-fill style traversals,
	// cleared in O(1) per spec.md §5 instead of reallocated per call.
	visitedSet *markset.Set
	libSet     *markset.Set
}

// NewPosition builds an empty position on an N x N board.
func NewPosition(n int) *Position {
	pos := &Position{}
	pos.init(n)
	return pos
}

func (pos *Position) init(n int) {
	pos.N = n
	pos.stride = n + 1
	pos.size = pos.stride*(pos.stride+1) + 1

	pos.Colors = make([]Stone, pos.size)
	pos.env4 = make([]uint8, pos.size)
	pos.env4d = make([]uint8, pos.size)
	pos.allPoints = make([]Point, 0, n*n)

	pos.dirs4 = [4]Point{Point(pos.stride), 1, Point(-pos.stride), -1}             // N,E,S,W
	pos.dirs4d = [4]Point{Point(pos.stride + 1), Point(-pos.stride + 1), Point(-pos.stride - 1), Point(pos.stride - 1)} // NE,SE,SW,NW

	for i := range pos.Colors {
		pos.Colors[i] = Off
	}
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			p := pos.Point(col, row)
			pos.Colors[p] = Empty
			pos.allPoints = append(pos.allPoints, p)
		}
	}

	pos.Komi = DefaultKomi
	pos.Ko = NoPoint
	pos.MoveNum = 0
	pos.Last = [3]Point{NoPoint, NoPoint, NoPoint}
	pos.CapOurs, pos.CapTheirs = 0, 0

	pos.visitedSet = markset.NewSet(pos.size)
	pos.libSet = markset.NewSet(pos.size)

	pos.recomputeAllDescriptors()
}

// AllPoints returns the on-board points in row-major order. The slice
// must not be mutated or retained past the next structural change.
func (pos *Position) AllPoints() []Point { return pos.allPoints }

// Size returns the side of the board this Position was built for.
func (pos *Position) Size() int { return pos.N }

// NewOwnerMap allocates an owner-map slice correctly sized for Score's
// ownerMap parameter (spec.md §4.5).
func (pos *Position) NewOwnerMap() []int { return make([]int, pos.size) }

// Color returns the relative color at point p.
func (pos *Position) Color(p Point) Stone { return pos.Colors[p] }

// Env4 and Env4d return the orthogonal/diagonal neighborhood descriptors
// for point p, as defined in spec.md §4.1.
func (pos *Position) Env4(p Point) uint8  { return pos.env4[p] }
func (pos *Position) Env4d(p Point) uint8 { return pos.env4d[p] }

// Neighbors4 returns the four orthogonal neighbor points of p, in N,E,S,W
// order.
func (pos *Position) Neighbors4(p Point) [4]Point {
	return [4]Point{p + pos.dirs4[0], p + pos.dirs4[1], p + pos.dirs4[2], p + pos.dirs4[3]}
}

// Neighbors4d returns the four diagonal neighbor points of p, in
// NE,SE,SW,NW order.
func (pos *Position) Neighbors4d(p Point) [4]Point {
	return [4]Point{p + pos.dirs4d[0], p + pos.dirs4d[1], p + pos.dirs4d[2], p + pos.dirs4d[3]}
}

// Copy returns an independent value copy of pos, suitable for simulated
// playouts and tree nodes (spec.md §3 "Ownership").
func (pos *Position) Copy() *Position {
	out := &Position{
		N:         pos.N,
		stride:    pos.stride,
		size:      pos.size,
		dirs4:     pos.dirs4,
		dirs4d:    pos.dirs4d,
		MoveNum:   pos.MoveNum,
		Komi:      pos.Komi,
		Ko:        pos.Ko,
		Last:      pos.Last,
		CapOurs:   pos.CapOurs,
		CapTheirs: pos.CapTheirs,
		undo:      pos.undo,
	}
	out.Colors = append([]Stone(nil), pos.Colors...)
	out.env4 = append([]uint8(nil), pos.env4...)
	out.env4d = append([]uint8(nil), pos.env4d...)
	out.allPoints = pos.allPoints // immutable after init; safe to share
	out.visitedSet = markset.NewSet(pos.size)
	out.libSet = markset.NewSet(pos.size)
	return out
}

// recomputeAllDescriptors recomputes env4/env4d for every on-board point
// from scratch. Used by NewPosition and by the debug consistency check
// (spec.md §4.1, §7).
func (pos *Position) recomputeAllDescriptors() {
	for _, p := range pos.allPoints {
		pos.env4[p] = pos.computeEnv4(p)
		pos.env4d[p] = pos.computeEnv4d(p)
	}
}

func (pos *Position) computeEnv4(p Point) uint8 {
	var env uint8
	for k, d := range pos.dirs4 {
		code := uint8(pos.Colors[p+d])
		env |= (code & 1) << uint(k)
		env |= ((code >> 1) & 1) << uint(k+4)
	}
	return env
}

func (pos *Position) computeEnv4d(p Point) uint8 {
	var env uint8
	for k, d := range pos.dirs4d {
		code := uint8(pos.Colors[p+d])
		env |= (code & 1) << uint(k)
		env |= ((code >> 1) & 1) << uint(k+4)
	}
	return env
}

// setNeighborCode overwrites the 2-bit descriptor for index k (0..3) of
// the 8-bit env byte at q to code, the only part of an incremental update
// that touches q.
func setNeighborCode(env *uint8, k int, code uint8) {
	lowMask := uint8(1) << uint(k)
	highMask := uint8(1) << uint(k+4)
	*env &^= lowMask | highMask
	*env |= (code & 1) << uint(k)
	*env |= ((code >> 1) & 1) << uint(k+4)
}

// updateNeighborDescriptors pushes the fact that point p now holds `code`
// to the eight neighbor descriptors that include p, per spec.md §4.1: each
// direction index k has an opposite index (k+2)%4 from the neighbor's own
// point of view.
func (pos *Position) updateNeighborDescriptors(p Point, code uint8) {
	for k, d := range pos.dirs4 {
		q := p + d
		setNeighborCode(&pos.env4[q], (k+2)%4, code)
	}
	for k, d := range pos.dirs4d {
		q := p + d
		setNeighborCode(&pos.env4d[q], (k+2)%4, code)
	}
}

func (pos *Position) placeStone(p Point, color Stone) {
	pos.Colors[p] = color
	pos.updateNeighborDescriptors(p, uint8(color))
}

func (pos *Position) removeStone(p Point) {
	pos.Colors[p] = Empty
	pos.updateNeighborDescriptors(p, uint8(Empty))
}

// swapColors relabels every on-board point so the side to move is always
// "Ours" (spec.md §3): Theirs<->Ours toggle, Empty/Off are unaffected.
// Because the two codes differ only in their low bit, and only when the
// descriptor's high bit (at k+4) is clear, the incremental update is a
// single XOR per point: flip the low nibble wherever the high nibble bit
// is 0.
func (pos *Position) swapColors() {
	for _, p := range pos.allPoints {
		c := pos.Colors[p]
		if c == Ours {
			pos.Colors[p] = Theirs
		} else if c == Theirs {
			pos.Colors[p] = Ours
		}
		mask := ^(pos.env4[p] >> 4) & 0x0F
		pos.env4[p] ^= mask
		maskd := ^(pos.env4d[p] >> 4) & 0x0F
		pos.env4d[p] ^= maskd
	}
	pos.CapOurs, pos.CapTheirs = pos.CapTheirs, pos.CapOurs
}

func (pos *Position) pushLastMove(p Point) {
	pos.Last[2] = pos.Last[1]
	pos.Last[1] = pos.Last[0]
	pos.Last[0] = p
}

// block computes the maximal same-color connected set through orthogonal
// adjacency from seed, together with its liberties, stopping early once
// libBound distinct liberties have been found (spec.md §3 "Block"). The
// returned complete flag is false when the bound cut the search short, in
// which case the stone count is not meaningful (only the >=libBound fact
// about liberties is).
func (pos *Position) block(seed Point, libBound int) (stones, libs []Point, complete bool) {
	pos.visitedSet.Enter()
	defer pos.visitedSet.Leave()
	pos.libSet.Enter()
	defer pos.libSet.Leave()

	color := pos.Colors[seed]
	pos.visitedSet.Clear()
	pos.libSet.Clear()
	pos.visitedSet.Mark(int(seed))
	queue := []Point{seed}
	stones = append(stones, seed)

	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		for _, n := range pos.Neighbors4(p) {
			switch pos.Colors[n] {
			case color:
				if !pos.visitedSet.IsMarked(int(n)) {
					pos.visitedSet.Mark(int(n))
					stones = append(stones, n)
					queue = append(queue, n)
				}
			case Empty:
				if !pos.libSet.IsMarked(int(n)) {
					pos.libSet.Mark(int(n))
					libs = append(libs, n)
					if len(libs) >= libBound {
						return stones, libs, false
					}
				}
			}
		}
	}
	return stones, libs, true
}

// Block is the exported, always-complete form of block(), used by
// heuristics that need the exact stone/liberty sets (spec.md §4.4).
func (pos *Position) Block(seed Point) (stones, libs []Point) {
	stones, libs, _ = pos.block(seed, pos.size+1)
	return
}

// BlockBounded is the exported, liberty-bounded form of block(), used by
// fix_atari (spec.md §4.4): "computes the block at p with liberty bound
// 3". complete is false when the bound cut the search short, in which
// case stones is not meaningful, only the >=libBound fact about libs.
func (pos *Position) BlockBounded(seed Point, libBound int) (stones, libs []Point, complete bool) {
	return pos.block(seed, libBound)
}

// Play places a stone at p for the side to move, applying capture and ko
// semantics, then swaps labels to the opponent (spec.md §4.1). p must be
// on-board (not PassMove/ResignMove).
func (pos *Position) Play(p Point) error {
	if pos.Ko != NoPoint && p == pos.Ko {
		return ErrRetakesKo
	}
	if pos.Colors[p] != Empty {
		return ErrOccupied
	}

	prevKo := pos.Ko
	prevLast := pos.Last
	prevMoveNum := pos.MoveNum
	prevCapOurs, prevCapTheirs := pos.CapOurs, pos.CapTheirs

	isEnemyEye := pos.isEyeishFor(p, Theirs)

	pos.placeStone(p, Ours)

	totalCaptured := 0
	var singleCapturedPoint Point
	for _, n := range pos.Neighbors4(p) {
		if pos.Colors[n] != Theirs {
			continue
		}
		stones, libs, complete := pos.block(n, 1)
		if !complete {
			continue // found a liberty quickly: this block survives
		}
		if len(libs) == 0 {
			for _, s := range stones {
				pos.removeStone(s)
			}
			totalCaptured += len(stones)
			if len(stones) == 1 {
				singleCapturedPoint = stones[0]
			}
		}
	}
	pos.CapOurs += totalCaptured

	if totalCaptured == 0 {
		_, libs, complete := pos.block(p, 1)
		if complete && len(libs) == 0 {
			// suicide: undo placement entirely
			pos.removeStone(p)
			pos.Ko = prevKo
			pos.Last = prevLast
			pos.MoveNum = prevMoveNum
			pos.CapOurs, pos.CapTheirs = prevCapOurs, prevCapTheirs
			return ErrSuicide
		}
	}

	if totalCaptured == 1 && isEnemyEye {
		pos.Ko = singleCapturedPoint
	} else {
		pos.Ko = NoPoint
	}

	pos.undo = undoInfo{
		valid:         true,
		wasPass:       false,
		played:        p,
		prevKo:        prevKo,
		prevLast:      prevLast,
		prevMoveNum:   prevMoveNum,
		prevCapOurs:   prevCapOurs,
		prevCapTheirs: prevCapTheirs,
		capturedPoint: singleCapturedPoint,
		multiCapture:  totalCaptured > 1,
	}

	pos.pushLastMove(p)
	pos.MoveNum++
	pos.swapColors()
	pos.assertDescriptorsConsistent()
	return nil
}

// Pass advances the move without placing a stone, clearing ko.
func (pos *Position) Pass() {
	pos.undo = undoInfo{
		valid:         true,
		wasPass:       true,
		prevKo:        pos.Ko,
		prevLast:      pos.Last,
		prevMoveNum:   pos.MoveNum,
		prevCapOurs:   pos.CapOurs,
		prevCapTheirs: pos.CapTheirs,
	}
	pos.Ko = NoPoint
	pos.pushLastMove(PassMove)
	pos.MoveNum++
	pos.swapColors()
	pos.assertDescriptorsConsistent()
}

// Undo reverses the most recent Play or Pass call. It only supports
// undoing that single most recent move, and only if it captured at most
// one stone (spec.md §4.1, §9); ErrUndoNotAvailable is returned otherwise.
func (pos *Position) Undo() error {
	u := pos.undo
	if !u.valid {
		return ErrUndoNotAvailable
	}
	if u.multiCapture {
		return ErrUndoNotAvailable
	}

	pos.swapColors()
	pos.MoveNum = u.prevMoveNum
	pos.Last = u.prevLast
	pos.Ko = u.prevKo
	pos.CapOurs, pos.CapTheirs = u.prevCapOurs, u.prevCapTheirs

	if !u.wasPass {
		pos.removeStone(u.played)
		if u.capturedPoint != NoPoint {
			pos.placeStone(u.capturedPoint, Theirs)
		}
	}

	pos.undo = undoInfo{}
	pos.assertDescriptorsConsistent()
	return nil
}
