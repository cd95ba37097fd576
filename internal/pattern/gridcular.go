package pattern

// The large-pattern dictionary keys on a neighborhood ordered by
// increasing "gridcular" distance (spec.md §4.3, §GLOSSARY): a metric
// that produces the roughly-octagonal neighborhoods used in
// Stern/Herbrich/Graepel-style move-prediction patterns,
//
//	d(dx,dy) = |dx| + |dy| + max(|dx|,|dy|)
//
// Points are grouped into 12 nested tiers of increasing radius; tier s
// includes every point up through the s-th distinct distance value, up
// to a hard cap of 141 points total (spec.md §4.3).

const maxNeighborhoodPoints = 141
const numSizes = 12

type disp struct{ dx, dy int }

var (
	disp1d       []disp      // displacements in increasing-distance order
	sizeBoundary [numSizes + 1]int // sizeBoundary[s] = count of points in tiers 1..s
	dispIndex    map[disp]int      // displacement -> index in disp1d
)

func gridcularDist(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	m := dx
	if dy > m {
		m = dy
	}
	return dx + dy + m
}

func init() {
	const radius = 10
	type cand struct {
		d     int
		dx,dy int
	}
	var cands []cand
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			cands = append(cands, cand{gridcularDist(dx, dy), dx, dy})
		}
	}
	// Sort by distance, then by a fixed canonical tie-break so the
	// ordering is deterministic across runs.
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0; j-- {
			a, b := cands[j-1], cands[j]
			if a.d > b.d || (a.d == b.d && (a.dx > b.dx || (a.dx == b.dx && a.dy > b.dy))) {
				cands[j-1], cands[j] = cands[j], cands[j-1]
			} else {
				break
			}
		}
	}

	dispIndex = make(map[disp]int, maxNeighborhoodPoints)
	tier := 0
	lastDist := -1
	for _, c := range cands {
		if len(disp1d) >= maxNeighborhoodPoints {
			break
		}
		if c.d != lastDist {
			if tier > 0 {
				sizeBoundary[tier] = len(disp1d)
			}
			tier++
			lastDist = c.d
			if tier > numSizes {
				break
			}
		}
		d := disp{c.dx, c.dy}
		dispIndex[d] = len(disp1d)
		disp1d = append(disp1d, d)
	}
	for s := tier; s <= numSizes; s++ {
		sizeBoundary[s] = len(disp1d)
	}
}

// symmetry transforms on the (dx,dy) plane, the dihedral group of order 8.
type xform func(dx, dy int) (int, int)

func xIdentity(dx, dy int) (int, int) { return dx, dy }
func xRot90(dx, dy int) (int, int)    { return -dy, dx }
func xRot180(dx, dy int) (int, int)   { return -dx, -dy }
func xRot270(dx, dy int) (int, int)   { return dy, -dx }
func xMirror(dx, dy int) (int, int)   { return -dx, dy }

func xCompose(f, g xform) xform {
	return func(dx, dy int) (int, int) {
		dx, dy = g(dx, dy)
		return f(dx, dy)
	}
}

var gridSymmetries = []xform{
	xIdentity, xRot90, xRot180, xRot270,
	xMirror, xCompose(xMirror, xRot90), xCompose(xMirror, xRot180), xCompose(xMirror, xRot270),
}

// permutationFor returns, for symmetry sym, an array perm where
// perm[i] is the disp1d index that point i maps to under sym (or -1 if
// it maps outside the tracked neighborhood, which cannot happen within
// disp1d's own length since gridcular distance is symmetry-invariant).
func permutationFor(sym xform) []int {
	perm := make([]int, len(disp1d))
	for i, d := range disp1d {
		ndx, ndy := sym(d.dx, d.dy)
		if j, ok := dispIndex[disp{ndx, ndy}]; ok {
			perm[i] = j
		} else {
			perm[i] = -1
		}
	}
	return perm
}
