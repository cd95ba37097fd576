// Package pattern implements the large "gridcular" pattern dictionary
// (spec.md §4.3): a file-loaded table mapping a 64-bit Zobrist-style
// neighborhood signature to a move probability, used as an MCTS prior.
package pattern

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/rng"
)

// Dict is the loaded large-pattern dictionary. A Dict with no entries (as
// returned when either file is missing) answers every probability query
// with "no match", letting the engine run weaker rather than fail.
type Dict struct {
	zt    zobristTable
	table *table
	n     int // number of entries actually inserted
}

// charColor maps one character of a patterns.spat neighborhood string to
// the signature color code (spec.md §4.3): '.'=empty, '#'=off-board,
// 'O'=theirs, 'X'=ours.
func charColor(c byte) (uint64, bool) {
	switch c {
	case '.':
		return 0, true
	case '#':
		return 1, true
	case 'O':
		return 2, true
	case 'X':
		return 3, true
	default:
		return 0, false
	}
}

// Load reads the probability and spatial-pattern files and builds the
// dictionary. Missing files are non-fatal (spec.md §6): Load logs a
// warning and returns a Dict that never matches anything, advising the
// caller to lower EXPAND_VISITS toward 2.
func Load(probPath, spatPath string, src *rng.Source) (*Dict, error) {
	d := &Dict{
		zt:    newZobristTable(src),
		table: newTable(12),
	}

	probs, err := loadProbabilities(probPath)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.Warn().Str("file", probPath).Msg("large pattern probabilities missing; engine will run weaker, consider lowering EXPAND_VISITS toward 2")
			return d, nil
		}
		return nil, errors.Wrap(err, "loading patterns.prob")
	}

	f, err := os.Open(spatPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("file", spatPath).Msg("large pattern spatial dictionary missing; engine will run weaker, consider lowering EXPAND_VISITS toward 2")
			return d, nil
		}
		return nil, errors.Wrap(err, "opening patterns.spat")
	}
	defer f.Close()

	perms := make([][]int, len(gridSymmetries))
	for i, sym := range gridSymmetries {
		perms[i] = permutationFor(sym)
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		prob, ok := probs[id]
		if !ok {
			continue
		}
		spatStr := fields[2]
		d.insertAllSymmetries(spatStr, prob, perms)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading patterns.spat")
	}
	return d, nil
}

// loadProbabilities parses patterns.prob, consuming only `prob` and the
// trailing `(s:<id>)` id (spec.md §6).
func loadProbabilities(path string) (map[int]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[int]float64)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		prob, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			continue
		}
		last := fields[len(fields)-1]
		var id int
		if _, err := fmt.Sscanf(last, "(s:%d)", &id); err != nil {
			continue
		}
		out[id] = prob
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// insertAllSymmetries computes the signature of spatStr and each of its
// 7 further dihedral images, inserting them into the table under the
// same probability (spec.md §4.3: "inserted under each of 8 symmetries").
// An image that moves a point beyond the string's own length is skipped,
// so all 8 are inserted only when spatStr covers whole gridcular tiers.
func (d *Dict) insertAllSymmetries(spatStr string, prob float64, perms [][]int) {
	codes := make([]uint64, len(spatStr))
	ok := true
	for i := 0; i < len(spatStr); i++ {
		c, valid := charColor(spatStr[i])
		if !valid {
			ok = false
			break
		}
		codes[i] = c
	}
	if !ok {
		return
	}

	for _, perm := range perms {
		var sig uint64
		fits := true
		for i, c := range codes {
			j := perm[i]
			if j < 0 || j >= len(codes) {
				fits = false
				break
			}
			sig ^= d.zt[j][c]
		}
		if !fits {
			continue
		}
		d.table.insert(sig, prob)
		d.n++
	}
}

// Probability implements the spec's probability query (spec.md §4.3):
// walk s from 1 to 12, extending the running signature ring by ring,
// stopping early once two consecutive sizes fail to match. It returns
// the probability of the largest matched neighborhood and the matched
// size, or (-1, 0) if nothing matched.
func (d *Dict) Probability(pos *board.Position, p board.Point) (float64, int) {
	if d.table == nil {
		return -1, 0
	}
	col, row := pos.Coord(p)
	lb := newLargeBoard(pos)
	w := newSignatureWalker(lb, col, row, d.zt)

	bestProb := -1.0
	bestSize := 0
	misses := 0
	for s := 1; s <= numSizes; s++ {
		sig := w.extendTo(s)
		if prob, found := d.table.lookup(sig); found {
			bestProb = prob
			bestSize = s
			misses = 0
		} else {
			misses++
			if misses >= 2 {
				break
			}
		}
	}
	return bestProb, bestSize
}
