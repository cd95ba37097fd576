// Command migo runs the engine either as a GTP front end over
// stdin/stdout, or in a deterministic self-play benchmark mode (spec.md
// §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopherboard/migo/internal/board"
	"github.com/gopherboard/migo/internal/gtp"
	"github.com/gopherboard/migo/internal/pattern3"
	"github.com/gopherboard/migo/internal/playout"
	"github.com/gopherboard/migo/internal/rng"
)

func main() {
	seed := flag.Int64("seed", 1, "PRNG seed (>0 deterministic, 0 = wall-clock)")
	size := flag.Int("size", board.DefaultN, "board side N")
	komi := flag.Float64("komi", board.DefaultKomi, "komi")
	probPath := flag.String("prob", "patterns.prob", "large pattern probability file")
	spatPath := flag.String("spat", "patterns.spat", "large pattern spatial dictionary file")
	bench := flag.Int("bench", 0, "if > 0, play this many moves per side in a self-play benchmark instead of starting GTP")
	benchGames := flag.Int("games", 1, "number of benchmark games to play")
	mc := flag.Bool("mc", false, "run the fixed-seed mcplayout mean benchmark instead of self-play (spec.md §8)")
	mcPlayouts := flag.Int("mc-playouts", 2000, "number of mcplayout rollouts to average in -mc mode")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *mc {
		runMCBenchmark(*size, *komi, *seed, *mcPlayouts)
		return
	}

	if *bench > 0 {
		runBenchmark(*size, *komi, *seed, *probPath, *spatPath, *bench, *benchGames)
		return
	}

	engine := gtp.NewEngine(*size, *seed, *probPath, *spatPath)
	engine.SetKomi(*komi)
	if err := gtp.Run(engine, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("gtp session ended with an error")
		os.Exit(1)
	}
}

// runMCBenchmark runs the raw biased rollout (not MCTS) playouts times from
// the empty position and reports the mean score, the literal benchmark
// mode named in spec.md §8: "the benchmark mode's 2,000-playout mean is
// deterministic". Unlike runBenchmark's self-play games, this never calls
// into internal/mcts; it exercises internal/playout.Rollout directly.
func runMCBenchmark(size int, komi float64, seed int64, playouts int) {
	pos := board.NewPosition(size)
	pos.Komi = komi
	m3 := pattern3.New()
	src := rng.New(seed)

	mean := playout.BenchmarkMean(pos, m3, src, playouts)
	fmt.Printf("mcplayout mean over %d playouts (seed %d): %.6f\n", playouts, seed, mean)
}

// runBenchmark plays benchGames self-play games of bench moves per side
// each, reporting the final board, adapted from the teacher's
// benchmark.go into a flag rather than a second main() (its original
// layout shipped two func main()s in one package, which cannot compile).
func runBenchmark(size int, komi float64, seed int64, probPath, spatPath string, moveCount, gameCount int) {
	for game := 0; game < gameCount; game++ {
		engine := gtp.NewEngine(size, seed, probPath, spatPath)
		engine.SetKomi(komi)
		color := gtp.Black
		for i := 0; i < 2*moveCount; i++ {
			result := engine.GenMove(color)
			if result.Resign {
				log.Info().Int("game", game).Int("move", i).Msg("resign")
				break
			}
			color = color.Opponent()
		}
		fmt.Println(boardString(engine))
	}
}

func boardString(engine *gtp.Engine) string {
	n := engine.BoardSize()
	buf := make([]byte, 0, n*(n+1))
	for row := n; row >= 1; row-- {
		for col := 1; col <= n; col++ {
			c, occupied := engine.CellColor(col, row)
			switch {
			case !occupied:
				buf = append(buf, '.')
			case c == gtp.Black:
				buf = append(buf, '@')
			default:
				buf = append(buf, 'O')
			}
		}
		if row > 1 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
