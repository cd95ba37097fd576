package gtp

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// request/response and the handler dispatch table generalize the
// teacher's gongo_gtp.go line-protocol driver (spec.md §6) from its
// Color/Vertex plumbing to internal/board's point encoding and
// internal/mcts-backed genmove.

type request struct {
	engine *Engine
	args   []string
}

type response struct {
	message string
	success bool
}

func success(message string) response { return response{message, true} }
func failure(message string) response { return response{message, false} }

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.message + "\n\n"
}

type handler func(request) response

var handlers = map[string]handler{
	"boardsize":      handleBoardsize,
	"clear_board":    handleClearBoard,
	"genmove":        handleGenmove,
	"known_command":  handleKnownCommand,
	"komi":           handleKomi,
	"list_commands":  handleListCommands,
	"name":           func(request) response { return success("migo") },
	"play":           handlePlay,
	"protocol_version": func(request) response { return success("2") },
	"quit":           func(request) response { return success("") },
	"showboard":      handleShowboard,
	"version":        func(request) response { return success("1.0") },
}

var wordPattern = regexp.MustCompile(`\S+`)

// parseCommand reads one non-blank, non-comment line and splits it into
// a command word and its arguments (spec.md §6).
func parseCommand(in *bufio.Reader) (cmd string, args []string, err error) {
	for {
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", nil, err
		}
		line = strings.TrimSpace(line)
		if line != "" && line[0] != '#' {
			words := wordPattern.FindAllString(line, -1)
			return words[0], words[1:], nil
		}
		if err != nil {
			return "", nil, err
		}
	}
}

// Run drives engine from GTP commands read from input, writing
// responses to out. It returns nil after "quit" or at end of input, or
// the read error that ended the loop.
func Run(engine *Engine, input io.Reader, out io.Writer) error {
	in := bufio.NewReader(input)
	for {
		cmd, args, err := parseCommand(in)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		h, ok := handlers[cmd]
		if !ok {
			fmt.Fprint(out, failure("unknown command"))
			continue
		}

		resp := h(request{engine: engine, args: args})
		fmt.Fprint(out, resp)
		log.Debug().Str("command", cmd).Bool("ok", resp.success).Msg("gtp command handled")

		if cmd == "quit" {
			return nil
		}
	}
}

func handleBoardsize(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	size, err := strconv.Atoi(req.args[0])
	if err != nil || !req.engine.SetBoardSize(size) {
		return failure("unacceptable size")
	}
	return success("")
}

func handleClearBoard(req request) response {
	req.engine.ClearBoard()
	return success("")
}

func handleKomi(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(req.args[0], 64)
	if err != nil {
		return failure("syntax error")
	}
	req.engine.SetKomi(komi)
	return success("")
}

func parseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return Black, true
	case "w", "white":
		return White, true
	default:
		return Black, false
	}
}

func handlePlay(req request) response {
	if len(req.args) != 2 {
		return failure("wrong number of arguments")
	}
	color, ok := parseColor(req.args[0])
	if !ok {
		return failure("syntax error")
	}
	col, row, isPass, ok := parseVertex(req.args[1], req.engine.BoardSize())
	if !ok {
		return failure("syntax error")
	}
	if err := req.engine.Play(color, col, row, isPass); err != nil {
		return failure("illegal move")
	}
	return success("")
}

func handleGenmove(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	color, ok := parseColor(req.args[0])
	if !ok {
		return failure("syntax error")
	}
	result := req.engine.GenMove(color)
	switch {
	case result.Resign:
		return success("resign")
	case result.Pass:
		return success("pass")
	default:
		return success(formatVertex(result.Col, result.Row))
	}
}

func handleShowboard(req request) response {
	n := req.engine.BoardSize()
	var b strings.Builder
	for row := n; row >= 1; row-- {
		for col := 1; col <= n; col++ {
			c, occupied := req.engine.CellColor(col, row)
			switch {
			case !occupied:
				b.WriteByte('.')
			case c == Black:
				b.WriteByte('@')
			default:
				b.WriteByte('O')
			}
		}
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	return success(b.String())
}

func handleKnownCommand(req request) response {
	if len(req.args) != 1 {
		return failure("wrong number of arguments")
	}
	_, ok := handlers[req.args[0]]
	return success(strconv.FormatBool(ok))
}

func handleListCommands(req request) response {
	if len(req.args) != 0 {
		return failure("wrong number of arguments")
	}
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return success(strings.Join(names, "\n"))
}
