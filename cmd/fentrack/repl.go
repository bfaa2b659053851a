// repl.go - Interactive position loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/config"
	"github.com/lgbarn/fentrack-go/internal/engine"
	"github.com/lgbarn/fentrack-go/internal/output"
	"github.com/lgbarn/fentrack-go/internal/session"
)

const helpText = `Enter a move (e.g. e2e4) or a command:
  fen            enter a new position
  board          show the current position
  moves <square> list destinations of the piece on a square
  check <move>   report whether a move passes the legality check
  strict on|off  check moves before applying them
  undo           take back the last move
  help           show this help
  exit           quit
`

// repl is one interactive session over a line-oriented reader.
type repl struct {
	in     *bufio.Scanner
	out    io.Writer
	log    zerolog.Logger
	prompt string
	writer output.PositionWriter
	sess   *session.Session
	strict bool
}

// runREPL reads commands from in until "exit" or end of input. Bad input is
// reported and the loop continues.
func runREPL(in io.Reader, out io.Writer, cfg *config.Config, log zerolog.Logger) error {
	sess, err := session.New("repl", cfg.StartFEN)
	if err != nil {
		return err
	}
	r := &repl{
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
		prompt: cfg.Prompt,
		writer: output.NewPositionWriter(out, cfg.JSONOutput),
		sess:   sess,
		strict: cfg.Replay.Strict,
	}

	if cfg.StartFEN != "" {
		fmt.Fprintln(out, "Current position:")
		r.show()
	} else if !r.readPosition() {
		return r.goodbye()
	}

	fmt.Fprint(out, helpText)
	for {
		line, ok := r.readLine()
		if !ok {
			return r.goodbye()
		}
		if line == "" {
			continue
		}
		if !r.dispatch(line) {
			return r.goodbye()
		}
	}
}

// dispatch handles one input line and reports whether the loop continues.
func (r *repl) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "exit", "quit":
		return false
	case "fen":
		return r.readPosition()
	case "board":
		r.show()
	case "help":
		fmt.Fprint(r.out, helpText)
	case "moves":
		r.listMoves(args)
	case "check":
		r.checkMove(args)
	case "strict":
		r.setStrict(args)
	case "undo":
		if err := r.sess.Undo(); err != nil {
			fmt.Fprintf(r.out, "Cannot undo: %v\n", err)
			return true
		}
		r.show()
	default:
		r.makeMove(line)
	}
	return true
}

// readPosition prompts until a valid FEN is entered. It returns false on
// "exit" or end of input.
func (r *repl) readPosition() bool {
	for {
		fmt.Fprintln(r.out, "Enter FEN position (or 'exit' to quit):")
		line, ok := r.readLine()
		if !ok || strings.EqualFold(line, "exit") {
			return false
		}
		if err := r.sess.Load(line); err != nil {
			r.log.Debug().Err(err).Str("fen", line).Msg("rejected FEN")
			fmt.Fprintf(r.out, "Invalid FEN! Please try again. (%v)\n", err)
			continue
		}
		fmt.Fprintln(r.out, "Current position:")
		r.show()
		return true
	}
}

func (r *repl) makeMove(text string) {
	if len(text) != chess.MoveTextLen {
		fmt.Fprintln(r.out, "Invalid move format! Use format like 'e2e4'")
		return
	}
	if err := r.sess.Apply(text, r.strict); err != nil {
		r.log.Debug().Err(err).Str("move", text).Bool("strict", r.strict).Msg("move rejected")
		fmt.Fprintf(r.out, "Error making move: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, "Made move! New position:")
	r.show()
}

func (r *repl) listMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: moves <square>")
		return
	}
	squares, err := r.sess.Destinations(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	if len(squares) == 0 {
		fmt.Fprintf(r.out, "%s: no moves\n", args[0])
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", args[0], strings.Join(engine.SquareNames(squares), " "))
}

func (r *repl) checkMove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: check <move>")
		return
	}
	if err := r.sess.Check(args[0]); err != nil {
		fmt.Fprintf(r.out, "%s: illegal (%v)\n", args[0], err)
		return
	}
	fmt.Fprintf(r.out, "%s: legal\n", args[0])
}

func (r *repl) setStrict(args []string) {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "on":
			r.strict = true
		case "off":
			r.strict = false
		default:
			fmt.Fprintln(r.out, "Usage: strict on|off")
			return
		}
	}
	state := "off"
	if r.strict {
		state = "on"
	}
	fmt.Fprintf(r.out, "Strict mode %s\n", state)
}

// show prints the current position with the configured writer.
func (r *repl) show() {
	if err := r.writer.WritePosition(r.sess.Position()); err != nil {
		r.log.Error().Err(err).Msg("write position")
	}
}

// readLine prints the prompt and returns the next trimmed input line.
func (r *repl) readLine() (string, bool) {
	fmt.Fprint(r.out, r.prompt)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *repl) goodbye() error {
	fmt.Fprintln(r.out, "\nGoodbye!")
	return r.in.Err()
}
