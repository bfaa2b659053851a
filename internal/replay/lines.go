// Package replay applies move sequences to many positions in parallel.
//
// Input is line oriented. Each line holds a FEN, optionally followed by a
// "|" and space-separated coordinate moves:
//
//	rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 | e2e4 e7e5
//
// Blank lines and lines starting with "#" are skipped.
package replay

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/fentrack-go/internal/errors"
)

// movesSeparator divides the FEN from the move list.
const movesSeparator = "|"

// Line is one replay job read from input.
type Line struct {
	Num   int // 1-based line number in the input
	FEN   string
	Moves []string
}

// ParseLine splits a replay line into its FEN and moves. It does not
// validate either; that happens when the line is replayed.
func ParseLine(text string) (fen string, moves []string) {
	fenPart, movePart, _ := strings.Cut(text, movesSeparator)
	return strings.TrimSpace(fenPart), strings.Fields(movePart)
}

// ReadLines reads every replay line from r, skipping blanks and comments.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fen, moves := ParseLine(text)
		lines = append(lines, Line{Num: num, FEN: fen, Moves: moves})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read replay input at line %d", num+1)
	}
	return lines, nil
}
