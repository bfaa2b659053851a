package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/engine"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats (text, JSON).
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(pos *chess.Position) error
}

// BoardWriter writes positions as a text board followed by the FEN.
type BoardWriter struct {
	w io.Writer
}

// NewBoardWriter creates a new text board writer.
func NewBoardWriter(w io.Writer) *BoardWriter {
	return &BoardWriter{w: w}
}

// WritePosition writes the board and a "FEN: ..." line.
func (bw *BoardWriter) WritePosition(pos *chess.Position) error {
	if err := WriteBoard(bw.w, pos); err != nil {
		return err
	}
	_, err := fmt.Fprintf(bw.w, "FEN: %s\n", engine.PositionToFEN(pos))
	return err
}

// JSONWriter writes positions as indented JSON views.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition writes the JSON view of the position.
func (jw *JSONWriter) WritePosition(pos *chess.Position) error {
	return WritePositionJSON(jw.w, pos)
}

// NewPositionWriter returns a JSONWriter when asJSON is set, otherwise a
// BoardWriter.
func NewPositionWriter(w io.Writer, asJSON bool) PositionWriter {
	if asJSON {
		return NewJSONWriter(w)
	}
	return NewBoardWriter(w)
}
