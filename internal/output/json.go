package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/engine"
)

// PositionView is the JSON form of a position.
type PositionView struct {
	FEN           string   `json:"fen"`
	SideToMove    string   `json:"sideToMove"` // "white" or "black"
	Castling      string   `json:"castling"`
	EnPassant     string   `json:"enPassant,omitempty"`
	HalfmoveClock uint     `json:"halfmoveClock"`
	MoveNumber    uint     `json:"moveNumber"`
	Ranks         []string `json:"ranks"`
}

// NewPositionView builds the JSON view of a position.
func NewPositionView(pos *chess.Position) PositionView {
	view := PositionView{
		FEN:           engine.PositionToFEN(pos),
		SideToMove:    "white",
		Castling:      engine.CastlingString(pos.Castling),
		HalfmoveClock: pos.HalfmoveClock,
		MoveNumber:    pos.MoveNumber,
		Ranks:         RankStrings(pos),
	}
	if pos.ToMove == chess.Black {
		view.SideToMove = "black"
	}
	if target, ok := pos.EnPassantTarget(); ok {
		view.EnPassant = target.String()
	}
	return view
}

// WritePositionJSON writes the indented JSON view of a position.
func WritePositionJSON(w io.Writer, pos *chess.Position) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewPositionView(pos))
}
