// Package engine parses and emits FEN, applies moves to positions and
// generates pseudo-legal destination squares.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// fenError builds a FENError wrapping ErrMalformedFEN.
func fenError(field, value, msg string) error {
	return &errors.FENError{Err: errors.ErrMalformedFEN, Field: field, Value: value, Msg: msg}
}

// NewPositionFromFEN creates a position from a FEN string.
// No position is returned unless every field is well formed.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, fenError("", fen, fmt.Sprintf("expected %d fields, got %d", fenFields, len(parts)))
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("placement", placement, fmt.Sprintf("expected %d ranks, got %d", chess.BoardSize, len(ranks)))
	}

	for rank, text := range ranks {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFEN(c)
			if !ok {
				return fenError("placement", text, fmt.Sprintf("invalid piece character %q", c))
			}
			if file >= chess.BoardSize {
				return fenError("placement", text, fmt.Sprintf("rank describes more than %d files", chess.BoardSize))
			}
			pos.Board.Set(chess.Sq(rank, file), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError("placement", text, fmt.Sprintf("rank describes %d files, want %d", file, chess.BoardSize))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, side string) error {
	switch side {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fenError("side to move", side, "")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, castling string) error {
	pos.Castling = chess.CastlingRights{}
	if castling == "-" {
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.Castling.WhiteKingside = true
		case 'Q':
			pos.Castling.WhiteQueenside = true
		case 'k':
			pos.Castling.BlackKingside = true
		case 'q':
			pos.Castling.BlackQueenside = true
		default:
			return fenError("castling", castling, fmt.Sprintf("invalid castling character %q", c))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, ep string) error {
	pos.ClearEnPassant()
	if ep == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(ep)
	if err != nil {
		return fenError("en passant", ep, "")
	}
	pos.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Both are parsed at the width of uint so any serialized value reads back.
// The fullmove number starts at 1.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 0)
	if err != nil {
		return fenError("halfmove clock", halfmove, "")
	}
	fm, err := strconv.ParseUint(fullmove, 10, 0)
	if err != nil {
		return fenError("fullmove number", fullmove, "")
	}
	if fm == 0 {
		return fenError("fullmove number", fullmove, "must be at least 1")
	}
	pos.HalfmoveClock = uint(hm)
	pos.MoveNumber = uint(fm)
	return nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board[rank][file]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FEN())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	sb.WriteString(CastlingString(pos.Castling))
}

// CastlingString renders castling rights in K, Q, k, q order, or "-" when none are held.
func CastlingString(c chess.CastlingRights) string {
	if !c.Any() {
		return "-"
	}
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	return sb.String()
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	pos, _ := NewPositionFromFEN(InitialFEN)
	return pos
}
