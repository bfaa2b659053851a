// Package output renders positions as text boards and JSON views.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/fentrack-go/internal/chess"
)

// fileLabels is printed above and below the board.
const fileLabels = "  a b c d e f g h"

// emptySquare marks an unoccupied square in the text board.
const emptySquare = '.'

// WriteBoard writes the position as an 8x8 text board, rank 8 at the top,
// with rank labels on both sides and file labels above and below:
//
//	  a b c d e f g h
//	8 r n b q k b n r 8
//	...
//	1 R N B Q K B N R 1
//	  a b c d e f g h
func WriteBoard(w io.Writer, pos *chess.Position) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fileLabels)
	bw.WriteByte('\n')
	for rank := 0; rank < chess.BoardSize; rank++ {
		label := byte(chess.RankBase + chess.BoardSize - 1 - rank)
		bw.WriteByte(label)
		bw.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			bw.WriteByte(squareChar(pos.At(chess.Sq(rank, file))))
			bw.WriteByte(' ')
		}
		bw.WriteByte(label)
		bw.WriteByte('\n')
	}
	bw.WriteString(fileLabels)
	bw.WriteByte('\n')
	return bw.Flush()
}

// RankStrings returns each rank as eight characters, rank 8 first.
func RankStrings(pos *chess.Position) []string {
	ranks := make([]string, chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		var row [chess.BoardSize]byte
		for file := 0; file < chess.BoardSize; file++ {
			row[file] = squareChar(pos.At(chess.Sq(rank, file)))
		}
		ranks[rank] = string(row[:])
	}
	return ranks
}

func squareChar(p chess.Piece) byte {
	if p.IsEmpty() {
		return emptySquare
	}
	return p.FEN()
}
