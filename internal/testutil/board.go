package testutil

import (
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
)

// NewBoard returns an 8x8 board holding the given placements, written as
// "DESCRIPTOR@row,column" (e.g. "WHITEKING@1,5", "bp@7,4").
func NewBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	return NewSizedBoard(t, chess.StandardSize, chess.StandardSize, placements...)
}

// NewSizedBoard is NewBoard for a rows x columns board.
func NewSizedBoard(t *testing.T, rows, columns int, placements ...string) *chess.Board {
	t.Helper()
	pls := make([]chess.Placement, 0, len(placements))
	for _, s := range placements {
		pl, err := chess.ParsePlacement(s)
		if err != nil {
			t.Fatalf("bad test placement %q: %v", s, err)
		}
		pls = append(pls, pl)
	}
	return chess.NewBoardWith(rows, columns, pls)
}

// MustPieceAt returns the piece at (row, column) or stops the test.
func MustPieceAt(t *testing.T, board *chess.Board, row, column int) *chess.Piece {
	t.Helper()
	p := board.PieceAt(chess.At(row, column))
	if p == nil {
		t.Fatalf("no piece at %v", chess.At(row, column))
	}
	return p
}

// MustCoordinate parses "row,column" or stops the test.
func MustCoordinate(t *testing.T, s string) chess.Coordinate {
	t.Helper()
	c, err := chess.ParseCoordinate(s)
	if err != nil {
		t.Fatalf("bad test coordinate %q: %v", s, err)
	}
	return c
}
