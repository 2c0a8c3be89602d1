package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/testutil"
)

func TestSquaresBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to chess.Coordinate
		want     []chess.Coordinate
	}{
		{"up a file", chess.At(4, 4), chess.At(7, 4), []chess.Coordinate{chess.At(5, 4), chess.At(6, 4)}},
		{"down a file", chess.At(4, 4), chess.At(1, 4), []chess.Coordinate{chess.At(3, 4), chess.At(2, 4)}},
		{"right along a rank", chess.At(4, 4), chess.At(4, 7), []chess.Coordinate{chess.At(4, 5), chess.At(4, 6)}},
		{"left along a rank", chess.At(4, 4), chess.At(4, 1), []chess.Coordinate{chess.At(4, 3), chess.At(4, 2)}},
		{"up and right", chess.At(4, 4), chess.At(7, 7), []chess.Coordinate{chess.At(5, 5), chess.At(6, 6)}},
		{"up and left", chess.At(4, 4), chess.At(7, 1), []chess.Coordinate{chess.At(5, 3), chess.At(6, 2)}},
		{"down and right", chess.At(4, 4), chess.At(1, 7), []chess.Coordinate{chess.At(3, 5), chess.At(2, 6)}},
		{"down and left", chess.At(4, 4), chess.At(1, 1), []chess.Coordinate{chess.At(3, 3), chess.At(2, 2)}},
		{"adjacent", chess.At(4, 4), chess.At(5, 5), nil},
		{"same square", chess.At(4, 4), chess.At(4, 4), nil},
		{"knight jump", chess.At(4, 4), chess.At(6, 5), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, squaresBetween(tt.from, tt.to), tt.want)
		})
	}
}

func TestRookMoves(t *testing.T) {
	runMoveCases(t, New(), []moveCase{
		{"up", []string{"WHITEROOK@4,4"}, chess.At(4, 4), chess.At(7, 4), true},
		{"right", []string{"WHITEROOK@4,4"}, chess.At(4, 4), chess.At(4, 7), true},
		{"left", []string{"WHITEROOK@4,4"}, chess.At(4, 4), chess.At(4, 1), true},
		{"down", []string{"WHITEROOK@4,4"}, chess.At(4, 4), chess.At(1, 4), true},
		{"up blocked", []string{"WHITEROOK@4,4", "WHITEPAWN@6,4"}, chess.At(4, 4), chess.At(7, 4), false},
		{"right blocked", []string{"WHITEROOK@4,4", "WHITEPAWN@4,6"}, chess.At(4, 4), chess.At(4, 7), false},
		{"left blocked", []string{"WHITEROOK@4,4", "WHITEPAWN@4,2"}, chess.At(4, 4), chess.At(4, 1), false},
		{"down blocked", []string{"WHITEROOK@4,4", "WHITEPAWN@2,4"}, chess.At(4, 4), chess.At(1, 4), false},
		{"blocked by enemy", []string{"WHITEROOK@4,4", "BLACKPAWN@5,4"}, chess.At(4, 4), chess.At(7, 4), false},
		{"captures first enemy", []string{"WHITEROOK@4,4", "BLACKPAWN@7,4"}, chess.At(4, 4), chess.At(7, 4), true},
		{"diagonal", []string{"WHITEROOK@4,4"}, chess.At(4, 4), chess.At(6, 6), false},
		{"knight shape", []string{"WHITEROOK@4,4"}, chess.At(4, 4), chess.At(6, 5), false},
	})
}

func TestBishopMoves(t *testing.T) {
	runMoveCases(t, New(), []moveCase{
		{"up and right", []string{"WHITEBISHOP@4,4"}, chess.At(4, 4), chess.At(7, 7), true},
		{"up and left", []string{"WHITEBISHOP@4,4"}, chess.At(4, 4), chess.At(7, 1), true},
		{"down and right", []string{"WHITEBISHOP@4,4"}, chess.At(4, 4), chess.At(1, 7), true},
		{"down and left", []string{"WHITEBISHOP@4,4"}, chess.At(4, 4), chess.At(1, 1), true},
		{"up and right blocked", []string{"WHITEBISHOP@4,4", "WHITEPAWN@6,6"}, chess.At(4, 4), chess.At(7, 7), false},
		{"up and left blocked", []string{"WHITEBISHOP@4,4", "WHITEPAWN@6,2"}, chess.At(4, 4), chess.At(7, 1), false},
		{"down and right blocked", []string{"WHITEBISHOP@4,4", "WHITEPAWN@2,6"}, chess.At(4, 4), chess.At(1, 7), false},
		{"down and left blocked", []string{"WHITEBISHOP@4,4", "WHITEPAWN@2,2"}, chess.At(4, 4), chess.At(1, 1), false},
		{"blocked by enemy", []string{"BLACKBISHOP@4,4", "WHITEKNIGHT@5,5"}, chess.At(4, 4), chess.At(6, 6), false},
		{"captures enemy on destination", []string{"BLACKBISHOP@4,4", "WHITEKNIGHT@6,6"}, chess.At(4, 4), chess.At(6, 6), true},
		{"straight", []string{"WHITEBISHOP@4,4"}, chess.At(4, 4), chess.At(4, 6), false},
		{"off diagonal", []string{"WHITEBISHOP@4,4"}, chess.At(4, 4), chess.At(6, 7), false},
	})
}

func TestQueenMoves(t *testing.T) {
	runMoveCases(t, New(), []moveCase{
		{"file", []string{"BLACKQUEEN@5,5"}, chess.At(5, 5), chess.At(1, 5), true},
		{"rank", []string{"BLACKQUEEN@5,5"}, chess.At(5, 5), chess.At(5, 8), true},
		{"diagonal", []string{"BLACKQUEEN@5,5"}, chess.At(5, 5), chess.At(2, 2), true},
		{"file blocked", []string{"BLACKQUEEN@5,5", "WHITEPAWN@3,5"}, chess.At(5, 5), chess.At(1, 5), false},
		{"diagonal blocked", []string{"BLACKQUEEN@5,5", "BLACKPAWN@3,3"}, chess.At(5, 5), chess.At(2, 2), false},
		{"knight shape", []string{"BLACKQUEEN@5,5"}, chess.At(5, 5), chess.At(7, 6), false},
	})
}

func TestKnightMoves(t *testing.T) {
	runMoveCases(t, New(), []moveCase{
		{"up and right", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(5, 6), true},
		{"up and left", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(6, 3), true},
		{"down and left", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(3, 2), true},
		{"down and right", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(2, 5), true},
		{"straight", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(6, 4), false},
		{"diagonal", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(6, 6), false},
		{"long L", []string{"WHITEKNIGHT@4,4"}, chess.At(4, 4), chess.At(7, 5), false},
	})
}

func TestKnightIgnoresSurroundingOccupancy(t *testing.T) {
	ring := []string{"WHITEKNIGHT@4,4"}
	for row := 3; row <= 5; row++ {
		for col := 3; col <= 5; col++ {
			if row == 4 && col == 4 {
				continue
			}
			ring = append(ring, fmt.Sprintf("BLACKPAWN@%d,%d", row, col))
		}
	}
	board := testutil.NewBoard(t, ring...)
	knight := testutil.MustPieceAt(t, board, 4, 4)

	targets := []chess.Coordinate{
		chess.At(6, 5), chess.At(6, 3), chess.At(2, 5), chess.At(2, 3),
		chess.At(5, 6), chess.At(3, 6), chess.At(5, 2), chess.At(3, 2),
	}
	for _, to := range targets {
		if !CanMove(board, knight, chess.At(4, 4), to) {
			t.Errorf("surrounded knight (4,4) -> %v = false; want true", to)
		}
	}
}
