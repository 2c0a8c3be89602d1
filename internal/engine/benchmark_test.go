package engine

import (
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":  "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":  "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"Castling": "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

// BenchmarkCanMove_AllSquares asks every piece about every square.
func BenchmarkCanMove_AllSquares(b *testing.B) {
	e := New()
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				b.Fatal(err)
			}
			placements := board.Placements()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for _, pl := range placements {
					for row := 1; row <= chess.StandardSize; row++ {
						for col := 1; col <= chess.StandardSize; col++ {
							e.CanMove(board, pl.Piece, pl.Square, chess.At(row, col))
						}
					}
				}
			}
		})
	}
}

func BenchmarkCanMove_LongSlide(b *testing.B) {
	board := chess.NewBoard(64, 64)
	queen := chess.NewPiece(chess.WhiteQueen)
	board.PutPieceAt(queen, chess.At(1, 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CanMove(board, queen, chess.At(1, 1), chess.At(64, 64))
	}
}
