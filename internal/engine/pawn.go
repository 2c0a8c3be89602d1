package engine

import "github.com/lgbarn/movecheck-go/internal/chess"

// canPawnMove checks single steps, first-move double steps and diagonal
// captures. White advances toward higher rows, Black toward lower rows.
func canPawnMove(board *chess.Board, pawn *chess.Piece, from, to chess.Coordinate) bool {
	// A pawn on the first or last row is already promoted or misplaced.
	if from.Row == 1 || from.Row == board.Rows() {
		return false
	}

	direction := pawn.Colour().Direction()
	rowDelta := to.Row - from.Row
	colDelta := to.Column - from.Column

	switch {
	case rowDelta == direction && colDelta == 0:
		return !board.IsOccupied(to)

	case rowDelta == 2*direction && colDelta == 0:
		if pawn.HasMoved() {
			return false
		}
		middle := from.Add(direction, 0)
		return !board.IsOccupied(middle) && !board.IsOccupied(to)

	case rowDelta == direction && abs(colDelta) == 1:
		target := board.PieceAt(to)
		return target != nil && target.Colour() != pawn.Colour()
	}

	return false
}
