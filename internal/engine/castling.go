package engine

import "github.com/lgbarn/movecheck-go/internal/chess"

// canKingMove applies castling (when enabled) and then the configured
// single-step rule.
func (e *Engine) canKingMove(board *chess.Board, king *chess.Piece, from, to chess.Coordinate) bool {
	if e.castling && isCastlingAttempt(from, to) {
		return canCastle(board, king, from, to)
	}

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Column - from.Column)
	if e.kingRule == KingEitherAxis {
		return colDiff == 1 || rowDiff == 1
	}
	return max(rowDiff, colDiff) == 1
}

// isCastlingAttempt reports whether a king move has castling geometry:
// two columns sideways along its own row.
func isCastlingAttempt(from, to chess.Coordinate) bool {
	return from.Row == to.Row && abs(to.Column-from.Column) == 2
}

// backRow returns the row a colour's pieces start on.
func backRow(board *chess.Board, colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return board.Rows()
}

// kingHomeColumn returns the column a king starts on: column 5 on a standard
// board, the first column right of centre on other widths.
func kingHomeColumn(board *chess.Board) int {
	return board.Columns()/2 + 1
}

// castlingRookSquare returns the corner square of the rook a king castles
// with when moving from from toward to.
func castlingRookSquare(board *chess.Board, from, to chess.Coordinate) chess.Coordinate {
	if to.Column > from.Column {
		return chess.At(from.Row, board.Columns())
	}
	return chess.At(from.Row, 1)
}

// canCastle checks the castling preconditions that do not involve attacks:
// the king is unmoved on its home square, an unmoved rook of the same colour
// stands on the corner in the direction of travel, and every square between
// them is empty. Whether the king is or passes through check is not tested.
func canCastle(board *chess.Board, king *chess.Piece, from, to chess.Coordinate) bool {
	if king.HasMoved() || from != chess.At(backRow(board, king.Colour()), kingHomeColumn(board)) {
		return false
	}

	rookSquare := castlingRookSquare(board, from, to)
	rook := board.PieceAt(rookSquare)
	if rook == nil || rook.Kind() != chess.Rook || rook.Colour() != king.Colour() || rook.HasMoved() {
		return false
	}

	return isPathClear(board, from, rookSquare)
}
