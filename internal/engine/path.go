package engine

import "github.com/lgbarn/movecheck-go/internal/chess"

// canKnightMove: {rowDiff, colDiff} == {1, 2}. Intervening squares are irrelevant.
func canKnightMove(from, to chess.Coordinate) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Column - from.Column)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

// canBishopMove checks for a diagonal with nothing strictly between.
func canBishopMove(board *chess.Board, from, to chess.Coordinate) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Column - from.Column)
	if rowDiff == 0 || rowDiff != colDiff {
		return false
	}
	return isPathClear(board, from, to)
}

// canRookMove checks for a single rank or file with nothing strictly between.
func canRookMove(board *chess.Board, from, to chess.Coordinate) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Column - from.Column)
	if (rowDiff == 0) == (colDiff == 0) {
		return false
	}
	return isPathClear(board, from, to)
}

func canQueenMove(board *chess.Board, from, to chess.Coordinate) bool {
	return canBishopMove(board, from, to) || canRookMove(board, from, to)
}

// isAligned reports whether from and to share a rank, file or diagonal.
func isAligned(from, to chess.Coordinate) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Column - from.Column)
	return rowDiff == 0 || colDiff == 0 || rowDiff == colDiff
}

// squaresBetween returns the squares strictly between from and to, walking
// from from. It returns nil when the two are not aligned or are adjacent.
func squaresBetween(from, to chess.Coordinate) []chess.Coordinate {
	if from == to || !isAligned(from, to) {
		return nil
	}
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Column - from.Column)

	var squares []chess.Coordinate
	for c := from.Add(rowDir, colDir); c != to; c = c.Add(rowDir, colDir) {
		squares = append(squares, c)
	}
	return squares
}

// isPathClear reports whether every square strictly between from and to is
// empty. The colour of a blocker does not matter. Unaligned squares have no
// path and are never clear.
func isPathClear(board *chess.Board, from, to chess.Coordinate) bool {
	if !isAligned(from, to) {
		return false
	}
	for _, c := range squaresBetween(from, to) {
		if board.IsOccupied(c) {
			return false
		}
	}
	return true
}
