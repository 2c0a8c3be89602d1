package chess

import "sort"

// StandardSize is the number of rows and columns of a standard chess board.
const StandardSize = 8

// Board is a rectangular grid of rows x columns squares, stored sparsely as a
// mapping from coordinate to the piece occupying it. Absence means empty.
//
// A Board is not safe for concurrent mutation.
type Board struct {
	rows    int
	columns int
	squares map[Coordinate]*Piece
}

// NewBoard creates an empty board with the given extents.
func NewBoard(rows, columns int) *Board {
	return &Board{
		rows:    rows,
		columns: columns,
		squares: make(map[Coordinate]*Piece),
	}
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	return NewBoard(StandardSize, StandardSize)
}

// NewBoardWith creates a board and loads the placements into it.
func NewBoardWith(rows, columns int, placements []Placement) *Board {
	b := NewBoard(rows, columns)
	b.Reset(placements)
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.columns
}

// Contains reports whether c lies within the board's extents.
func (b *Board) Contains(c Coordinate) bool {
	return c.Row >= 1 && c.Row <= b.rows && c.Column >= 1 && c.Column <= b.columns
}

// PieceAt returns the piece at c, or nil if the square is empty.
func (b *Board) PieceAt(c Coordinate) *Piece {
	return b.squares[c]
}

// IsOccupied reports whether a piece stands at c.
func (b *Board) IsOccupied(c Coordinate) bool {
	return b.squares[c] != nil
}

// PutPieceAt places p at c and returns whatever was there before (or nil).
// A nil p empties the square. No legality checking is done.
func (b *Board) PutPieceAt(p *Piece, c Coordinate) *Piece {
	prev := b.squares[c]
	if p == nil {
		delete(b.squares, c)
	} else {
		b.squares[c] = p
	}
	return prev
}

// Reset clears the board and then places every placement in order. Later
// placements on the same square overwrite earlier ones.
func (b *Board) Reset(placements []Placement) {
	b.squares = make(map[Coordinate]*Piece, len(placements))
	for _, pl := range placements {
		b.PutPieceAt(pl.Piece, pl.Square)
	}
}

// Len returns the number of occupied squares.
func (b *Board) Len() int {
	return len(b.squares)
}

// Placements returns the occupied squares ordered by row, then column.
func (b *Board) Placements() []Placement {
	out := make([]Placement, 0, len(b.squares))
	for c, p := range b.squares {
		out = append(out, Placement{Piece: p, Square: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Square.Row != out[j].Square.Row {
			return out[i].Square.Row < out[j].Square.Row
		}
		return out[i].Square.Column < out[j].Square.Column
	})
	return out
}
