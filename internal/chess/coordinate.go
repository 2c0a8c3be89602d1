package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Coordinate is a (row, column) board position. Rows and columns are 1-based
// on a board, but any value is representable; range is only checked where a
// coordinate is used as a destination.
type Coordinate struct {
	Row    int
	Column int
}

// At returns the coordinate for row and column.
func At(row, column int) Coordinate {
	return Coordinate{Row: row, Column: column}
}

// Add returns c offset by dRow rows and dCol columns.
func (c Coordinate) Add(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Column: c.Column + dCol}
}

// String returns "(row, column)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Column)
}

// ParseCoordinate parses "row,column", optionally wrapped in parentheses.
func ParseCoordinate(s string) (Coordinate, error) {
	text := strings.TrimSpace(s)
	text = strings.TrimPrefix(text, "(")
	text = strings.TrimSuffix(text, ")")

	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoordinate)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%q: bad row: %w", s, errors.ErrInvalidCoordinate)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%q: bad column: %w", s, errors.ErrInvalidCoordinate)
	}
	return At(row, col), nil
}
