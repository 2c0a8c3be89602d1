package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Piece is a placed piece: a descriptor plus a has-moved latch.
// A piece does not know where it stands; the Board tracks location.
type Piece struct {
	descriptor Descriptor
	hasMoved   bool
}

// NewPiece creates an unmoved piece for the descriptor.
func NewPiece(d Descriptor) *Piece {
	return &Piece{descriptor: d}
}

// Descriptor returns the piece's identity.
func (p *Piece) Descriptor() Descriptor {
	return p.descriptor
}

// Colour returns the piece colour.
func (p *Piece) Colour() Colour {
	return p.descriptor.Colour()
}

// Kind returns the piece kind.
func (p *Piece) Kind() Kind {
	return p.descriptor.Kind()
}

// HasMoved reports whether the piece has left its starting square.
func (p *Piece) HasMoved() bool {
	return p.hasMoved
}

// SetHasMoved marks the piece as moved. The flag is never cleared.
func (p *Piece) SetHasMoved() {
	p.hasMoved = true
}

// String returns the descriptor name, with a '*' suffix once moved.
func (p *Piece) String() string {
	if p == nil {
		return "<none>"
	}
	if p.hasMoved {
		return p.descriptor.String() + "*"
	}
	return p.descriptor.String()
}

// Placement pairs a piece with the square it is placed on. A list of
// placements describes an arbitrary position for Board.Reset.
type Placement struct {
	Piece  *Piece
	Square Coordinate
}

// Place returns a placement of a fresh piece at (row, column).
func Place(d Descriptor, row, column int) Placement {
	return Placement{Piece: NewPiece(d), Square: At(row, column)}
}

// ParsePlacement parses "DESCRIPTOR@row,column", e.g. "WHITEKING@1,5" or "wk@1,5".
func ParsePlacement(s string) (Placement, error) {
	name, square, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: missing '@': %w", s, errors.ErrInvalidCoordinate)
	}
	d, err := ParseDescriptor(name)
	if err != nil {
		return Placement{}, errors.Wrapf(err, "placement %q", s)
	}
	c, err := ParseCoordinate(square)
	if err != nil {
		return Placement{}, errors.Wrapf(err, "placement %q", s)
	}
	return Placement{Piece: NewPiece(d), Square: c}, nil
}
