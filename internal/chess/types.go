// Package chess provides the board, coordinate and piece types the move
// legality engine operates over.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NoColour is the colour of an invalid descriptor.
const NoColour Colour = -1

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Direction returns +1 for White, -1 for Black (the row a pawn advances along)
// and 0 for NoColour.
func (c Colour) Direction() int {
	switch c {
	case White:
		return 1
	case Black:
		return -1
	}
	return 0
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Descriptor is the immutable colour and kind identity of a piece type.
// There are exactly twelve of them.
type Descriptor int

const (
	WhitePawn Descriptor = iota
	WhiteRook
	WhiteKnight
	WhiteBishop
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackRook
	BlackKnight
	BlackBishop
	BlackQueen
	BlackKing
	numDescriptors
)

// kindsInOrder is the per-colour declaration order of the descriptors.
var kindsInOrder = [...]Kind{Pawn, Rook, Knight, Bishop, Queen, King}

// Descriptors returns all twelve descriptors in declaration order.
func Descriptors() []Descriptor {
	ds := make([]Descriptor, 0, numDescriptors)
	for d := WhitePawn; d < numDescriptors; d++ {
		ds = append(ds, d)
	}
	return ds
}

// Valid reports whether d is one of the twelve descriptors.
func (d Descriptor) Valid() bool {
	return d >= WhitePawn && d < numDescriptors
}

// Colour returns the colour of the descriptor, or NoColour for an invalid value.
func (d Descriptor) Colour() Colour {
	switch {
	case !d.Valid():
		return NoColour
	case d < BlackPawn:
		return White
	}
	return Black
}

// Kind returns the piece kind of the descriptor, or NoKind for an invalid value.
func (d Descriptor) Kind() Kind {
	if !d.Valid() {
		return NoKind
	}
	return kindsInOrder[int(d)%len(kindsInOrder)]
}

// String returns the upper-case name, e.g. "WHITEPAWN".
func (d Descriptor) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Descriptor(%d)", int(d))
	}
	return strings.ToUpper(d.Colour().String() + d.Kind().String())
}

// DescriptorFor returns the descriptor for a colour and kind.
func DescriptorFor(colour Colour, kind Kind) (Descriptor, error) {
	if colour != White && colour != Black {
		return 0, fmt.Errorf("%v %v: %w", colour, kind, errors.ErrUnknownDescriptor)
	}
	for i, k := range kindsInOrder {
		if k != kind {
			continue
		}
		if colour == White {
			return Descriptor(i), nil
		}
		return Descriptor(i + len(kindsInOrder)), nil
	}
	return 0, fmt.Errorf("%v %v: %w", colour, kind, errors.ErrUnknownDescriptor)
}

// ParseDescriptor parses a descriptor name. It accepts the full name in any
// case with optional separators ("WHITEPAWN", "white-pawn", "White Pawn") and
// the two letter short form ("WP", "bn").
func ParseDescriptor(s string) (Descriptor, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)

	if len(name) == 2 {
		var colour Colour
		switch name[0] {
		case 'W':
			colour = White
		case 'B':
			colour = Black
		default:
			return 0, fmt.Errorf("%q: %w", s, errors.ErrUnknownDescriptor)
		}
		for _, k := range kindsInOrder {
			if k.Letter() == name[1] {
				return DescriptorFor(colour, k)
			}
		}
		return 0, fmt.Errorf("%q: %w", s, errors.ErrUnknownDescriptor)
	}

	for _, d := range Descriptors() {
		if d.String() == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, errors.ErrUnknownDescriptor)
}
