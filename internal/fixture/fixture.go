// Package fixture loads suites of move-legality cases from JSON.
//
// A suite describes positions either as explicit placements or as a FEN
// string, marks which pieces have already moved, and names the move to test
// together with the expected answer:
//
//	{
//	  "name": "castling",
//	  "cases": [
//	    {"name": "black kingside",
//	     "pieces": [{"piece": "BLACKKING", "at": "8,5"}, {"piece": "BLACKROOK@8,8"}],
//	     "from": "8,5", "to": "8,7", "expect": true}
//	  ]
//	}
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// PieceSpec places one piece. At may be empty when Piece is written as
// "DESCRIPTOR@row,column".
type PieceSpec struct {
	Piece string `json:"piece"`
	At    string `json:"at,omitempty"`
}

// Case is a single legality query.
type Case struct {
	ID     string      `json:"id,omitempty"`
	Name   string      `json:"name,omitempty"`
	FEN    string      `json:"fen,omitempty"`
	Pieces []PieceSpec `json:"pieces,omitempty"`
	Moved  []string    `json:"moved,omitempty"`
	From   string      `json:"from"`
	To     string      `json:"to"`
	Expect *bool       `json:"expect,omitempty"`
}

// Suite is a named list of cases sharing a board size.
type Suite struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Rows    int    `json:"rows,omitempty"`
	Columns int    `json:"columns,omitempty"`
	Cases   []Case `json:"cases"`

	// File is the path the suite was read from, if any.
	File string `json:"-"`
}

// Prepared is a case ready for evaluation. Each Prepared owns its board.
type Prepared struct {
	Case  *Case
	Board *chess.Board
	Piece *chess.Piece
	From  chess.Coordinate
	To    chess.Coordinate
}

// Load decodes a suite from r. Missing IDs are generated and missing board
// extents default to 8x8.
func Load(r io.Reader) (*Suite, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding suite: %v: %w", err, errors.ErrInvalidFixture)
	}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a suite from path.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	s.File = path
	return s, nil
}

// NewSuite builds a suite in code, applying the same defaults and checks as Load.
func NewSuite(name string, rows, columns int, cases ...Case) (*Suite, error) {
	s := &Suite{Name: name, Rows: rows, Columns: columns, Cases: cases}
	if err := s.normalize(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Suite) normalize() error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Rows == 0 {
		s.Rows = chess.StandardSize
	}
	if s.Columns == 0 {
		s.Columns = chess.StandardSize
	}
	if s.Rows < 0 || s.Columns < 0 {
		return fmt.Errorf("board %dx%d: %w", s.Rows, s.Columns, errors.ErrInvalidFixture)
	}
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if err := c.validate(); err != nil {
			return s.CaseError(i, err)
		}
	}
	return nil
}

// CaseError attaches suite and case context to err.
func (s *Suite) CaseError(i int, err error) error {
	ce := &errors.CaseError{
		Err:     err,
		File:    s.File,
		Suite:   s.Label(),
		CaseNum: i + 1,
	}
	if i >= 0 && i < len(s.Cases) {
		ce.CaseID = s.Cases[i].Label()
	}
	return ce
}

// Label returns the suite name, or its ID when unnamed.
func (s *Suite) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Label returns the case name, or its ID when unnamed.
func (c *Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

func (c *Case) validate() error {
	if c.FEN != "" && len(c.Pieces) > 0 {
		return fmt.Errorf("both fen and pieces given: %w", errors.ErrInvalidFixture)
	}
	if strings.TrimSpace(c.From) == "" || strings.TrimSpace(c.To) == "" {
		return fmt.Errorf("from and to are required: %w", errors.ErrInvalidFixture)
	}
	return nil
}

// Build sets up a fresh board for the case. FEN positions are always 8x8;
// placement positions use rows x columns.
func (c *Case) Build(rows, columns int) (*Prepared, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	board, err := c.board(rows, columns)
	if err != nil {
		return nil, err
	}
	for _, m := range c.Moved {
		sq, err := chess.ParseCoordinate(m)
		if err != nil {
			return nil, err
		}
		p := board.PieceAt(sq)
		if p == nil {
			return nil, fmt.Errorf("moved %v: square is empty: %w", sq, errors.ErrInvalidFixture)
		}
		p.SetHasMoved()
	}

	from, err := chess.ParseCoordinate(c.From)
	if err != nil {
		return nil, err
	}
	to, err := chess.ParseCoordinate(c.To)
	if err != nil {
		return nil, err
	}
	piece := board.PieceAt(from)
	if piece == nil {
		return nil, fmt.Errorf("from %v: %w", from, errors.ErrInvalidFixture)
	}

	return &Prepared{Case: c, Board: board, Piece: piece, From: from, To: to}, nil
}

func (c *Case) board(rows, columns int) (*chess.Board, error) {
	if c.FEN != "" {
		return engine.NewBoardFromFEN(c.FEN)
	}

	board := chess.NewBoard(rows, columns)
	for _, spec := range c.Pieces {
		pl, err := spec.placement()
		if err != nil {
			return nil, err
		}
		if !board.Contains(pl.Square) {
			return nil, fmt.Errorf("%v placed off a %dx%d board: %w", pl.Square, rows, columns, errors.ErrInvalidFixture)
		}
		if prev := board.PutPieceAt(pl.Piece, pl.Square); prev != nil {
			return nil, fmt.Errorf("two pieces on %v: %w", pl.Square, errors.ErrInvalidFixture)
		}
	}
	return board, nil
}

func (p PieceSpec) placement() (chess.Placement, error) {
	if p.At == "" {
		return chess.ParsePlacement(p.Piece)
	}
	d, err := chess.ParseDescriptor(p.Piece)
	if err != nil {
		return chess.Placement{}, err
	}
	sq, err := chess.ParseCoordinate(p.At)
	if err != nil {
		return chess.Placement{}, err
	}
	return chess.Placement{Piece: chess.NewPiece(d), Square: sq}, nil
}

// ParsePieces splits a whitespace separated list of "DESCRIPTOR@row,column"
// tokens.
func ParsePieces(s string) []PieceSpec {
	var specs []PieceSpec
	for _, tok := range strings.Fields(s) {
		specs = append(specs, PieceSpec{Piece: tok})
	}
	return specs
}
