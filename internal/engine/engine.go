// Package engine decides whether a single proposed move is geometrically and
// occupancy-wise legal on a given board. It never applies moves and knows
// nothing about turns, check or game results.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// KingRule selects how ordinary (non-castling) king moves are judged.
type KingRule int

const (
	// KingAdjacent allows a move to any of the eight neighbouring squares.
	KingAdjacent KingRule = iota
	// KingEitherAxis allows any move whose row or column changes by exactly one.
	// This is wider than real king movement (e.g. one column and five rows) and
	// is kept for reproducing older fixtures.
	KingEitherAxis
)

// String returns the rule name used in configuration.
func (r KingRule) String() string {
	switch r {
	case KingAdjacent:
		return "adjacent"
	case KingEitherAxis:
		return "either-axis"
	}
	return fmt.Sprintf("KingRule(%d)", int(r))
}

// ParseKingRule parses "adjacent" or "either-axis".
func ParseKingRule(s string) (KingRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacent", "":
		return KingAdjacent, nil
	case "either-axis", "eitheraxis", "axis":
		return KingEitherAxis, nil
	}
	return 0, fmt.Errorf("unknown king rule %q: %w", s, errors.ErrInvalidConfig)
}

// Engine evaluates move legality. The zero value is not usable; call New.
// An Engine holds no mutable state and may be shared between goroutines.
type Engine struct {
	kingRule   KingRule
	castling   bool
	fixedBound int
}

// Option configures an Engine.
type Option func(*Engine)

// WithKingRule sets the king movement rule.
func WithKingRule(rule KingRule) Option {
	return func(e *Engine) {
		e.kingRule = rule
	}
}

// WithCastling enables or disables the castling branch of the king rule.
func WithCastling(enabled bool) Option {
	return func(e *Engine) {
		e.castling = enabled
	}
}

// WithFixedBound makes the destination check use rows and columns 1..n
// instead of the board's own extents. n <= 0 restores the board extents.
func WithFixedBound(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.fixedBound = n
	}
}

// New creates an Engine. Defaults: KingAdjacent, castling enabled, board extents.
func New(opts ...Option) *Engine {
	e := &Engine{
		kingRule: KingAdjacent,
		castling: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// CanMove reports whether piece may move from one square to another on board
// using the default rules. See (*Engine).CanMove.
func CanMove(board *chess.Board, piece *chess.Piece, from, to chess.Coordinate) bool {
	return defaultEngine.CanMove(board, piece, from, to)
}

// KingRule returns the configured king rule.
func (e *Engine) KingRule() KingRule {
	return e.kingRule
}

// Castling reports whether castling moves are recognised.
func (e *Engine) Castling() bool {
	return e.castling
}

// CanMove reports whether piece may move from one square to another on board.
// The piece is assumed to be the one standing on from; use CheckPiece to have
// that verified. Neither the board nor the piece is modified.
func (e *Engine) CanMove(board *chess.Board, piece *chess.Piece, from, to chess.Coordinate) bool {
	if board == nil || piece == nil {
		return false
	}
	if !e.inBounds(board, to) {
		return false
	}
	if from == to {
		return false
	}
	if occupant := board.PieceAt(to); occupant != nil && occupant.Colour() == piece.Colour() {
		return false
	}

	switch piece.Kind() {
	case chess.King:
		return e.canKingMove(board, piece, from, to)
	case chess.Knight:
		return canKnightMove(from, to)
	case chess.Bishop:
		return canBishopMove(board, from, to)
	case chess.Rook:
		return canRookMove(board, from, to)
	case chess.Queen:
		return canQueenMove(board, from, to)
	case chess.Pawn:
		return canPawnMove(board, piece, from, to)
	}
	return false
}

// Check looks up the piece on from and reports whether it may move to to.
// An empty source square is an error, not an illegal move.
func (e *Engine) Check(board *chess.Board, from, to chess.Coordinate) (bool, error) {
	piece := board.PieceAt(from)
	if piece == nil {
		return false, fmt.Errorf("%v: %w", from, errors.ErrNoPiece)
	}
	return e.CanMove(board, piece, from, to), nil
}

// CheckPiece is CanMove with the precondition enforced: piece must be the
// piece standing on from.
func (e *Engine) CheckPiece(board *chess.Board, piece *chess.Piece, from, to chess.Coordinate) (bool, error) {
	if piece == nil {
		return false, fmt.Errorf("nil piece: %w", errors.ErrInconsistentPiece)
	}
	if on := board.PieceAt(from); on != piece {
		return false, fmt.Errorf("%v is on %v, board has %v: %w", piece, from, on, errors.ErrInconsistentPiece)
	}
	return e.CanMove(board, piece, from, to), nil
}

// inBounds checks the destination against the playable range.
func (e *Engine) inBounds(board *chess.Board, to chess.Coordinate) bool {
	if e.fixedBound > 0 {
		return to.Row >= 1 && to.Row <= e.fixedBound &&
			to.Column >= 1 && to.Column <= e.fixedBound
	}
	return board.Contains(to)
}
