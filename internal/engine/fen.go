package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Home squares used to infer the has-moved latch from a FEN position.
const (
	queensideRookColumn = 1
	kingsideRookColumn  = chess.StandardSize
)

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates an 8x8 board from a FEN string. FEN rank 1 is row 1
// and file a is column 1. Only the placement, side-to-move and castling
// fields are read; the side to move is validated but not stored.
//
// Has-moved latches are inferred: pawns off their home row are moved; kings
// and rooks off their home squares are moved; when a castling field is
// present, a king with no castling right and a rook whose right is missing
// are moved as well.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewStandardBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if len(parts) >= 2 {
		if err := parseSideToMove(parts[1]); err != nil {
			return nil, err
		}
	}

	rights := ""
	hasRights := len(parts) >= 3
	if hasRights {
		var err error
		if rights, err = parseCastlingRights(parts[2]); err != nil {
			return nil, err
		}
	}
	inferHasMoved(board, rights, hasRights)

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.StandardSize {
		return fmt.Errorf("%d ranks, want %d: %w", len(ranks), chess.StandardSize, errors.ErrInvalidFEN)
	}

	for i, rank := range ranks {
		row := chess.StandardSize - i
		col := 1
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col > chess.StandardSize {
					return fmt.Errorf("rank %d overflows: %w", row, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				d, err := chess.DescriptorFor(colour, kind)
				if err != nil {
					return errors.Wrap(errors.ErrInvalidFEN, err.Error())
				}
				board.PutPieceAt(chess.NewPiece(d), chess.At(row, col))
				col++
			}
		}
		if col != chess.StandardSize+1 {
			return fmt.Errorf("rank %d has %d squares: %w", row, col-1, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove validates the side to move field.
func parseSideToMove(field string) error {
	switch field {
	case "w", "b":
		return nil
	}
	return fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
}

// parseCastlingRights validates the castling field, returning "" for "-".
func parseCastlingRights(field string) (string, error) {
	if field == "-" {
		return "", nil
	}
	for _, c := range field {
		if !strings.ContainsRune("KQkq", c) {
			return "", fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
		}
	}
	return field, nil
}

// inferHasMoved sets the has-moved latch on pieces that cannot be on their
// starting square or that have lost their castling rights.
func inferHasMoved(board *chess.Board, rights string, hasRights bool) {
	for _, pl := range board.Placements() {
		p, sq := pl.Piece, pl.Square
		home := backRow(board, p.Colour())

		switch p.Kind() {
		case chess.Pawn:
			if sq.Row != home+p.Colour().Direction() {
				p.SetHasMoved()
			}
		case chess.King:
			if sq != chess.At(home, kingHomeColumn(board)) {
				p.SetHasMoved()
			} else if hasRights && !strings.ContainsAny(rights, castlingLetters(p.Colour(), "KQ")) {
				p.SetHasMoved()
			}
		case chess.Rook:
			var right string
			switch sq {
			case chess.At(home, kingsideRookColumn):
				right = castlingLetters(p.Colour(), "K")
			case chess.At(home, queensideRookColumn):
				right = castlingLetters(p.Colour(), "Q")
			default:
				p.SetHasMoved()
				continue
			}
			if hasRights && !strings.Contains(rights, right) {
				p.SetHasMoved()
			}
		}
	}
}

// castlingLetters returns the FEN castling letters for colour.
func castlingLetters(colour chess.Colour, letters string) string {
	if colour == chess.Black {
		return strings.ToLower(letters)
	}
	return letters
}

// BoardToFEN returns the piece placement field for an 8x8 board.
func BoardToFEN(board *chess.Board) (string, error) {
	if board.Rows() != chess.StandardSize || board.Columns() != chess.StandardSize {
		return "", fmt.Errorf("board is %dx%d: %w", board.Rows(), board.Columns(), errors.ErrInvalidFEN)
	}

	var sb strings.Builder
	for row := chess.StandardSize; row >= 1; row-- {
		empty := 0
		for col := 1; col <= chess.StandardSize; col++ {
			p := board.PieceAt(chess.At(row, col))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := p.Kind().Letter()
			if p.Colour() == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String(), nil
}
