package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrInvalidCoordinate", ErrInvalidCoordinate},
		{"ErrUnknownDescriptor", ErrUnknownDescriptor},
		{"ErrNoPiece", ErrNoPiece},
		{"ErrInconsistentPiece", ErrInconsistentPiece},
		{"ErrInvalidFixture", ErrInvalidFixture},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("loading: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrNoPiece, ErrInconsistentPiece) {
		t.Error("ErrNoPiece should not match ErrInconsistentPiece")
	}
}

func TestCaseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *CaseError
		contains []string
		exact    string
	}{
		{
			name: "full context",
			err: &CaseError{
				Err:     ErrInvalidFixture,
				File:    "castling.json",
				Suite:   "castling",
				CaseNum: 3,
				CaseID:  "black kingside",
			},
			contains: []string{"castling.json", `suite "castling"`, "case 3", "black kingside", "invalid fixture"},
		},
		{
			name:  "no context",
			err:   &CaseError{Err: ErrNoPiece},
			exact: "no piece on source square",
		},
		{
			name:  "no underlying error",
			err:   &CaseError{CaseNum: 2},
			exact: "case 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			if tt.exact != "" && msg != tt.exact {
				t.Errorf("CaseError.Error() = %q, want %q", msg, tt.exact)
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("CaseError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestCaseError_As(t *testing.T) {
	caseErr := &CaseError{Err: ErrInvalidCoordinate, CaseNum: 7}
	wrapped := fmt.Errorf("running suite: %w", caseErr)

	var extracted *CaseError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract CaseError")
	}
	if extracted.CaseNum != 7 {
		t.Errorf("extracted.CaseNum = %d, want 7", extracted.CaseNum)
	}
	if !errors.Is(wrapped, ErrInvalidCoordinate) {
		t.Error("errors.Is(wrapped, ErrInvalidCoordinate) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); msg != "parsing FEN string: invalid FEN string" {
		t.Errorf("Wrap message = %q", msg)
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "case %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	wrapped := Wrapf(ErrUnknownDescriptor, "piece %d in case %q", 2, "pins")
	if !errors.Is(wrapped, ErrUnknownDescriptor) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), `piece 2 in case "pins"`) {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
