// Package errors provides sentinel errors and error types for movecheck.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
//
// Illegal moves are never errors; the engine reports them as false.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidCoordinate indicates coordinate text that cannot be parsed.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnknownDescriptor indicates a piece name outside the twelve descriptors.
	ErrUnknownDescriptor = errors.New("unknown piece descriptor")

	// ErrNoPiece indicates a legality query from an empty square.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrInconsistentPiece indicates the queried piece is not the one on the source square.
	ErrInconsistentPiece = errors.New("inconsistent piece/board")

	// ErrInvalidFixture indicates a malformed fixture suite or case.
	ErrInvalidFixture = errors.New("invalid fixture")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CaseError wraps errors with fixture context: the suite, the case and the
// file it came from. It supports unwrapping via errors.Is() and errors.As().
type CaseError struct {
	Err     error  // The underlying error
	File    string // Source file name (if known)
	Suite   string // Suite name or ID (if known)
	CaseNum int    // 1-based case number in the suite
	CaseID  string // Case name or ID (if known)
}

// Error returns a formatted error message including all available context.
func (e *CaseError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Suite != "" {
		parts = append(parts, fmt.Sprintf("suite %q", e.Suite))
	}
	if e.CaseNum > 0 {
		parts = append(parts, fmt.Sprintf("case %d", e.CaseNum))
	}
	if e.CaseID != "" {
		parts = append(parts, fmt.Sprintf("%q", e.CaseID))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *CaseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
