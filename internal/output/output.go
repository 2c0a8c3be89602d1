// Package output reports fixture results as text or JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/worker"
)

// Status labels used in both formats.
const (
	StatusPass    = "PASS"
	StatusFail    = "FAIL"
	StatusError   = "ERROR"
	StatusNoCheck = "-"
)

// Summary counts results by status.
type Summary struct {
	Total     int `json:"total"`
	Passed    int `json:"passed"`
	Failed    int `json:"failed"`
	Errors    int `json:"errors"`
	Unchecked int `json:"unchecked"`
}

// Add counts one result.
func (s *Summary) Add(r worker.ProcessResult) {
	s.Total++
	switch Status(r) {
	case StatusPass:
		s.Passed++
	case StatusFail:
		s.Failed++
	case StatusError:
		s.Errors++
	default:
		s.Unchecked++
	}
}

// OK reports whether nothing failed or errored.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errors == 0
}

// String renders the summary line.
func (s Summary) String() string {
	return fmt.Sprintf("%d cases: %d passed, %d failed, %d errors, %d unchecked",
		s.Total, s.Passed, s.Failed, s.Errors, s.Unchecked)
}

// Status classifies a result.
func Status(r worker.ProcessResult) string {
	switch {
	case r.Error != nil:
		return StatusError
	case !r.Checked:
		return StatusNoCheck
	case r.Pass:
		return StatusPass
	}
	return StatusFail
}

// caseLabel names the result as "suite / case", leaving out missing parts.
func caseLabel(r worker.ProcessResult) string {
	var parts []string
	if r.Suite != nil {
		parts = append(parts, r.Suite.Label())
	}
	if r.Case != nil && r.Case.Label() != "" {
		parts = append(parts, r.Case.Label())
	}
	return strings.Join(parts, " / ")
}

func legalWord(legal bool) string {
	if legal {
		return "legal"
	}
	return "illegal"
}

// FormatResult renders one result as a single text line.
func FormatResult(r worker.ProcessResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-5s", Status(r))
	if label := caseLabel(r); label != "" {
		fmt.Fprintf(&sb, " %s:", label)
	}
	if r.Error != nil {
		fmt.Fprintf(&sb, " %v", r.Error)
		return sb.String()
	}
	fmt.Fprintf(&sb, " %v %v -> %v %s", r.Piece, r.From, r.To, legalWord(r.Legal))
	if r.Checked && !r.Pass {
		fmt.Fprintf(&sb, " (expected %s)", legalWord(!r.Legal))
	}
	return sb.String()
}
