package output

import (
	"github.com/lgbarn/movecheck-go/internal/worker"
)

// JSONResult represents a case result in JSON format.
type JSONResult struct {
	Suite    string `json:"suite,omitempty"`
	SuiteID  string `json:"suiteId,omitempty"`
	Case     string `json:"case,omitempty"`
	CaseID   string `json:"caseId,omitempty"`
	Status   string `json:"status"`
	Piece    string `json:"piece,omitempty"`
	Moved    bool   `json:"moved,omitempty"`
	From     []int  `json:"from,omitempty"`
	To       []int  `json:"to,omitempty"`
	Legal    bool   `json:"legal"`
	Expected *bool  `json:"expected,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONOutput holds all results and the summary.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
	Summary Summary       `json:"summary"`
}

// ResultToJSON converts a result to its JSON form.
func ResultToJSON(r worker.ProcessResult) *JSONResult {
	jr := &JSONResult{
		Status: Status(r),
		Legal:  r.Legal,
	}
	if r.Suite != nil {
		jr.Suite = r.Suite.Name
		jr.SuiteID = r.Suite.ID
	}
	if r.Case != nil {
		jr.Case = r.Case.Name
		jr.CaseID = r.Case.ID
		jr.Expected = r.Case.Expect
	}
	if r.Error != nil {
		jr.Error = r.Error.Error()
		return jr
	}
	if r.Piece != nil {
		jr.Piece = r.Piece.Descriptor().String()
		jr.Moved = r.Piece.HasMoved()
	}
	jr.From = []int{r.From.Row, r.From.Column}
	jr.To = []int{r.To.Row, r.To.Column}
	return jr
}
