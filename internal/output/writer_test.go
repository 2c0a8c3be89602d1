package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/fixture"
	"github.com/lgbarn/movecheck-go/internal/testutil"
	"github.com/lgbarn/movecheck-go/internal/worker"
)

func boolPtr(b bool) *bool { return &b }

func sampleResults() []worker.ProcessResult {
	suite := &fixture.Suite{ID: "s-1", Name: "scenarios"}
	king := chess.NewPiece(chess.WhiteKing)
	pawn := chess.NewPiece(chess.WhitePawn)
	pawn.SetHasMoved()
	return []worker.ProcessResult{
		{
			Suite: suite, Case: &fixture.Case{ID: "c-1", Name: "king steps", Expect: boolPtr(true)},
			Index: 0, Piece: king, From: chess.At(1, 5), To: chess.At(2, 5),
			Legal: true, Checked: true, Pass: true,
		},
		{
			Suite: suite, Case: &fixture.Case{ID: "c-2", Name: "pawn double", Expect: boolPtr(true)},
			Index: 1, Piece: pawn, From: chess.At(2, 5), To: chess.At(4, 5),
			Legal: false, Checked: true, Pass: false,
		},
		{
			Suite: suite, Case: &fixture.Case{ID: "c-3", Name: "broken"},
			Index: 2, Error: fmt.Errorf("from (3, 3): no piece"),
		},
		{
			Suite: suite, Case: &fixture.Case{ID: "c-4", Name: "open"},
			Index: 3, Piece: king, From: chess.At(1, 5), To: chess.At(1, 6), Legal: true,
		},
	}
}

// TestFormatResult verifies the text line for each status
func TestFormatResult(t *testing.T) {
	results := sampleResults()
	want := []string{
		"PASS  scenarios / king steps: WHITEKING (1, 5) -> (2, 5) legal",
		"FAIL  scenarios / pawn double: WHITEPAWN* (2, 5) -> (4, 5) illegal (expected legal)",
		"ERROR scenarios / broken: from (3, 3): no piece",
		"-     scenarios / open: WHITEKING (1, 5) -> (1, 6) legal",
	}
	for i, r := range results {
		testutil.AssertEqual(t, FormatResult(r), want[i], r.Case.Name)
	}
}

// TestFormatResult_AdHoc verifies a result without suite or case name
func TestFormatResult_AdHoc(t *testing.T) {
	r := worker.ProcessResult{
		Case:  &fixture.Case{},
		Piece: chess.NewPiece(chess.BlackKnight),
		From:  chess.At(8, 2), To: chess.At(6, 3), Legal: true,
	}
	testutil.AssertEqual(t, FormatResult(r), "-     BLACKKNIGHT (8, 2) -> (6, 3) legal")
}

// TestSummary verifies counting by status
func TestSummary(t *testing.T) {
	var s Summary
	for _, r := range sampleResults() {
		s.Add(r)
	}
	testutil.AssertEqual(t, s, Summary{Total: 4, Passed: 1, Failed: 1, Errors: 1, Unchecked: 1})
	testutil.AssertFalse(t, s.OK())
	testutil.AssertEqual(t, s.String(), "4 cases: 1 passed, 1 failed, 1 errors, 1 unchecked")

	testutil.AssertTrue(t, Summary{Total: 2, Passed: 1, Unchecked: 1}.OK())
}

// TestTextWriter verifies lines and the summary
func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()

	writer := NewTextWriter(&buf, cfg)
	for _, r := range sampleResults() {
		if err := writer.WriteResult(r); err != nil {
			t.Fatalf("WriteResult failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines; want 5:\n%s", len(lines), buf.String())
	}
	testutil.AssertEqual(t, lines[4], "4 cases: 1 passed, 1 failed, 1 errors, 1 unchecked")
}

// TestTextWriter_FailuresOnly verifies passing cases are filtered
func TestTextWriter_FailuresOnly(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithFailuresOnly(true).WithVerbosity(0).Build()

	writer := NewWriter(&buf, cfg)
	for _, r := range sampleResults() {
		writer.WriteResult(r)
	}
	writer.Close()

	out := buf.String()
	if strings.Contains(out, "PASS") || strings.Contains(out, "open") {
		t.Errorf("passing or unchecked case in failures-only output:\n%s", out)
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(out, "ERROR") {
		t.Errorf("missing failures:\n%s", out)
	}
	if strings.Contains(out, "cases:") {
		t.Error("summary written at verbosity 0")
	}
	testutil.AssertEqual(t, writer.Summary().Total, 4)
}

// TestJSONWriter verifies the JSON document structure
func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()

	writer := NewWriter(&buf, cfg)
	if _, ok := writer.(*JSONWriter); !ok {
		t.Fatalf("NewWriter returned %T; want *JSONWriter", writer)
	}
	for _, r := range sampleResults() {
		writer.WriteResult(r)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got.Results) != 4 {
		t.Fatalf("results = %d; want 4", len(got.Results))
	}
	testutil.AssertEqual(t, got.Summary, Summary{Total: 4, Passed: 1, Failed: 1, Errors: 1, Unchecked: 1})

	want := &JSONResult{
		Suite: "scenarios", SuiteID: "s-1", Case: "pawn double", CaseID: "c-2",
		Status: StatusFail, Piece: "WHITEPAWN", Moved: true,
		From: []int{2, 5}, To: []int{4, 5}, Legal: false, Expected: boolPtr(true),
	}
	testutil.AssertEqual(t, got.Results[1], want)
	testutil.AssertEqual(t, got.Results[2].Error, "from (3, 3): no piece")
	if got.Results[2].From != nil {
		t.Error("error result should carry no coordinates")
	}
}

// TestResultWriter_Interface verifies that writers implement the interface
func TestResultWriter_Interface(t *testing.T) {
	cfg := config.NewConfig()
	var buf bytes.Buffer

	var _ ResultWriter = NewTextWriter(&buf, cfg)
	var _ ResultWriter = NewJSONWriter(&buf, cfg)
}
