package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/fixture"
	"github.com/lgbarn/movecheck-go/internal/hashing"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/worker"
)

// dumpConfig renders suites for -debug without pointer noise.
var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// loadSuites reads each named suite; "-" reads from stdin.
func loadSuites(paths []string, stdin io.Reader) ([]*fixture.Suite, error) {
	suites := make([]*fixture.Suite, 0, len(paths))
	for _, path := range paths {
		if path == "-" {
			s, err := fixture.Load(stdin)
			if err != nil {
				return nil, err
			}
			s.File = "<stdin>"
			suites = append(suites, s)
			continue
		}
		s, err := fixture.LoadFile(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// adHocSuite builds a one-case suite from the query flags.
func adHocSuite() (*fixture.Suite, error) {
	c := fixture.Case{
		FEN:    *fenPosition,
		Pieces: fixture.ParsePieces(*pieceList),
		Moved:  strings.Fields(*movedList),
		From:   *fromSquare,
		To:     *toSquare,
	}
	if *expectMove != "" {
		want, err := parseExpectation(*expectMove)
		if err != nil {
			return nil, err
		}
		c.Expect = &want
	}
	return fixture.NewSuite("", *boardRows, *boardCols, c)
}

// parseExpectation accepts legal/illegal or any strconv boolean.
func parseExpectation(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "legal":
		return true, nil
	case "illegal":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("-expect %q: want legal or illegal", s)
	}
	return b, nil
}

// workItems flattens suites into indexed work items.
func workItems(suites []*fixture.Suite) []worker.WorkItem {
	var items []worker.WorkItem
	for _, s := range suites {
		for i := range s.Cases {
			items = append(items, worker.WorkItem{
				Suite:     s,
				Case:      &s.Cases[i],
				Index:     len(items),
				CaseIndex: i,
			})
		}
	}
	return items
}

// evaluateCase builds the case's board and asks the engine about the move.
// It runs in a worker goroutine; each case owns its board.
func evaluateCase(e *engine.Engine, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{
		Suite: item.Suite,
		Case:  item.Case,
		Index: item.Index,
	}

	prepared, err := item.Case.Build(item.Suite.Rows, item.Suite.Columns)
	if err != nil {
		result.Error = err
		return result
	}
	result.Board = prepared.Board
	result.Piece = prepared.Piece
	result.From = prepared.From
	result.To = prepared.To
	result.Hash = hashing.QueryHash(prepared.Board, prepared.From, prepared.To)

	legal, err := e.CheckPiece(prepared.Board, prepared.Piece, prepared.From, prepared.To)
	if err != nil {
		result.Error = err
		return result
	}
	result.Legal = legal
	if item.Case.Expect != nil {
		result.Checked = true
		result.Pass = legal == *item.Case.Expect
	}
	return result
}

// runSuites evaluates every case and writes the report.
//
// Concurrency model: workers only build boards and query the engine. Results
// are gathered and written from this goroutine, so writers and the log need
// no locking.
func runSuites(cfg *config.Config, suites []*fixture.Suite, stopOnFailure bool) (output.Summary, error) {
	start := time.Now()
	e := cfg.Rules.NewEngine()

	for _, s := range suites {
		cfg.Logf(2, "suite %q (%s): %d cases on %dx%d\n", s.Label(), sourceName(s), len(s.Cases), s.Rows, s.Columns)
		if cfg.Debug && cfg.LogFile != nil {
			dumpConfig.Fdump(cfg.LogFile, s)
		}
	}

	items := workItems(suites)
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return evaluateCase(e, item)
	}, worker.WithWorkers(cfg.Workers), worker.WithBufferSize(bufferSize))
	pool.Start()
	results := pool.Run(items, stopOnFailure)

	w := output.NewWriter(cfg.OutputFile, cfg)
	detector := hashing.NewDuplicateDetector(cfg.DuplicateCapacity)
	for _, r := range results {
		if r.Error != nil {
			cfg.Logf(2, "case %d %s: %v\n", r.Index+1, r.Case.Label(), r.Error)
		} else {
			cfg.Logf(2, "case %d %s: %s\n", r.Index+1, r.Case.Label(), describeBoard(r.Board))
			warnDuplicate(cfg, detector, r)
		}
		if err := w.WriteResult(r); err != nil {
			// Flush what was accepted; the write error is the one reported.
			w.Close()
			return w.Summary(), err
		}
	}
	if skipped := len(items) - len(results); skipped > 0 {
		cfg.Logf(1, "stopped early: %d cases not evaluated\n", skipped)
	}
	cfg.Logf(2, "%d cases in %v using %d workers (%s king, castling %v)\n",
		len(results), time.Since(start).Round(time.Microsecond), pool.NumWorkers(), e.KingRule(), e.Castling())
	return w.Summary(), w.Close()
}

// warnDuplicate logs a case that asks the same question as an earlier one.
func warnDuplicate(cfg *config.Config, detector *hashing.DuplicateDetector, r worker.ProcessResult) {
	sig := hashing.QuerySignature{
		Hash:    r.Hash,
		Rows:    r.Board.Rows(),
		Columns: r.Board.Columns(),
		Label:   resultLabel(r),
	}
	if earlier, dup := detector.CheckAndAdd(sig); dup {
		cfg.Logf(1, "warning: %s repeats %s\n", sig.Label, earlier.Label)
	}
}

// describeBoard summarises a built board for the per-case log, as FEN when
// the board is standard sized.
func describeBoard(b *chess.Board) string {
	if fen, err := engine.BoardToFEN(b); err == nil {
		return fmt.Sprintf("%d pieces, %s", b.Len(), fen)
	}
	return fmt.Sprintf("%d pieces on %dx%d", b.Len(), b.Rows(), b.Columns())
}

func resultLabel(r worker.ProcessResult) string {
	return fmt.Sprintf("%s / %s", r.Suite.Label(), r.Case.Label())
}

func sourceName(s *fixture.Suite) string {
	if s.File == "" {
		return "flags"
	}
	return s.File
}

// stdinReader is swapped in tests.
var stdinReader io.Reader = os.Stdin
