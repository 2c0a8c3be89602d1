// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/engine"
)

var (
	// Rule options
	kingRule   = flag.String("king-rule", "adjacent", "King movement rule: adjacent, either-axis")
	noCastling = flag.Bool("no-castling", false, "Do not recognise castling moves")
	fixedBound = flag.Int("fixed-bound", 0, "Accept destinations in rows and columns 1..N only (0 = board size)")

	// Ad-hoc query
	fenPosition = flag.String("fen", "", "Position as FEN (8x8)")
	pieceList   = flag.String("pieces", "", "Position as space separated DESCRIPTOR@row,column")
	movedList   = flag.String("moved", "", "Space separated squares whose pieces have already moved")
	fromSquare  = flag.String("from", "", "Source square as row,column")
	toSquare    = flag.String("to", "", "Destination square as row,column")
	boardRows   = flag.Int("rows", 8, "Board rows for -pieces")
	boardCols   = flag.Int("columns", 8, "Board columns for -pieces")
	expectMove  = flag.String("expect", "", "Expected answer for the ad-hoc query: legal or illegal")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	logFile      = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	failuresOnly = flag.Bool("failures", false, "Report only failing cases")

	// Processing options
	workers  = flag.Int("workers", 0, "Number of worker goroutines (0 = number of CPUs)")
	failFast = flag.Bool("fail-fast", false, "Stop at the first failing case")

	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum cases remembered for repeat detection (0 = unlimited)")
	quiet    = flag.Bool("s", false, "Silent mode: no summary")
	verbose  = flag.Bool("v", false, "Log every case as it is evaluated")
	debug    = flag.Bool("debug", false, "Dump loaded suites to the log")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the config.
func applyFlags(cfg *config.Config) error {
	if err := applyRuleFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyProcessingFlags(cfg)
	return nil
}

// applyRuleFlags configures the engine rules.
func applyRuleFlags(cfg *config.Config) error {
	rule, err := engine.ParseKingRule(*kingRule)
	if err != nil {
		return err
	}
	cfg.Rules.KingRule = rule
	cfg.Rules.Castling = !*noCastling
	cfg.Rules.FixedBound = *fixedBound
	return nil
}

// applyOutputFlags configures result reporting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.FailuresOnly = *failuresOnly
}

// applyProcessingFlags configures workers and verbosity.
func applyProcessingFlags(cfg *config.Config) {
	cfg.Workers = *workers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	cfg.Debug = *debug
	cfg.DuplicateCapacity = *duplicateCapacity
}

// adHocQuery reports whether the query flags were used.
func adHocQuery() bool {
	return *fenPosition != "" || *pieceList != "" || *fromSquare != "" || *toSquare != ""
}
