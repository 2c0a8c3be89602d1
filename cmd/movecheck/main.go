// movecheck answers whether a single proposed chess move is legal on a given
// board, either for an ad-hoc position or for suites of fixture cases.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/fixture"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movecheck version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	suites, err := collectSuites(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if len(suites) == 0 {
		usage()
		os.Exit(2)
	}

	summary, err := runSuites(cfg, suites, *failFast)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	if !summary.OK() {
		os.Exit(1)
	}
}

// collectSuites loads the suite files named on the command line, or builds a
// one-case suite from the query flags.
func collectSuites(paths []string) ([]*fixture.Suite, error) {
	if adHocQuery() {
		if len(paths) > 0 {
			return nil, fmt.Errorf("suite files cannot be combined with -fen/-pieces/-from/-to")
		}
		s, err := adHocSuite()
		if err != nil {
			return nil, err
		}
		return []*fixture.Suite{s}, nil
	}
	return loadSuites(paths, stdinReader)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movecheck [options] suite.json ...\n")
	fmt.Fprintf(os.Stderr, "       movecheck [options] -fen FEN -from r,c -to r,c\n")
	fmt.Fprintf(os.Stderr, "       movecheck [options] -pieces \"WHITEKING@1,5 WHITEPAWN@2,5\" -from r,c -to r,c\n\n")
	fmt.Fprintf(os.Stderr, "Reports whether single chess moves are legal. Squares are row,column from 1;\n")
	fmt.Fprintf(os.Stderr, "row 1 is White's back row. Use - to read a suite from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status: 0 when every expectation holds, 1 on failures, 2 on bad input.\n")
}
