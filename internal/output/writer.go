package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/worker"
)

// ResultWriter is the interface for writing case results.
type ResultWriter interface {
	// WriteResult records a single result.
	WriteResult(r worker.ProcessResult) error

	// Summary returns the counts of everything written so far.
	Summary() Summary

	// Close writes any pending output, including the summary.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per result and a summary line on Close.
type TextWriter struct {
	w       io.Writer
	cfg     *config.Config
	summary Summary
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteResult writes a result line unless it is filtered out.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	tw.summary.Add(r)
	if tw.cfg.Output.FailuresOnly && !r.Failed() {
		return nil
	}
	_, err := fmt.Fprintln(tw.w, FormatResult(r))
	return err
}

// Summary returns the counts so far.
func (tw *TextWriter) Summary() Summary {
	return tw.summary
}

// Close writes the summary line when verbosity allows.
func (tw *TextWriter) Close() error {
	if tw.cfg.Verbosity < 1 {
		return nil
	}
	_, err := fmt.Fprintln(tw.w, tw.summary.String())
	return err
}

// JSONWriter buffers results and writes them as one JSON document on Close.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	results []*JSONResult
	summary Summary
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]*JSONResult, 0),
	}
}

// WriteResult buffers a result for output.
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jw.summary.Add(r)
	if jw.cfg.Output.FailuresOnly && !r.Failed() {
		return nil
	}
	jw.results = append(jw.results, ResultToJSON(r))
	return nil
}

// Summary returns the counts so far.
func (jw *JSONWriter) Summary() Summary {
	return jw.summary
}

// Close writes the buffered results and the summary.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results, Summary: jw.summary})
	jw.results = jw.results[:0]
	return err
}
