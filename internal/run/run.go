// Package run wires the jsonfilter pipeline: read, decode, select, filter,
// encode, write.
package run

import (
	"fmt"
	"io"
	"os"

	"github.com/czeal/go-jsonfilter/internal/config"
	"github.com/czeal/go-jsonfilter/internal/document"
	"github.com/czeal/go-jsonfilter/internal/exit"
	"github.com/czeal/go-jsonfilter/internal/filter"
	"github.com/czeal/go-jsonfilter/internal/selector"
)

// Runner executes one filtering pipeline over a single input document.
type Runner struct {
	cfg    *config.Config
	input  io.Reader
	output io.Writer
}

// New creates a Runner reading from stdin and writing to stdout unless the
// configuration names an input file.
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:    cfg,
		input:  os.Stdin,
		output: os.Stdout,
	}
}

// SetInput overrides the input stream. Used by tests.
func (r *Runner) SetInput(in io.Reader) {
	r.input = in
}

// SetOutput overrides the output stream. Used by tests.
func (r *Runner) SetOutput(out io.Writer) {
	r.output = out
}

// Run executes the pipeline. A nil result means success.
func (r *Runner) Run() *exit.Result {
	data, err := r.readInput()
	if err != nil {
		return exit.Errorf("Error reading input: %v\n", err)
	}

	doc, err := document.Decode(data, r.cfg.InputFormat)
	if err != nil {
		return exit.Errorf("Error decoding input: %v\n", err)
	}

	if r.cfg.Select != "" {
		doc, err = selector.Select(doc, r.cfg.Select)
		if err != nil {
			return exit.Errorf("Error selecting sub-document: %v\n", err)
		}
	}

	doc, err = r.applyFilter(doc)
	if err != nil {
		return exit.Errorf("Error filtering document: %v\n", err)
	}

	out, err := document.Encode(doc, r.cfg.OutputFormat, r.cfg.Compact)
	if err != nil {
		return exit.Errorf("Error encoding output: %v\n", err)
	}

	if _, err := r.output.Write(out); err != nil {
		return exit.Errorf("Error writing output: %v\n", err)
	}

	return nil
}

// applyFilter runs the configured filtering strategy. When neither -include
// nor -exclude was given, the document passes through unfiltered.
func (r *Runner) applyFilter(doc any) (any, error) {
	var (
		kind filter.Type
		expr string
	)

	switch {
	case r.cfg.Include != nil:
		kind, expr = filter.Inclusion, *r.cfg.Include
	case r.cfg.Exclude != nil:
		kind, expr = filter.Exclusion, *r.cfg.Exclude
	default:
		return doc, nil
	}

	f, err := filter.New(kind)
	if err != nil {
		return nil, err
	}

	return f.Apply(doc, expr)
}

func (r *Runner) readInput() ([]byte, error) {
	if r.cfg.InputFile == "" {
		return io.ReadAll(r.input)
	}

	data, err := os.ReadFile(r.cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.cfg.InputFile, err)
	}

	return data, nil
}
