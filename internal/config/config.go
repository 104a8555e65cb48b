// Package config parses and validates the jsonfilter command line.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/czeal/go-jsonfilter/internal/document"
	"github.com/czeal/go-jsonfilter/internal/exit"
)

var (
	ErrBothFilters   = errors.New("-include and -exclude are mutually exclusive")
	ErrTooManyInputs = errors.New("at most one input file may be given")
)

// Config represents the complete configuration for the jsonfilter tool.
//
// Include and Exclude are nil when the corresponding flag was not given at
// all; an empty string is a valid, distinct expression (it selects or
// removes nothing).
type Config struct {
	Include *string // field path expression to keep
	Exclude *string // field path expression to remove
	Select  string  // JSONPath pre-selection, empty for none

	InputFormat  document.Format
	OutputFormat document.Format
	Compact      bool

	InputFile string // empty means stdin
}

// Parse parses command-line arguments into a Config. A non-nil exit.Result
// means the program should terminate with it (usage errors, -help).
func Parse(args []string) (*Config, *exit.Result) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	var usage bytes.Buffer
	fs.SetOutput(&usage)

	include := fs.String("include", "", "field path expression naming the fields to keep")
	exclude := fs.String("exclude", "", "field path expression naming the fields to remove")
	selectPath := fs.String("select", "", "JSONPath expression applied before filtering")
	inputFormat := fs.String("input", "json", "input format: json or yaml")
	outputFormat := fs.String("output", "json", "output format: json or yaml")
	compact := fs.Bool("compact", false, "emit compact JSON output")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(usage.String())
		}
		// flag already wrote the error and usage text into the buffer.
		return nil, exit.UsageErrorf("%s", usage.String())
	}

	cfg := &Config{
		Select:  *selectPath,
		Compact: *compact,
	}

	// An empty -include or -exclude is meaningful, so only flags that were
	// actually given are recorded.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "include":
			cfg.Include = include
		case "exclude":
			cfg.Exclude = exclude
		}
	})

	inFormat, err := document.ParseFormat(*inputFormat)
	if err != nil {
		return nil, exit.UsageErrorf("invalid -input: %v\n", err)
	}
	cfg.InputFormat = inFormat

	outFormat, err := document.ParseFormat(*outputFormat)
	if err != nil {
		return nil, exit.UsageErrorf("invalid -output: %v\n", err)
	}
	cfg.OutputFormat = outFormat

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 1:
		cfg.InputFile = rest[0]
	default:
		return nil, exit.UsageErrorf("%v\n", ErrTooManyInputs)
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.UsageErrorf("%v\n", err)
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Include != nil && c.Exclude != nil {
		return ErrBothFilters
	}

	if c.InputFile != "" {
		if _, err := os.Stat(c.InputFile); err != nil {
			return fmt.Errorf("input file %s not found: %w", c.InputFile, err)
		}
	}

	return nil
}
