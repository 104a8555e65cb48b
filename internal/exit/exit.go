// Package exit carries the outcome of a command invocation: an exit code,
// a message, and the stream the message should be written to.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes used by the jsonfilter command.
const (
	CodeOK    = 0
	CodeError = 1
	CodeUsage = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a result that outputs to stdout with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeOK,
		Message:  message,
	}
}

// Errorf creates a runtime error result on stderr with exit code 1.
func Errorf(format string, a ...any) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  fmt.Sprintf(format, a...),
	}
}

// UsageErrorf creates a usage error result on stderr with exit code 2.
func UsageErrorf(format string, a ...any) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeUsage,
		Message:  fmt.Sprintf(format, a...),
	}
}
