// Package logging provides stderr diagnostics for netcarve.
package logging

import (
	"fmt"
	"io"
	"os"
)

// StderrLogger provides formatted diagnostic output to stderr. The result
// list and the classification error report are not routed through it; they
// go to stdout/stderr directly so quiet mode never changes the tool's
// contract.
type StderrLogger struct {
	out     io.Writer
	quiet   bool
	verbose bool
}

// NewStderrLogger creates a new StderrLogger.
func NewStderrLogger(quiet, verbose bool) *StderrLogger {
	return &StderrLogger{
		out:     os.Stderr,
		quiet:   quiet,
		verbose: verbose,
	}
}

// Info logs an informational message.
func (l *StderrLogger) Info(format string, args ...interface{}) {
	if l.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[netcarve] %s\n", msg)
}

// Debug logs a debug message (only if verbose is enabled).
func (l *StderrLogger) Debug(format string, args ...interface{}) {
	if l.quiet || !l.verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[netcarve] DEBUG: %s\n", msg)
}

// Error logs an error message.
func (l *StderrLogger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[netcarve] Error: %s\n", msg)
}
