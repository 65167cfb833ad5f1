// Package logging provides leveled terminal logging for cygconv.
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	debugTag = color.New(color.FgBlue).Sprint("[DEBUG]")
	warnTag  = color.New(color.FgYellow).Sprint("[WARN]")
	errorTag = color.New(color.FgRed).Sprint("[ERROR]")
)

// Logger writes leveled messages to stderr, keeping stdout free for
// conversion results.
type Logger struct {
	quiet bool
	debug bool
}

// New creates a new logger
func New(quiet, debug bool) *Logger {
	return &Logger{quiet: quiet, debug: debug}
}

// Debug logs a debug message (only when debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "%s %s\n", debugTag, fmt.Sprintf(format, args...))
	}
}

// Info logs an info message (hidden in quiet mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(os.Stderr, "%s\n", fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message (hidden in quiet mode)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.quiet {
		fmt.Fprintf(os.Stderr, "%s %s\n", warnTag, fmt.Sprintf(format, args...))
	}
}

// Error logs an error message (always shown)
func (l *Logger) Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorTag, fmt.Sprintf(format, args...))
}
