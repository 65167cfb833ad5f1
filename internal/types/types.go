// Package types contains shared types and error definitions for cygconv.
package types

import (
	"errors"
	"fmt"
)

// Direction identifies which way a path conversion runs.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionToWindows
	DirectionFromWindows
)

func (d Direction) String() string {
	switch d {
	case DirectionToWindows:
		return "posix to windows"
	case DirectionFromWindows:
		return "windows to posix"
	default:
		return "unknown"
	}
}

// Sentinel errors for path conversion operations
var (
	ErrToolNotFound   = errors.New("no path conversion tool found")
	ErrShortResult    = errors.New("conversion result too short")
	ErrConvertFailed  = errors.New("path conversion failed")
	ErrConvertTimeout = errors.New("path conversion timed out")
)

// ConvError represents a conversion error with context
type ConvError struct {
	Op   string
	Path string
	Err  error
	Help string
}

func (e *ConvError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConvError) Unwrap() error {
	return e.Err
}

// IsToolNotFound checks if the error indicates no conversion tool is available
func IsToolNotFound(err error) bool {
	return errors.Is(err, ErrToolNotFound)
}

// IsShortResult checks if the error indicates a below-minimum length query
func IsShortResult(err error) bool {
	return errors.Is(err, ErrShortResult)
}

// NewConvError creates a new ConvError
func NewConvError(op, path string, err error, help string) *ConvError {
	return &ConvError{Op: op, Path: path, Err: err, Help: help}
}
