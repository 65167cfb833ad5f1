// Package validation provides input validation for cygconv.
package validation

import (
	"errors"
	"regexp"
)

var (
	ErrEmptyInput         = errors.New("input is empty")
	ErrPathTooLong        = errors.New("path exceeds maximum length")
	ErrEmbeddedNul        = errors.New("path contains a NUL byte")
	ErrControlCharacter   = errors.New("path contains control characters")
	ErrInvalidWindowsPath = errors.New("invalid Windows path format")
)

var (
	embeddedNulPattern = regexp.MustCompile("\x00")
	controlCharPattern = regexp.MustCompile("[\x01-\x1f\x7f]")
	drivePattern       = regexp.MustCompile(`^[A-Za-z]:`)
	driveShapedPattern = regexp.MustCompile(`^.:`)
)

// MaxPathLength caps input paths at the POSIX PATH_MAX on the emulation layer.
const MaxPathLength = 4096

// ValidatePath checks constraints common to both path syntaxes.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyInput
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if embeddedNulPattern.MatchString(path) {
		return ErrEmbeddedNul
	}
	if controlCharPattern.MatchString(path) {
		return ErrControlCharacter
	}
	return nil
}

// ValidateWindowsPath checks that path is plausible input for the
// windows-to-posix direction. Relative paths without a drive designator
// are allowed; anything shaped like a drive designator must carry a
// well-formed drive letter.
func ValidateWindowsPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if driveShapedPattern.MatchString(path) && !drivePattern.MatchString(path) {
		return ErrInvalidWindowsPath
	}
	return nil
}
