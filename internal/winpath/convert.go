// Package winpath converts paths between the POSIX emulation layer's
// syntax and native Windows syntax by delegating to the platform
// conversion facility.
package winpath

import (
	"errors"

	"github.com/rjdinis/cygconv/internal/logging"
	"github.com/rjdinis/cygconv/internal/types"
)

// Converter performs path conversions against a Facility.
type Converter struct {
	logger     *logging.Logger
	facility   Facility
	defaultDir string
}

// New creates a new Converter. Relative paths are resolved against
// defaultDir for the duration of each conversion.
func New(logger *logging.Logger, facility Facility, defaultDir string) *Converter {
	return &Converter{
		logger:     logger,
		facility:   facility,
		defaultDir: defaultDir,
	}
}

// PathToNative converts a POSIX path to native Windows form. With
// absolute set, the result is forced to a drive-rooted path.
func (c *Converter) PathToNative(path string, absolute bool) (string, error) {
	flags := PosixToWindows
	if !absolute {
		flags |= Relative
	}

	var out []byte
	err := c.withSavedWorkingDirectory(func() error {
		c.logger.Debug("Converting %s: %q (flags=%#x)", flags.ConvDirection(), path, flags)
		b, err := c.sizedConvert(flags, encodeFile(path), 2)
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return "", convError("to-windows", path, err)
	}

	// The filled buffer holds the wide payload plus one byte of the wide
	// terminator; FromWide trims the odd byte.
	converted, err := FromWide(Buffer{Kind: Raw, Bytes: out})
	if err != nil {
		return "", convError("to-windows", path, err)
	}
	return converted, nil
}

// PathFromNative converts a native Windows path to POSIX form.
func (c *Converter) PathFromNative(path string, absolute bool) (string, error) {
	wide, err := ToWide(path)
	if err != nil {
		return "", convError("from-windows", path, err)
	}

	flags := WindowsToPosix
	if !absolute {
		flags |= Relative
	}

	var out []byte
	err = c.withSavedWorkingDirectory(func() error {
		c.logger.Debug("Converting %s: %q (flags=%#x)", flags.ConvDirection(), path, flags)
		b, err := c.sizedConvert(flags, wide, 1)
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return "", convError("from-windows", path, err)
	}

	return decodeFile(out), nil
}

// sizedConvert runs the facility's two-call protocol: query the required
// length with a nil destination, then fill. min is the smallest length
// that can represent a converted path plus terminator (2 for wide
// output, 1 for raw output); anything below it fails without a second
// call. The destination is one byte smaller than the queried length, the
// terminator accounting the facility applies.
func (c *Converter) sizedConvert(flags Flag, src []byte, min int) ([]byte, error) {
	n, err := c.facility.Convert(flags, src, nil)
	if err != nil {
		return nil, err
	}
	if n < min {
		return nil, types.ErrShortResult
	}

	out := make([]byte, n-1)
	if _, err := c.facility.Convert(flags, src, out); err != nil {
		return nil, err
	}
	return out, nil
}

// convError wraps err with operation context unless it already carries it.
func convError(op, path string, err error) error {
	var cerr *types.ConvError
	if errors.As(err, &cerr) {
		return err
	}
	return types.NewConvError(op, path, err, "")
}
