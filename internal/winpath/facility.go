package winpath

import "github.com/rjdinis/cygconv/internal/types"

// Flag controls a conversion facility call.
type Flag uint32

// Direction and modifier bits, mirroring the Cygwin conversion API.
const (
	// PosixToWindows converts a POSIX path to wide-character Windows form.
	PosixToWindows Flag = 0x01
	// WindowsToPosix converts a wide-character Windows path to POSIX form.
	WindowsToPosix Flag = 0x03
	// Relative permits a relative result. Without it the conversion is
	// forced absolute.
	Relative Flag = 0x100
)

const directionMask Flag = 0x03

// Direction returns the direction bits of f.
func (f Flag) Direction() Flag {
	return f & directionMask
}

// IsRelative reports whether relative results are permitted.
func (f Flag) IsRelative() bool {
	return f&Relative != 0
}

// ConvDirection maps the direction bits to a types.Direction.
func (f Flag) ConvDirection() types.Direction {
	switch f.Direction() {
	case PosixToWindows:
		return types.DirectionToWindows
	case WindowsToPosix:
		return types.DirectionFromWindows
	default:
		return types.DirectionUnknown
	}
}

// Facility converts paths between POSIX and native Windows form,
// resolving relative paths against the process working directory.
//
// A nil dst queries the required output length in bytes, including the
// facility's terminator accounting: a 2-byte wide NUL for PosixToWindows
// output, a single NUL byte for WindowsToPosix output. A non-nil dst is
// filled with the conversion result.
type Facility interface {
	Convert(flags Flag, src, dst []byte) (int, error)
}

// FacilityFunc adapts a function to the Facility interface.
type FacilityFunc func(flags Flag, src, dst []byte) (int, error)

func (f FacilityFunc) Convert(flags Flag, src, dst []byte) (int, error) {
	return f(flags, src, dst)
}
