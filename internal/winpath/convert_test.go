package winpath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rjdinis/cygconv/internal/logging"
	"github.com/rjdinis/cygconv/internal/types"
)

// stubFacility reports a fixed conversion result without running any
// external tool, recording what the converter handed it.
type stubFacility struct {
	result   string
	queryN   int // overrides the reported length when non-zero
	queryErr error
	fillErr  error

	calls     int
	lastFlags Flag
	gotSrc    []byte
	bodyWd    string
}

func (s *stubFacility) Convert(flags Flag, src, dst []byte) (int, error) {
	s.calls++
	s.lastFlags = flags
	s.gotSrc = append([]byte(nil), src...)
	if wd, err := os.Getwd(); err == nil {
		s.bodyWd = wd
	}

	enc, err := encodeResult(flags, s.result)
	if err != nil {
		return -1, err
	}

	if dst == nil {
		if s.queryErr != nil {
			return -1, s.queryErr
		}
		if s.queryN != 0 {
			return s.queryN, nil
		}
		return len(enc), nil
	}

	if s.fillErr != nil {
		return -1, s.fillErr
	}
	return copy(dst, enc), nil
}

func newTestConverter(t *testing.T, facility Facility) *Converter {
	t.Helper()
	return New(logging.New(true, false), facility, t.TempDir())
}

func TestPathToNative(t *testing.T) {
	stub := &stubFacility{result: `C:\tmp\foo`}
	c := newTestConverter(t, stub)

	got, err := c.PathToNative("/tmp/foo", true)
	require.NoError(t, err)
	require.Equal(t, `C:\tmp\foo`, got)
	require.Equal(t, 2, stub.calls)

	require.Equal(t, PosixToWindows, stub.lastFlags.Direction())
	require.False(t, stub.lastFlags.IsRelative())
	require.Equal(t, []byte("/tmp/foo"), stub.gotSrc)
}

func TestPathToNativeRelativeFlag(t *testing.T) {
	stub := &stubFacility{result: `foo\bar`}
	c := newTestConverter(t, stub)

	got, err := c.PathToNative("foo/bar", false)
	require.NoError(t, err)
	require.Equal(t, `foo\bar`, got)
	require.True(t, stub.lastFlags.IsRelative())
}

func TestPathToNativeShortQuery(t *testing.T) {
	// Lengths 0 and 1 cannot hold a converted path plus terminator.
	for _, n := range []int{-1, 1} {
		stub := &stubFacility{result: `C:\x`, queryN: n}
		c := newTestConverter(t, stub)

		_, err := c.PathToNative("/x", false)
		require.Error(t, err)
		require.True(t, types.IsShortResult(err))
		require.Equal(t, 1, stub.calls, "no fill call after a short length query")
	}
}

func TestPathToNativeFillFailure(t *testing.T) {
	stub := &stubFacility{result: `C:\x`, fillErr: errors.New("invalid argument")}
	c := newTestConverter(t, stub)

	got, err := c.PathToNative("/x", false)
	require.Error(t, err)
	require.Empty(t, got)
	require.Equal(t, 2, stub.calls)
}

func TestPathFromNative(t *testing.T) {
	stub := &stubFacility{result: "/mnt/c/foo"}
	c := newTestConverter(t, stub)

	got, err := c.PathFromNative(`C:\foo`, false)
	require.NoError(t, err)
	require.Equal(t, "/mnt/c/foo", got)
	require.Equal(t, WindowsToPosix, stub.lastFlags.Direction())
	require.True(t, stub.lastFlags.IsRelative())

	// The converter hands the facility a doubly NUL-terminated wide buffer.
	require.GreaterOrEqual(t, len(stub.gotSrc), 2)
	require.Equal(t, []byte{0, 0}, stub.gotSrc[len(stub.gotSrc)-2:])
	decoded, err := decodeSource(WindowsToPosix, stub.gotSrc)
	require.NoError(t, err)
	require.Equal(t, `C:\foo`, decoded)
}

func TestPathFromNativeShortQuery(t *testing.T) {
	stub := &stubFacility{result: "/x", queryN: -1}
	c := newTestConverter(t, stub)

	_, err := c.PathFromNative(`C:\x`, false)
	require.Error(t, err)
	require.True(t, types.IsShortResult(err))
	require.Equal(t, 1, stub.calls)
}

func TestWorkingDirectoryRestored(t *testing.T) {
	origWd, err := os.Getwd()
	require.NoError(t, err)

	t.Run("after success", func(t *testing.T) {
		stub := &stubFacility{result: `C:\x`}
		c := newTestConverter(t, stub)
		defaultDir, err := filepath.EvalSymlinks(c.defaultDir)
		require.NoError(t, err)

		_, err = c.PathToNative("/x", false)
		require.NoError(t, err)

		bodyWd, err := filepath.EvalSymlinks(stub.bodyWd)
		require.NoError(t, err)
		require.Equal(t, defaultDir, bodyWd, "facility runs in the default directory")

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.Equal(t, origWd, wd)
	})

	t.Run("after failure", func(t *testing.T) {
		stub := &stubFacility{result: `C:\x`, fillErr: errors.New("boom")}
		c := newTestConverter(t, stub)

		_, err := c.PathToNative("/x", false)
		require.Error(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.Equal(t, origWd, wd)
	})
}

func TestChdirFailure(t *testing.T) {
	origWd, err := os.Getwd()
	require.NoError(t, err)

	calls := 0
	facility := FacilityFunc(func(flags Flag, src, dst []byte) (int, error) {
		calls++
		return -1, errors.New("unreachable")
	})
	c := New(logging.New(true, false), facility, filepath.Join(t.TempDir(), "does-not-exist"))

	_, err = c.PathToNative("/x", false)
	require.Error(t, err)
	require.Equal(t, 0, calls, "facility must not run after a failed chdir")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, origWd, wd)
}

func TestResolveDefaultDir(t *testing.T) {
	tests := []struct {
		name       string
		defaultDir string
		want       string
	}{
		{"empty falls back to root", "", "/"},
		{"absolute kept", "/usr/local", "/usr/local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(logging.New(true, false), nil, tt.defaultDir)
			require.Equal(t, tt.want, c.resolveDefaultDir())
		})
	}

	t.Run("relative made absolute", func(t *testing.T) {
		c := New(logging.New(true, false), nil, "subdir")
		got := c.resolveDefaultDir()
		require.True(t, filepath.IsAbs(got))
		require.Equal(t, "subdir", filepath.Base(got))
	})
}
