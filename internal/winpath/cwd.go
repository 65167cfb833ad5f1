package winpath

import (
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/rjdinis/cygconv/internal/types"
)

// withSavedWorkingDirectory runs body with the process working directory
// switched to the converter's default directory, restoring the original
// directory on every exit path. The conversion facility resolves relative
// paths against the process working directory, not against the logical
// default directory the caller tracks, so the switch brackets every
// conversion.
func (c *Converter) withSavedWorkingDirectory(body func() error) error {
	fd, err := unix.Open(".", unix.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		return types.NewConvError("open current directory", "", err, "")
	}
	defer func() {
		// Best effort: a failed restore must not mask the body's result.
		_ = unix.Fchdir(fd)
		_ = unix.Close(fd)
	}()

	dir := c.resolveDefaultDir()
	if err := unix.Chdir(dir); err != nil {
		return types.NewConvError("chdir", dir, err, "")
	}

	return body()
}

// resolveDefaultDir resolves the logical default directory to an absolute
// path, falling back to the filesystem root when that fails.
func (c *Converter) resolveDefaultDir() string {
	dir := c.defaultDir
	if dir == "" {
		return "/"
	}
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "/"
		}
		dir = abs
	}
	return dir
}
