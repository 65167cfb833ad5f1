package winpath

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rjdinis/cygconv/internal/logging"
	"github.com/rjdinis/cygconv/internal/types"
)

// Known conversion tools, in probe order. cygpath ships with Cygwin and
// MSYS2; wslpath ships inside WSL distributions. Both take -u/-w for the
// direction and -a to force an absolute result.
var knownTools = []string{"cygpath", "wslpath"}

const toolHelp = "Install cygpath (Cygwin, MSYS2) or run inside WSL where wslpath is available."

// ToolFacility delegates path conversions to the platform conversion tool.
type ToolFacility struct {
	logger  *logging.Logger
	tool    string
	timeout time.Duration
}

// NewToolFacility creates a facility backed by the named tool. A tool of
// "auto" (or empty) probes PATH for a known one.
func NewToolFacility(logger *logging.Logger, tool string, timeout time.Duration) (*ToolFacility, error) {
	resolved, err := resolveTool(tool)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using conversion tool: %s", resolved)
	return &ToolFacility{logger: logger, tool: resolved, timeout: timeout}, nil
}

func resolveTool(tool string) (string, error) {
	if tool != "" && tool != "auto" {
		if _, err := exec.LookPath(tool); err != nil {
			return "", types.NewConvError("detect conversion tool", tool, types.ErrToolNotFound, toolHelp)
		}
		return tool, nil
	}
	for _, t := range knownTools {
		if _, err := exec.LookPath(t); err == nil {
			return t, nil
		}
	}
	return "", types.NewConvError("detect conversion tool", "", types.ErrToolNotFound, toolHelp)
}

// Convert implements Facility by running the conversion tool and
// marshaling its input and output per direction.
func (f *ToolFacility) Convert(flags Flag, src, dst []byte) (int, error) {
	in, err := decodeSource(flags, src)
	if err != nil {
		return -1, err
	}

	out, err := f.run(flags, in)
	if err != nil {
		return -1, err
	}

	enc, err := encodeResult(flags, out)
	if err != nil {
		return -1, err
	}

	if dst == nil {
		return len(enc), nil
	}
	return copy(dst, enc), nil
}

// decodeSource unmarshals the facility's source operand: wide bytes for
// the windows-to-posix direction, on-disk bytes otherwise. Terminator
// bytes are stripped before the tool sees the path.
func decodeSource(flags Flag, src []byte) (string, error) {
	if flags.Direction() == WindowsToPosix {
		s, err := FromWide(Buffer{Kind: Wide, Bytes: src})
		if err != nil {
			return "", err
		}
		return strings.TrimRight(s, "\x00"), nil
	}
	return strings.TrimRight(decodeFile(src), "\x00"), nil
}

// encodeResult marshals the tool's output the way the facility reports
// it: UTF-16LE plus a wide NUL for windows results, on-disk bytes plus a
// single NUL for posix results.
func encodeResult(flags Flag, out string) ([]byte, error) {
	if flags.Direction() == PosixToWindows {
		enc, err := utf16le.NewEncoder().Bytes([]byte(out))
		if err != nil {
			return nil, fmt.Errorf("utf-16le encode failed: %w", err)
		}
		return append(enc, 0, 0), nil
	}
	return append(encodeFile(out), 0), nil
}

func (f *ToolFacility) run(flags Flag, path string) (string, error) {
	args := toolArgs(flags, path)
	f.logger.Debug("Running: %s %s", f.tool, strings.Join(args, " "))

	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, f.tool, args...)
	output, err := cmd.Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s: %w", f.tool, types.ErrConvertTimeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s failed: %s: %w", f.tool, strings.TrimSpace(string(exitErr.Stderr)), types.ErrConvertFailed)
		}
		return "", fmt.Errorf("%s failed: %v: %w", f.tool, err, types.ErrConvertFailed)
	}

	// Strip the trailing newline and any NUL bytes the tool emits.
	output = bytes.ReplaceAll(output, []byte{0}, []byte{})
	return strings.TrimRight(string(output), "\r\n"), nil
}

// toolArgs builds the tool invocation for flags.
func toolArgs(flags Flag, path string) []string {
	var args []string
	if flags.Direction() == PosixToWindows {
		args = append(args, "-w")
	} else {
		args = append(args, "-u")
	}
	if !flags.IsRelative() {
		args = append(args, "-a")
	}
	return append(args, path)
}
