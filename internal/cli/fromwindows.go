package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/cygconv/internal/validation"
	"github.com/rjdinis/cygconv/pkg/utils"
)

func newFromWindowsCmd() *cobra.Command {
	var absolute bool
	cmd := &cobra.Command{
		Use:   "from-windows PATH",
		Short: "Convert a native Windows path to POSIX form",
		Long: `Convert a native Windows path (drive-rooted, UNC, or relative) to the
POSIX form used on the emulation layer.

Relative paths stay relative unless --absolute is given.`,
		Example: `  cygconv from-windows 'C:\Users\foo\file.txt'
  cygconv from-windows --absolute 'projects\demo'
  cygconv from-windows '\\server\share\docs'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFromWindows(args[0], absolute)
		},
	}
	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, "Force an absolute result")
	return cmd
}

func runFromWindows(path string, absolute bool) error {
	ctx := getContext()
	log := ctx.Logger

	if err := validation.ValidateWindowsPath(path); err != nil {
		return err
	}
	if !utils.LooksNative(path) {
		log.Warn("Input does not look like a Windows path: %s", path)
	}
	if !absolute && utils.HasRootPrefix(path) {
		log.Debug("Input is drive-rooted; the result is absolute regardless of --absolute")
	}

	converted, err := ctx.Converter.PathFromNative(path, absolute)
	if err != nil {
		return err
	}

	fmt.Println(converted)
	return nil
}
