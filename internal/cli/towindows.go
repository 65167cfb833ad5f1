package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/cygconv/internal/validation"
	"github.com/rjdinis/cygconv/pkg/utils"
)

func newToWindowsCmd() *cobra.Command {
	var absolute bool
	cmd := &cobra.Command{
		Use:   "to-windows PATH",
		Short: "Convert a POSIX path to native Windows form",
		Long: `Convert a POSIX path to the native Windows form consumed by Windows
tools and APIs.

Relative paths stay relative unless --absolute is given, in which case
the result is resolved against the default directory and drive-rooted.`,
		Example: `  cygconv to-windows /home/user/file.txt
  cygconv to-windows --absolute ../projects
  CYGCONV_DEFAULT_DIR=/srv cygconv to-windows data/out.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToWindows(args[0], absolute)
		},
	}
	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, "Force an absolute result")
	return cmd
}

func runToWindows(path string, absolute bool) error {
	ctx := getContext()
	log := ctx.Logger

	if err := validation.ValidatePath(path); err != nil {
		return err
	}
	if utils.LooksNative(path) {
		log.Warn("Input already looks like a Windows path: %s", path)
	}

	converted, err := ctx.Converter.PathToNative(path, absolute)
	if err != nil {
		return err
	}

	fmt.Println(converted)
	return nil
}
