// Package cli implements the command-line interface for cygconv.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/cygconv/internal/config"
	"github.com/rjdinis/cygconv/internal/logging"
	"github.com/rjdinis/cygconv/internal/winpath"
)

type AppContext struct {
	Config    *config.Config
	Logger    *logging.Logger
	Converter *winpath.Converter
}

var (
	appCtx *AppContext
	quiet  bool
	debug  bool
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cygconv",
		Short: "Convert paths between POSIX and native Windows form",
		Long: `cygconv converts paths between the POSIX syntax used on a Windows
POSIX-emulation layer (Cygwin, MSYS2, WSL) and the native Windows syntax
consumed by Windows tools and APIs.

Path-syntax translation is delegated to the platform conversion tool
(cygpath or wslpath); cygconv handles the encoding bridge around it.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			appCtx, err = initContext()
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Run in quiet mode")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Run in debug mode")

	rootCmd.AddCommand(
		newVersionCmd(version, commit, date),
		newCompletionCmd(),
		newToWindowsCmd(),
		newFromWindowsCmd(),
	)

	return rootCmd
}

func initContext() (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.SetQuiet(quiet)
	cfg.SetDebug(debug)

	logger := logging.New(cfg.Quiet, cfg.Debug)

	facility, err := winpath.NewToolFacility(logger, cfg.Tool, cfg.ConvertTimeout)
	if err != nil {
		return nil, err
	}

	converter := winpath.New(logger, facility, cfg.DefaultDir)

	return &AppContext{
		Config:    cfg,
		Logger:    logger,
		Converter: converter,
	}, nil
}

func getContext() *AppContext { return appCtx }

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cygconv version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
