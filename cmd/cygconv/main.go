// Package main is the entry point for the cygconv CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rjdinis/cygconv/internal/cli"
	"github.com/rjdinis/cygconv/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// If it's a ConvError with help text, print that too
		var convErr *types.ConvError
		if errors.As(err, &convErr) && convErr.Help != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", convErr.Help)
		}

		os.Exit(1)
	}
}
