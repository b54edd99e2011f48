// SPDX-License-Identifier: MIT

package cli

import (
	goflag "flag"
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// verboseLogLevel is the glog verbosity switched on by --verbose.
const verboseLogLevel = "2"

// NewRootCommand creates the root command for the lpsolve CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "lpsolve",
		Short:         "lpsolve - step-by-step linear programming",
		Long:          "Solve small linear programs with the graphical method or the tableau simplex, showing every step.",
		SilenceErrors: true, // main prints the error and maps the exit code
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Verbose {
				if err := goflag.Set("v", verboseLogLevel); err != nil {
					return WrapExitError(ExitCommandError, "enable verbose logging", err)
				}
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// glog flags; its -v would collide with --verbose, which sets it instead.
	goflag.CommandLine.VisitAll(func(f *goflag.Flag) {
		if f.Name == "v" || cmd.PersistentFlags().Lookup(f.Name) != nil {
			return
		}
		cmd.PersistentFlags().AddGoFlag(f)
	})

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Add subcommands
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewMethodsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
