// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/lp"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	Method         string
	MaxIterations  int
	ShowIterations bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a linear program from a YAML file",
		Long: `Solve a linear program described in a YAML file.

Problems with exactly two variables are always solved graphically; others
use the tableau simplex unless --method=general is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:         rootOpts.Format,
				Writer:         cmd.OutOrStdout(),
				ShowIterations: opts.ShowIterations,
			}
			return runSolve(formatter, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Method, "method", "m", "",
		fmt.Sprintf("solving method (%s); empty selects the default", methodNames()))
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", lp.DefaultMaxIterations, "simplex iteration cap")
	cmd.Flags().BoolVarP(&opts.ShowIterations, "iterations", "i", false, "print every simplex iteration")

	return cmd
}

func runSolve(f *OutputFormatter, opts *SolveOptions, path string) error {
	method, ok := lp.ParseMethod(opts.Method)
	if !ok {
		msg := fmt.Sprintf("unknown method %q: must be one of %s", opts.Method, methodNames())
		return reportCommandError(f, ErrCodeInvalid, msg, NewExitError(ExitCommandError, msg))
	}
	if opts.MaxIterations <= 0 {
		msg := fmt.Sprintf("--max-iterations must be > 0, got %d", opts.MaxIterations)
		return reportCommandError(f, ErrCodeInvalid, msg, NewExitError(ExitCommandError, msg))
	}

	problem, err := LoadProblemFile(path)
	if err != nil {
		code, msg := ErrCodeGeneric, err.Error()
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			code, msg = loadErr.Code, loadErr.Message
		}
		return reportCommandError(f, code, msg, WrapExitError(ExitCommandError, "load problem", err))
	}

	log.V(1).Infof("lpsolve: %s: n=%d m=%d method=%q", path, problem.NumVars(), problem.NumConstraints(), method)
	sol := lp.Solve(problem, method, lp.WithMaxIterations(opts.MaxIterations))

	if err = f.Solution(sol); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	if !sol.Valid {
		return WrapExitError(ExitFailure, "no optimal solution", sol.Err())
	}
	return nil
}

// reportCommandError writes code and msg through f and returns exitErr.
// A failed write is logged and joined onto exitErr's cause.
func reportCommandError(f *OutputFormatter, code, msg string, exitErr *ExitError) error {
	if err := f.Error(code, msg); err != nil {
		log.Errorf("lpsolve: write error report: %v", err)
		exitErr.Err = errors.Join(exitErr.Err, err)
	}
	return exitErr
}

// NewMethodsCommand creates the methods command.
func NewMethodsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "methods",
		Short:         "List available solving methods",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Lines(methodList())
		},
	}
}

func methodList() []string {
	names := make([]string, len(lp.Methods))
	for i, m := range lp.Methods {
		names[i] = string(m)
	}
	return names
}

func methodNames() string { return strings.Join(methodList(), "|") }
