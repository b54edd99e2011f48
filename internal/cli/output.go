// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/katalvlaran/lplab/lp"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Optimal solution printed
	ExitFailure      = 1 // Solve finished without an optimum (infeasible, unbounded, iteration limit, invalid input)
	ExitCommandError = 2 // Command error (bad flags, missing or unreadable problem file)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format         string
	Writer         io.Writer
	ShowIterations bool
}

// Solution writes sol in the configured format.
func (f *OutputFormatter) Solution(sol lp.Solution) error {
	if f.Format == "json" {
		return f.writeJSON(solutionResponse(sol, f.ShowIterations))
	}
	return RenderText(f.Writer, sol, f.ShowIterations)
}

// Error writes a command-level error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return f.writeJSON(map[string]any{
			"status": "error",
			"error":  map[string]any{"code": code, "message": message},
		})
	}
	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// Lines writes one entry per line in text mode, or a JSON list under "data".
func (f *OutputFormatter) Lines(lines []string) error {
	if f.Format == "json" {
		return f.writeJSON(map[string]any{"status": "ok", "data": stringList(lines)})
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(f.Writer, l); err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) writeJSON(v map[string]any) error {
	s, err := structpb.NewStruct(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintln(f.Writer, string(b))
	return err
}

// solutionResponse builds the JSON envelope for sol. A solve without an
// optimum is reported with status "error" and still carries its data.
func solutionResponse(sol lp.Solution, withIterations bool) map[string]any {
	data := map[string]any{
		"valid":  sol.Valid,
		"method": string(sol.Method),
		"status": sol.Status.String(),
		"point":  floatList(sol.Point),
		"value":  sol.Value,
		"table": map[string]any{
			"headers": stringList(sol.Table.Headers),
			"rows":    stringMatrix(sol.Table.Rows),
		},
	}
	if withIterations {
		iters := make([]any, len(sol.Iterations))
		for i, it := range sol.Iterations {
			iters[i] = snapshotValue(it)
		}
		data["iterations"] = iters
	}

	resp := map[string]any{"status": "ok", "data": data}
	if err := sol.Err(); err != nil {
		resp["status"] = "error"
		resp["error"] = map[string]any{"code": ErrCodeNoOptima, "message": err.Error()}
	}
	return resp
}

func snapshotValue(s lp.IterationSnapshot) map[string]any {
	rows := make([]any, len(s.Tableau))
	for i, r := range s.Tableau {
		rows[i] = floatList(r)
	}
	v := map[string]any{
		"index":   s.Index,
		"basis":   stringList(s.BasisLabels()),
		"tableau": rows,
		"optimal": s.IsOptimal,
	}
	if s.Pivot != nil {
		v["pivot"] = map[string]any{
			"row":      s.Pivot.Row,
			"col":      s.Pivot.Col,
			"entering": s.EnteringLabel(),
			"leaving":  s.LeavingLabel(),
		}
		ratios := make([]any, len(s.Ratios))
		for i, r := range s.Ratios {
			if math.IsInf(r, 1) {
				ratios[i] = nil // JSON has no infinity
				continue
			}
			ratios[i] = r
		}
		v["ratios"] = ratios
	}
	return v
}

func floatList(v []float64) []any {
	out := make([]any, len(v))
	for i, x := range v {
		out[i] = x
	}
	return out
}

func stringList(v []string) []any {
	out := make([]any, len(v))
	for i, s := range v {
		out[i] = s
	}
	return out
}

func stringMatrix(v [][]string) []any {
	out := make([]any, len(v))
	for i, r := range v {
		out[i] = stringList(r)
	}
	return out
}
