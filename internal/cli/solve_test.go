// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSolveGolden(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{
			name:     "solve_graphical",
			args:     []string{"solve", "testdata/scenario_a.yaml"},
			exitCode: ExitSuccess,
		},
		{
			name:     "solve_simplex_iterations",
			args:     []string{"solve", "testdata/single_pivot.yaml", "--iterations"},
			exitCode: ExitSuccess,
		},
		{
			name:     "solve_unbounded_iterations",
			args:     []string{"solve", "testdata/unbounded.yaml", "-i"},
			exitCode: ExitFailure,
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestSolveGraphicalIgnoresMethod(t *testing.T) {
	out, err := execute(t, "solve", "testdata/scenario_a.yaml", "--method", "general")
	require.NoError(t, err)
	assert.Contains(t, out, "method: graphical\n")
}

func TestSolveGeneralMethod(t *testing.T) {
	out, err := execute(t, "solve", "testdata/single_pivot.yaml", "-m", "general")
	require.NoError(t, err)
	assert.Contains(t, out, "method: general\n")
	assert.Contains(t, out, "value: 30\n")
}

func TestSolveInfeasible(t *testing.T) {
	out, err := execute(t, "solve", "testdata/infeasible.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "method: graphical\nstatus: infeasible\nerror: lp: problem is infeasible\n", out)
}

func TestSolveMaxIterations(t *testing.T) {
	out, err := execute(t, "solve", "testdata/single_pivot.yaml", "--max-iterations", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "status: optimal\n")

	// The optimality check after the only pivot needs a second pass.
	out, err = execute(t, "solve", "testdata/single_pivot.yaml", "--max-iterations", "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "status: iteration-limit\n")

	_, err = execute(t, "solve", "testdata/single_pivot.yaml", "--max-iterations", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSolveCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing file",
			args: []string{"solve", "testdata/missing.yaml"},
			want: "Error [E001]: problem file not found: testdata/missing.yaml\n",
		},
		{
			name: "unknown method",
			args: []string{"solve", "testdata/scenario_a.yaml", "--method", "newton"},
			want: "Error [E003]: unknown method \"newton\": must be one of graphical|simplex|general\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Equal(t, tt.want, out)
		})
	}
}

type jsonResponse struct {
	Status string `json:"status"`
	Data   struct {
		Valid  bool      `json:"valid"`
		Method string    `json:"method"`
		Status string    `json:"status"`
		Point  []float64 `json:"point"`
		Value  float64   `json:"value"`
		Table  struct {
			Headers []string   `json:"headers"`
			Rows    [][]string `json:"rows"`
		} `json:"table"`
		Iterations []struct {
			Index   int        `json:"index"`
			Basis   []string   `json:"basis"`
			Optimal bool       `json:"optimal"`
			Ratios  []*float64 `json:"ratios"`
			Pivot   *struct {
				Row      int    `json:"row"`
				Col      int    `json:"col"`
				Entering string `json:"entering"`
				Leaving  string `json:"leaving"`
			} `json:"pivot"`
		} `json:"iterations"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestSolveJSON(t *testing.T) {
	out, err := execute(t, "solve", "testdata/single_pivot.yaml", "--format", "json", "--iterations")
	require.NoError(t, err)

	var resp jsonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
	assert.True(t, resp.Data.Valid)
	assert.Equal(t, "simplex", resp.Data.Method)
	assert.Equal(t, "optimal", resp.Data.Status)
	assert.Equal(t, []float64{0, 0, 10}, resp.Data.Point)
	assert.Equal(t, 30.0, resp.Data.Value)
	assert.Equal(t, []string{"Ci", "i", "A1", "A2", "A3", "A4", "A0"}, resp.Data.Table.Headers)
	require.Len(t, resp.Data.Table.Rows, 3)

	require.Len(t, resp.Data.Iterations, 2)
	first, second := resp.Data.Iterations[0], resp.Data.Iterations[1]
	assert.Nil(t, first.Pivot)
	assert.False(t, first.Optimal)
	assert.Equal(t, []string{"A4"}, first.Basis)

	require.NotNil(t, second.Pivot)
	assert.Equal(t, 0, second.Pivot.Row)
	assert.Equal(t, 2, second.Pivot.Col)
	assert.Equal(t, "A3", second.Pivot.Entering)
	assert.Equal(t, "A4", second.Pivot.Leaving)
	assert.True(t, second.Optimal)
	require.Len(t, second.Ratios, 1)
	require.NotNil(t, second.Ratios[0])
	assert.Equal(t, 10.0, *second.Ratios[0])
}

func TestSolveJSONInfeasible(t *testing.T) {
	out, err := execute(t, "solve", "testdata/infeasible.yaml", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp jsonResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNoOptima, resp.Error.Code)
	assert.False(t, resp.Data.Valid)
	assert.Equal(t, "infeasible", resp.Data.Status)
	assert.Empty(t, resp.Data.Point)
	assert.Empty(t, resp.Data.Iterations, "iterations are omitted without --iterations")
}

func TestMethodsCommand(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)
	assert.Equal(t, "graphical\nsimplex\ngeneral\n", out)

	out, err = execute(t, "methods", "--format", "json")
	require.NoError(t, err)
	var resp struct {
		Status string   `json:"status"`
		Data   []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []string{"graphical", "simplex", "general"}, resp.Data)
}

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestSolveReportsWriteFailures(t *testing.T) {
	f := &OutputFormatter{Format: "text", Writer: failingWriter{}}

	tests := []struct {
		name string
		opts SolveOptions
		path string
	}{
		{
			name: "unknown method",
			opts: SolveOptions{Method: "newton", MaxIterations: 1},
			path: "testdata/scenario_a.yaml",
		},
		{
			name: "bad max iterations",
			opts: SolveOptions{MaxIterations: 0},
			path: "testdata/scenario_a.yaml",
		},
		{
			name: "missing file",
			opts: SolveOptions{MaxIterations: 1},
			path: "testdata/missing.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := runSolve(f, &opts, tt.path)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.ErrorIs(t, err, errBrokenPipe)
		})
	}

	// The load cause survives next to the write failure.
	err := runSolve(f, &SolveOptions{MaxIterations: 1}, "testdata/missing.yaml")
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}
