// Package lplab is a small, step-by-step linear programming engine for
// teaching and inspection: every solve returns not just an optimum but the
// tables that show how it was reached.
//
// 🚀 What is inside?
//
//	• Graphical method: vertex enumeration for 2-variable problems
//	• Tableau simplex: Cj / Δj rows, ratio test, snapshot per pivot
//	• General form: augmented system with slack and artificial columns
//	• Sign overrides on the objective and individual constraint rows
//
// ✨ Why lplab?
//
//   - Deterministic: fixed loop orders, first-wins tie breaking
//   - Transparent: snapshots are deep copies, safe to keep and render
//   - Never panics at the entry point: failures come back as a Solution
//
// Layout:
//
//	lp/           - Problem, Solve, the three solvers and their display tables
//	matrix/       - dense row-major storage, Gauss–Jordan row ops, 2×2 solver
//	internal/cli/ - cobra commands, YAML problem loader, text/JSON rendering
//	cmd/lpsolve/  - the command-line entry point
//
// Quick example:
//
//	sol := lp.Solve(lp.Problem{
//		Maximize:    true,
//		Objective:   []float64{3, 5},
//		Constraints: [][]float64{{1, 0}, {0, 2}, {3, 2}},
//		Relations:   []lp.Relation{lp.LE, lp.LE, lp.LE},
//		RHS:         []float64{4, 12, 18},
//	}, "")
//	// sol.Method == "graphical", sol.Point == [2 6], sol.Value == 36
//
//	go install github.com/katalvlaran/lplab/cmd/lpsolve@latest
package lplab
