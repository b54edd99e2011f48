// Package lp solves small linear programs and records how it got there.
//
// 🚀 What is lp?
//
//	A teaching-oriented LP engine: maximize or minimize c·x subject to rows
//	a_i·x {≤,=,≥} b_i and x ≥ 0, returning both the optimum and a trace a
//	learner can follow.
//
// ✨ Solvers:
//   - Graphical (n == 2): enumerate line/line and line/axis crossings, keep
//     the feasible ones, pick the best. Produces a constraint/points table.
//   - Simplex: primal tableau simplex on ≤ rows with unit slacks, one
//     IterationSnapshot per pivot (pre-pivot tableau, ratios, labels).
//   - General: builds the slack/surplus/artificial standard form, then runs
//     the simplex on the original rows.
//
// ⚙️ Usage:
//
//	p := lp.Problem{
//	  Maximize:    true,
//	  Objective:   []float64{3, 5},
//	  Constraints: [][]float64{{1, 0}, {0, 2}, {3, 2}},
//	  Relations:   []lp.Relation{lp.LE, lp.LE, lp.LE},
//	  RHS:         []float64{4, 12, 18},
//	}
//	sol := lp.Solve(p, lp.MethodSimplex) // n == 2 ⇒ graphical anyway
//
// Failures are data: Solve never panics and reports infeasible, unbounded,
// iteration-limit and invalid-input outcomes through Solution.Status and
// Solution.Err.
//
// Determinism: every tie is broken by first occurrence, so identical
// inputs give identical Solutions, snapshots included.
package lp
