// SPDX-License-Identifier: MIT

// Package lp: domain types shared by every solver in the package.
// This file contains ONLY data types and their small accessors; algorithms
// live in graphical.go, simplex.go and general.go, the dispatcher in solve.go.
package lp

import "math"

// Relation is the comparison operator of a constraint row.
type Relation int

const (
	// LE is "≤" (the zero value, matching a plain tableau row).
	LE Relation = iota
	// EQ is "=".
	EQ
	// GE is "≥".
	GE
)

// String renders the relation the way constraint text shows it.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Sign is an optional per-row or per-objective sign override.
// The zero value means "no override" and behaves like SignPlus.
type Sign string

const (
	SignNone  Sign = ""
	SignPlus  Sign = "+"
	SignMinus Sign = "-"
)

// Method names a solving strategy requested by the caller.
type Method string

const (
	// MethodGraphical enumerates vertices of a 2-variable feasible region.
	MethodGraphical Method = "graphical"
	// MethodSimplex runs the primal tableau simplex on ≤ rows.
	MethodSimplex Method = "simplex"
	// MethodGeneral builds the general-form augmented system, then runs simplex.
	MethodGeneral Method = "general"
)

// Methods lists every known method in a stable order.
var Methods = []Method{MethodGraphical, MethodSimplex, MethodGeneral}

// Problem is a small linear program.
//
// Invariant: len(Constraints) == len(Relations) == len(RHS), and every
// constraint row has len(Objective) coefficients. Validate checks it.
type Problem struct {
	Maximize    bool        // true for max, false for min
	Objective   []float64   // n coefficients
	Constraints [][]float64 // m rows of n coefficients
	Relations   []Relation  // one per row
	RHS         []float64   // one per row

	// Optional sign overrides, applied by Preprocess before solving.
	ObjectiveSign   Sign
	ConstraintSigns []Sign // honored only when len == len(Constraints)
}

// NumVars returns n, the variable count that drives method selection.
func (p Problem) NumVars() int { return len(p.Objective) }

// NumConstraints returns m.
func (p Problem) NumConstraints() int { return len(p.Constraints) }

// Status classifies how a solve ended.
type Status int

const (
	// StatusOptimal: an optimal point was found.
	StatusOptimal Status = iota
	// StatusInfeasible: the graphical filter left no candidate point.
	StatusInfeasible
	// StatusUnbounded: the simplex ratio test found no finite ratio.
	StatusUnbounded
	// StatusIterationLimit: the simplex loop hit its iteration cap.
	StatusIterationLimit
	// StatusFailed: invalid input or an unexpected fault caught at Solve.
	StatusFailed
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DisplayTable is the pre-rendered table handed to the presentation layer.
type DisplayTable struct {
	Headers []string
	Rows    [][]string
}

// Pivot identifies the tableau cell chosen in one simplex step, along with
// the variable indices that enter and leave the basis.
type Pivot struct {
	Row      int // constraint row index (0-based)
	Col      int // tableau column index (0-based), equal to Entering
	Entering int // variable index entering the basis
	Leaving  int // variable index leaving the basis
}

// IterationSnapshot is one recorded simplex step.
//
// Tableau has m+2 rows: m constraint rows, the Cj (objective coefficient)
// row, and the Δj (reduced cost) row; the last column is the RHS. The
// tableau is the state BEFORE the pivot described by Pivot is applied.
type IterationSnapshot struct {
	Index     int
	Tableau   [][]float64
	Basis     []int     // variable index of the basic variable per constraint row
	Pivot     *Pivot    // nil for the initial snapshot
	Ratios    []float64 // ratio test per row, +Inf where undefined; nil without pivot
	IsOptimal bool
}

// BasisLabels renders Basis with VarLabel.
func (s IterationSnapshot) BasisLabels() []string {
	out := make([]string, len(s.Basis))
	for i, v := range s.Basis {
		out[i] = VarLabel(v)
	}

	return out
}

// EnteringLabel returns the label of the entering variable, or "" for the
// initial snapshot.
func (s IterationSnapshot) EnteringLabel() string {
	if s.Pivot == nil {
		return ""
	}

	return VarLabel(s.Pivot.Entering)
}

// LeavingLabel returns the label of the leaving variable, or "".
func (s IterationSnapshot) LeavingLabel() string {
	if s.Pivot == nil {
		return ""
	}

	return VarLabel(s.Pivot.Leaving)
}

// Solution is the immutable result of one Solve call.
type Solution struct {
	Valid      bool
	Status     Status
	Method     Method    // solver that actually ran
	Point      []float64 // n coordinates; empty when !Valid
	Value      float64   // objective value; 0 when !Valid
	Table      DisplayTable
	Iterations []IterationSnapshot // simplex only

	err error // cause for StatusFailed
}

// Err returns nil for an optimal solution, otherwise the sentinel matching
// Status (wrapped with detail for StatusFailed).
func (s Solution) Err() error {
	switch s.Status {
	case StatusOptimal:
		return nil
	case StatusInfeasible:
		return ErrInfeasible
	case StatusUnbounded:
		return ErrUnbounded
	case StatusIterationLimit:
		return ErrIterationLimit
	default:
		if s.err != nil {
			return s.err
		}
		return ErrSolverFault
	}
}

// invalid builds the shared failure shape: empty point, value 0, empty table.
func invalid(method Method, status Status, iters []IterationSnapshot) Solution {
	return Solution{
		Valid:      false,
		Status:     status,
		Method:     method,
		Point:      []float64{},
		Value:      0,
		Table:      DisplayTable{Headers: []string{}, Rows: [][]string{}},
		Iterations: iters,
	}
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
