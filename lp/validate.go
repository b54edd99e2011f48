// SPDX-License-Identifier: MIT

// Package lp - input validation.
//
// Design principles:
//   - Deterministic, side-effect free; sentinel errors only.
//   - Checks run in a fixed order: objective → lengths → row widths →
//     finiteness → relations, so the first reported error is stable.
package lp

import "fmt"

// Validate checks the Problem shape invariant and numeric policy.
//
// Errors: ErrEmptyObjective, ErrDimensionMismatch, ErrNaNInf,
// ErrUnknownRelation (wrapped with the offending row where relevant).
//
// Complexity: O(m*n).
func (p Problem) Validate() error {
	n, m := len(p.Objective), len(p.Constraints)

	// Stage 1: objective.
	if n == 0 {
		return ErrEmptyObjective
	}
	for j, c := range p.Objective {
		if !isFinite(c) {
			return fmt.Errorf("objective[%d]: %w", j, ErrNaNInf)
		}
	}

	// Stage 2: parallel slices.
	if len(p.Relations) != m || len(p.RHS) != m {
		return fmt.Errorf("constraints=%d relations=%d rhs=%d: %w",
			m, len(p.Relations), len(p.RHS), ErrDimensionMismatch)
	}

	// Stage 3: rows.
	var i, j int
	for i = 0; i < m; i++ {
		if len(p.Constraints[i]) != n {
			return fmt.Errorf("row %d has %d coefficients, want %d: %w",
				i, len(p.Constraints[i]), n, ErrDimensionMismatch)
		}
		for j = 0; j < n; j++ {
			if !isFinite(p.Constraints[i][j]) {
				return fmt.Errorf("row %d col %d: %w", i, j, ErrNaNInf)
			}
		}
		if !isFinite(p.RHS[i]) {
			return fmt.Errorf("rhs[%d]: %w", i, ErrNaNInf)
		}
		switch p.Relations[i] {
		case LE, EQ, GE:
		default:
			return fmt.Errorf("row %d: %w", i, ErrUnknownRelation)
		}
	}

	return nil
}
