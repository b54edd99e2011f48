// SPDX-License-Identifier: MIT

// Package lp - general-form standardization.
//
// AugmentedSystem lays every row out over three column blocks:
//
//	[ x_1 .. x_n | S_1 .. S_m | R_1 .. R_m | b ]
//
//	≤ row i:  S_i = +1 (slack)
//	≥ row i:  S_i = -1 (surplus), R_i = +1 (artificial)
//	= row i:  R_i = +1 (artificial)
//
// The general method builds this system and then solves the ORIGINAL
// coefficients with the ≤ tableau simplex; the augmented columns do not
// reach the solver, so ≥ and = rows are solved as ≤ rows.
// TODO(lplab): feed the augmented system into a two-phase simplex so ≥ and =
// rows are enforced.
package lp

import (
	log "github.com/golang/glog"

	"github.com/katalvlaran/lplab/matrix"
)

// AugmentedSystem returns the m × (n+2m+1) standard-form matrix of the
// given constraints, RHS in the last column. Inputs must already satisfy
// Problem.Validate.
//
// Errors: matrix.ErrInvalidDimensions when there are no constraints.
func AugmentedSystem(constraints [][]float64, relations []Relation, rhs []float64) (*matrix.Dense, error) {
	m := len(constraints)
	if m == 0 {
		return nil, matrix.ErrInvalidDimensions
	}
	n := len(constraints[0])
	aug, err := matrix.NewDense(m, n+2*m+1)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if err = aug.Set(i, j, constraints[i][j]); err != nil {
				return nil, err
			}
		}
		slack, artificial := n+i, n+m+i
		switch relations[i] {
		case LE:
			err = aug.Set(i, slack, 1)
		case GE:
			if err = aug.Set(i, slack, -1); err == nil {
				err = aug.Set(i, artificial, 1)
			}
		case EQ:
			err = aug.Set(i, artificial, 1)
		}
		if err != nil {
			return nil, err
		}
		if err = aug.Set(i, n+2*m, rhs[i]); err != nil {
			return nil, err
		}
	}

	return aug, nil
}

// solveGeneral builds the augmented system, then delegates to the tableau
// simplex with the original coefficients and RHS.
func solveGeneral(pp prepared, o Options) Solution {
	if aug, err := AugmentedSystem(pp.constraints, pp.relations, pp.rhs); err == nil {
		log.V(1).Infof("lp: general: augmented system %dx%d built", aug.Rows(), aug.Cols())
	}

	sol := solveSimplex(pp.objective, pp.constraints, pp.rhs, pp.maximize, o)
	sol.Method = MethodGeneral

	return sol
}
