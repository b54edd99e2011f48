// SPDX-License-Identifier: MIT
// Package lp: sentinel error set.
// Validation returns these directly or wrapped with fmt.Errorf("ctx: %w", ...);
// solve outcomes surface them through Solution.Err. Match with errors.Is.

package lp

import "errors"

var (
	// ErrEmptyObjective is returned when the objective has no coefficients.
	ErrEmptyObjective = errors.New("lp: objective is empty")

	// ErrDimensionMismatch indicates that constraint rows, relations and rhs
	// disagree in length, or a row's width differs from the objective's.
	ErrDimensionMismatch = errors.New("lp: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf coefficient or right-hand side.
	ErrNaNInf = errors.New("lp: NaN or Inf encountered")

	// ErrUnknownRelation indicates a Relation outside {LE, EQ, GE}.
	ErrUnknownRelation = errors.New("lp: unknown relation")

	// ErrInfeasible: no candidate vertex satisfies every constraint.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded: the ratio test found no row limiting the entering variable.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrIterationLimit: the simplex loop reached its cap without optimality.
	ErrIterationLimit = errors.New("lp: iteration limit reached")

	// ErrSolverFault wraps an unexpected fault recovered at the entry point.
	ErrSolverFault = errors.New("lp: solver fault")
)
