// SPDX-License-Identifier: MIT

// Package lp - unified entry point.
//
// Solve is the only function a caller needs:
//
//	validate → Preprocess → SelectMethod → solver → Solution
//
// It never panics and never returns an error value: every failure is a
// Solution with Valid == false and a Status, and Solution.Err exposes the
// matching sentinel.
package lp

import (
	"fmt"

	log "github.com/golang/glog"
)

// prepared is a validated, sign-adjusted problem ready for a solver.
type prepared struct {
	objective   []float64
	constraints [][]float64
	relations   []Relation
	rhs         []float64
	maximize    bool
}

type solverFunc func(pp prepared, o Options) Solution

// dispatch maps every selectable method to its solver.
var dispatch = map[Method]solverFunc{
	MethodGraphical: solveGraphical,
	MethodSimplex:   solveTableau,
	MethodGeneral:   solveGeneral,
}

// solveTableau adapts solveSimplex to solverFunc.
func solveTableau(pp prepared, o Options) Solution {
	return solveSimplex(pp.objective, pp.constraints, pp.rhs, pp.maximize, o)
}

// Solve solves p with the requested method (empty selects the default).
// With exactly two variables the graphical method always runs.
func Solve(p Problem, method Method, opts ...Option) (sol Solution) {
	chosen := SelectMethod(p.NumVars(), method)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("lp: solve (%s) failed: %v", chosen, r)
			sol = failed(chosen, fmt.Errorf("%v: %w", r, ErrSolverFault))
		}
	}()

	o := gatherOptions(opts...)

	if err := p.Validate(); err != nil {
		log.Errorf("lp: invalid problem: %v", err)
		return failed(chosen, err)
	}

	objective, constraints := Preprocess(p)
	rhs := make([]float64, len(p.RHS))
	copy(rhs, p.RHS)
	relations := make([]Relation, len(p.Relations))
	copy(relations, p.Relations)

	log.V(1).Infof("lp: n=%d m=%d requested=%q selected=%s", len(objective), len(constraints), method, chosen)

	return dispatch[chosen](prepared{
		objective:   objective,
		constraints: constraints,
		relations:   relations,
		rhs:         rhs,
		maximize:    p.Maximize,
	}, o)
}

// failed builds the invalid shape for input errors and recovered faults.
func failed(method Method, err error) Solution {
	sol := invalid(method, StatusFailed, nil)
	sol.err = err

	return sol
}
