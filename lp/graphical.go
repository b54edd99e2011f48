// SPDX-License-Identifier: MIT

// Package lp - graphical method for 2-variable problems.
//
// Algorithm outline:
//  1. For every constraint build a display row: the inequality, its boundary
//     line, and the positive axis intercepts padded with "-".
//  2. Candidates, in this order:
//     a) pairwise intersections of boundary lines (Cramer, |det| >= eps),
//     b) per line: its crossing with x1=0, then with x2=0,
//     c) the origin.
//  3. Keep candidates that satisfy every relation within eps and have both
//     coordinates >= -eps.
//  4. Linear scan for the best objective value; strict comparison, so the
//     first candidate wins ties.
//
// Known limitation: only line/line and line/axis crossings are enumerated.
// When the feasible region is unbounded in the improving direction the scan
// still returns the best enumerated vertex instead of reporting
// unboundedness, and an optimum reachable only along an unbounded edge that
// passes through none of these crossings is missed.
//
// Complexity: O(m^2) candidates, each checked in O(m): O(m^3) overall.
package lp

import (
	"math"
	"strconv"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lplab/matrix"
)

// Display literals for the graphical table.
const (
	graphicalPlaceholder = "-"
	nonNegConstraint     = "x₁, x₂ ≥ 0"
	nonNegLines          = "x₁ = 0, x₂ = 0"
	originPoint          = "(0, 0)"
)

// GraphicalHeaders are the column headers of the graphical display table.
var GraphicalHeaders = []string{"Constraint", "Line", "Point 1", "Point 2", "Point 3"}

// solveGraphical runs the graphical method on an already preprocessed
// 2-variable problem.
func solveGraphical(pp prepared, o Options) Solution {
	m := len(pp.constraints)
	rows := make([][]string, 0, m+1)
	points := make([][2]float64, 0, m*(m-1)/2+2*m+1)

	var i, j int
	for i = 0; i < m; i++ {
		rows = append(rows, constraintDisplayRow(pp.constraints[i], pp.relations[i], pp.rhs[i]))

		// 2a: line i against every later line.
		for j = i + 1; j < m; j++ {
			x, y, err := matrix.Solve2(
				row2(pp.constraints[i]), pp.rhs[i],
				row2(pp.constraints[j]), pp.rhs[j],
				o.feasTol,
			)
			if err != nil {
				continue // parallel or coincident
			}
			points = append(points, [2]float64{x, y})
		}
	}
	rows = append(rows, []string{nonNegConstraint, nonNegLines, originPoint, graphicalPlaceholder, graphicalPlaceholder})

	// 2b: axis crossings.
	for i = 0; i < m; i++ {
		a, b := pp.constraints[i], pp.rhs[i]
		if math.Abs(a[1]) > o.feasTol { // x1 = 0
			points = append(points, [2]float64{0, b / a[1]})
		}
		if math.Abs(a[0]) > o.feasTol { // x2 = 0
			points = append(points, [2]float64{b / a[0], 0})
		}
	}
	// 2c: origin.
	points = append(points, [2]float64{0, 0})

	// Stage 3: feasibility filter; A·pt yields every left-hand side at once.
	var a *matrix.Dense
	if m > 0 {
		var err error
		if a, err = matrix.NewDenseFrom(pp.constraints); err != nil {
			return failed(MethodGraphical, err)
		}
	}
	feasible := make([][2]float64, 0, len(points))
	for _, pt := range points {
		var lhs []float64
		if a != nil {
			var err error
			if lhs, err = a.MatVec(pt[:]); err != nil {
				return failed(MethodGraphical, err)
			}
		}
		if isFeasible2(pt, lhs, pp, o.feasTol) {
			feasible = append(feasible, pt)
		}
	}
	log.V(2).Infof("lp: graphical: %d candidates, %d feasible", len(points), len(feasible))
	if len(feasible) == 0 {
		return invalid(MethodGraphical, StatusInfeasible, nil)
	}

	// Stage 4: best objective, first occurrence on ties.
	best := 0
	bestVal := eval2(pp.objective, feasible[0])
	for k := 1; k < len(feasible); k++ {
		v := eval2(pp.objective, feasible[k])
		if (pp.maximize && v > bestVal) || (!pp.maximize && v < bestVal) {
			best, bestVal = k, v
		}
	}

	headers := make([]string, len(GraphicalHeaders))
	copy(headers, GraphicalHeaders)

	return Solution{
		Valid:  true,
		Status: StatusOptimal,
		Method: MethodGraphical,
		Point:  []float64{feasible[best][0], feasible[best][1]},
		Value:  bestVal,
		Table:  DisplayTable{Headers: headers, Rows: rows},
	}
}

// isFeasible2 checks every relation within eps and non-negativity (>= -eps).
// lhs[i] is row i evaluated at pt.
func isFeasible2(pt [2]float64, lhs []float64, pp prepared, eps float64) bool {
	for i, v := range lhs {
		switch pp.relations[i] {
		case LE:
			if v > pp.rhs[i]+eps {
				return false
			}
		case GE:
			if v < pp.rhs[i]-eps {
				return false
			}
		case EQ:
			if math.Abs(v-pp.rhs[i]) > eps {
				return false
			}
		}
	}

	return pt[0] >= -eps && pt[1] >= -eps
}

// eval2 returns c·pt for a 2-variable objective.
func eval2(c []float64, pt [2]float64) float64 {
	return c[0]*pt[0] + c[1]*pt[1]
}

// row2 narrows a 2-coefficient row to a fixed array.
func row2(a []float64) [2]float64 { return [2]float64{a[0], a[1]} }

// constraintDisplayRow renders one constraint as
// [inequality, boundary line, intercept, intercept, intercept].
func constraintDisplayRow(a []float64, rel Relation, b float64) []string {
	lhs := formatCoef(a[0]) + "x₁ " + plusIfNonNeg(a[1]) + formatCoef(a[1]) + "x₂"
	rhs := formatCoef(b)

	cells := make([]string, 0, 3)
	if a[0] != 0 {
		if x1 := b / a[0]; x1 >= 0 {
			cells = append(cells, "("+formatIntercept(x1)+", 0)")
		}
	}
	if a[1] != 0 {
		if x2 := b / a[1]; x2 >= 0 {
			cells = append(cells, "(0, "+formatIntercept(x2)+")")
		}
	}
	for len(cells) < 3 {
		cells = append(cells, graphicalPlaceholder)
	}

	return []string{
		lhs + " " + rel.String() + " " + rhs,
		lhs + " = " + rhs,
		cells[0], cells[1], cells[2],
	}
}

// plusIfNonNeg returns "+" for v >= 0; negative numbers carry their own sign.
func plusIfNonNeg(v float64) string {
	if v >= 0 {
		return "+"
	}

	return ""
}

// formatCoef prints v in its shortest exact decimal form ("3", "0.5", "-2").
func formatCoef(v float64) string {
	return strconv.FormatFloat(noNegZero(v), 'f', -1, 64)
}

// formatIntercept prints integral values without decimals, others with one.
func formatIntercept(v float64) string {
	v = noNegZero(v)
	if math.Mod(v, 1) == 0 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', 1, 64)
}

// noNegZero maps -0 to +0 so it never renders as "-0".
func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}
