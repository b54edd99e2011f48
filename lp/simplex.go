// SPDX-License-Identifier: MIT

// Package lp - primal tableau simplex on ≤ rows with unit slacks.
//
// Tableau layout, (m+2) × (n+m+1):
//
//	rows 0..m-1  [ a_i1 .. a_in | e_i (slack block) | b_i ]
//	row  m       [ c_1  .. c_n  | 0 .. 0            | 0   ]   Cj
//	row  m+1     [ c_1  .. c_n  | 0 .. 0            | 0   ]   Δj (starts as a copy of Cj)
//
// The loop always maximizes; a minimization objective is negated on entry.
//
// Each step:
//  1. Entering column q = first index of the largest Δj entry; if none
//     exceeds the pivot tolerance the last recorded snapshot is marked
//     optimal and the loop stops.
//  2. Ratio test over rows with a[i][q] > tol: b_i / a[i][q]; other rows get
//     +Inf. Leaving row p = first minimum. No finite ratio ⇒ unbounded.
//  3. Snapshot the pre-pivot tableau with (p, q), ratios and labels.
//  4. Gauss–Jordan pivot on (p, q) across all m+2 rows; basis[p] = q.
//
// Reaching the iteration cap without step 1 stopping is reported as
// StatusIterationLimit, distinct from StatusUnbounded.
//
// Complexity: O(iter · (m+2) · (n+m+1)).
package lp

import (
	"fmt"
	"math"
	"strconv"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lplab/matrix"
)

// Row labels of the two trailing display rows.
const (
	CjLabel = "Cj"
	DjLabel = "Δj"
)

// solveSimplex runs the tableau simplex. Relations are not consulted: every
// row is treated as ≤ with its own slack.
func solveSimplex(objective []float64, constraints [][]float64, rhs []float64, maximize bool, o Options) Solution {
	n, m := len(objective), len(constraints)
	width := n + m + 1
	rhsCol := width - 1
	cjRow, djRow := m, m+1

	// Internal objective: always maximized.
	c := make([]float64, n)
	for j, v := range objective {
		if maximize {
			c[j] = v
		} else {
			c[j] = -v
		}
	}

	tab, err := buildTableau(c, constraints, rhs)
	if err != nil {
		return failed(MethodSimplex, err)
	}

	basis := make([]int, m)
	for i := range basis {
		basis[i] = n + i
	}

	iters := []IterationSnapshot{{
		Index:   0,
		Tableau: tab.ToRows(),
		Basis:   cloneInts(basis),
	}}

	var (
		iteration int
		optimal   bool
	)
	for iteration < o.maxIter {
		// One deep copy per pass: read by steps 1-2, kept by step 3.
		view := tab.ToRows()
		dj := view[djRow]

		// Step 1: entering column.
		entering, maxPositive := -1, 0.0
		for j := 0; j < rhsCol; j++ {
			if dj[j] > maxPositive {
				entering, maxPositive = j, dj[j]
			}
		}
		if entering == -1 || maxPositive <= o.pivotTol {
			iters[len(iters)-1].IsOptimal = true
			optimal = true
			break
		}

		// Step 2: ratio test.
		ratios := make([]float64, m)
		leaving, minRatio := -1, math.Inf(1)
		for i := 0; i < m; i++ {
			a := view[i][entering]
			if a <= o.pivotTol {
				ratios[i] = math.Inf(1)
				continue
			}
			ratios[i] = view[i][rhsCol] / a
			if ratios[i] < minRatio {
				leaving, minRatio = i, ratios[i]
			}
		}
		if leaving == -1 {
			log.V(1).Infof("lp: simplex: column %s unbounded after %d pivots", VarLabel(entering), iteration)
			return invalid(MethodSimplex, StatusUnbounded, iters)
		}

		// Step 3: pre-pivot snapshot.
		iters = append(iters, IterationSnapshot{
			Index:   iteration + 1,
			Tableau: view,
			Basis:   cloneInts(basis),
			Pivot: &Pivot{
				Row:      leaving,
				Col:      entering,
				Entering: entering,
				Leaving:  basis[leaving],
			},
			Ratios: ratios,
		})
		log.V(2).Infof("lp: simplex: iteration %d pivot (%d,%d) %s enters, %s leaves",
			iteration+1, leaving, entering, VarLabel(entering), VarLabel(basis[leaving]))

		// Step 4: pivot and basis update.
		if err = tab.Pivot(leaving, entering, o.pivotTol); err != nil {
			return failed(MethodSimplex, err)
		}
		basis[leaving] = entering
		iteration++
	}

	if !optimal {
		log.V(1).Infof("lp: simplex: no optimum within %d iterations", o.maxIter)
		return invalid(MethodSimplex, StatusIterationLimit, iters)
	}

	final := tab.ToRows()

	// Extraction: basic decision variables read their RHS; the rest stay 0.
	point := make([]float64, n)
	for i, v := range basis {
		if v < n {
			point[v] = final[i][rhsCol]
		}
	}
	value := final[djRow][rhsCol]
	if maximize {
		value = -value
	}

	return Solution{
		Valid:      true,
		Status:     StatusOptimal,
		Method:     MethodSimplex,
		Point:      point,
		Value:      math.Abs(value),
		Table:      simplexTable(final, basis, objective, cjRow, djRow),
		Iterations: iters,
	}
}

// buildTableau lays out the initial (m+2) × (n+m+1) tableau.
func buildTableau(c []float64, constraints [][]float64, rhs []float64) (*matrix.Dense, error) {
	n, m := len(c), len(constraints)
	width := n + m + 1
	rows := make([][]float64, m+2)

	for i := 0; i < m; i++ {
		if len(constraints[i]) != n {
			return nil, fmt.Errorf("row %d: %w", i, ErrDimensionMismatch)
		}
		row := make([]float64, width)
		copy(row, constraints[i])
		row[n+i] = 1
		row[width-1] = rhs[i]
		rows[i] = row
	}
	cj := make([]float64, width)
	copy(cj, c)
	dj := make([]float64, width)
	copy(dj, cj)
	rows[m], rows[m+1] = cj, dj

	return matrix.NewDenseFrom(rows)
}

// simplexTable renders the final tableau: one row per basic variable with
// its objective coefficient (Ci) and label (i), then the Cj and Δj rows.
func simplexTable(final [][]float64, basis []int, objective []float64, cjRow, djRow int) DisplayTable {
	n := len(objective)
	headers := append([]string{"Ci", "i"}, columnLabels(len(final[0])-1)...)
	rows := make([][]string, 0, len(basis)+2)

	for i, v := range basis {
		ci := 0.0
		if v < n {
			ci = objective[v]
		}
		rows = append(rows, append([]string{formatCell(ci), VarLabel(v)}, formatCells(final[i])...))
	}
	rows = append(rows, append([]string{CjLabel, ""}, formatCells(final[cjRow])...))
	rows = append(rows, append([]string{DjLabel, ""}, formatCells(final[djRow])...))

	return DisplayTable{Headers: headers, Rows: rows}
}

// formatCell renders a tableau value with two decimals.
func formatCell(v float64) string {
	return strconv.FormatFloat(noNegZero(v), 'f', 2, 64)
}

func formatCells(row []float64) []string {
	out := make([]string, len(row))
	for j, v := range row {
		out[j] = formatCell(v)
	}

	return out
}

func cloneInts(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)

	return out
}
