// SPDX-License-Identifier: MIT

package lp

// Preprocess applies the optional sign overrides and returns the adjusted
// objective and constraint matrix. Inputs are never mutated.
//
//   - ObjectiveSign == SignMinus negates every objective coefficient except
//     index 0.
//   - ConstraintSigns[i] == SignMinus negates every coefficient of row i
//     except column 0; RHS and relation are untouched. The per-row slice is
//     honored only when it has exactly one entry per constraint row.
func Preprocess(p Problem) (objective []float64, constraints [][]float64) {
	objective = negateTail(p.Objective, p.ObjectiveSign == SignMinus)

	applyRows := len(p.ConstraintSigns) == len(p.Constraints)
	constraints = make([][]float64, len(p.Constraints))
	for i, row := range p.Constraints {
		constraints[i] = negateTail(row, applyRows && p.ConstraintSigns[i] == SignMinus)
	}

	return objective, constraints
}

// negateTail copies v, negating v[1:] when neg is set.
func negateTail(v []float64, neg bool) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	if !neg {
		return out
	}
	for j := 1; j < len(out); j++ {
		out[j] = -out[j]
	}

	return out
}
