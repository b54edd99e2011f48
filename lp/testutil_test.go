package lp_test

import "github.com/katalvlaran/lplab/lp"

// scenarioA is max 3x1+5x2 s.t. x1<=4, 2x2<=12, 3x1+2x2<=18 (optimum 36 at (2,6)).
func scenarioA() lp.Problem {
	return lp.Problem{
		Maximize:    true,
		Objective:   []float64{3, 5},
		Constraints: [][]float64{{1, 0}, {0, 2}, {3, 2}},
		Relations:   []lp.Relation{lp.LE, lp.LE, lp.LE},
		RHS:         []float64{4, 12, 18},
	}
}

// scenarioA3 is scenarioA lifted to three variables with a zero third
// column, which forces the simplex path.
func scenarioA3() lp.Problem {
	return lp.Problem{
		Maximize:    true,
		Objective:   []float64{3, 5, 0},
		Constraints: [][]float64{{1, 0, 0}, {0, 2, 0}, {3, 2, 0}},
		Relations:   []lp.Relation{lp.LE, lp.LE, lp.LE},
		RHS:         []float64{4, 12, 18},
	}
}

// column returns column j of a row-major tableau.
func column(tab [][]float64, j int) []float64 {
	out := make([]float64, len(tab))
	for i := range tab {
		out[i] = tab[i][j]
	}

	return out
}
