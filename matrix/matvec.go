// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const ctxMatVec = "MatVec"

// MatVec computes y = m * x for a column vector x.
//
// Contract: len(x) == m.Cols(); otherwise ErrDimensionMismatch.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("Dense.%s: len(x)=%d, cols=%d: %w", ctxMatVec, len(x), m.c, ErrDimensionMismatch)
	}

	y := make([]float64, m.r)
	var (
		i, j, base int
		acc        float64
	)
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if x[j] != 0 { // skip zero multiplications
				acc += m.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}
