// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations for Gauss–Jordan pivoting.
//
// A simplex pivot on cell (p, q) is exactly:
//
//	ScaleRow(p, 1/a[p][q])
//	for every i != p: AddScaledRow(i, p, -a[i][q])
//
// Both operations mutate in place and run in O(cols).
package matrix

import "math"

const (
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
)

// ScaleRow multiplies every entry of row i by alpha.
// Errors: ErrOutOfRange for a bad row, ErrNaNInf for a non-finite alpha.
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScaleRow, i, 0, ErrOutOfRange)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return denseErrorf(ctxScaleRow, i, 0, ErrNaNInf)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] *= alpha
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src].
// dst == src is allowed and scales the row by (1+alpha).
// Errors: ErrOutOfRange for a bad row index, ErrNaNInf for a non-finite alpha.
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r {
		return denseErrorf(ctxAddScaledRow, dst, 0, ErrOutOfRange)
	}
	if src < 0 || src >= m.r {
		return denseErrorf(ctxAddScaledRow, src, 0, ErrOutOfRange)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return denseErrorf(ctxAddScaledRow, dst, src, ErrNaNInf)
	}
	if alpha == 0 {
		return nil
	}
	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	for j := range d {
		d[j] += alpha * s[j]
	}

	return nil
}

// Pivot performs a full Gauss–Jordan pivot on (p, q): row p is scaled so the
// pivot cell becomes 1, then every other row has its column-q entry
// eliminated. Afterwards column q is the p-th unit vector (up to rounding).
//
// Errors: ErrOutOfRange for bad coordinates; ErrSingular when
// |a[p][q]| <= eps.
// Complexity: O(r*c).
func (m *Dense) Pivot(p, q int, eps float64) error {
	idx, err := m.indexOf("Pivot", p, q)
	if err != nil {
		return err
	}
	piv := m.data[idx]
	if math.Abs(piv) <= eps {
		return denseErrorf("Pivot", p, q, ErrSingular)
	}

	// Stage 1: normalize the pivot row.
	if err = m.ScaleRow(p, 1/piv); err != nil {
		return err
	}

	// Stage 2: eliminate column q from every other row, top to bottom.
	var i int
	for i = 0; i < m.r; i++ {
		if i == p {
			continue
		}
		factor := m.data[i*m.c+q]
		if err = m.AddScaledRow(i, p, -factor); err != nil {
			return err
		}
	}

	return nil
}
