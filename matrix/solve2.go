// SPDX-License-Identifier: MIT

package matrix

import "math"

// Det2 returns the determinant of the 2×2 matrix with rows a and b:
// a[0]*b[1] - b[0]*a[1].
func Det2(a, b [2]float64) float64 {
	return a[0]*b[1] - b[0]*a[1]
}

// Solve2 solves the system
//
//	a1[0]*x + a1[1]*y = b1
//	a2[0]*x + a2[1]*y = b2
//
// by Cramer's rule. It returns ErrSingular when |det| < eps, which covers
// parallel and coincident lines.
func Solve2(a1 [2]float64, b1 float64, a2 [2]float64, b2 float64, eps float64) (x, y float64, err error) {
	det := Det2(a1, a2)
	if math.Abs(det) < eps {
		return 0, 0, ErrSingular
	}
	x = (b1*a2[1] - b2*a1[1]) / det
	y = (a1[0]*b2 - a2[0]*b1) / det

	return x, y, nil
}
