// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with call-site
// context via %w) and tests match them with errors.Is. No exported function
// panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: " so it can be grepped in logs.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. ragged input
	// rows or a row operation between rows of different widths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a determinant or pivot falls below the
	// caller's tolerance (parallel lines, zero pivot).
	ErrSingular = errors.New("matrix: singular matrix")
)
