// Package matrix provides the small dense linear-algebra kernel used by the
// LP engine.
//
// What & Why:
//
//	Dense is a row-major float64 matrix with bounds-checked accessors and
//	the two elementary row operations a Gauss–Jordan pivot needs
//	(ScaleRow, AddScaledRow). The simplex tableau lives in a Dense, and
//	per-iteration snapshots are taken with ToRows, which deep-copies.
//
//	Det2 and Solve2 solve 2×2 systems by Cramer's rule; the graphical
//	solver uses them to intersect constraint lines.
//
// Complexity:
//
//	At/Set: O(1). ToRows/MatVec: O(r*c). ScaleRow/AddScaledRow: O(c).
//	Det2/Solve2: O(1).
package matrix
