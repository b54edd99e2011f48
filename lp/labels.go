// SPDX-License-Identifier: MIT

package lp

import "strconv"

// RHSLabel is the header of the right-hand-side column.
const RHSLabel = "A0"

// VarLabel formats a 0-based variable index as its display label.
// Decision variables occupy 0..n-1 and slacks n..n+m-1, so index i renders
// as "A{i+1}". Indices are never recovered from labels.
func VarLabel(index int) string {
	return "A" + strconv.Itoa(index+1)
}

// columnLabels returns the tableau column headers A1..A{total}, A0.
func columnLabels(total int) []string {
	out := make([]string, 0, total+1)
	for j := 0; j < total; j++ {
		out = append(out, VarLabel(j))
	}

	return append(out, RHSLabel)
}
