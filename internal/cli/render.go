// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lplab/lp"
)

// Text layout literals.
const (
	cellSep      = " | "
	infiniteCell = "∞"
	ratioHeader  = "ratio"
	basisHeader  = "i"
)

// RenderText writes sol as plain text: a summary block, the display table
// and, when requested, every recorded simplex iteration with its pivot cell
// in brackets.
func RenderText(w io.Writer, sol lp.Solution, showIterations bool) error {
	var sb strings.Builder

	sb.WriteString("method: " + string(sol.Method) + "\n")
	sb.WriteString("status: " + sol.Status.String() + "\n")
	if sol.Valid {
		sb.WriteString("point: " + formatPoint(sol.Point) + "\n")
		sb.WriteString("value: " + formatNumber(sol.Value) + "\n")
	} else if err := sol.Err(); err != nil {
		sb.WriteString("error: " + err.Error() + "\n")
	}

	if len(sol.Table.Headers) > 0 {
		sb.WriteString("\n")
		writeRow(&sb, sol.Table.Headers)
		for _, row := range sol.Table.Rows {
			writeRow(&sb, row)
		}
	}

	if showIterations {
		for _, it := range sol.Iterations {
			sb.WriteString("\n")
			writeSnapshot(&sb, it)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSnapshot renders one tableau: constraint rows labeled by their basic
// variable, then the Cj and Δj rows. With a pivot, a ratio column is added
// to the constraint rows.
func writeSnapshot(sb *strings.Builder, s lp.IterationSnapshot) {
	sb.WriteString("iteration " + strconv.Itoa(s.Index) + ": ")
	if s.Pivot == nil {
		sb.WriteString("initial tableau")
	} else {
		sb.WriteString(s.EnteringLabel() + " enters, " + s.LeavingLabel() + " leaves")
	}
	if s.IsOptimal {
		sb.WriteString(" (optimal)")
	}
	sb.WriteString("\n")

	if len(s.Tableau) == 0 {
		return
	}
	width := len(s.Tableau[0])
	m := len(s.Basis)

	headers := make([]string, 0, width+2)
	headers = append(headers, basisHeader)
	for j := 0; j < width-1; j++ {
		headers = append(headers, lp.VarLabel(j))
	}
	headers = append(headers, lp.RHSLabel)
	if s.Pivot != nil {
		headers = append(headers, ratioHeader)
	}
	writeRow(sb, headers)

	labels := s.BasisLabels()
	for i, row := range s.Tableau {
		var label string
		switch {
		case i < m:
			label = labels[i]
		case i == m:
			label = lp.CjLabel
		default:
			label = lp.DjLabel
		}

		cells := make([]string, 0, width+2)
		cells = append(cells, label)
		for j, v := range row {
			c := formatTableauCell(v)
			if s.Pivot != nil && s.Pivot.Row == i && s.Pivot.Col == j {
				c = "[" + c + "]"
			}
			cells = append(cells, c)
		}
		if s.Pivot != nil && i < m && i < len(s.Ratios) {
			cells = append(cells, formatRatio(s.Ratios[i]))
		}
		writeRow(sb, cells)
	}
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.Join(cells, cellSep))
	sb.WriteString("\n")
}

// formatPoint renders coordinates as "(x1, x2, ...)".
func formatPoint(p []float64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = formatNumber(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatNumber prints v in its shortest exact decimal form.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTableauCell(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return infiniteCell
	}
	return formatTableauCell(r)
}
