// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// CellPadding is the number of spaces appended after every cell.
const CellPadding = 4

// Tabulate renders rows as left-aligned columns. Each column is as wide as its
// widest cell's visible text, escape sequences excluded, plus CellPadding
// spaces on the right. Trailing whitespace is trimmed from every line. Rows
// may have different lengths.
func Tabulate(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c == len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		for c, cell := range row {
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[c]-lipgloss.Width(cell)+CellPadding))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " \t"))
	}

	return strings.Join(lines, "\n")
}
