// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/staranto/brewfmt/internal/style"
)

// columnGap separates the cells of a row.
const columnGap = 2

// Layout packs names into a grid that fits width columns, in the manner of
// ls. Names fill the grid column by column. Every cell but the last in a row
// is padded to the column width; the last gets a fixed two space pad. Names
// found in outdated are painted bold and the first double space of their
// padding becomes " ✔", so the mark takes the place of the space it replaces.
//
// When fewer than two columns fit, names are returned one per line without
// decoration.
func Layout(names []string, outdated map[string]bool, width int, p style.Palette) string {
	if len(names) == 0 || (len(names) == 1 && names[0] == "") {
		return ""
	}

	gap := strings.Repeat(" ", columnGap)

	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, lipgloss.Width(name))
	}

	columns := (width + columnGap) / (maxLen + columnGap)
	if columns < 2 {
		return strings.Join(names, "\n")
	}

	n := len(names)
	rows := ceilDiv(n, columns)
	columnWidth := (width+columnGap)/ceilDiv(n, rows) - columnGap

	check := " " + p.Check.Render(style.Checkmark)
	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var cells []string
		for i := row; i < n; i += rows {
			name := names[i]

			padding := gap
			if i+rows < n {
				padding = strings.Repeat(" ", max(columnWidth-lipgloss.Width(name), 0))
			}

			if outdated[name] {
				name = p.Name.Render(name)
				padding = strings.Replace(padding, gap, check, 1)
			}

			cells = append(cells, name+padding)
		}
		lines = append(lines, strings.Join(cells, gap))
	}

	return strings.Join(lines, "\n")
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
