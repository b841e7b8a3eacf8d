// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/style"
	"github.com/staranto/brewfmt/internal/vdiff"
)

// OutdatedHeader titles the outdated table.
const OutdatedHeader = style.Marker + " Outdated Formulae"

// Arrow separates the installed and candidate columns.
const Arrow = "->"

// UpdateBlock renders brew update output: the status lines, then every
// section's headers followed by its names packed into columns. Names listed
// in outdated are marked.
func UpdateBlock(u brew.UpdateLog, outdated map[string]bool, width int, p style.Palette) string {
	var sections []string
	for _, s := range u.Sections {
		headers := make([]string, len(s.Headers))
		for i, h := range s.Headers {
			headers[i] = p.Header(h)
		}
		sections = append(sections, strings.Join(headers, "\n")+"\n"+Layout(s.Names, outdated, width, p))
	}

	return joinNonEmpty("\n", strings.Join(u.Info, "\n"), strings.Join(sections, "\n"))
}

// Rows returns one table row per record: name, latest installed version,
// arrow and the candidate version with its changed suffix painted.
func Rows(records []brew.Formula, p style.Palette) [][]string {
	rows := make([][]string, 0, len(records))
	for _, f := range records {
		installed := f.LatestInstalled()
		rows = append(rows, []string{f.Name, installed, Arrow, vdiff.Highlight(installed, f.CurrentVersion, p)})
	}
	return rows
}

// OutdatedBlock renders the outdated header, the version table and a summary
// line. It returns "" when there is nothing outdated.
func OutdatedBlock(o brew.Outdated, p style.Palette) string {
	records := o.Records()
	if len(records) == 0 {
		return ""
	}
	return p.Header(OutdatedHeader) + "\n" + Tabulate(Rows(records, p)) + "\n" + Summary(o)
}

// Summary describes how many formulae and casks are outdated, e.g.
// "2 outdated formulae and 1 outdated cask".
func Summary(o brew.Outdated) string {
	var counts []string
	if len(o.Formulae) > 0 || len(o.Casks) == 0 {
		counts = append(counts, english.Plural(len(o.Formulae), "outdated formula", "outdated formulae"))
	}
	if len(o.Casks) > 0 {
		counts = append(counts, english.Plural(len(o.Casks), "outdated cask", ""))
	}
	summary := english.WordSeries(counts, "and")
	if len(o.Skipped) > 0 {
		summary += " (" + english.Plural(len(o.Skipped), "entry", "entries") + " skipped)"
	}
	return summary
}

// Compose joins report blocks with a blank line, dropping empty ones.
func Compose(blocks ...string) string {
	return joinNonEmpty("\n\n", blocks...)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
