// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package style holds the lipgloss styles used to paint the report.
package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/vdiff"
)

// Marker opens a section header line.
const Marker = "==>"

// Checkmark marks names that also appear in the outdated listing.
const Checkmark = "✔"

// Palette is the set of styles used across the report.
type Palette struct {
	Major lipgloss.Style
	Minor lipgloss.Style
	Other lipgloss.Style
	Arrow lipgloss.Style
	Label lipgloss.Style
	Name  lipgloss.Style
	Check lipgloss.Style
}

// Default returns the ANSI palette: red, blue and green for the major, minor
// and other tiers, a blue section arrow and bold labels.
func Default() Palette {
	return Palette{
		Major: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Minor: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Other: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Arrow: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Label: lipgloss.NewStyle().Bold(true),
		Name:  lipgloss.NewStyle().Bold(true),
		Check: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Plain returns a palette that emits no escape sequences.
func Plain() Palette {
	plain := lipgloss.NewStyle()
	return Palette{
		Major: plain,
		Minor: plain,
		Other: plain,
		Arrow: plain,
		Label: plain,
		Name:  plain,
		Check: plain,
	}
}

// Resolve picks the palette for a run. Color is disabled when noColor is set
// or NO_COLOR is present in the environment. Individual colors may be
// overridden with the colors.major, colors.minor, colors.other, colors.arrow
// and colors.check config keys, which accept anything lipgloss.Color does
// ("1", "#ff0000", ...).
func Resolve(noColor bool) Palette {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || noColor {
		return Plain()
	}

	p := Default()
	override := func(s lipgloss.Style, key string) lipgloss.Style {
		if c, err := config.GetString("colors." + key); err == nil && c != "" {
			return s.Foreground(lipgloss.Color(c))
		}
		return s
	}
	p.Major = override(p.Major, "major")
	p.Minor = override(p.Minor, "minor")
	p.Other = override(p.Other, "other")
	p.Arrow = override(p.Arrow, "arrow")
	p.Check = override(p.Check, "check")
	return p
}

// PaintTier implements vdiff.Painter.
func (p Palette) PaintTier(t vdiff.Tier, text string) string {
	switch t {
	case vdiff.TierMajor:
		return p.Major.Render(text)
	case vdiff.TierMinor:
		return p.Minor.Render(text)
	default:
		return p.Other.Render(text)
	}
}

// Header renders a section header such as "==> Updated Formulae" with a
// colored arrow and a bold label. Lines without the arrow are returned as is.
func (p Palette) Header(line string) string {
	label, found := strings.CutPrefix(line, Marker+" ")
	if !found || label == "" {
		return line
	}
	return p.Arrow.Render(Marker) + " " + p.Label.Render(label)
}
