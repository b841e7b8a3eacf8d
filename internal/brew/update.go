// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"regexp"
	"strings"
)

// SectionMarker opens a section header line in `brew update` output.
const SectionMarker = "==>"

// infoLineRegex matches the status sentences brew update prints, e.g.
// "Updated 2 taps (homebrew/core and homebrew/cask)."
var infoLineRegex = regexp.MustCompile(`^(?:Updated .+|Already up-to-date\.|No changes to formulae\.)$`)

// Section is a run of header lines followed by the names listed under them.
type Section struct {
	Headers []string
	Names   []string
}

// UpdateLog is the parsed form of `brew update` output.
type UpdateLog struct {
	Info     []string
	Sections []Section
}

// Empty reports whether there is nothing to print.
func (u UpdateLog) Empty() bool {
	return len(u.Info) == 0 && len(u.Sections) == 0
}

// Names returns every name across all sections, in order.
func (u UpdateLog) Names() []string {
	var names []string
	for _, s := range u.Sections {
		names = append(names, s.Names...)
	}
	return names
}

type sectionState int

const (
	outside sectionState = iota
	sawHeader
)

// ParseUpdateLog extracts status lines and sections from text.
//
// Sections are read by a two state machine. Outside a section, lines are
// skipped until a header arrives. Consecutive headers are collected; the
// first non-header line starts the body, which runs until the next header or
// the end of input. A header run with no body is dropped. Blank body lines are
// ignored, and a section left without names is dropped too.
func ParseUpdateLog(text string) UpdateLog {
	var parsed UpdateLog

	state := outside
	var current Section
	inBody := false

	flush := func() {
		if len(current.Names) > 0 {
			parsed.Sections = append(parsed.Sections, current)
		}
		current = Section{}
		inBody = false
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if infoLineRegex.MatchString(line) {
			parsed.Info = append(parsed.Info, line)
		}

		header := isHeader(line)
		switch state {
		case outside:
			if header {
				current.Headers = append(current.Headers, line)
				state = sawHeader
			}
		case sawHeader:
			switch {
			case header && inBody:
				flush()
				current.Headers = append(current.Headers, line)
			case header:
				current.Headers = append(current.Headers, line)
			default:
				inBody = true
				if name := strings.TrimSpace(line); name != "" {
					current.Names = append(current.Names, name)
				}
			}
		}
	}

	if state == sawHeader && inBody {
		flush()
	}

	return parsed
}

func isHeader(line string) bool {
	return strings.HasPrefix(line, SectionMarker)
}
