// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package terminal reports the width available for the report.
package terminal

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ErrNoWidth is returned when no width can be determined.
var ErrNoWidth = errors.New("terminal width unavailable")

// Terminal reports the number of columns available for output.
type Terminal interface {
	Width() (int, error)
}

// Fixed is a Terminal with a constant width.
type Fixed int

// Width returns the fixed width.
func (f Fixed) Width() (int, error) {
	if f <= 0 {
		return 0, ErrNoWidth
	}
	return int(f), nil
}

// Term queries the terminal attached to File, falling back to the COLUMNS
// environment variable when File is not a terminal.
type Term struct {
	File *os.File
}

// Stdout returns a Term for os.Stdout.
func Stdout() Term {
	return Term{File: os.Stdout}
}

// Width returns the column count of the terminal.
func (t Term) Width() (int, error) {
	if t.File != nil {
		fd := int(t.File.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width, nil
			}
		}
	}

	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols, nil
	}

	return 0, ErrNoWidth
}

// WidthOr returns t's width, or fallback when it cannot be determined.
func WidthOr(t Terminal, fallback int) int {
	if width, err := t.Width(); err == nil {
		return width
	}
	return fallback
}
