// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/filters"
	"github.com/staranto/brewfmt/internal/log"
	"github.com/staranto/brewfmt/internal/meta"
	"github.com/staranto/brewfmt/internal/output"
	"github.com/staranto/brewfmt/internal/style"
	"github.com/staranto/brewfmt/internal/terminal"
)

// fallbackWidth is used when neither --width nor the terminal supply one.
const fallbackWidth = 80

// readInput returns the text of the named file, or of stdin when name is
// empty or "-". Invalid UTF-8 reads as "".
func readInput(m meta.Meta, name string) (string, error) {
	var input io.Reader

	if name == "" || name == "-" {
		input = m.Stdin
	} else {
		if info, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("input file does not exist: %s", name)
		} else if info.IsDir() {
			return "", fmt.Errorf("input cannot be a directory: %s", name)
		}
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		input = f
	}

	b, err := io.ReadAll(input)
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return brew.Stringify(b), nil
}

// paletteFor resolves the palette from --no-color and the color config key.
func paletteFor(cmd *cli.Command) style.Palette {
	color, _ := config.GetBool("color", true)
	return style.Resolve(cmd.Bool("no-color") || !color)
}

// widthFor returns --width when set, else the terminal width.
func widthFor(cmd *cli.Command, m meta.Meta) int {
	if w := cmd.Int("width"); w > 0 {
		return int(w)
	}
	if m.Terminal == nil {
		return fallbackWidth
	}
	return terminal.WidthOr(m.Terminal, fallbackWidth)
}

func optionsFor(cmd *cli.Command) brew.Options {
	return brew.Options{CaskSeparator: cmd.String("cask-separator")}
}

// parseOutdated parses an outdated listing and applies --filter and --sort.
func parseOutdated(cmd *cli.Command, text string) (brew.Outdated, error) {
	o, err := brew.ParseOutdated(text, optionsFor(cmd))
	if err != nil {
		return o, err
	}
	return selectOutdated(cmd, o)
}

// selectOutdated applies --filter and --sort to a parsed listing.
func selectOutdated(cmd *cli.Command, o brew.Outdated) (brew.Outdated, error) {
	fs, err := filters.BuildFilters(cmd.String("filter"))
	if err != nil {
		return o, err
	}
	o.Formulae = filters.Apply(o.Formulae, fs)
	o.Casks = filters.Apply(o.Casks, fs)

	spec := cmd.String("sort")
	if err := output.SortRecords(o.Formulae, spec); err != nil {
		return o, err
	}
	if err := output.SortRecords(o.Casks, spec); err != nil {
		return o, err
	}
	log.Debugf("parsed outdated listing: formulae=%d casks=%d skipped=%d", len(o.Formulae), len(o.Casks), len(o.Skipped))
	return o, nil
}

// emit prints a block followed by a newline, or nothing when it is empty.
func emit(m meta.Meta, block string) {
	if block != "" {
		fmt.Fprintln(m.Stdout, block)
	}
}
