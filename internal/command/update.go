// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/log"
	"github.com/staranto/brewfmt/internal/meta"
	"github.com/staranto/brewfmt/internal/output"
)

// updateCommandAction formats previously captured `brew update` output read
// from a file or stdin. Names listed by --outdated-file are marked.
func updateCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "update"

	text, err := readInput(m, cmd.Args().First())
	if err != nil {
		return err
	}

	var outdated map[string]bool
	if file := cmd.String("outdated-file"); file != "" {
		doc, err := readInput(m, file)
		if err != nil {
			return err
		}
		o, err := brew.ParseOutdated(doc, optionsFor(cmd))
		if err != nil {
			return err
		}
		outdated = o.Names()
	}

	emit(m, output.UpdateBlock(brew.ParseUpdateLog(text), outdated, widthFor(cmd, m), paletteFor(cmd)))
	return nil
}

// updateCommandBuilder constructs the "update" subcommand.
func updateCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "format brew update output",
		UsageText: "brewfmt update [file|-]",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewGlobalFlags("update"),
			&cli.StringFlag{
				Name:  "outdated-file",
				Usage: "brew outdated output whose names are marked in the update listing",
			},
		),
		Action: updateCommandAction,
	}
}
