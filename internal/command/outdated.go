// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/log"
	"github.com/staranto/brewfmt/internal/meta"
	"github.com/staranto/brewfmt/internal/output"
)

// outdatedCommandAction formats previously captured `brew outdated` output,
// either the verbose line form or the JSON document, read from a file or
// stdin.
func outdatedCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "outdated"

	text, err := readInput(m, cmd.Args().First())
	if err != nil {
		return err
	}

	o, err := parseOutdated(cmd, text)
	if err != nil {
		return err
	}
	if o.IsEmpty() {
		log.Infof("nothing to report")
		return nil
	}

	if format := cmd.String("output"); format != "text" {
		return output.Emit(m.Stdout, o, format)
	}

	emit(m, output.OutdatedBlock(o, paletteFor(cmd)))
	return nil
}

// outdatedCommandBuilder constructs the "outdated" subcommand.
func outdatedCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "outdated",
		Usage:     "format brew outdated output",
		UsageText: "brewfmt outdated [file|-]",
		Metadata:  map[string]any{"meta": meta},
		Flags:     append(NewGlobalFlags("outdated"), NewOutputFlag()),
		Action:    outdatedCommandAction,
	}
}
