// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/cacheutil"
	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/log"
	"github.com/staranto/brewfmt/internal/meta"
	"github.com/staranto/brewfmt/internal/output"
)

// ErrNoCache is returned by --cached when nothing has been cached yet.
var ErrNoCache = errors.New("no cached outdated listing, run without --cached first")

// reportCommandAction runs `brew update` and `brew outdated --json=v2` and
// prints both formatted. A failed update is logged and the outdated phase
// still runs; a failed outdated phase still prints the update block before
// its error is returned.
func reportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := cmd.Metadata["meta"].(meta.Meta)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "report"

	runner := runnerFor(cmd, m)
	p := paletteFor(cmd)

	var updateText string
	if !cmd.Bool("no-update") && !cmd.Bool("cached") {
		text, err := runner.Update(ctx)
		if err != nil {
			log.WithError(err).Warnf("brew update failed")
		}
		updateText = text
	}

	// Update-grid marks come from the whole listing, not the --filter view.
	var outdated, all brew.Outdated
	doc, note, err := outdatedDocument(ctx, cmd, runner)
	if err == nil {
		all, err = brew.ParseOutdated(doc, optionsFor(cmd))
	}
	if err == nil {
		outdated, err = selectOutdated(cmd, all)
	}
	if err != nil {
		log.WithError(err).Debugf("outdated phase failed")
	} else if note == "" {
		cacheDocument(cmd.String("brew"), doc)
	}

	blocks := []string{
		output.UpdateBlock(brew.ParseUpdateLog(updateText), all.Names(), widthFor(cmd, m), p),
		output.OutdatedBlock(outdated, p),
	}
	if !outdated.IsEmpty() {
		blocks = append(blocks, note)
	}
	emit(m, output.Compose(blocks...))

	return err
}

// runnerFor returns the injected runner or one built from --brew and
// --timeout.
func runnerFor(cmd *cli.Command, m meta.Meta) brew.Runner {
	if m.Runner != nil {
		return m.Runner
	}
	return brew.ExecRunner{
		Path:    cmd.String("brew"),
		Timeout: cmd.Duration("timeout"),
	}
}

// outdatedDocument returns the outdated document, from the cache with
// --cached or else from brew. The second value describes a cached
// document's age and is empty for a fresh one.
func outdatedDocument(ctx context.Context, cmd *cli.Command, runner brew.Runner) (string, string, error) {
	if cmd.Bool("cached") {
		store, ok := cacheutil.Open()
		if !ok {
			return "", "", ErrNoCache
		}
		doc, modTime, ok := store.Read(cmd.String("brew"))
		if !ok {
			return "", "", ErrNoCache
		}
		return doc, fmt.Sprintf("(cached %s)", humanize.Time(modTime)), nil
	}

	doc, err := runner.Outdated(ctx)
	return doc, "", err
}

// cacheDocument stores a freshly fetched document for --cached, first
// removing entries older than cache.clean hours. Failures only warn.
func cacheDocument(brewPath string, doc string) {
	store, ok := cacheutil.Open()
	if !ok {
		return
	}
	cleanHours, _ := config.GetInt("cache.clean")
	if err := store.Purge(time.Duration(cleanHours) * time.Hour); err != nil {
		log.WithError(err).Warnf("failed to clean cache")
	}
	if err := store.Write(brewPath, doc); err != nil {
		log.WithError(err).Warnf("failed to cache outdated listing")
	}
}

// reportCommandBuilder constructs the "report" subcommand, which is also
// what a bare `brewfmt` runs.
func reportCommandBuilder(meta meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("report"), NewBrewFlags("report")...)

	return &cli.Command{
		Name:      "report",
		Usage:     "run brew update and brew outdated and format both",
		UsageText: "brewfmt [report] [flags]",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(flags,
			&cli.BoolFlag{
				Name:    "no-update",
				Usage:   "skip brew update and only report outdated packages",
				Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_NO_UPDATE")),
			},
			&cli.BoolFlag{
				Name:  "cached",
				Usage: "render the last cached outdated listing without running brew",
			},
		),
		Action: reportCommandAction,
	}
}
