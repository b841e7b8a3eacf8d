// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/config"
)

// NewGlobalFlags returns the flags shared by every subcommand. Values are
// taken, in order, from the command line, BREWFMT_* environment variables,
// the ns-namespaced key in the config file and finally the top-level key.
func NewGlobalFlags(ns string) []cli.Flag {
	path, _ := config.File()

	noColor := &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "disable colored output (also honors NO_COLOR)",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_NO_COLOR")),
	}
	width := &cli.IntFlag{
		Name:    "width",
		Aliases: []string{"w"},
		Usage:   "terminal width used to pack names into columns (0 detects it)",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_WIDTH")),
	}
	caskSeparator := &cli.StringFlag{
		Name:    "cask-separator",
		Usage:   "separator between installed versions given as one string; empty keeps the string whole",
		Value:   brew.DefaultCaskSeparator,
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_CASK_SEPARATOR")),
	}
	sortSpec := &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "comma-separated list of fields (name, installed, current, tier) to sort outdated entries by",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_SORT")),
		Validator: func(value string) error {
			return FlagValidators(value, SortValidator)
		},
	}
	filter := &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "comma-separated filters (e.g. tier=major,name!^python) applied to outdated entries",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_FILTER")),
		Validator: func(value string) error {
			return FlagValidators(value, FilterValidator)
		},
	}

	if path != "" {
		appendConfigSources(&noColor.Sources, ns, noColor.Name, path)
		appendConfigSources(&width.Sources, ns, width.Name, path)
		appendConfigSources(&caskSeparator.Sources, ns, caskSeparator.Name, path)
		appendConfigSources(&sortSpec.Sources, ns, sortSpec.Name, path)
		appendConfigSources(&filter.Sources, ns, filter.Name, path)
	}

	return []cli.Flag{noColor, width, caskSeparator, sortSpec, filter}
}

// NewOutputFlag constructs the --output flag.
func NewOutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Value:   "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
}

// NewBrewFlags constructs the flags controlling how brew is run.
func NewBrewFlags(ns string) []cli.Flag {
	path, _ := config.File()

	bin := &cli.StringFlag{
		Name:    "brew",
		Usage:   "path to the brew executable",
		Value:   "brew",
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_BREW"), cli.EnvVar("HOMEBREW_BREW_FILE")),
	}
	timeout := &cli.DurationFlag{
		Name:    "timeout",
		Usage:   "maximum time to wait for each brew invocation",
		Value:   5 * time.Minute,
		Sources: cli.NewValueSourceChain(cli.EnvVar("BREWFMT_TIMEOUT")),
	}

	if path != "" {
		appendConfigSources(&bin.Sources, ns, bin.Name, path)
		appendConfigSources(&timeout.Sources, ns, timeout.Name, path)
	}

	return []cli.Flag{bin, timeout}
}

// appendConfigSources adds namespaced and global config file sources to a
// flag's Sources chain.
func appendConfigSources(chain *cli.ValueSourceChain, ns string, name string, path string) {
	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
