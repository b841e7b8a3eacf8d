// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/terminal"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration and context, plus the impure capabilities a command
// may touch: the terminal, the brew runner and the standard streams.
type Meta struct {
	Args     []string
	Config   config.Type
	Context  context.Context
	Terminal terminal.Terminal

	// Runner overrides the brew runner built from flags. Nil means run the
	// real brew binary.
	Runner brew.Runner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
