// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders parsed brew data for the terminal.
//
// Tabulate aligns rows of cells into fixed-padding columns, measuring only the
// visible width of each cell so painted and plain cells line up. Layout packs
// a list of names into as many columns as the terminal width allows, filling
// column by column, and marks names that are also outdated. UpdateBlock and
// OutdatedBlock assemble those pieces into the two halves of the report, and
// Emit dumps the normalized records as JSON or YAML instead.
package output
