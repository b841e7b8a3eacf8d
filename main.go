// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/staranto/brewfmt/internal/command"
	"github.com/staranto/brewfmt/internal/config"
	"github.com/staranto/brewfmt/internal/log"
	"github.com/staranto/brewfmt/internal/version"
)

var ctx = context.Background()

// subcommands lists the names routed to a subcommand rather than to report.
var subcommands = map[string]bool{
	"report":     true,
	"update":     true,
	"outdated":   true,
	"completion": true,
	"help":       true,
	"h":          true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand routes a bare `brewfmt`, or one followed only by flags,
// to the report subcommand. Help flags are left for the root command.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "report")
	}
	first := args[1]
	if subcommands[first] || first == "--help" || first == "-h" {
		return args
	}
	if strings.HasPrefix(first, "-") || strings.HasPrefix(first, "@") {
		return append([]string{args[0], "report"}, args[1:]...)
	}
	return args
}

// processSetOnly expands an @set argument into the flags stored under
// <command>.<set> in the config file.
func processSetOnly(args []string) []string {
	if len(args) < 3 { //nolint:mnd
		return args
	}

	idx := 2
	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	expanded := append([]string{}, args[:removeIdx]...)
	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("no flag set named %s for %s", set, args[1])
	}
	for _, arg := range setArgs {
		expanded = append(expanded, strings.Fields(arg)...)
	}
	return append(expanded, args[removeIdx+1:]...)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return initAndRunApp(args)
}
