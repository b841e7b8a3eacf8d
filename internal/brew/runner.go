// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/staranto/brewfmt/internal/log"
)

// ErrBrewNotFound is returned when the brew executable cannot be located.
var ErrBrewNotFound = errors.New("brew executable not found")

// Runner produces raw brew output.
type Runner interface {
	Update(ctx context.Context) (string, error)
	Outdated(ctx context.Context) (string, error)
}

// ExecRunner runs the brew binary found at Path (or on PATH when Path is
// empty). A positive Timeout bounds each invocation.
type ExecRunner struct {
	Path    string
	Timeout time.Duration
}

// Update runs `brew update` and returns its stdout.
func (r ExecRunner) Update(ctx context.Context) (string, error) {
	return r.run(ctx, "update")
}

// Outdated runs `brew outdated --json=v2` and returns its stdout.
func (r ExecRunner) Outdated(ctx context.Context) (string, error) {
	return r.run(ctx, "outdated", "--json=v2")
}

func (r ExecRunner) run(ctx context.Context, args ...string) (string, error) {
	path := r.Path
	if path == "" {
		path = "brew"
	}
	bin, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBrewNotFound, path)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, bin, args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	log.Debugf("running %s %s", bin, strings.Join(args, " "))
	err = c.Run()

	// brew exits non-zero on some successful listings; keep whatever it
	// printed and only fail when there is nothing to work with.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && stdout.Len() > 0 {
		log.Debugf("brew %s exited %d with output, continuing", args[0], exitErr.ExitCode())
		err = nil
	}
	if err != nil {
		return "", fmt.Errorf("brew %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}

	return Stringify(stdout.Bytes()), nil
}

// Stringify returns b as a string, or "" when b is not valid UTF-8.
func Stringify(b []byte) string {
	if !utf8.Valid(b) {
		log.Warnf("discarding %d bytes of output that are not valid UTF-8", len(b))
		return ""
	}
	return string(b)
}
