// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/staranto/brewfmt/internal/brew"
)

// Formats lists the values accepted by the --output flag.
var Formats = []string{"text", "json", "yaml"}

// Emit writes the normalized listing to w as JSON or YAML.
func Emit(w io.Writer, o brew.Outdated, format string) error {
	var (
		out []byte
		err error
	)

	switch format {
	case "json":
		out, err = json.MarshalIndent(o, "", "  ")
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(o)
	default:
		return fmt.Errorf("cannot emit %q, must be one of %v", format, Formats[1:])
	}
	if err != nil {
		return fmt.Errorf("failed to marshal outdated listing: %w", err)
	}

	_, err = w.Write(out)
	return err
}
