// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package brew

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestParseUpdateLogInfo(t *testing.T) {
	text := lines(
		"Updated 1 tap (homebrew/core).",
		"Already up-to-date.",
		"No changes to formulae.",
		"==> Updated Formulae",
		"rust",
		"typescript",
	)

	got := ParseUpdateLog(text)
	assert.Equal(t, []string{
		"Updated 1 tap (homebrew/core).",
		"Already up-to-date.",
		"No changes to formulae.",
	}, got.Info)

	assert.Empty(t, ParseUpdateLog("").Info)
	assert.True(t, ParseUpdateLog("").Empty())
}

func TestParseUpdateLogSections(t *testing.T) {
	text := lines(
		"Updated 1 tap (homebrew/core).",
		"Already up-to-date.",
		"No changes to formulae.",
		"==> Updated Formulae",
		"php",
		"rust",
		"typescript",
		"vim",
		"==> Deleted Formulae",
		"go",
		"python",
		"ruby",
		"==> TEST",
		"test1",
		"test2",
	)

	got := ParseUpdateLog(text)
	assert.Equal(t, []Section{
		{Headers: []string{"==> Updated Formulae"}, Names: []string{"php", "rust", "typescript", "vim"}},
		{Headers: []string{"==> Deleted Formulae"}, Names: []string{"go", "python", "ruby"}},
		{Headers: []string{"==> TEST"}, Names: []string{"test1", "test2"}},
	}, got.Sections)
	assert.Equal(t, []string{"php", "rust", "typescript", "vim", "go", "python", "ruby", "test1", "test2"}, got.Names())
}

func TestParseUpdateLogEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Section
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "header at end of input",
			text: "==> Updated Formulae",
			want: nil,
		},
		{
			name: "header at end of input after a section",
			text: lines("==> New Formulae", "bat", "==> Deleted Formulae"),
			want: []Section{{Headers: []string{"==> New Formulae"}, Names: []string{"bat"}}},
		},
		{
			name: "consecutive headers share one body",
			text: lines("==> Outdated", "==> Updated Formulae", "rust"),
			want: []Section{{Headers: []string{"==> Outdated", "==> Updated Formulae"}, Names: []string{"rust"}}},
		},
		{
			name: "lines before the first header are not a body",
			text: lines("rust", "go", "==> Updated Formulae", "vim"),
			want: []Section{{Headers: []string{"==> Updated Formulae"}, Names: []string{"vim"}}},
		},
		{
			name: "blank lines inside a body are ignored",
			text: "==> Updated Formulae\r\nrust\r\n\r\n  go  \r\n",
			want: []Section{{Headers: []string{"==> Updated Formulae"}, Names: []string{"rust", "go"}}},
		},
		{
			name: "body of only blank lines is dropped",
			text: lines("==> New Casks", "", "==> Updated Formulae", "rust"),
			want: []Section{{Headers: []string{"==> Updated Formulae"}, Names: []string{"rust"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUpdateLog(tt.text).Sections)
		})
	}
}
