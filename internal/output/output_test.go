// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/style"
)

// ansiColorRegex matches ANSI escape sequences used for coloring terminal
// output.
var ansiColorRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func strip(s string) string {
	return ansiColorRegex.ReplaceAllString(s, "")
}

// fixture mirrors a real `brew outdated --json=v2` listing.
const fixture = `{
  "formulae": [
    {"name": "curl", "installed_versions": ["7.80.0", "7.80.0"], "current_version": "7.80.0_1", "pinned": false, "pinned_version": null},
    {"name": "jpeg", "installed_versions": ["9d"], "current_version": "9e", "pinned": false, "pinned_version": null},
    {"name": "php", "installed_versions": ["8.0.12"], "current_version": "8.0.13", "pinned": false, "pinned_version": null},
    {"name": "picat", "installed_versions": ["3.1.1"], "current_version": "3.1#2", "pinned": false, "pinned_version": null},
    {"name": "srmio", "installed_versions": ["0.1.0"], "current_version": "0.1.1~git1", "pinned": false, "pinned_version": null}
  ],
  "casks": [
    {"name": "atok", "installed_versions": "2021,32.1.0:try2", "current_version": "2021,32.1.0:try3"},
    {"name": "duplicati", "installed_versions": "2.0.6.1,beta:2021-05-03", "current_version": "2.0.6.3,beta:2021-06-17"},
    {"name": "powershell", "installed_versions": "7.1.0", "current_version": "7.2.0"},
    {"name": "sequel-ace", "installed_versions": "3.4.0,3038, 3.4.1,3041", "current_version": "3.4.2,3043"}
  ]
}`

func parseFixture(t *testing.T) brew.Outdated {
	t.Helper()
	o, err := brew.ParseOutdatedJSON(fixture, brew.DefaultOptions())
	require.NoError(t, err)
	return o
}

func TestTabulate(t *testing.T) {
	got := Tabulate([][]string{
		{"php", "8.0.12", "->", "8.0.13"},
		{"sequel-ace", "3.4.1,3041", "->", "3.4.2,3043"},
	})

	want := "php           8.0.12        ->    8.0.13\n" +
		"sequel-ace    3.4.1,3041    ->    3.4.2,3043"
	assert.Equal(t, want, got)
}

func TestTabulateIgnoresEscapesWhenMeasuring(t *testing.T) {
	p := style.Default()
	colored := p.Major.Render("abcd")
	require.NotEqual(t, "abcd", colored, "palette should emit escapes")

	got := Tabulate([][]string{
		{colored, "x"},
		{"abcd", "y"},
	})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, colored+"    x", lines[0])
	assert.Equal(t, "abcd    y", lines[1])
	assert.Equal(t, strings.Index(strip(lines[0]), "x"), strings.Index(lines[1], "y"))
}

func TestTabulateEdgeCases(t *testing.T) {
	assert.Equal(t, "", Tabulate(nil))
	assert.Equal(t, "a         b\nlonger", Tabulate([][]string{{"a", "b"}, {"longer"}}))
}

func TestTabulateHasNoTrailingNewline(t *testing.T) {
	got := Tabulate([][]string{{"rust", "1.39.0"}, {"php", "8.0.13"}})

	assert.False(t, strings.HasSuffix(got, "\n"))
	assert.Equal(t, 1, strings.Count(got, "\n"))
}

func TestOutdatedTable(t *testing.T) {
	got := Tabulate(Rows(parseFixture(t).Records(), style.Default()))

	want := []string{
		"curl          7.80.0                     ->    7.80.0_1",
		"jpeg          9d                         ->    9e",
		"php           8.0.12                     ->    8.0.13",
		"picat         3.1.1                      ->    3.1#2",
		"srmio         0.1.0                      ->    0.1.1~git1",
		"atok          2021,32.1.0:try2           ->    2021,32.1.0:try3",
		"duplicati     2.0.6.1,beta:2021-05-03    ->    2.0.6.3,beta:2021-06-17",
		"powershell    7.1.0                      ->    7.2.0",
		"sequel-ace    3.4.1,3041                 ->    3.4.2,3043",
	}
	assert.Equal(t, strings.Join(want, "\n"), strip(got))
}

func TestRowsPaintChangedSuffix(t *testing.T) {
	p := style.Default()
	rows := Rows([]brew.Formula{
		{Name: "php", InstalledVersions: []string{"8.0.12"}, CurrentVersion: "8.0.13"},
		{Name: "powershell", InstalledVersions: []string{"7.1.0"}, CurrentVersion: "7.2.0"},
		{Name: "jpeg", InstalledVersions: []string{"9d"}, CurrentVersion: "9e"},
	}, p)

	assert.Equal(t, []string{"php", "8.0.12", "->", "8.0." + p.Other.Render("13")}, rows[0])
	assert.Equal(t, []string{"powershell", "7.1.0", "->", "7." + p.Minor.Render("2.0")}, rows[1])
	assert.Equal(t, []string{"jpeg", "9d", "->", p.Major.Render("9e")}, rows[2])

	line := Tabulate(rows[:1])
	assert.Equal(t, "php    8.0.12    ->    8.0."+p.Other.Render("13"), line)
}

func TestLayout(t *testing.T) {
	plain := style.Plain()

	tests := []struct {
		name  string
		names []string
		width int
		want  string
	}{
		{
			name:  "empty",
			names: nil,
			width: 80,
			want:  "",
		},
		{
			name:  "single blank name",
			names: []string{""},
			width: 80,
			want:  "",
		},
		{
			name:  "too narrow for two columns",
			names: []string{"rust", "typescript"},
			width: 11,
			want:  "rust\ntypescript",
		},
		{
			name:  "unknown width",
			names: []string{"go", "vim"},
			width: 0,
			want:  "go\nvim",
		},
		{
			name:  "column major fill",
			names: []string{"alpha", "beta", "gamma", "delta", "eps"},
			width: 30,
			want:  "alpha     gamma     eps  \nbeta      delta  ",
		},
		{
			name:  "single row",
			names: []string{"a", "b", "c"},
			width: 80,
			want: "a" + strings.Repeat(" ", 24) + "  " +
				"b" + strings.Repeat(" ", 24) + "  " +
				"c  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Layout(tt.names, nil, tt.width, plain))
		})
	}
}

func TestLayoutMarksOutdated(t *testing.T) {
	p := style.Default()
	outdated := map[string]bool{"rust": true}

	got := Layout([]string{"rust", "typescript"}, outdated, 80, p)

	// (80+2)/(10+2) = 6 columns, 1 row, column width (80+2)/2-2 = 39.
	want := p.Name.Render("rust") + " " + p.Check.Render(style.Checkmark) + strings.Repeat(" ", 33) +
		"  " + "typescript" + "  "
	assert.Equal(t, want, got)
	assert.Equal(t, 39+2+len("typescript")+2, len([]rune(strip(got))))
}

func TestLayoutMarksLastCell(t *testing.T) {
	p := style.Plain()
	got := Layout([]string{"go", "rust"}, map[string]bool{"rust": true}, 20, p)

	// The last cell's fixed pad becomes the mark.
	assert.True(t, strings.HasSuffix(got, "rust "+style.Checkmark), got)
}

func TestLayoutOutdatedIgnoredWhenNarrow(t *testing.T) {
	p := style.Default()
	got := Layout([]string{"rust", "typescript"}, map[string]bool{"rust": true}, 5, p)
	assert.Equal(t, "rust\ntypescript", got)
}

func TestUpdateBlock(t *testing.T) {
	u := brew.ParseUpdateLog(strings.Join([]string{
		"Updated 1 tap (homebrew/core).",
		"==> Updated Formulae",
		"rust",
		"typescript",
	}, "\n"))

	got := UpdateBlock(u, nil, 5, style.Plain())
	assert.Equal(t, "Updated 1 tap (homebrew/core).\n==> Updated Formulae\nrust\ntypescript", got)

	p := style.Default()
	got = UpdateBlock(u, nil, 5, p)
	assert.Contains(t, got, p.Arrow.Render("==>")+" "+p.Label.Render("Updated Formulae"))

	assert.Equal(t, "", UpdateBlock(brew.UpdateLog{}, nil, 80, p))
}

func TestOutdatedBlock(t *testing.T) {
	got := strip(OutdatedBlock(parseFixture(t), style.Default()))

	lines := strings.Split(got, "\n")
	assert.Equal(t, "==> Outdated Formulae", lines[0])
	assert.Equal(t, "5 outdated formulae and 4 outdated casks", lines[len(lines)-1])
	assert.Len(t, lines, 11)

	assert.Equal(t, "", OutdatedBlock(brew.Outdated{}, style.Default()))
}

func TestSummary(t *testing.T) {
	one := []brew.Formula{{Name: "a", InstalledVersions: []string{"1"}, CurrentVersion: "2"}}

	assert.Equal(t, "1 outdated formula", Summary(brew.Outdated{Formulae: one}))
	assert.Equal(t, "1 outdated cask", Summary(brew.Outdated{Casks: one}))
	assert.Equal(t, "0 outdated formulae", Summary(brew.Outdated{}))
	assert.Equal(t, "1 outdated formula (1 entry skipped)",
		Summary(brew.Outdated{Formulae: one, Skipped: []brew.Skip{{Name: "b"}}}))
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "a\n\nb", Compose("a", "", "b"))
	assert.Equal(t, "", Compose("", ""))
}

func TestSortRecords(t *testing.T) {
	records := func() []brew.Formula {
		return []brew.Formula{
			{Name: "php", InstalledVersions: []string{"8.0.12"}, CurrentVersion: "8.0.13"},
			{Name: "Jpeg", InstalledVersions: []string{"9d"}, CurrentVersion: "9e"},
			{Name: "powershell", InstalledVersions: []string{"7.1.0"}, CurrentVersion: "7.2.0"},
		}
	}
	names := func(rs []brew.Formula) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Name)
		}
		return out
	}

	tests := []struct {
		spec string
		want []string
	}{
		{"", []string{"php", "Jpeg", "powershell"}},
		{"name", []string{"Jpeg", "php", "powershell"}},
		{"-name", []string{"powershell", "php", "Jpeg"}},
		{"!name", []string{"Jpeg", "php", "powershell"}},
		{"tier", []string{"Jpeg", "powershell", "php"}},
		{"-tier,name", []string{"php", "powershell", "Jpeg"}},
		{"installed", []string{"powershell", "php", "Jpeg"}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			rs := records()
			require.NoError(t, SortRecords(rs, tt.spec))
			assert.Equal(t, tt.want, names(rs))
		})
	}

	assert.ErrorContains(t, SortRecords(records(), "size"), "unknown sort field")
}

func TestEmit(t *testing.T) {
	o := brew.Outdated{
		Formulae: []brew.Formula{{Name: "php", InstalledVersions: []string{"8.0.12"}, CurrentVersion: "8.0.13"}},
		Skipped:  []brew.Skip{{Name: "ghost", Reason: "no installed versions"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, o, "json"))
	assert.Contains(t, buf.String(), `"current_version": "8.0.13"`)
	assert.Contains(t, buf.String(), `"reason": "no installed versions"`)

	buf.Reset()
	require.NoError(t, Emit(&buf, o, "yaml"))
	assert.Contains(t, buf.String(), "- name: php")
	assert.Contains(t, buf.String(), "current_version: 8.0.13")

	assert.Error(t, Emit(&buf, o, "text"))
}
