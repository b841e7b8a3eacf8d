// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package brew

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/staranto/brewfmt/internal/log"
)

// DefaultCaskSeparator splits a string of installed cask versions such as
// "3.4.0,3038, 3.4.1,3041" into its versions.
const DefaultCaskSeparator = ", "

// lineVersionSeparator separates the parenthesised installed versions of the
// verbose line form. It is fixed by brew and not configurable.
const lineVersionSeparator = ", "

// outdatedLineRegex matches verbose `brew outdated` lines like
// "rust (1.38.0, 1.39.0) < 1.40.0". Newer brew releases print "!=" for casks.
var outdatedLineRegex = regexp.MustCompile(`^\s*(\S+)\s+\((.+)\)\s+(?:<|!=)\s+(\S+)\s*$`)

// Formula is one outdated package. InstalledVersions runs oldest to latest.
type Formula struct {
	Name              string   `json:"name" yaml:"name"`
	InstalledVersions []string `json:"installed_versions" yaml:"installed_versions"`
	CurrentVersion    string   `json:"current_version" yaml:"current_version"`
	Cask              bool     `json:"cask,omitempty" yaml:"cask,omitempty"`
}

// LatestInstalled returns the newest installed version.
func (f Formula) LatestInstalled() string {
	return f.InstalledVersions[len(f.InstalledVersions)-1]
}

// Skip records an entry that was left out of the report and why.
type Skip struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Outdated is the normalized `brew outdated` listing.
type Outdated struct {
	Formulae []Formula `json:"formulae" yaml:"formulae"`
	Casks    []Formula `json:"casks" yaml:"casks"`
	Skipped  []Skip    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// IsEmpty reports that brew listed nothing at all, which is not an error.
func (o Outdated) IsEmpty() bool {
	return len(o.Formulae) == 0 && len(o.Casks) == 0 && len(o.Skipped) == 0
}

// Records returns formulae followed by casks.
func (o Outdated) Records() []Formula {
	records := make([]Formula, 0, len(o.Formulae)+len(o.Casks))
	records = append(records, o.Formulae...)
	return append(records, o.Casks...)
}

// Names returns the set of every listed name, skipped entries included.
func (o Outdated) Names() map[string]bool {
	names := make(map[string]bool, len(o.Formulae)+len(o.Casks)+len(o.Skipped))
	for _, f := range o.Records() {
		names[f.Name] = true
	}
	for _, s := range o.Skipped {
		names[s.Name] = true
	}
	return names
}

// Options tune how installed versions are read.
type Options struct {
	// CaskSeparator splits a single string of installed versions into a
	// list. Empty keeps the string as one version.
	CaskSeparator string
}

// DefaultOptions returns Options matching Homebrew's own formatting.
func DefaultOptions() Options {
	return Options{CaskSeparator: DefaultCaskSeparator}
}

// DocumentError reports a JSON document that is not the expected
// {"formulae": [...], "casks": [...]} envelope. Document holds the offending
// input for diagnosis.
type DocumentError struct {
	Document string
	Err      error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("malformed outdated document: %v", e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// ParseOutdated reads either form of `brew outdated` output. Input whose
// first non-space character is '{' is treated as JSON.
func ParseOutdated(text string, opts Options) (Outdated, error) {
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		return ParseOutdatedJSON(text, opts)
	}
	return ParseOutdatedLines(text), nil
}

// ParseOutdatedLines reads the verbose line form. Lines that do not look like
// "name (installed, ...) < candidate" are dropped silently. The installed list
// is always split on ", ", whatever the cask separator.
func ParseOutdatedLines(text string) Outdated {
	var outdated Outdated
	for _, line := range strings.Split(text, "\n") {
		m := outdatedLineRegex.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if len(m) != 4 {
			continue
		}
		outdated.add(&outdated.Formulae, m[1], splitVersions(m[2], lineVersionSeparator), m[3], false)
	}
	return outdated
}

// ParseOutdatedJSON reads the JSON form. Formula entries carry a list of
// installed versions and cask entries a single joined string, but either
// shape is accepted for both. Entries without installed versions are skipped
// and recorded in Skipped.
func ParseOutdatedJSON(doc string, opts Options) (Outdated, error) {
	if !gjson.Valid(doc) {
		return Outdated{}, &DocumentError{Document: doc, Err: errors.New("invalid JSON")}
	}

	root := gjson.Parse(doc)
	if !root.IsObject() {
		return Outdated{}, &DocumentError{Document: doc, Err: errors.New("top level is not an object")}
	}

	var outdated Outdated
	for _, list := range []struct {
		key  string
		dst  *[]Formula
		cask bool
	}{
		{"formulae", &outdated.Formulae, false},
		{"casks", &outdated.Casks, true},
	} {
		entries := root.Get(list.key)
		if !entries.IsArray() {
			return Outdated{}, &DocumentError{Document: doc, Err: fmt.Errorf("%q is missing or not a list", list.key)}
		}
		for i, entry := range entries.Array() {
			name := entry.Get("name").String()
			if name == "" {
				return Outdated{}, &DocumentError{Document: doc, Err: fmt.Errorf("%s[%d] has no name", list.key, i)}
			}
			installed := installedVersions(entry.Get("installed_versions"), opts.CaskSeparator)
			outdated.add(list.dst, name, installed, entry.Get("current_version").String(), list.cask)
		}
	}

	return outdated, nil
}

func (o *Outdated) add(dst *[]Formula, name string, installed []string, current string, cask bool) {
	if len(installed) == 0 {
		log.Warnf("there are no installed versions: %s", name)
		o.Skipped = append(o.Skipped, Skip{Name: name, Reason: "no installed versions"})
		return
	}
	*dst = append(*dst, Formula{
		Name:              name,
		InstalledVersions: installed,
		CurrentVersion:    current,
		Cask:              cask,
	})
}

func installedVersions(value gjson.Result, sep string) []string {
	if value.IsArray() {
		var versions []string
		for _, v := range value.Array() {
			if s := strings.TrimSpace(v.String()); s != "" {
				versions = append(versions, s)
			}
		}
		return versions
	}
	return splitVersions(value.String(), sep)
}

func splitVersions(s string, sep string) []string {
	fields := []string{s}
	if sep != "" {
		fields = strings.Split(s, sep)
	}

	var versions []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			versions = append(versions, f)
		}
	}
	return versions
}
