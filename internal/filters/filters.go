// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/log"
	"github.com/staranto/brewfmt/internal/vdiff"
)

// filterRegex splits a filter expression into key, operator (with optional
// negation) and target. Operators are one of = ~ ^ < > @ or /.
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Keys lists the record fields a filter may test.
var Keys = []string{"name", "installed", "current", "tier", "cask"}

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Value   string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Expressions are separated by "," unless BREWFMT_FILTER_DELIM overrides it.
func BuildFilters(spec string) ([]Filter, error) {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters, nil
	}

	delim := ","
	if d, ok := os.LookupEnv("BREWFMT_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		key := strings.TrimSpace(parts[1])
		operand := parts[2]

		if !validKey(key) {
			return nil, fmt.Errorf("invalid filter %q, key must be one of %v", filterSpec, Keys)
		}
		if operand == "" {
			return nil, fmt.Errorf("invalid filter %q, missing operator", filterSpec)
		}

		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		if operand == "/" {
			if _, err := regexp.Compile(parts[3]); err != nil {
				return nil, fmt.Errorf("invalid filter %q: %w", filterSpec, err)
			}
		}

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   parts[3],
		})
	}

	return filters, nil
}

// Apply returns the records matching every filter, in their original order.
func Apply(records []brew.Formula, filters []Filter) []brew.Formula {
	if len(filters) == 0 {
		return records
	}

	//nolint:prealloc
	var kept []brew.Formula
	for _, f := range records {
		if Match(f, filters) {
			kept = append(kept, f)
		} else {
			log.Tracef("filtered out: %s", f.Name)
		}
	}
	return kept
}

// Match reports whether f passes every filter.
func Match(f brew.Formula, filters []Filter) bool {
	for _, filter := range filters {
		if !checkStringOperand(value(f, filter.Key), filter) {
			return false
		}
	}
	return true
}

// value returns the text of a record field. "tier" is the size of the
// version change (major, minor, other) or "none" when the versions match.
func value(f brew.Formula, key string) string {
	switch key {
	case "installed":
		return f.LatestInstalled()
	case "current":
		return f.CurrentVersion
	case "tier":
		pos, ok := vdiff.Compare(f.LatestInstalled(), f.CurrentVersion)
		if !ok {
			return "none"
		}
		return vdiff.TierFor(pos).String()
	case "cask":
		return strconv.FormatBool(f.Cask)
	default:
		return f.Name
	}
}

// checkStringOperand evaluates a string comparison style filter against the
// provided value using the operand semantics.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}

func validKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
