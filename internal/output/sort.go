// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/staranto/brewfmt/internal/brew"
	"github.com/staranto/brewfmt/internal/vdiff"
)

// SortKeys lists the fields accepted by SortRecords.
var SortKeys = []string{"name", "installed", "current", "tier"}

// SortRecords orders records by a comma-separated spec of fields from
// SortKeys. A leading "-" sorts that field descending and a leading "!" makes
// a text comparison case sensitive. "tier" orders major changes first. An
// empty spec keeps brew's order.
func SortRecords(records []brew.Formula, spec string) error {
	if spec == "" {
		return nil
	}
	fields := strings.Split(spec, ",")
	for _, field := range fields {
		if !validSortKey(strings.TrimLeft(field, "-!")) {
			return fmt.Errorf("unknown sort field %q, must be one of %v", field, SortKeys)
		}
	}

	sort.SliceStable(records, func(one, two int) bool {
		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			if field == "tier" {
				oneTier, twoTier := tierOf(records[one]), tierOf(records[two])
				if oneTier != twoTier {
					if ascending {
						return oneTier < twoTier
					}
					return oneTier > twoTier
				}
				continue
			}

			oneStr, twoStr := sortValue(records[one], field), sortValue(records[two], field)
			if !caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if ascending {
					return oneStr < twoStr
				}
				return oneStr > twoStr
			}
		}
		return false
	})
	return nil
}

func validSortKey(key string) bool {
	for _, k := range SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

func sortValue(f brew.Formula, field string) string {
	switch field {
	case "installed":
		return f.LatestInstalled()
	case "current":
		return f.CurrentVersion
	default:
		return f.Name
	}
}

// tierOf ranks a record by how large its change is; unchanged versions rank
// after every tier.
func tierOf(f brew.Formula) int {
	pos, ok := vdiff.Compare(f.LatestInstalled(), f.CurrentVersion)
	if !ok {
		return int(vdiff.TierOther) + 1
	}
	return int(vdiff.TierFor(pos))
}
