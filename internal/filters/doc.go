// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects outdated records with --filter expressions.
//
// A filter is a key, an operator and a target, e.g. "name^python" or
// "tier=major". Expressions are comma separated (BREWFMT_FILTER_DELIM
// overrides the delimiter) and a record is kept only when it matches all of
// them.
//
// Keys: name, installed (latest installed version), current, tier (major,
// minor, other or none) and cask (true or false).
//
// Operators, each negatable with a leading "!":
//
//   - = : exact match
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : lexically less than
//   - > : lexically greater than
//   - @ : contains substring
//   - / : regular expression match
//
// Examples:
//
//   - "tier=major" : only versions whose first part changed
//   - "name!^python" : everything except python formulae
//   - "cask=true,current/^2021" : casks whose new version starts with 2021
package filters
