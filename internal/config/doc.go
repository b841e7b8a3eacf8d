// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the optional brewfmt.yaml file and exposes typed,
// dotted-key getters over it.
//
// The file is found through BREWFMT_CFG_FILE or in os.UserConfigDir(). A
// missing file is not an error for callers that pass a default value.
//
// Example:
//
//	width: 100
//	color: true
//	outdated:
//	  cask-separator: ", "
//	colors:
//	  major: "#ff5f5f"
package config
