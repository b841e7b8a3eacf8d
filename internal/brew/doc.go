// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package brew turns raw Homebrew output into typed values.
//
// ParseUpdateLog reads `brew update` text into status lines and
// header/name-list sections. ParseOutdated reads `brew outdated` in either its
// verbose line form ("name (1.0, 1.1) < 1.2") or its JSON form
// ({"formulae": [...], "casks": [...]}) into Formula records.
//
// Running brew itself sits behind the Runner interface so that everything
// else in this package is a pure function of its input.
package brew
