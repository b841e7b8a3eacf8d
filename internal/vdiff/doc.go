// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package vdiff locates and highlights the changed portion of a version
// string.
//
// A version is split into a lossless stream of tokens: parts (maximal runs of
// ASCII letters and digits) and delimiters (everything in between). Two
// streams are compared part by part with zip-longest semantics, and the index
// of the first differing part selects a Tier (major, minor or other). The
// candidate version is then rebuilt with everything from that part onward
// painted in the tier's color, leaving the preceding parts and the boundary
// delimiter untouched.
//
// Examples:
//
//   - 1.0.0 -> 2.0.0 : "2.0.0" painted major
//   - 1.0.0 -> 1.1.0 : "1." then "1.0" painted minor
//   - 8.0.12 -> 8.0.13 : "8.0." then "13" painted other
package vdiff
