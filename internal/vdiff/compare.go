// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vdiff

// DiffPosition returns the index of the first part at which installed and
// candidate disagree. Delimiters are ignored. The walk is zip-longest: a part
// present on only one side is a difference. ok is false when every part
// matches and both sides have the same number of parts.
//
// Parts are compared as text, so "02" and "2" differ.
//
// An empty installed stream carries no information and yields position 0,
// marking the whole candidate as changed.
func DiffPosition(installed, candidate Tokens) (pos int, ok bool) {
	if len(installed) == 0 {
		return 0, true
	}

	left, right := installed.Parts(), candidate.Parts()
	n := max(len(left), len(right))
	for i := 0; i < n; i++ {
		if i >= len(left) || i >= len(right) || left[i] != right[i] {
			return i, true
		}
	}

	return 0, false
}

// Compare tokenizes both versions and returns their DiffPosition.
func Compare(installed, candidate string) (int, bool) {
	return DiffPosition(Tokenize(installed), Tokenize(candidate))
}
