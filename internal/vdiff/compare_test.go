// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package vdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffPosition(t *testing.T) {
	tests := []struct {
		installed string
		candidate string
		wantPos   int
		wantOK    bool
	}{
		{"1.0", "1.0", 0, false},
		{"2.0", "1.0", 0, true},
		{"1", "1.1", 1, true},
		{"1.0a", "1.0b", 1, true},
		{"1.0", "1.0.1", 2, true},
		{"9d", "9e", 0, true},
		{"7.80.0", "7.80.0_1", 3, true},
		{"3.1.1", "3.1#2", 2, true},
		{"2021,32.1.0:try2", "2021,32.1.0:try3", 4, true},
		{"1.02", "1.2", 1, true},
		{"1.0.1", "1.0", 2, true},
		{"1.0", "1-0", 0, false},
		{"", "1.2.3", 0, true},
		{"", "", 0, true},
		{"--", "1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.installed+" -> "+tt.candidate, func(t *testing.T) {
			pos, ok := Compare(tt.installed, tt.candidate)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestDiffPositionWithinBounds(t *testing.T) {
	pairs := [][2]string{
		{"1.0.0", "1.0.0.0.0"},
		{"1.0.0.0.0", "1.0"},
		{"a", "b.c.d"},
		{"", "x"},
	}

	for _, p := range pairs {
		candidate := Tokenize(p[1])
		pos, ok := DiffPosition(Tokenize(p[0]), candidate)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, pos, 0)
		assert.LessOrEqual(t, pos, len(candidate))
	}
}
