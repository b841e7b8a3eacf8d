// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vdiff

import "fmt"

// Tier classifies how significant a version change is.
type Tier int

const (
	TierMajor Tier = iota
	TierMinor
	TierOther
)

func (t Tier) String() string {
	switch t {
	case TierMajor:
		return "major"
	case TierMinor:
		return "minor"
	default:
		return "other"
	}
}

// TierFor maps a diff position to its Tier.
func TierFor(pos int) Tier {
	switch pos {
	case 0:
		return TierMajor
	case 1:
		return TierMinor
	default:
		return TierOther
	}
}

// Painter wraps text in the style assigned to a Tier.
type Painter interface {
	PaintTier(t Tier, text string) string
}

// Colorize rebuilds candidate with the changed suffix painted. When ok is
// false the candidate is returned unmodified. Otherwise every token before
// part pos, including the delimiter right in front of it, is kept as is and
// the rest is painted in the color of TierFor(pos). A pos at or beyond the
// candidate's part count paints nothing.
//
// A negative pos is a caller bug and panics.
func Colorize(candidate Tokens, pos int, ok bool, p Painter) string {
	if !ok {
		return candidate.String()
	}
	if pos < 0 {
		panic(fmt.Sprintf("vdiff: negative diff position %d", pos))
	}

	split := candidate.partIndex(pos)
	head, tail := candidate[:split], candidate[split:]
	if len(tail) == 0 {
		return head.String()
	}

	return head.String() + p.PaintTier(TierFor(pos), tail.String())
}

// Highlight compares installed against candidate and returns the candidate
// with its changed suffix painted.
func Highlight(installed, candidate string, p Painter) string {
	tokens := Tokenize(candidate)
	pos, ok := DiffPosition(Tokenize(installed), tokens)
	return Colorize(tokens, pos, ok, p)
}
