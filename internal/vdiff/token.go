// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package vdiff

import "strings"

// Kind tags a Token as a version part or a delimiter.
type Kind int

const (
	KindPart Kind = iota
	KindDelimiter
)

func (k Kind) String() string {
	if k == KindPart {
		return "part"
	}
	return "delimiter"
}

// Token is a maximal run of characters sharing the same Kind.
type Token struct {
	Kind Kind
	Text string
}

// Tokens is an ordered token stream. Joining every token's Text reproduces
// the tokenized string exactly.
type Tokens []Token

// Tokenize splits version into alternating parts and delimiters. No character
// is dropped or altered.
func Tokenize(version string) Tokens {
	var tokens Tokens
	start := 0
	for i := 1; i <= len(version); i++ {
		if i < len(version) && isAlnum(version[i]) == isAlnum(version[start]) {
			continue
		}
		kind := KindDelimiter
		if isAlnum(version[start]) {
			kind = KindPart
		}
		tokens = append(tokens, Token{Kind: kind, Text: version[start:i]})
		start = i
	}
	return tokens
}

// String rejoins the stream.
func (t Tokens) String() string {
	var sb strings.Builder
	for _, tok := range t {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Parts returns the text of the part tokens in order.
func (t Tokens) Parts() []string {
	parts := make([]string, 0, len(t))
	for _, tok := range t {
		if tok.Kind == KindPart {
			parts = append(parts, tok.Text)
		}
	}
	return parts
}

// partIndex returns the index into t of the nth part. When the stream has
// fewer than n+1 parts it returns len(t).
func (t Tokens) partIndex(n int) int {
	seen := 0
	for i, tok := range t {
		if tok.Kind != KindPart {
			continue
		}
		if seen == n {
			return i
		}
		seen++
	}
	return len(t)
}

func isAlnum(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
