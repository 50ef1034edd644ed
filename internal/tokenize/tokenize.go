// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tokenize splits text into the token sequences that are compared by the diff engine.
//
// All splitters preserve the input: concatenating the tokens (and, for [Lines], joining them with
// "\n") reproduces the text exactly.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/unicode/norm"
)

// Lines splits s on "\n". Empty segments are kept, so a trailing newline produces a final empty
// token and the empty string produces a single empty token.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// Words splits s into maximal runs of whitespace and non-whitespace. Whitespace runs are tokens
// too, which makes the diff sensitive to changes in spacing.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	start := 0
	space := false
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if i > start && sp != space {
			tokens = append(tokens, s[start:i])
			start = i
		}
		space = sp
	}
	return append(tokens, s[start:])
}

// Characters splits s into code points. A byte that is not part of a valid UTF-8 encoding becomes
// a token of its own.
func Characters(s string) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, n := utf8.DecodeRuneInString(s)
		tokens = append(tokens, s[:n])
		s = s[n:]
	}
	return tokens
}

// Graphemes splits s into extended grapheme clusters, so that a base character and its combining
// marks, or a multi code point emoji, form a single token.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	it := graphemes.FromString(s)
	for it.Next() {
		tokens = append(tokens, it.Value())
	}
	return tokens
}

// Normalize returns s in Unicode normalization form C.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
