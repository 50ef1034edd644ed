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

package diff

import (
	"errors"
	"fmt"
	"strings"

	"toolbox.dev/diff/internal/config"
	"toolbox.dev/diff/internal/tokenize"
)

var (
	// ErrInvalidMode is returned if a mode outside of [Line], [Word] and [Character] is used.
	ErrInvalidMode = errors.New("invalid diff mode")

	// ErrTooLarge is returned if the inputs exceed the limit set with [MaxTokens].
	ErrTooLarge = errors.New("input too large")
)

// Mode is the granularity at which texts are compared.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode -linecomment
type Mode int

const (
	// Line compares texts line by line. Lines are separated by "\n" which is not part of the
	// tokens, a text ending in "\n" has an empty last line.
	Line Mode = iota // line

	// Word compares runs of whitespace and runs of non-whitespace characters. Whitespace is kept,
	// so that changes in spacing show up in the diff.
	Word // word

	// Character compares texts code point by code point, or grapheme cluster by grapheme cluster
	// with [Graphemes].
	Character // character
)

func (m Mode) valid() bool {
	return m == Line || m == Word || m == Character
}

// ParseMode returns the mode with the given name. Names are case insensitive, "char" is accepted
// as an abbreviation of "character".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "word":
		return Word, nil
	case "character", "char":
		return Character, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// MarshalText encodes m as its name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode using [ParseMode].
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Tokenize splits text into the tokens that are compared in the given mode.
//
// The following options are supported: [diff.Normalize], [diff.Graphemes]
func Tokenize(text string, mode Mode, opts ...Option) ([]string, error) {
	cfg := config.FromOptions(opts, config.Normalize|config.Graphemes)
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	return split(text, mode, cfg), nil
}

func split(text string, mode Mode, cfg config.Config) []string {
	if cfg.Normalize {
		text = tokenize.Normalize(text)
	}
	switch mode {
	case Line:
		return tokenize.Lines(text)
	case Word:
		return tokenize.Words(text)
	case Character:
		if cfg.Graphemes {
			return tokenize.Graphemes(text)
		}
		return tokenize.Characters(text)
	default:
		panic("never reached")
	}
}
