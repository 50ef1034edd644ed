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
	"toolbox.dev/diff/color"
	"toolbox.dev/diff/internal/config"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of unchanged lines to include before and after each hunk of a unified
// diff. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Normalize converts inputs to Unicode normalization form C before they are split into tokens.
// With this option, canonically equivalent texts like "e\u0301" and "\u00e9" compare equal.
func Normalize() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Normalize = true
		return config.Normalize
	}
}

// Graphemes makes [Character] mode split texts into extended grapheme clusters instead of code
// points. A letter with combining marks or an emoji sequence is then added or removed as a whole.
func Graphemes() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Graphemes = true
		return config.Graphemes
	}
}

// MaxTokens limits the combined number of tokens of both inputs. Larger inputs are rejected with
// [ErrTooLarge] before the comparison starts. A limit of zero or less means no limit, which is
// the default.
func MaxTokens(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxTokens = max(0, n)
		return config.MaxTokens
	}
}

// TerminalColors enables colored output for terminals using ANSI escape sequences. Without
// arguments, a default set of colors is used. The colors can be changed with the options in
// package [toolbox.dev/diff/color].
func TerminalColors(opts ...color.Option) Option {
	cc := config.DefaultColors()
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Colors = &cc
		return config.Colors
	}
}
