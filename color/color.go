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

// Package color provides configuration for coloring rendered diffs using ANSI escape sequences.
//
// Specifying colors uses [Select Graphic Rendition parameters]. For example the code below,
// presents the removed tokens in bold yellow:
//
//	Removed(1, 33)
//
// This is equivalent to the following raw ANSI sequence: \033[1;33m.
//
// Calling a function without parameters disables coloring for that part of the output.
//
// It's the responsibility of the caller to ensure that the parameters are correct and supported
// by the underlying terminal.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	fcolor "github.com/fatih/color"
	"toolbox.dev/diff/internal/config"
)

// A Option makes it possible to configure custom colors in [diff.TerminalColors].
type Option func(*config.ColorConfig)

// Header colors the summary header of a report.
func Header(params ...int) Option {
	c := of(params)
	return func(cc *config.ColorConfig) {
		cc.Header = c
	}
}

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(params ...int) Option {
	c := of(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = c
	}
}

// Unchanged colors unchanged tokens.
func Unchanged(params ...int) Option {
	c := of(params)
	return func(cc *config.ColorConfig) {
		cc.Unchanged = c
	}
}

// Removed colors removed tokens.
func Removed(params ...int) Option {
	c := of(params)
	return func(cc *config.ColorConfig) {
		cc.Removed = c
	}
}

// Added colors added tokens.
func Added(params ...int) Option {
	c := of(params)
	return func(cc *config.ColorConfig) {
		cc.Added = c
	}
}

func of(params []int) *fcolor.Color {
	if len(params) == 0 {
		return nil
	}
	return config.Color(params...)
}
