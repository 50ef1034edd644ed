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

// Package textdiff provides functions to compare text line by line.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"toolbox.dev/diff"
	"toolbox.dev/diff/internal/config"
	"toolbox.dev/diff/internal/edits"
	"toolbox.dev/diff/internal/myers"
	"toolbox.dev/diff/internal/tokenize"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\\ No newline at end of file\n"

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format.
//
// If x and y are identical, the output is empty.
//
// The following options are supported: [diff.Context], [diff.Normalize], [diff.TerminalColors]
func Unified(x, y string, opts ...diff.Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Normalize|config.Colors)
	if cfg.Normalize {
		x, y = tokenize.Normalize(x), tokenize.Normalize(y)
	}
	var colors config.ColorConfig
	if cfg.Colors != nil {
		colors = *cfg.Colors
	}

	xlines, ylines := lines(x), lines(y)
	script := myers.Diff(xlines, ylines)

	var b strings.Builder
	for h := range edits.Hunks(script, cfg.Context) {
		header := fmt.Sprintf("@@ -%s +%s @@", hunkRange(h.S0, h.S1), hunkRange(h.T0, h.T1))
		b.WriteString(config.Paint(colors.HunkHeader, header))
		b.WriteByte('\n')

		s, t := h.S0, h.T0
		for _, op := range script[h.Pos:h.End] {
			switch op {
			case edits.Match:
				writeLine(&b, colors.Unchanged, prefixMatch, xlines[s])
				s++
				t++
			case edits.Delete:
				writeLine(&b, colors.Removed, prefixDelete, xlines[s])
				s++
			case edits.Insert:
				writeLine(&b, colors.Added, prefixInsert, ylines[t])
				t++
			}
		}
	}
	return b.String()
}

// hunkRange formats the line range [start, end) of a hunk header. An empty range names the line
// after which the change happens, 0 for the beginning of the file.
func hunkRange(start, end int) string {
	if start == end {
		return fmt.Sprintf("%d,0", start)
	}
	return fmt.Sprintf("%d,%d", start+1, end-start)
}

// lines splits s after every '\n'. Only the last line can lack the terminating '\n'.
func lines(s string) []string {
	l := strings.SplitAfter(s, "\n")
	// SplitAfter adds an empty element after the last '\n', it doesn't count as a line for diffs.
	if l[len(l)-1] == "" {
		l = l[:len(l)-1]
	}
	return l
}

func writeLine(b *strings.Builder, c *color.Color, prefix, line string) {
	text, eol := strings.CutSuffix(line, "\n")
	b.WriteString(config.Paint(c, prefix+text))
	b.WriteByte('\n')
	if !eol {
		b.WriteString(missingNewline)
	}
}
