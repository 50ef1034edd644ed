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
	"fmt"
	"strings"

	"toolbox.dev/diff/internal/config"
)

// Format renders r as a human readable report.
//
// In [Line] mode, the report starts with a header that counts the changes, followed by an empty
// line and one line per change. Lines are prefixed with "+ " if added, "- " if removed and two
// spaces if unchanged.
//
// In [Word] and [Character] mode, the report is a single inline text. Consecutive added tokens are
// wrapped in "[+...]", consecutive removed tokens in "[-...]" and unchanged tokens are passed
// through as they are.
//
// A nil result is rendered like an empty one. The only error is [ErrInvalidMode].
//
// The following option is supported: [diff.TerminalColors]
func Format(r *Result, mode Mode, opts ...Option) (string, error) {
	cfg := config.FromOptions(opts, config.Colors)
	if !mode.valid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if r == nil {
		r = &Result{}
	}
	var colors config.ColorConfig
	if cfg.Colors != nil {
		colors = *cfg.Colors
	}

	var b strings.Builder
	if mode == Line {
		formatLines(&b, r, &colors)
	} else {
		formatInline(&b, r.Changes, &colors)
	}
	return b.String(), nil
}

func formatLines(b *strings.Builder, r *Result, colors *config.ColorConfig) {
	header := fmt.Sprintf("additions: %d, deletions: %d, unchanged: %d", r.Stats.Additions, r.Stats.Deletions, r.Stats.Unchanged)
	b.WriteString(config.Paint(colors.Header, header))
	b.WriteString("\n\n")
	for _, c := range r.Changes {
		switch c.Type {
		case Added:
			b.WriteString(config.Paint(colors.Added, "+ "+c.Value))
		case Removed:
			b.WriteString(config.Paint(colors.Removed, "- "+c.Value))
		default:
			b.WriteString(config.Paint(colors.Unchanged, "  "+c.Value))
		}
		b.WriteByte('\n')
	}
}

func formatInline(b *strings.Builder, changes []Change, colors *config.ColorConfig) {
	for i := 0; i < len(changes); {
		typ := changes[i].Type
		j := i
		var span strings.Builder
		for ; j < len(changes) && changes[j].Type == typ; j++ {
			span.WriteString(changes[j].Value)
		}
		switch typ {
		case Added:
			b.WriteString(config.Paint(colors.Added, "[+"+span.String()+"]"))
		case Removed:
			b.WriteString(config.Paint(colors.Removed, "[-"+span.String()+"]"))
		default:
			b.WriteString(config.Paint(colors.Unchanged, span.String()))
		}
		i = j
	}
}
