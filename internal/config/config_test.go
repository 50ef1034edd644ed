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

package config_test

import (
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"toolbox.dev/diff"
	"toolbox.dev/diff/color"
	"toolbox.dev/diff/internal/config"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Config{Context: 3},
		},
		{
			name: "context",
			opts: []config.Option{
				diff.Context(5),
			},
			want: config.Config{
				Context: 5,
			},
		},
		{
			name: "negative-context",
			opts: []config.Option{
				diff.Context(-2),
			},
			want: config.Config{
				Context: 0,
			},
		},
		{
			name: "normalize-graphemes",
			opts: []config.Option{
				diff.Normalize(),
				diff.Graphemes(),
			},
			want: config.Config{
				Context:   config.Default.Context,
				Normalize: true,
				Graphemes: true,
			},
		},
		{
			name: "max-tokens-override",
			opts: []config.Option{
				diff.MaxTokens(10),
				diff.Context(1),
				diff.MaxTokens(20),
			},
			want: config.Config{
				Context:   1,
				MaxTokens: 20,
			},
		},
	}

	all := config.Context | config.Normalize | config.Graphemes | config.MaxTokens | config.Colors
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, all)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsColors(t *testing.T) {
	got := config.FromOptions([]config.Option{diff.TerminalColors(color.Added(1, 34))}, config.Colors)
	if got.Colors == nil {
		t.Fatal("FromOptions(...) did not configure colors")
	}
	want := config.DefaultColors()
	want.Added = config.Color(1, 34)
	for _, c := range []struct {
		name      string
		got, want *fcolor.Color
	}{
		{"header", got.Colors.Header, want.Header},
		{"hunk-header", got.Colors.HunkHeader, want.HunkHeader},
		{"unchanged", got.Colors.Unchanged, want.Unchanged},
		{"removed", got.Colors.Removed, want.Removed},
		{"added", got.Colors.Added, want.Added},
	} {
		if !c.got.Equals(c.want) {
			t.Errorf("%s color differs: got %q, want %q", c.name, config.Paint(c.got, "x"), config.Paint(c.want, "x"))
		}
	}
	if diff := cmp.Diff(config.Default, got, cmpopts.IgnoreFields(config.Config{}, "Colors")); diff != "" {
		t.Errorf("FromOptions(...) changed other fields [-want,+got]:\n%s", diff)
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FromOptions(...) did not panic")
		}
		if got, want := r, "Option diff.Context not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{diff.Context(1)}, config.Normalize)
}

func TestPaint(t *testing.T) {
	if got := config.Paint(nil, "text"); got != "text" {
		t.Errorf("Paint(nil, ...) = %q, want %q", got, "text")
	}
	if got := config.Paint(config.Color(31), ""); got != "" {
		t.Errorf("Paint(..., \"\") = %q, want empty", got)
	}
	if got, want := config.Paint(config.Color(31), "text"), "\x1b[31mtext\x1b[0m"; got != want {
		t.Errorf("Paint(red, ...) = %q, want %q", got, want)
	}
}
