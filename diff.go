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
	"context"
	"fmt"

	"toolbox.dev/diff/internal/config"
	"toolbox.dev/diff/internal/edits"
	"toolbox.dev/diff/internal/myers"
)

// ChangeType classifies a single token of a diff.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=ChangeType -linecomment
type ChangeType int

const (
	Unchanged ChangeType = iota // unchanged
	Removed                     // removed
	Added                       // added
)

// MarshalText encodes t as its name.
func (t ChangeType) MarshalText() ([]byte, error) {
	switch t {
	case Unchanged, Removed, Added:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("invalid change type %d", int(t))
	}
}

// UnmarshalText decodes a change type from its name.
func (t *ChangeType) UnmarshalText(text []byte) error {
	for _, c := range []ChangeType{Unchanged, Removed, Added} {
		if string(text) == c.String() {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("invalid change type %q", text)
}

// Change describes what happened to a single token.
//
//   - For Unchanged, the token is present in both inputs.
//   - For Removed, the token is only present in the original input.
//   - For Added, the token is only present in the modified input.
type Change struct {
	Type  ChangeType `json:"type"`
	Value string     `json:"value"`
}

// Stats counts the changes of a diff by type.
type Stats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Unchanged int `json:"unchanged"`
}

// Result is the outcome of comparing two texts.
type Result struct {
	Changes []Change `json:"changes"`
	Stats   Stats    `json:"stats"`
}

// Equal reports whether the two inputs of the diff compare equal under the options used. With
// [Normalize], canonically equivalent inputs are equal.
func (r *Result) Equal() bool {
	return r == nil || r.Stats.Additions == 0 && r.Stats.Deletions == 0
}

// Tokens compares the token sequences original and modified and returns a shortest edit script
// as a list of changes.
//
// Changes are in reading order: Unchanged and Added changes follow the order of modified, Removed
// changes are placed where the tokens were deleted. Concatenating the values of all Unchanged and
// Removed changes yields original, concatenating all Unchanged and Added changes yields modified.
// If both inputs are empty, the output has length zero.
//
// Runtime is O((N+M)D) and memory O(D^2), where N = len(original), M = len(modified) and D is the
// number of added and removed tokens.
func Tokens(original, modified []string) []Change {
	script := myers.Diff(original, modified)
	if len(script) == 0 {
		return nil
	}

	out := make([]Change, 0, len(script))
	s, t := 0, 0
	for _, op := range script {
		switch op {
		case edits.Match:
			out = append(out, Change{Unchanged, original[s]})
			s++
			t++
		case edits.Delete:
			out = append(out, Change{Removed, original[s]})
			s++
		case edits.Insert:
			out = append(out, Change{Added, modified[t]})
			t++
		default:
			panic("never reached")
		}
	}
	return out
}

// Summarize counts changes by type.
func Summarize(changes []Change) Stats {
	var stats Stats
	for _, c := range changes {
		switch c.Type {
		case Added:
			stats.Additions++
		case Removed:
			stats.Deletions++
		case Unchanged:
			stats.Unchanged++
		}
	}
	return stats
}

// Compute splits original and modified into tokens according to mode and compares them.
//
// If both inputs are empty, the result is empty for every mode. Note that this differs from
// tokenizing an empty string in [Line] mode, which yields a single empty line.
//
// The following options are supported: [diff.Normalize], [diff.Graphemes], [diff.MaxTokens]
//
// Errors are [ErrInvalidMode] for an unknown mode and [ErrTooLarge] if the inputs exceed the limit
// set with [MaxTokens]. Runtime and memory are as for [Tokens].
func Compute(original, modified string, mode Mode, opts ...Option) (*Result, error) {
	cfg := config.FromOptions(opts, config.Normalize|config.Graphemes|config.MaxTokens)
	return compute(original, modified, mode, cfg)
}

// ComputeContext is like [Compute], but returns early with the context's error if ctx is done
// before the comparison finishes. The comparison itself can't be interrupted, it's abandoned and
// runs to completion in the background.
//
// The following options are supported: [diff.Normalize], [diff.Graphemes], [diff.MaxTokens]
func ComputeContext(ctx context.Context, original, modified string, mode Mode, opts ...Option) (*Result, error) {
	cfg := config.FromOptions(opts, config.Normalize|config.Graphemes|config.MaxTokens)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		r   *Result
		err error
	}
	done := make(chan outcome, 1) // Buffered so that an abandoned comparison doesn't leak.
	go func() {
		r, err := compute(original, modified, mode, cfg)
		done <- outcome{r, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		return o.r, o.err
	}
}

func compute(original, modified string, mode Mode, cfg config.Config) (*Result, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if original == "" && modified == "" {
		return &Result{Changes: []Change{}}, nil
	}

	x := split(original, mode, cfg)
	y := split(modified, mode, cfg)
	if cfg.MaxTokens > 0 && len(x)+len(y) > cfg.MaxTokens {
		return nil, fmt.Errorf("%w: %d tokens exceed the limit of %d", ErrTooLarge, len(x)+len(y), cfg.MaxTokens)
	}

	changes := Tokens(x, y)
	if changes == nil {
		changes = []Change{}
	}
	return &Result{Changes: changes, Stats: Summarize(changes)}, nil
}
