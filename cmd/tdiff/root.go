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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"toolbox.dev/diff"
	"toolbox.dev/diff/textdiff"
)

// Exit status of a run.
const (
	exitSame   = 0
	exitDiffer = 1
	exitError  = 2
)

// run executes tdiff with the given arguments and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	status := exitSame
	cmd := newRootCmd(stdin, stdout, stderr, &status)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log := fallbackLogger(stderr)
		log.Error().Err(err).Msg("tdiff failed")
		return exitError
	}
	return status
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, status *int) *cobra.Command {
	flags := defaultOptions()
	var configFlag string

	cmd := &cobra.Command{
		Use:   "tdiff [flags] ORIGINAL MODIFIED",
		Short: "Compare two texts line by line, word by word or character by character",
		Long: `tdiff compares two text files and prints their differences.

Either file can be "-" to read it from standard input.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := defaultOptions()
			path, err := configPath(configFlag)
			if err != nil {
				return err
			}
			if path != "" {
				if err := loadConfig(path, &opts); err != nil {
					return err
				}
			}
			mergeFlags(cmd, &opts, &flags)
			if err := opts.validate(); err != nil {
				return err
			}

			log, closer, err := newLogger(opts.Log, stderr)
			if err != nil {
				return err
			}
			defer closer.Close()
			if path != "" {
				log.Debug().Str("path", path).Msg("loaded config file")
			}

			differ, err := compare(cmd.Context(), log, opts, args[0], args[1], stdin, stdout)
			if err != nil {
				return err
			}
			if differ && opts.ExitCode {
				*status = exitDiffer
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&flags.Mode, "mode", "m", flags.Mode, "comparison granularity (line|word|character)")
	f.StringVarP(&flags.Format, "format", "f", flags.Format, "output format (report|unified|json)")
	f.IntVarP(&flags.Context, "context", "U", flags.Context, "lines of context in unified output")
	f.StringVar(&flags.Color, "color", flags.Color, "colorize output (auto|on|off)")
	f.BoolVar(&flags.Normalize, "normalize", flags.Normalize, "compare texts in Unicode normalization form C")
	f.BoolVar(&flags.Graphemes, "graphemes", flags.Graphemes, "compare grapheme clusters instead of code points in character mode")
	f.IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "reject inputs with more tokens than this, 0 means no limit")
	f.DurationVar(&flags.Timeout, "timeout", flags.Timeout, "give up if the comparison takes longer than this, 0 means no limit")
	f.BoolVar(&flags.ExitCode, "exit-code", flags.ExitCode, "exit with status 1 if the inputs differ")
	f.StringVar(&configFlag, "config", "", "configuration file (.toml, .yaml or .yml)")
	f.StringVar(&flags.Log.Level, "log-level", flags.Log.Level, "log level (trace|debug|info|warn|error)")
	f.StringVar(&flags.Log.Format, "log-format", flags.Log.Format, "log format (console|json)")
	f.StringVar(&flags.Log.File, "log-file", flags.Log.File, "also write logs to this file, rotated by size")
	return cmd
}

// mergeFlags copies the flags that were set on the command line from flags to opts.
func mergeFlags(cmd *cobra.Command, opts, flags *options) {
	changed := cmd.Flags().Changed
	if changed("mode") {
		opts.Mode = flags.Mode
	}
	if changed("format") {
		opts.Format = flags.Format
	}
	if changed("context") {
		opts.Context = flags.Context
	}
	if changed("color") {
		opts.Color = flags.Color
	}
	if changed("normalize") {
		opts.Normalize = flags.Normalize
	}
	if changed("graphemes") {
		opts.Graphemes = flags.Graphemes
	}
	if changed("max-tokens") {
		opts.MaxTokens = flags.MaxTokens
	}
	if changed("timeout") {
		opts.Timeout = flags.Timeout
	}
	if changed("exit-code") {
		opts.ExitCode = flags.ExitCode
	}
	if changed("log-level") {
		opts.Log.Level = flags.Log.Level
	}
	if changed("log-format") {
		opts.Log.Format = flags.Log.Format
	}
	if changed("log-file") {
		opts.Log.File = flags.Log.File
	}
}

// compare reads both inputs, compares them and writes the output. It reports whether the inputs
// differ.
func compare(ctx context.Context, log zerolog.Logger, opts options, original, modified string, stdin io.Reader, stdout io.Writer) (bool, error) {
	mode, err := diff.ParseMode(opts.Mode)
	if err != nil {
		return false, err
	}
	if opts.Format == "unified" && mode != diff.Line {
		log.Warn().Stringer("mode", mode).Msg("unified output is always line based, ignoring mode")
		mode = diff.Line
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	x, y, err := readInputs(ctx, stdin, original, modified)
	if err != nil {
		return false, err
	}
	log.Debug().
		Str("original", original).
		Int("original_bytes", len(x)).
		Str("modified", modified).
		Int("modified_bytes", len(y)).
		Msg("read inputs")

	var computeOpts []diff.Option
	if opts.Normalize {
		computeOpts = append(computeOpts, diff.Normalize())
	}
	if opts.Graphemes {
		computeOpts = append(computeOpts, diff.Graphemes())
	}
	if opts.MaxTokens > 0 {
		computeOpts = append(computeOpts, diff.MaxTokens(opts.MaxTokens))
	}

	start := time.Now()
	r, err := diff.ComputeContext(ctx, x, y, mode, computeOpts...)
	if err != nil {
		return false, fmt.Errorf("comparing %s and %s: %w", original, modified, err)
	}
	log.Debug().
		Stringer("mode", mode).
		Int("additions", r.Stats.Additions).
		Int("deletions", r.Stats.Deletions).
		Int("unchanged", r.Stats.Unchanged).
		Dur("elapsed", time.Since(start)).
		Msg("computed diff")

	var colorOpts []diff.Option
	if useColor(opts.Color, stdout) {
		colorOpts = append(colorOpts, diff.TerminalColors())
	}

	switch opts.Format {
	case "report":
		out, err := diff.Format(r, mode, colorOpts...)
		if err != nil {
			return false, err
		}
		if mode != diff.Line && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err = io.WriteString(stdout, out)
		return !r.Equal(), err
	case "unified":
		if r.Equal() {
			return false, nil
		}
		unifiedOpts := append([]diff.Option{diff.Context(opts.Context)}, colorOpts...)
		if opts.Normalize {
			unifiedOpts = append(unifiedOpts, diff.Normalize())
		}
		_, err := fmt.Fprintf(stdout, "--- %s\n+++ %s\n%s", original, modified, textdiff.Unified(x, y, unifiedOpts...))
		return true, err
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err := enc.Encode(struct {
			Mode diff.Mode `json:"mode"`
			*diff.Result
		}{mode, r})
		return !r.Equal(), err
	default:
		return false, fmt.Errorf("unknown format: %s", opts.Format)
	}
}

// useColor decides whether output to w is colored, "auto" colors terminals unless NO_COLOR is
// set.
func useColor(setting string, w io.Writer) bool {
	switch setting {
	case "on":
		return true
	case "off":
		return false
	default:
		return os.Getenv("NO_COLOR") == "" && isTerminal(w)
	}
}

// isTerminal checks whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
