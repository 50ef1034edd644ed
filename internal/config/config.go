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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

import "github.com/fatih/color"

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for unified hunks.
	Context int

	// If set, inputs are converted to Unicode normalization form C before tokenizing.
	Normalize bool

	// If set, character granularity splits into grapheme clusters instead of code points.
	Graphemes bool

	// Upper bound for the combined number of tokens of both inputs, 0 means unlimited.
	MaxTokens int

	// If set, rendered output is colored for terminals.
	Colors *ColorConfig
}

// ColorConfig holds the colors used to render output for terminals. A nil entry leaves that part
// of the output unchanged.
type ColorConfig struct {
	Header     *color.Color // Summary header of a report.
	HunkHeader *color.Color // "@@ ... @@" lines of a unified diff.
	Unchanged  *color.Color
	Removed    *color.Color
	Added      *color.Color
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
}

// DefaultColors returns the colors used if no colors are configured explicitly.
func DefaultColors() ColorConfig {
	return ColorConfig{
		Header:     Color(int(color.Bold)),
		HunkHeader: Color(int(color.FgCyan)),
		Unchanged:  nil,
		Removed:    Color(int(color.FgRed)),
		Added:      Color(int(color.FgGreen)),
	}
}

// Color creates a color from SGR parameters. The color is always enabled, whether output should
// be colored at all is decided by the caller when it asks for colors.
func Color(params ...int) *color.Color {
	attrs := make([]color.Attribute, len(params))
	for i, p := range params {
		attrs[i] = color.Attribute(p)
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Paint applies c to s if c is set.
func Paint(c *color.Color, s string) string {
	if c == nil || s == "" {
		return s
	}
	return c.Sprint(s)
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Normalize
	Graphemes
	MaxTokens
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "diff.Context"
	case Normalize:
		return "diff.Normalize"
	case Graphemes:
		return "diff.Graphemes"
	case MaxTokens:
		return "diff.MaxTokens"
	case Colors:
		return "diff.TerminalColors"
	default:
		panic("never reached")
	}
}
