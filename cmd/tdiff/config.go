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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable that points to a configuration file.
const configEnv = "TDIFF_CONFIG"

// configFiles are looked up in the working directory, in this order.
var configFiles = []string{".tdiff.toml", ".tdiff.yaml", ".tdiff.yml"}

// options holds everything that can be configured by flags or a configuration file.
type options struct {
	Mode      string        `toml:"mode" yaml:"mode" validate:"oneof=line word character char"`
	Format    string        `toml:"format" yaml:"format" validate:"oneof=report unified json"`
	Context   int           `toml:"context" yaml:"context" validate:"min=0"`
	Color     string        `toml:"color" yaml:"color" validate:"oneof=auto on off"`
	Normalize bool          `toml:"normalize" yaml:"normalize"`
	Graphemes bool          `toml:"graphemes" yaml:"graphemes"`
	MaxTokens int           `toml:"max_tokens" yaml:"max_tokens" validate:"min=0"`
	Timeout   time.Duration `toml:"timeout" yaml:"timeout" validate:"min=0"`
	ExitCode  bool          `toml:"exit_code" yaml:"exit_code"`
	Log       logOptions    `toml:"log" yaml:"log"`
}

// logOptions configures logging, see newLogger.
type logOptions struct {
	Level      string `toml:"level" yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format     string `toml:"format" yaml:"format" validate:"oneof=console json"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups" validate:"min=0"`
}

func defaultOptions() options {
	return options{
		Mode:    "line",
		Format:  "report",
		Context: 3,
		Color:   "auto",
		Log: logOptions{
			Level:      "warn",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// configPath determines the configuration file to use. Priority:
//  1. the --config flag
//  2. the TDIFF_CONFIG environment variable
//  3. .tdiff.toml, .tdiff.yaml or .tdiff.yml in the working directory
//
// An explicitly named file must exist, an empty result means that no file is used.
func configPath(flag string) (string, error) {
	for _, explicit := range []string{flag, os.Getenv(configEnv)} {
		if explicit == "" {
			continue
		}
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}

	for _, name := range configFiles {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name, nil
		}
	}
	return "", nil
}

// loadConfig reads the configuration file at path into opts. Fields missing from the file keep
// their current value, unknown fields are an error.
func loadConfig(path string, opts *options) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, opts)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config file %s: unsupported format %q", path, ext)
	}
	return nil
}

// validate checks opts after flags and the configuration file have been merged.
func (o *options) validate() error {
	o.Mode = strings.ToLower(o.Mode)
	o.Format = strings.ToLower(o.Format)
	o.Color = strings.ToLower(o.Color)
	o.Log.Level = strings.ToLower(o.Log.Level)
	o.Log.Format = strings.ToLower(o.Log.Format)

	err := validator.New().Struct(o)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Sprintf("%s: invalid value %v (%s=%s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return err
}
