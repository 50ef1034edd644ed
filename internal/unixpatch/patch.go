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

// Package unixpatch applies unified diffs with the unix patch tool, so that tests can check that
// rendered diffs are understood by other tools.
//
// This package is only for testing.
package unixpatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrNotInstalled is returned if no patch executable is found in PATH.
var ErrNotInstalled = errors.New("patch tool not installed")

// Apply patches orig with the hunks in unified and returns the result.
func Apply(ctx context.Context, orig, unified string) (string, error) {
	// Using patch with an empty diff will not create an output file.
	if unified == "" {
		return orig, nil
	}
	bin, err := exec.LookPath("patch")
	if err != nil {
		return "", ErrNotInstalled
	}

	dir, err := os.MkdirTemp("", "unixpatch-*")
	if err != nil {
		return "", fmt.Errorf("creating temporary directory: %w", err)
	}
	defer os.RemoveAll(dir)

	files := map[string]string{"patch": unified, "orig": orig}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return "", fmt.Errorf("writing %s file: %w", name, err)
		}
	}

	out := filepath.Join(dir, "out")
	cmd := exec.CommandContext(ctx, bin, "--unified", "--batch", "--quiet", "-i", filepath.Join(dir, "patch"), "-o", out, filepath.Join(dir, "orig"))
	if msg, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("running %v: %w\n%s", cmd.Args, err, msg)
	}

	patched, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("reading patched file: %w", err)
	}
	return string(patched), nil
}
