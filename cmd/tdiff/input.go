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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// stdinName is the file name that stands for standard input.
const stdinName = "-"

var (
	errStdinTwice = errors.New("only one input can be read from standard input")
	errBinary     = errors.New("binary files are not supported")
)

// readInputs reads both inputs concurrently.
func readInputs(ctx context.Context, stdin io.Reader, original, modified string) (x, y string, err error) {
	if original == stdinName && modified == stdinName {
		return "", "", errStdinTwice
	}

	var texts [2]string
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range []string{original, modified} {
		g.Go(func() error {
			text, err := readInput(ctx, stdin, name)
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return texts[0], texts[1], nil
}

func readInput(ctx context.Context, stdin io.Reader, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var data []byte
	var err error
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", errBinary
	}
	return string(data), nil
}
