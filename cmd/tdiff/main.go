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

// Command tdiff compares two text files and prints their differences.
//
// Usage:
//
//	tdiff [flags] ORIGINAL MODIFIED
//
// Either file can be "-" to read it from standard input. The comparison granularity is selected
// with --mode (line, word or character) and the output with --format: "report" prints a summary
// and the changes, "unified" a unified diff and "json" the structured result.
//
// Defaults for all flags can be set in a configuration file. tdiff uses the file named by
// --config, by the TDIFF_CONFIG environment variable or the first of .tdiff.toml, .tdiff.yaml
// and .tdiff.yml in the working directory. Flags always take precedence over the file.
//
// The exit status is 0 if the inputs are identical or if --exit-code isn't set, 1 if they differ
// and 2 if an error occurred.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
