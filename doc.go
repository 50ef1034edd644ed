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

// Package diff computes the difference between two texts and renders it for humans.
//
// Texts are split into tokens at a selectable granularity ([Line], [Word] or [Character]), the
// token sequences are compared with Myers' algorithm, and the resulting shortest edit script is
// classified into [Change] records with aggregate [Stats]. The main functions are [Compute], which
// returns a [Result], and [Format], which renders a result as a report.
//
// Performance: The comparison takes O((N+M)D) time and O(D^2) space, where N and M are the number
// of tokens in the two inputs and D is the number of added and removed tokens. Comparing two large
// and wholly dissimilar texts character by character is therefore slow and memory hungry, use
// [MaxTokens] to put a ceiling on the input size.
//
// Note: For a unified line-by-line diff of text, please see [toolbox.dev/diff/textdiff].
//
// [toolbox.dev/diff/textdiff]: https://pkg.go.dev/toolbox.dev/diff/textdiff
package diff
