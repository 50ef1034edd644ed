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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation in this package is the basic greedy algorithm from section 3 of the paper. It
// keeps the furthest reaching endpoints of every d-path around so that the edit script can be
// recovered by walking backwards from (N, M) to (0, 0). The time complexity is O((N+M)D) and the
// trace of endpoints takes O(D²) space. There are no heuristics: the result is always a shortest
// edit script.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For the inputs x = "ABCABBA" and y = "CBABAC" all possible edits from x to y are:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every vertex is a state; the top left (0,0) corresponds to x and the bottom right (7,6) to y. A
// step to the right deletes an element of x, a step down inserts an element of y and a diagonal
// step, which only exists where both elements are identical, is a match. A shortest edit script is
// a path from (0,0) to (7,6) with the fewest horizontal and vertical steps.
//
// We use s and t for the horizontal and vertical coordinates and k = s - t for diagonals. A d-path
// is a path with exactly d non-diagonal steps. Two facts from the paper drive the search:
//
//   - A d-path ends on a diagonal k in {-d, -d+2, ..., d-2, d}.
//   - The furthest reaching d-path on diagonal k is a furthest reaching (d-1)-path on diagonal k-1
//     followed by a deletion, or one on diagonal k+1 followed by an insertion, in both cases
//     followed by as many matches as possible.
//
// The search computes the furthest reaching endpoints for d = 0, 1, 2, ... until one of them
// reaches (N, M). The predecessor of diagonal k is k+1 if k = -d, k-1 if k = d and otherwise
// whichever neighbor reaches further in s; ties go to k-1. The backtrack applies the same rule to
// the stored endpoints, so it retraces exactly the path the search found. Preferring k-1 on ties
// puts deletions before insertions, which is what most diff tools print.
//
// For the example above the search stops at d = 5 and the script is:
//
//	-A -B  C +B  A  B -B  A +C
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
