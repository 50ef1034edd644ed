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

package myers

import (
	"slices"

	"toolbox.dev/diff/internal/edits"
)

// Diff compares the contents of x and y and returns a shortest edit script that transforms x into
// y.
func Diff[T comparable](x, y []T) []edits.Op {
	n, m := len(x), len(y)

	// Handle trivial cases without searching the edit graph.
	switch {
	case n == 0 && m == 0:
		return nil
	case n == m && slices.Equal(x, y):
		return repeat(edits.Match, n)
	case n == 0:
		return repeat(edits.Insert, m)
	case m == 0:
		return repeat(edits.Delete, n)
	}

	trace := search(x, y)
	return backtrack(trace, n, m)
}

func repeat(op edits.Op, n int) []edits.Op {
	script := make([]edits.Op, n)
	for i := range script {
		script[i] = op
	}
	return script
}

// search runs the forward pass and returns the trace: trace[d] holds the furthest reaching
// s-coordinates of all d-paths, where the endpoint on diagonal k is stored in trace[d][d+k]. The
// search stops at the first d-path that reaches (len(x), len(y)), that is len(trace) is the edit
// distance.
func search[T comparable](x, y []T) [][]int {
	n, m := len(x), len(y)

	// v[v0+k] is the furthest reaching s-coordinate on diagonal k. There's one extra slot on
	// both ends so that d = 0 can read its (virtual) predecessor on diagonal 1.
	dmax := n + m
	v := make([]int, 2*dmax+3)
	v0 := dmax + 1

	var trace [][]int
	for d := 0; d <= dmax; d++ {
		for k := -d; k <= d; k += 2 {
			var s int
			if k == -d || (k != d && v[v0+k-1] < v[v0+k+1]) {
				s = v[v0+k+1] // insertion, step down from diagonal k+1
			} else {
				s = v[v0+k-1] + 1 // deletion, step right from diagonal k-1
			}
			t := s - k
			for s < n && t < m && x[s] == y[t] {
				s++
				t++
			}
			v[v0+k] = s
			if s >= n && t >= m {
				return trace
			}
		}
		trace = append(trace, slices.Clone(v[v0-d:v0+d+1]))
	}
	panic("never reached")
}

// backtrack walks the trace backwards from (n, m) to (0, 0) and returns the edit script in
// forward order.
func backtrack(trace [][]int, n, m int) []edits.Op {
	script := make([]edits.Op, 0, n+m)
	s, t := n, m
	for d := len(trace); d > 0; d-- {
		v := trace[d-1] // endpoints of the (d-1)-paths, diagonal k is at v[d-1+k]
		v0 := d - 1

		k := s - t
		var pk int
		if k == -d || (k != d && v[v0+k-1] < v[v0+k+1]) {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := v[v0+pk]
		pt := ps - pk

		for s > ps && t > pt {
			script = append(script, edits.Match)
			s--
			t--
		}
		if s == ps {
			script = append(script, edits.Insert)
			t--
		} else {
			script = append(script, edits.Delete)
			s--
		}
	}
	// The remaining steps belong to the 0-path, they are all matches.
	for ; s > 0; s-- {
		script = append(script, edits.Match)
	}
	slices.Reverse(script)
	return script
}
