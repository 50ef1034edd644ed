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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"toolbox.dev/diff/internal/edits"
)

func TestMyersDiff(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		want string
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: "MMM",
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: "",
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: "III",
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: "DDD",
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: "DDMIMMDMI",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "MDI",
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: "DIM",
		},
		{
			name: "insert-before-match",
			x:    strings.Split("ab", ""),
			y:    strings.Split("ca", ""),
			want: "IMD",
		},
		{
			name: "kitten_to_sitting",
			x:    strings.Split("kitten", ""),
			y:    strings.Split("sitting", ""),
			want: "DIMMMDIMI",
		},
		{
			name: "largish",
			x:    strings.Split("xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaay", ""),
			y:    strings.Split("waaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaait", ""),
			want: "DIMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMDII",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(Diff(tt.x, tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMyersSearch(t *testing.T) {
	x := strings.Split("ABCABBA", "")
	y := strings.Split("CBABAC", "")
	trace := search(x, y)

	// The trace holds one snapshot per d < D.
	if got, want := len(trace), 5; got != want {
		t.Fatalf("search(...) returned %d snapshots, want %d", got, want)
	}
	for d, v := range trace {
		if len(v) != 2*d+1 {
			t.Errorf("snapshot %d has %d diagonals, want %d", d, len(v), 2*d+1)
		}
	}
	// Furthest reaching s-coordinates for diagonals -d..d. Only diagonals with the parity of d are
	// written in step d, the others still hold the value of step d-1.
	want := [][]int{
		{0},
		{0, 0, 1},
		{2, 0, 2, 1, 3},
		{3, 2, 4, 2, 5, 3, 5},
		{3, 3, 4, 4, 5, 5, 7, 5, 7},
	}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("search(...) trace differs [-want,+got]:\n%s", diff)
	}
}

func TestMyersDiffIsMinimal(t *testing.T) {
	for i := range 200 {
		seed := sha256.Sum256(fmt.Append(nil, i))
		rng := rand.New(rand.NewChaCha8(seed))
		x := randomInput(rng, 40, 4)
		y := randomInput(rng, 40, 4)

		script := Diff(x, y)
		gotX, gotY := apply(script, x, y)
		if !slices.Equal(gotX, x) || !slices.Equal(gotY, y) {
			t.Fatalf("Diff(%v, %v) = %v does not reconstruct the inputs", x, y, render(script))
		}
		if got, want := cost(script), len(x)+len(y)-2*lcs(x, y); got != want {
			t.Errorf("Diff(%v, %v) = %v has %d edits, want %d", x, y, render(script), got, want)
		}
	}
}

func FuzzMyersDiff(f *testing.F) {
	f.Add([]byte("ABCABBA"), []byte("CBABAC"))
	f.Add([]byte(""), []byte("abc"))
	f.Fuzz(func(t *testing.T, x, y []byte) {
		script := Diff(x, y)
		gotX, gotY := apply(script, x, y)
		if !slices.Equal(gotX, x) || !slices.Equal(gotY, y) {
			t.Errorf("Diff(%q, %q) = %v does not reconstruct the inputs", x, y, render(script))
		}
		if len(x)+len(y) <= 64 {
			if got, want := cost(script), len(x)+len(y)-2*lcs(x, y); got != want {
				t.Errorf("Diff(%q, %q) has %d edits, want %d", x, y, got, want)
			}
		}
	})
}

func BenchmarkMyersDiff(b *testing.B) {
	for _, p := range []struct{ N, D int }{{100, 10}, {1000, 10}, {1000, 100}, {10000, 100}} {
		b.Run(fmt.Sprintf("N=%d_D=%d", p.N, p.D), func(b *testing.B) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256(fmt.Append(nil, p.N, p.D))))
			x := make([]int, p.N)
			for i := range x {
				x[i] = rng.IntN(100)
			}
			y := slices.Clone(x)
			for range p.D {
				y[rng.IntN(len(y))] = -1
			}
			b.ReportAllocs()
			for b.Loop() {
				_ = Diff(x, y)
			}
		})
	}
}

func render(script []edits.Op) string {
	var sb strings.Builder
	for _, op := range script {
		switch op {
		case edits.Match:
			sb.WriteRune('M')
		case edits.Delete:
			sb.WriteRune('D')
		case edits.Insert:
			sb.WriteRune('I')
		}
	}
	return sb.String()
}

// apply rebuilds both inputs from the script.
func apply[T any](script []edits.Op, x, y []T) (gotX, gotY []T) {
	s, t := 0, 0
	for _, op := range script {
		switch op {
		case edits.Match:
			gotX = append(gotX, x[s])
			gotY = append(gotY, y[t])
			s++
			t++
		case edits.Delete:
			gotX = append(gotX, x[s])
			s++
		case edits.Insert:
			gotY = append(gotY, y[t])
			t++
		}
	}
	return gotX, gotY
}

func cost(script []edits.Op) int {
	n := 0
	for _, op := range script {
		if op != edits.Match {
			n++
		}
	}
	return n
}

// lcs computes the length of the longest common subsequence with the textbook O(NM) table.
func lcs[T comparable](x, y []T) int {
	dp := make([][]int, len(x)+1)
	for i := range dp {
		dp[i] = make([]int, len(y)+1)
	}
	for i := len(x) - 1; i >= 0; i-- {
		for j := len(y) - 1; j >= 0; j-- {
			if x[i] == y[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else {
				dp[i][j] = max(dp[i+1][j], dp[i][j+1])
			}
		}
	}
	return dp[0][0]
}

func randomInput(rng *rand.Rand, n, alphabet int) []int {
	x := make([]int, rng.IntN(n+1))
	for i := range x {
		x[i] = rng.IntN(alphabet)
	}
	return x
}
