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

// Package edits contains the edit script representation that's produced by the myers algorithm
// and is then translated to a user facing API.
package edits

import (
	"fmt"
	"iter"
)

// Op is a single step of an edit script.
//
// An edit script for the inputs x and y is a []Op in reading order. Every Match consumes one
// element of x and one element of y, every Delete consumes one element of x and every Insert one
// element of y.
type Op uint8

const (
	Match Op = iota
	Delete
	Insert
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Hunk describes a sequence of consecutive edits.
type Hunk struct {
	S0, S1   int // Start and end of the hunk in x.
	T0, T1   int // Start and end of the hunk in y.
	Pos, End int // Start and end of the hunk in the script.
}

// Hunks groups the changes in script into hunks with up to context matches before and after each
// change. Hunks that are separated by at most 2*context matches are merged.
func Hunks(script []Op, context int) iter.Seq[Hunk] {
	return func(yield func(Hunk) bool) {
		context = max(0, context)
		n := len(script)
		i := 0             // current index into script
		c, s, t := 0, 0, 0 // cursor into script and the matching positions in x, y
		advance := func(to int) {
			for ; c < to; c++ {
				switch script[c] {
				case Match:
					s++
					t++
				case Delete:
					s++
				case Insert:
					t++
				}
			}
		}
		for i < n {
			if script[i] == Match {
				i++
				continue
			}

			// i is the first change of a new hunk, find its last change.
			pos := max(0, i-context)
			end := i
			for j := i; j < n; {
				if script[j] != Match {
					j++
					end = j
					continue
				}
				run := j
				for run < n && script[run] == Match {
					run++
				}
				if run == n || run-j > 2*context {
					break
				}
				j = run
			}
			end = min(n, end+context)

			advance(pos)
			s0, t0 := s, t
			advance(end)
			if !yield(Hunk{S0: s0, S1: s, T0: t0, T1: t, Pos: pos, End: end}) {
				return
			}
			i = end
		}
	}
}
