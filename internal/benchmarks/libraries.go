// Package benchmarks compares the line diffs of this module with other Go diff libraries.
package benchmarks

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"toolbox.dev/diff"
	"toolbox.dev/diff/textdiff"
)

// Impl is a line diff implementation. Diff returns the changed lines prefixed with "+" or "-".
// Other lines in the output are ignored when counting edits.
type Impl struct {
	Name string
	Diff func(x, y string) string
}

var Impls = []Impl{
	{
		Name: "textdiff",
		Diff: func(x, y string) string {
			return textdiff.Unified(x, y)
		},
	},
	{
		Name: "report",
		Diff: func(x, y string) string {
			r, err := diff.Compute(x, y, diff.Line)
			if err != nil {
				panic(err)
			}
			var sb strings.Builder
			for _, c := range r.Changes {
				switch c.Type {
				case diff.Added:
					sb.WriteString("+")
				case diff.Removed:
					sb.WriteString("-")
				default:
					sb.WriteString(" ")
				}
				sb.WriteString(c.Value)
				sb.WriteString("\n")
			}
			return sb.String()
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y string) string {
			return string(gointernal.Diff("x", []byte(x), "y", []byte(y)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var sb strings.Builder
			for _, d := range diffs {
				prefix := " "
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				}
				for _, line := range strings.SplitAfter(d.Text, "\n") {
					if line == "" {
						continue
					}
					sb.WriteString(prefix)
					sb.WriteString(line)
				}
			}
			return sb.String()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			return godebug.Diff(x, y)
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			d := mb0lines{
				x: strings.SplitAfter(x, "\n"),
				y: strings.SplitAfter(y, "\n"),
			}
			changes := mb0.Diff(len(d.x), len(d.y), d)
			var sb strings.Builder
			a := 0
			for _, ch := range changes {
				for ; a < ch.A; a++ {
					sb.WriteString(" " + d.x[a])
				}
				for i := range ch.Del {
					sb.WriteString("-" + d.x[ch.A+i])
					a++
				}
				for i := range ch.Ins {
					sb.WriteString("+" + d.y[ch.B+i])
				}
			}
			for ; a < len(d.x); a++ {
				sb.WriteString(" " + d.x[a])
			}
			return sb.String()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y string) string {
			return udiff.Unified("x", "y", x, y)
		},
	},
}

type mb0lines struct {
	x []string
	y []string
}

func (d mb0lines) Equal(i, j int) bool { return d.x[i] == d.y[j] }
