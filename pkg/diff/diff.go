// Package diff renders line-level unified diffs of stylesheet text.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Unified compares want and got line by line and returns a unified diff with
// wantLabel and gotLabel as file headers. Identical input gives "".
func Unified(want, got, wantLabel, gotLabel string) string {
	if want == got {
		return ""
	}

	dmp := diffmatchpatch.New()
	wantChars, gotChars, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(wantChars, gotChars, false), lines)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", wantLabel)
	fmt.Fprintf(&b, "+++ %s\n", gotLabel)
	fmt.Fprintf(&b, "@@ -1,%d +1,%d @@\n", countLines(want), countLines(got))

	written := 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written == maxDiffLines {
				b.WriteString(truncateMessage + "\n")
				return b.String()
			}
			b.WriteString(prefix + line + "\n")
			written++
		}
	}
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
