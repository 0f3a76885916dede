// Package diff compares two texts line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// String renders the counts as "+N -M".
func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Lines returns a unified-style diff of before and after, compared whole line
// at a time, and the number of added and removed lines. Identical input yields
// an empty string. Output beyond 10,000 lines is truncated with a marker.
func Lines(before, after, beforeLabel, afterLabel string) (string, Stats) {
	var stats Stats
	if before == after {
		return "", stats
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lineArray)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", beforeLabel)
	fmt.Fprintf(&b, "+++ %s\n", afterLabel)

	written := 2
	truncated := false
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
			if written >= maxDiffLines {
				truncated = true
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
			written++
		}
	}

	if truncated {
		b.WriteString(truncateMessage)
		b.WriteString("\n")
	}
	return b.String(), stats
}

// splitLines splits text on newlines, dropping the empty tail left by a
// trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
