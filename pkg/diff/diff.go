package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Result is a line-level comparison of two texts.
type Result struct {
	BeforeLabel string
	AfterLabel  string

	diffs []diffmatchpatch.Diff
}

// Lines compares before and after line by line. Lines are never split, so a
// changed declaration shows up as one removal and one insertion.
func Lines(before, after, beforeLabel, afterLabel string) Result {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	return Result{BeforeLabel: beforeLabel, AfterLabel: afterLabel, diffs: diffs}
}

// Changed reports whether the two texts differ.
func (r Result) Changed() bool {
	for _, d := range r.diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Stat returns the number of inserted and deleted lines.
func (r Result) Stat() (added, removed int) {
	for _, d := range r.diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		}
	}
	return added, removed
}

// Unified renders the comparison in unified diff format with every line
// shown as context. Identical texts render as the empty string.
func (r Result) Unified() string {
	if !r.Changed() {
		return ""
	}

	var before, after int
	for _, d := range r.diffs {
		n := len(splitLines(d.Text))
		if d.Type != diffmatchpatch.DiffInsert {
			before += n
		}
		if d.Type != diffmatchpatch.DiffDelete {
			after += n
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", r.BeforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", r.AfterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", before, after)

	for _, d := range r.diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
