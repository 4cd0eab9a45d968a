package differ

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RowKind classifies one row of a side-by-side comparison.
type RowKind int

const (
	// RowEqual means the line is present unchanged on both sides.
	RowEqual RowKind = iota
	// RowChanged means the line differs between the two sides.
	RowChanged
	// RowAdded means the line exists only in the new content.
	RowAdded
	// RowRemoved means the line exists only in the previous content.
	RowRemoved
)

// Row is a single aligned line pair of a side-by-side comparison.
type Row struct {
	Kind     RowKind
	Previous string
	New      string
}

// Result is a line-oriented comparison of two content versions.
type Result struct {
	Rows         []Row
	LinesAdded   int
	LinesRemoved int
	Identical    bool
}

// ContentDiffer produces line-oriented diffs of robots.txt content. The
// comparison is purely textual; no robots.txt grammar awareness is applied.
type ContentDiffer struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	logger zerolog.Logger
}

// NewContentDiffer creates a new ContentDiffer.
func NewContentDiffer(logger zerolog.Logger) *ContentDiffer {
	return &ContentDiffer{
		dmp:    diffmatchpatch.New(),
		logger: logger.With().Str("component", "ContentDiffer").Logger(),
	}
}

// Diff compares previous and latest content line by line and returns aligned
// rows suitable for a side-by-side rendering, plus insertion/deletion counts.
func (cd *ContentDiffer) Diff(previous, latest string) *Result {
	result := &Result{}

	if previous == latest {
		result.Identical = true
		for _, line := range splitLines(previous) {
			result.Rows = append(result.Rows, Row{Kind: RowEqual, Previous: line, New: line})
		}
		return result
	}

	chars1, chars2, lineArray := cd.dmp.DiffLinesToChars(previous, latest)
	diffs := cd.dmp.DiffMain(chars1, chars2, false)
	diffs = cd.dmp.DiffCharsToLines(diffs, lineArray)

	var pendingRemovals []string
	flushRemovals := func() {
		for _, line := range pendingRemovals {
			result.Rows = append(result.Rows, Row{Kind: RowRemoved, Previous: line})
			result.LinesRemoved++
		}
		pendingRemovals = nil
	}

	for _, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flushRemovals()
			for _, line := range lines {
				result.Rows = append(result.Rows, Row{Kind: RowEqual, Previous: line, New: line})
			}
		case diffmatchpatch.DiffDelete:
			pendingRemovals = append(pendingRemovals, lines...)
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				if len(pendingRemovals) > 0 {
					// Pair an insertion with a pending deletion as a changed line.
					result.Rows = append(result.Rows, Row{Kind: RowChanged, Previous: pendingRemovals[0], New: line})
					pendingRemovals = pendingRemovals[1:]
					result.LinesAdded++
					result.LinesRemoved++
				} else {
					result.Rows = append(result.Rows, Row{Kind: RowAdded, New: line})
					result.LinesAdded++
				}
			}
		}
	}
	flushRemovals()

	cd.logger.Debug().
		Int("rows", len(result.Rows)).
		Int("lines_added", result.LinesAdded).
		Int("lines_removed", result.LinesRemoved).
		Msg("Computed line diff")

	return result
}

// Summary returns a short textual description of the diff for logs.
func (r *Result) Summary() string {
	if r.Identical {
		return "No textual changes detected."
	}
	return fmt.Sprintf("%d insertions (+), %d deletions (-).", r.LinesAdded, r.LinesRemoved)
}

// splitLines splits content on newlines, dropping a single trailing empty
// element produced by a final newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
