// Package diffparser turns unified-diff text into per-line records with
// reconstructed source line numbers. Parsing is best effort: malformed hunks
// are skipped so that a broken patch can never abort a review.
package diffparser

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind tags one parsed diff line.
type LineKind string

const (
	LineAdded   LineKind = "added"
	LineRemoved LineKind = "removed"
	LineContext LineKind = "context"
)

// Line is one line inside a parsed patch. Number is 1-based: for added and
// context lines it refers to the new file, for removed lines to the old file.
// Position is the offset within the patch body counting every line after the
// first hunk header (GitHub's review-comment position).
type Line struct {
	Kind     LineKind
	Number   int
	Position int
	Content  string
}

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse scans a per-file patch and emits one record per added, removed or
// context line. An empty patch (binary file, removed file) yields no records
// and no error. Lines before the first hunk header and "\ No newline" markers
// are ignored.
func Parse(patch string) []Line {
	if patch == "" {
		return nil
	}

	var records []Line
	oldLine, newLine := 0, 0
	position := 0
	inHunk := false
	sawHunk := false

	for _, raw := range strings.Split(patch, "\n") {
		if strings.HasPrefix(raw, "@@") {
			m := hunkHeaderRe.FindStringSubmatch(raw)
			if m == nil {
				// Unrecognized header: drop this hunk's lines, keep scanning
				// for the next valid one.
				inHunk = false
				continue
			}
			oldLine = atoiOr(m[1], 1)
			newLine = atoiOr(m[3], 1)
			if sawHunk {
				position++
			}
			inHunk = true
			sawHunk = true
			continue
		}
		if !inHunk {
			continue
		}
		position++

		switch {
		case strings.HasPrefix(raw, "+++") || strings.HasPrefix(raw, "---"):
			// file header markers, not hunk content
		case strings.HasPrefix(raw, "+"):
			records = append(records, Line{Kind: LineAdded, Number: newLine, Position: position, Content: raw[1:]})
			newLine++
		case strings.HasPrefix(raw, "-"):
			records = append(records, Line{Kind: LineRemoved, Number: oldLine, Position: position, Content: raw[1:]})
			oldLine++
		case strings.HasPrefix(raw, " "):
			records = append(records, Line{Kind: LineContext, Number: newLine, Position: position, Content: raw[1:]})
			oldLine++
			newLine++
		}
	}
	return records
}

// AddedLinePositions maps new-file line numbers of added lines to their diff
// positions, for anchoring review comments.
func AddedLinePositions(patch string) map[int]int {
	positions := make(map[int]int)
	for _, rec := range Parse(patch) {
		if rec.Kind == LineAdded {
			positions[rec.Number] = rec.Position
		}
	}
	return positions
}

// SplitFilePatches splits a whole-PR unified diff into per-file patch bodies
// keyed by new path. The body starts at the file's first hunk header; files
// without hunks (binary changes) are omitted. Needed for providers whose
// changed-files API does not return per-file patches.
func SplitFilePatches(diff string) map[string]string {
	patches := make(map[string]string)
	var path string
	var body []string
	inBody := false

	flush := func() {
		if path != "" && len(body) > 0 {
			patches[path] = strings.Join(body, "\n")
		}
		body = nil
		inBody = false
	}

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			flush()
			path = newPathFromHeader(line)
			continue
		}
		if path == "" {
			continue
		}
		if strings.HasPrefix(line, "@@") {
			inBody = true
		}
		if inBody {
			body = append(body, line)
		}
	}
	flush()
	return patches
}

func newPathFromHeader(line string) string {
	parts := strings.Split(line, " ")
	if len(parts) < 4 {
		return ""
	}
	return strings.TrimPrefix(parts[3], "b/")
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
