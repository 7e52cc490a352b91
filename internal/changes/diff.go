// Package changes computes what applying the current selections would write
// to the configuration files, presented as line diffs.
package changes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffType classifies a diff line.
type DiffType int

const (
	DiffEqual DiffType = iota
	DiffInsert
	DiffDelete
)

// DiffLine is a single line of a hunk.
type DiffLine struct {
	Type    DiffType
	Content string
	LineNum int // line number in the saved (delete/equal) or pending (insert) text
}

// DiffHunk groups nearby changes with surrounding context.
type DiffHunk struct {
	StartOld  int
	StartNew  int
	LinesOld  []string
	LinesNew  []string
	DiffLines []DiffLine
}

// Span counts the hunk's lines on each side, context included.
func (h *DiffHunk) Span() (oldLines, newLines int) {
	for _, l := range h.DiffLines {
		switch l.Type {
		case DiffEqual:
			oldLines++
			newLines++
		case DiffDelete:
			oldLines++
		case DiffInsert:
			newLines++
		}
	}
	return oldLines, newLines
}

// FileDiff is the diff of one configuration file between its saved content
// and the pending write.
type FileDiff struct {
	Name         string
	Identical    bool
	Hunks        []DiffHunk
	LinesAdded   int
	LinesRemoved int
}

const contextLines = 3

// Compute diffs two texts line by line.
func Compute(name, oldText, newText string) *FileDiff {
	d := &FileDiff{Name: name}

	if oldText == newText {
		d.Identical = true
		return d
	}

	if oldText == "" {
		lines := splitLines(newText)
		d.Hunks = []DiffHunk{{
			StartOld:  1,
			StartNew:  1,
			LinesNew:  lines,
			DiffLines: linesToDiff(lines, DiffInsert),
		}}
		d.LinesAdded = len(lines)
		return d
	}

	if newText == "" {
		lines := splitLines(oldText)
		d.Hunks = []DiffHunk{{
			StartOld:  1,
			StartNew:  1,
			LinesOld:  lines,
			DiffLines: linesToDiff(lines, DiffDelete),
		}}
		d.LinesRemoved = len(lines)
		return d
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	diffs = dmp.DiffCleanupSemantic(diffs)

	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		d.Identical = true
		return d
	}

	d.Hunks = buildHunks(diffs)
	for _, hunk := range d.Hunks {
		d.LinesAdded += len(hunk.LinesNew)
		d.LinesRemoved += len(hunk.LinesOld)
	}
	d.Identical = len(d.Hunks) == 0

	return d
}

// buildHunks turns the raw diff stream into hunks with up to contextLines
// equal lines on each side of a change.
func buildHunks(diffs []diffmatchpatch.Diff) []DiffHunk {
	var hunks []DiffHunk
	var current *DiffHunk
	var trailing []DiffLine // equal lines after a change, not yet committed
	var leading []DiffLine  // most recent equal lines, candidate context
	oldLine, newLine := 1, 1

	closeHunk := func() {
		if current == nil {
			return
		}
		current.DiffLines = append(current.DiffLines, trailing...)
		trailing = nil
		hunks = append(hunks, *current)
		current = nil
	}

	openHunk := func() {
		if current != nil {
			current.DiffLines = append(current.DiffLines, trailing...)
			trailing = nil
			return
		}
		current = &DiffHunk{
			StartOld: oldLine - len(leading),
			StartNew: newLine - len(leading),
		}
		current.DiffLines = append(current.DiffLines, leading...)
		leading = nil
	}

	for _, d := range diffs {
		lines := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			for _, line := range lines {
				dl := DiffLine{Type: DiffEqual, Content: line, LineNum: oldLine}
				oldLine++
				newLine++
				if current != nil {
					trailing = append(trailing, dl)
					if len(trailing) >= contextLines {
						closeHunk()
					}
					continue
				}
				leading = append(leading, dl)
				if len(leading) > contextLines {
					leading = leading[1:]
				}
			}

		case diffmatchpatch.DiffDelete:
			openHunk()
			for _, line := range lines {
				current.DiffLines = append(current.DiffLines, DiffLine{Type: DiffDelete, Content: line, LineNum: oldLine})
				current.LinesOld = append(current.LinesOld, line)
				oldLine++
			}

		case diffmatchpatch.DiffInsert:
			openHunk()
			for _, line := range lines {
				current.DiffLines = append(current.DiffLines, DiffLine{Type: DiffInsert, Content: line, LineNum: newLine})
				current.LinesNew = append(current.LinesNew, line)
				newLine++
			}
		}
	}

	closeHunk()
	return hunks
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func linesToDiff(lines []string, diffType DiffType) []DiffLine {
	result := make([]DiffLine, len(lines))
	for i, line := range lines {
		result[i] = DiffLine{
			Type:    diffType,
			Content: line,
			LineNum: i + 1,
		}
	}
	return result
}

// FormatUnified renders the diff in unified format.
func FormatUnified(d *FileDiff) string {
	var sb strings.Builder

	sb.WriteString("--- a/" + d.Name + "\n")
	sb.WriteString("+++ b/" + d.Name + "\n")

	for _, hunk := range d.Hunks {
		oldN, newN := hunk.Span()
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", hunk.StartOld, oldN, hunk.StartNew, newN)
		for _, line := range hunk.DiffLines {
			switch line.Type {
			case DiffEqual:
				sb.WriteString(" " + line.Content + "\n")
			case DiffInsert:
				sb.WriteString("+" + line.Content + "\n")
			case DiffDelete:
				sb.WriteString("-" + line.Content + "\n")
			}
		}
	}

	return sb.String()
}

// HasChanges reports whether the pending write differs from the saved file.
func (d *FileDiff) HasChanges() bool {
	return !d.Identical
}

// Summary returns a brief "+n -m" change count.
func (d *FileDiff) Summary() string {
	if d.Identical {
		return "No changes"
	}

	var parts []string
	if d.LinesAdded > 0 {
		parts = append(parts, "+"+strconv.Itoa(d.LinesAdded))
	}
	if d.LinesRemoved > 0 {
		parts = append(parts, "-"+strconv.Itoa(d.LinesRemoved))
	}
	return strings.Join(parts, " ")
}
