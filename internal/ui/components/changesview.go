package components

import (
	"fmt"
	"strings"

	"svcmenu/internal/changes"
	"svcmenu/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// ChangesView displays the pending configuration changes as unified
// diffs, one section per config file.
type ChangesView struct {
	Width  int
	Height int

	Diffs []*changes.FileDiff

	// Navigation
	ScrollOffset int
	CurrentHunk  int

	// Syntax highlighting
	highlighter     *ui.Highlighter
	enableHighlight bool

	// Styles
	addStyle     lipgloss.Style
	deleteStyle  lipgloss.Style
	contextStyle lipgloss.Style
	headerStyle  lipgloss.Style
	fileStyle    lipgloss.Style
}

// NewChangesView creates a new ChangesView
func NewChangesView() *ChangesView {
	return &ChangesView{
		Width:           80,
		Height:          20,
		highlighter:     ui.NewHighlighter(),
		enableHighlight: true,
		addStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a6e3a1")),
		deleteStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f38ba8")),
		contextStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
		fileStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f9e2af")),
	}
}

// SetDiffs sets the pending diffs to display
func (d *ChangesView) SetDiffs(diffs []*changes.FileDiff) {
	d.Diffs = diffs
	d.ScrollOffset = 0
	d.CurrentHunk = 0
}

// ScrollUp scrolls the view up
func (d *ChangesView) ScrollUp() {
	if d.ScrollOffset > 0 {
		d.ScrollOffset--
	}
}

// ScrollDown scrolls the view down
func (d *ChangesView) ScrollDown() {
	d.ScrollOffset++
}

// NextHunk moves to the next hunk
func (d *ChangesView) NextHunk() {
	if d.CurrentHunk < d.HunkCount()-1 {
		d.CurrentHunk++
	}
}

// PrevHunk moves to the previous hunk
func (d *ChangesView) PrevHunk() {
	if d.CurrentHunk > 0 {
		d.CurrentHunk--
	}
}

// HunkCount returns the number of hunks across all files
func (d *ChangesView) HunkCount() int {
	count := 0
	for _, diff := range d.Diffs {
		count += len(diff.Hunks)
	}
	return count
}

// HasChanges returns true if any file has differences
func (d *ChangesView) HasChanges() bool {
	for _, diff := range d.Diffs {
		if diff.HasChanges() {
			return true
		}
	}
	return false
}

// ToggleHighlight toggles syntax highlighting
func (d *ChangesView) ToggleHighlight() {
	d.enableHighlight = !d.enableHighlight
}

// View renders the changes view
func (d *ChangesView) View() string {
	var b strings.Builder

	b.WriteString(d.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(d.renderStats())
	b.WriteString("\n\n")

	b.WriteString(d.renderDiffs())

	b.WriteString("\n")
	b.WriteString(d.renderFooter())

	return b.String()
}

func (d *ChangesView) renderHeader() string {
	title := d.headerStyle.Render("📊 Pending Changes")

	highlightStatus := ""
	if d.enableHighlight {
		highlightStatus = " [syntax on]"
	}

	files := fmt.Sprintf("%d file(s)", len(d.Diffs))
	return fmt.Sprintf("%s  %s%s", title, ui.MutedStyle.Render(files),
		ui.MutedStyle.Render(highlightStatus))
}

func (d *ChangesView) renderStats() string {
	if !d.HasChanges() {
		return ui.SuccessNotifyStyle.Render("✓ Nothing to apply")
	}

	added, removed := 0, 0
	for _, diff := range d.Diffs {
		added += diff.LinesAdded
		removed += diff.LinesRemoved
	}

	var parts []string
	if added > 0 {
		parts = append(parts, d.addStyle.Render(fmt.Sprintf("+%d", added)))
	}
	if removed > 0 {
		parts = append(parts, d.deleteStyle.Render(fmt.Sprintf("-%d", removed)))
	}

	hunks := fmt.Sprintf("%d hunks", d.HunkCount())
	return strings.Join(parts, " ") + "  " + ui.MutedStyle.Render(hunks)
}

func (d *ChangesView) renderDiffs() string {
	if !d.HasChanges() {
		return ui.MutedStyle.Render("The saved configuration already matches the selections")
	}

	var lines []string
	lineWidth := d.Width - 4 // Padding
	hunkIdx := 0

	for _, diff := range d.Diffs {
		if !diff.HasChanges() {
			continue
		}

		fileHeader := d.fileStyle.Render("▸ "+diff.Name) + "  " + ui.MutedStyle.Render(diff.Summary())
		lines = append(lines, fileHeader)

		for _, hunk := range diff.Hunks {
			oldN, newN := hunk.Span()
			hunkHeader := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.StartOld, oldN, hunk.StartNew, newN)
			if hunkIdx == d.CurrentHunk {
				hunkHeader = ui.SelectedItemStyle.Render(hunkHeader)
			} else {
				hunkHeader = ui.MutedStyle.Render(hunkHeader)
			}
			lines = append(lines, hunkHeader)

			for _, diffLine := range hunk.DiffLines {
				lines = append(lines, d.formatDiffLine(diff.Name, diffLine, lineWidth))
			}
			hunkIdx++
		}

		lines = append(lines, "") // Blank line between files
	}

	// Apply scroll offset
	visibleLines := d.Height - 8 // Reserve space for header/footer
	if visibleLines < 1 {
		visibleLines = 10
	}

	start := d.ScrollOffset
	if start >= len(lines) {
		start = 0
	}
	end := start + visibleLines
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}

func (d *ChangesView) formatDiffLine(fileName string, line changes.DiffLine, maxWidth int) string {
	content := line.Content
	if len(content) > maxWidth-2 && maxWidth > 5 {
		content = content[:maxWidth-5] + "..."
	}

	// Context lines get syntax highlighting, changed lines keep their color
	if d.enableHighlight && line.Type == changes.DiffEqual && d.highlighter != nil {
		content = d.highlighter.HighlightLine(content, fileName)
	}

	switch line.Type {
	case changes.DiffInsert:
		return d.addStyle.Render("+ " + content)
	case changes.DiffDelete:
		return d.deleteStyle.Render("- " + content)
	default:
		return d.contextStyle.Render("  ") + content
	}
}

func (d *ChangesView) renderFooter() string {
	items := []string{
		ui.RenderHelpItem("j/k", "scroll"),
		ui.RenderHelpItem("n/N", "next/prev hunk"),
		ui.RenderHelpItem("h", "highlight"),
		ui.RenderHelpItem("ESC", "close"),
	}
	return ui.HelpBarStyle.Render(strings.Join(items, "  "))
}
