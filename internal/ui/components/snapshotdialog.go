package components

import (
	"fmt"
	"strings"
	"time"

	"svcmenu/internal/backup"
	"svcmenu/internal/ui"
)

// SnapshotDialog lets the user pick a configuration snapshot to
// restore, newest first.
type SnapshotDialog struct {
	Snapshots []backup.Snapshot
	Cursor    int
	Width     int
	Height    int
	Visible   bool
}

// NewSnapshotDialog creates a new snapshot dialog
func NewSnapshotDialog() *SnapshotDialog {
	return &SnapshotDialog{
		Width:   60,
		Height:  20,
		Visible: false,
	}
}

// Show shows the dialog with the given snapshots, newest first
func (d *SnapshotDialog) Show(snapshots []backup.Snapshot) {
	reversed := make([]backup.Snapshot, len(snapshots))
	for i, s := range snapshots {
		reversed[len(snapshots)-1-i] = s
	}
	d.Snapshots = reversed
	d.Cursor = 0
	d.Visible = true
}

// Hide hides the dialog
func (d *SnapshotDialog) Hide() {
	d.Visible = false
}

// IsVisible returns whether the dialog is visible
func (d *SnapshotDialog) IsVisible() bool {
	return d.Visible
}

// MoveUp moves cursor up
func (d *SnapshotDialog) MoveUp() {
	if d.Cursor > 0 {
		d.Cursor--
	}
}

// MoveDown moves cursor down
func (d *SnapshotDialog) MoveDown() {
	if d.Cursor < len(d.Snapshots)-1 {
		d.Cursor++
	}
}

// Selected returns the snapshot under the cursor
func (d *SnapshotDialog) Selected() (backup.Snapshot, bool) {
	if len(d.Snapshots) > 0 && d.Cursor < len(d.Snapshots) {
		return d.Snapshots[d.Cursor], true
	}
	return backup.Snapshot{}, false
}

// View renders the dialog
func (d *SnapshotDialog) View() string {
	if !d.Visible {
		return ""
	}

	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render("Restore configuration snapshot"))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("-", d.Width-4)))
	b.WriteString("\n\n")

	if len(d.Snapshots) == 0 {
		b.WriteString(ui.MutedStyle.Render("  No snapshots yet. One is taken on every apply."))
	} else {
		b.WriteString(d.renderSnapshotList())
	}

	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("-", d.Width-4)))
	b.WriteString("\n")
	b.WriteString(d.renderHelp())

	return ui.DialogStyle.Width(d.Width).Render(b.String())
}

// renderSnapshotList renders the selectable snapshot rows
func (d *SnapshotDialog) renderSnapshotList() string {
	var b strings.Builder

	// Calculate visible range
	visibleHeight := d.Height - 8
	if visibleHeight < 1 {
		visibleHeight = 5
	}
	startIdx := 0
	if d.Cursor >= visibleHeight {
		startIdx = d.Cursor - visibleHeight + 1
	}
	endIdx := startIdx + visibleHeight
	if endIdx > len(d.Snapshots) {
		endIdx = len(d.Snapshots)
	}

	for i := startIdx; i < endIdx; i++ {
		snap := d.Snapshots[i]
		prefix := "  "
		if i == d.Cursor {
			prefix = "> "
		}

		age := formatTimeAgo(snap.Created)
		line := fmt.Sprintf("%s%s  (%s, %d files)", prefix, snap.ID, age, len(snap.Files))

		if i == d.Cursor {
			b.WriteString(ui.SelectedItemStyle.Width(d.Width - 6).Render(line))
		} else {
			b.WriteString(ui.ItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderHelp renders the help bar
func (d *SnapshotDialog) renderHelp() string {
	items := []string{
		ui.RenderHelpItem("Up/Down", "navigate"),
		ui.RenderHelpItem("Enter", "restore"),
		ui.RenderHelpItem("Esc", "cancel"),
	}
	return strings.Join(items, "  ")
}

// formatTimeAgo formats a time as relative time
func formatTimeAgo(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	duration := time.Since(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		mins := int(duration.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	} else if duration < 24*time.Hour {
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	} else {
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
