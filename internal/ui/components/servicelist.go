package components

import (
	"fmt"
	"strings"

	"svcmenu/internal/models"
	"svcmenu/internal/ui"
)

// ServiceList is a scrollable, checkable list of context menu entries.
// It renders the filtered projection, while toggles go straight to the
// underlying rows.
type ServiceList struct {
	Projection *models.Projection
	Cursor     int
	Width      int
	Height     int
	Focused    bool
	Title      string
}

// NewServiceList creates a list over the given projection
func NewServiceList(p *models.Projection) *ServiceList {
	return &ServiceList{
		Projection: p,
		Cursor:     0,
		Width:      60,
		Height:     15,
		Focused:    true,
		Title:      "Context Menu",
	}
}

// SetFilter narrows the visible rows and keeps the cursor in range
func (l *ServiceList) SetFilter(query string) {
	l.Projection.SetFilter(query)
	l.clampCursor()
}

// Rows returns the rows currently visible in the list
func (l *ServiceList) Rows() []*models.ServiceRow {
	return l.Projection.Rows()
}

func (l *ServiceList) clampCursor() {
	if n := l.Projection.Len(); l.Cursor >= n {
		l.Cursor = max(0, n-1)
	}
}

// MoveUp moves cursor up
func (l *ServiceList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *ServiceList) MoveDown() {
	if l.Cursor < l.Projection.Len()-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *ServiceList) PageUp() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *ServiceList) PageDown() {
	pageSize := l.Height - 3
	if pageSize < 1 {
		pageSize = 10
	}
	l.Cursor += pageSize
	if l.Cursor >= l.Projection.Len() {
		l.Cursor = max(0, l.Projection.Len()-1)
	}
}

// GoToFirst moves cursor to the first item
func (l *ServiceList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *ServiceList) GoToLast() {
	if n := l.Projection.Len(); n > 0 {
		l.Cursor = n - 1
	}
}

// Toggle flips the checkbox under the cursor and returns the row
func (l *ServiceList) Toggle() *models.ServiceRow {
	row := l.Current()
	if row != nil {
		row.Toggle()
	}
	return row
}

// Current returns the row under the cursor
func (l *ServiceList) Current() *models.ServiceRow {
	rows := l.Projection.Rows()
	if len(rows) > 0 && l.Cursor < len(rows) {
		return rows[l.Cursor]
	}
	return nil
}

// View renders the service list
func (l *ServiceList) View() string {
	var b strings.Builder

	rows := l.Projection.Rows()

	checkedCount := 0
	for _, row := range rows {
		if row.Checked {
			checkedCount++
		}
	}

	title := l.Title
	if len(rows) > 0 {
		title = fmt.Sprintf("%s (%d/%d)", l.Title, checkedCount, len(rows))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", l.Width-2)))
	b.WriteString("\n")

	if len(rows) == 0 {
		if l.Projection.Filter() != "" {
			b.WriteString(ui.ItemStyle.Render("No services match the filter"))
		} else {
			b.WriteString(ui.ItemStyle.Render("No services found"))
		}
		return l.wrapInPanel(b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3 // Minus title and divider
	startIdx := 0
	if l.Cursor >= visibleHeight {
		startIdx = l.Cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(rows))

	// Show scroll indicator at top
	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	// Render visible items
	for i := startIdx; i < endIdx; i++ {
		line := l.renderItem(rows[i], i == l.Cursor)
		b.WriteString(line)
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	// Show scroll indicator at bottom with position info
	if endIdx < len(rows) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	if len(rows) > visibleHeight {
		position := fmt.Sprintf(" %d/%d ", l.Cursor+1, len(rows))
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render(strings.Repeat(" ", max(0, (l.Width-len(position)-4)/2)) + position))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single list row
func (l *ServiceList) renderItem(row *models.ServiceRow, isCursor bool) string {
	checkbox := ui.RenderCheckbox(row.Checked)
	glyph := rowGlyph(row)

	name := row.DisplayText
	maxNameLen := l.Width - 14
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	content := fmt.Sprintf("%s %s %s", checkbox, ui.IconStyle.Render(glyph), name)
	if row.Kind == models.KindVersionControl {
		content = fmt.Sprintf("%s %s", content, ui.MutedStyle.Render("(plugin)"))
	}

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(l.Width - 4).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

// rowGlyph maps a row to a terminal glyph. Theme icon names from the
// desktop files cannot be rendered here.
func rowGlyph(row *models.ServiceRow) string {
	switch row.Kind {
	case models.KindVersionControl:
		return "⎇"
	case models.KindDelete:
		return "✗"
	case models.KindCopyMove:
		return "⇄"
	default:
		return "▸"
	}
}

// wrapInPanel wraps content in a panel border
func (l *ServiceList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
