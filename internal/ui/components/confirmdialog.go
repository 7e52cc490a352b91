package components

import (
	"strings"

	"svcmenu/internal/ui"
)

// ConfirmDialog is a two-button yes/no dialog
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	ActiveButton int // 0 = confirm, 1 = cancel
	Width        int
	Visible      bool
}

// NewConfirmDialog creates a new confirm dialog
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{
		ConfirmLabel: "Confirm",
		CancelLabel:  "Cancel",
		ActiveButton: 1, // Cancel is the default answer
		Width:        60,
		Visible:      false,
	}
}

// Show shows the dialog with the given title and message
func (d *ConfirmDialog) Show(title, message string) {
	d.Title = title
	d.Message = message
	d.ActiveButton = 1
	d.Visible = true
}

// Hide hides the dialog
func (d *ConfirmDialog) Hide() {
	d.Visible = false
}

// IsVisible returns whether the dialog is visible
func (d *ConfirmDialog) IsVisible() bool {
	return d.Visible
}

// MoveLeft focuses the confirm button
func (d *ConfirmDialog) MoveLeft() {
	d.ActiveButton = 0
}

// MoveRight focuses the cancel button
func (d *ConfirmDialog) MoveRight() {
	d.ActiveButton = 1
}

// ToggleButton switches between the two buttons
func (d *ConfirmDialog) ToggleButton() {
	d.ActiveButton = 1 - d.ActiveButton
}

// Confirmed returns true when the confirm button is focused
func (d *ConfirmDialog) Confirmed() bool {
	return d.ActiveButton == 0
}

// View renders the dialog
func (d *ConfirmDialog) View() string {
	if !d.Visible {
		return ""
	}

	var b strings.Builder

	b.WriteString(ui.PanelTitleStyle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("-", d.Width-4)))
	b.WriteString("\n\n")

	b.WriteString(ui.ItemStyle.Render(d.Message))
	b.WriteString("\n\n")

	buttons := ui.RenderButton(d.ConfirmLabel, d.ActiveButton == 0) +
		"  " +
		ui.RenderButton(d.CancelLabel, d.ActiveButton == 1)
	b.WriteString("  " + buttons)

	b.WriteString("\n\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("-", d.Width-4)))
	b.WriteString("\n")
	b.WriteString(d.renderHelp())

	return ui.DialogStyle.Width(d.Width).Render(b.String())
}

// renderHelp renders the help bar
func (d *ConfirmDialog) renderHelp() string {
	items := []string{
		ui.RenderHelpItem("←/→", "switch"),
		ui.RenderHelpItem("Enter", "choose"),
		ui.RenderHelpItem("Esc", "cancel"),
	}
	return strings.Join(items, "  ")
}
