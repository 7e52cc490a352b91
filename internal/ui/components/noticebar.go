package components

import (
	"fmt"
	"strings"

	"svcmenu/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// NoticeKind classifies a notice shown in the bar
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
	NoticeRestart
)

// NoticeAction is a key hint rendered next to the notice message
type NoticeAction struct {
	Key   string
	Label string
}

// Notice is a message with optional key actions
type Notice struct {
	Kind    NoticeKind
	Message string
	Actions []NoticeAction
}

// RestartNotice builds the notice shown when plugin changes need a
// file manager restart to take effect.
func RestartNotice() *Notice {
	return &Notice{
		Kind:    NoticeRestart,
		Message: "Restart the file manager for the plugin changes to take effect",
		Actions: []NoticeAction{
			{Key: "x", Label: "don't show again"},
			{Key: "esc", Label: "dismiss"},
		},
	}
}

// NoticeBar displays a notice at the top of the screen
type NoticeBar struct {
	Notice  *Notice
	Width   int
	Visible bool
}

// NewNoticeBar creates a new notice bar
func NewNoticeBar() *NoticeBar {
	return &NoticeBar{
		Notice:  nil,
		Width:   80,
		Visible: true,
	}
}

// SetNotice updates the current notice
func (s *NoticeBar) SetNotice(notice *Notice) {
	s.Notice = notice
}

// Clear removes the current notice
func (s *NoticeBar) Clear() {
	s.Notice = nil
}

// SetWidth sets the width of the bar
func (s *NoticeBar) SetWidth(width int) {
	s.Width = width
}

// Show shows the notice bar
func (s *NoticeBar) Show() {
	s.Visible = true
}

// Hide hides the notice bar
func (s *NoticeBar) Hide() {
	s.Visible = false
}

// IsVisible returns whether the bar is visible
func (s *NoticeBar) IsVisible() bool {
	return s.Visible && s.Notice != nil && s.Notice.Message != ""
}

// compactWidth is the width below which the bar drops its border and
// renders on a single line.
const compactWidth = 60

// View renders the notice bar
func (s *NoticeBar) View() string {
	if !s.IsVisible() {
		return ""
	}
	if s.Width < compactWidth {
		return s.CompactView()
	}

	var b strings.Builder

	borderColor, icon := s.decorations()

	b.WriteString("  ")
	b.WriteString(s.renderIcon(icon, borderColor))
	b.WriteString(" ")
	b.WriteString(s.Notice.Message)

	if len(s.Notice.Actions) > 0 {
		b.WriteString("   ")
		for i, action := range s.Notice.Actions {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(s.renderAction(action))
		}
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(s.Width - 2)

	return style.Render(b.String())
}

// decorations maps the notice kind to a border color and icon tag
func (s *NoticeBar) decorations() (lipgloss.Color, string) {
	switch s.Notice.Kind {
	case NoticeSuccess:
		return ui.Success, "[OK]"
	case NoticeWarning:
		return ui.Warning, "[!!]"
	case NoticeError:
		return ui.Error, "[XX]"
	case NoticeRestart:
		return ui.Warning, "[RS]"
	default:
		return ui.Secondary, "[--]"
	}
}

// renderIcon renders the icon tag with the notice color
func (s *NoticeBar) renderIcon(icon string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon)
}

// renderAction renders an action key hint
func (s *NoticeBar) renderAction(action NoticeAction) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ui.Foreground).
		Background(ui.Border).
		Padding(0, 1).
		Bold(true)

	labelStyle := ui.MutedStyle

	return fmt.Sprintf("%s %s", keyStyle.Render(action.Key), labelStyle.Render(action.Label))
}

// CompactView renders a compact version for smaller widths
func (s *NoticeBar) CompactView() string {
	if !s.IsVisible() {
		return ""
	}

	var b strings.Builder

	color, icon := s.decorations()
	b.WriteString(s.renderIcon(icon, color))
	b.WriteString(" ")

	msg := s.Notice.Message
	maxLen := s.Width - 20
	if len(msg) > maxLen && maxLen > 0 {
		msg = msg[:maxLen-3] + "..."
	}
	b.WriteString(msg)

	if len(s.Notice.Actions) > 0 {
		b.WriteString(" ")
		b.WriteString(ui.HelpKeyStyle.Render("[" + s.Notice.Actions[0].Key + "]"))
	}

	return ui.MutedStyle.Render(b.String())
}

// Height returns the number of terminal rows the bar occupies. The
// bordered form wraps long messages, so this measures the actual render.
func (s *NoticeBar) Height() int {
	if !s.IsVisible() {
		return 0
	}
	return lipgloss.Height(s.View())
}
