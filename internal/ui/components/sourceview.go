package components

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"svcmenu/internal/models"
	"svcmenu/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SourceView displays the desktop file or plugin manifest backing a
// context menu entry, with syntax highlighting in a viewport.
type SourceView struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	// File info
	FilePath   string
	FileName   string
	FileType   string
	FileSize   int64
	TotalLines int

	// Dimensions
	Width  int
	Height int

	// State
	ready bool

	// Styles
	lineNumStyle lipgloss.Style
	headerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	borderStyle  lipgloss.Style
}

// NewSourceView creates a new SourceView with viewport
func NewSourceView() *SourceView {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &SourceView{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		lineNumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")).
			Width(5).
			Align(lipgloss.Right),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(0, 1),
	}
}

// SetSize updates the viewport dimensions
func (p *SourceView) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	// Account for header (3 lines) and border (2 lines)
	contentHeight := height - 5
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
	p.ready = true
}

// LoadRow loads the file backing the given row. Built-in toggles have
// no file behind them and show a short notice instead.
func (p *SourceView) LoadRow(row *models.ServiceRow) error {
	if row == nil {
		return fmt.Errorf("no entry selected")
	}
	if row.SourcePath == "" {
		p.FileType = "Built-in"
		p.setMessage(row.DisplayText, 0, []string{
			"",
			fmt.Sprintf("  %s is a built-in entry.", row.DisplayText),
			"",
			"  Its state lives in the file manager configuration,",
			"  not in a desktop file.",
		})
		return nil
	}
	return p.Load(row.SourcePath)
}

// Load loads a file for preview
func (p *SourceView) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	p.FileType = ui.GetFileType(path)

	// Don't load huge files
	if info.Size() > 1024*1024 { // 1MB limit
		p.setMessage(path, info.Size(), []string{
			"",
			"  ⚠️  File is too large to preview",
			fmt.Sprintf("  Size: %s", formatBytes(info.Size())),
			"",
			"  Use an external editor to view this file.",
		})
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if isBinaryContent(data) {
		p.setMessage(path, info.Size(), []string{
			"",
			"  ⚠️  Binary file - cannot preview",
			fmt.Sprintf("  Size: %s", formatBytes(info.Size())),
			"",
			"  Use an external editor to view this file.",
		})
		return nil
	}

	lines := strings.Split(string(data), "\n")

	// Build content with line numbers and syntax highlighting
	var b strings.Builder
	for i, line := range lines {
		lineNum := p.lineNumStyle.Render(fmt.Sprintf("%d", i+1))
		highlighted := p.highlighter.HighlightLine(line, path)

		// Truncate very long lines for display
		maxWidth := p.viewport.Width - 10
		if maxWidth < 40 {
			maxWidth = 40
		}

		// Use visible length for truncation (accounting for ANSI codes)
		visibleLine := stripAnsi(highlighted)
		if len(visibleLine) > maxWidth {
			truncated := line
			if len(line) > maxWidth-3 {
				truncated = line[:maxWidth-3] + "..."
			}
			highlighted = p.highlighter.HighlightLine(truncated, path)
		}

		b.WriteString(lineNum + " │ " + highlighted)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	p.FilePath = path
	p.FileName = filepath.Base(path)
	p.FileSize = info.Size()
	p.TotalLines = len(lines)
	p.viewport.SetContent(b.String())
	p.viewport.GotoTop()

	return nil
}

// setMessage sets a simple message content
func (p *SourceView) setMessage(path string, size int64, lines []string) {
	p.FilePath = path
	p.FileName = filepath.Base(path)
	p.FileSize = size
	p.TotalLines = len(lines)
	p.viewport.SetContent(strings.Join(lines, "\n"))
	p.viewport.GotoTop()
}

// Update handles messages for viewport scrolling
func (p *SourceView) Update(msg tea.Msg) (*SourceView, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the preview
func (p *SourceView) View() string {
	var b strings.Builder

	// Header
	header := p.headerStyle.Render(fmt.Sprintf("📄 %s", p.FileName))
	info := fmt.Sprintf("  %s", p.FileType)
	if p.FileSize > 0 {
		info = fmt.Sprintf("  %s  %s  %d lines", p.FileType, formatBytes(p.FileSize), p.TotalLines)
	}
	b.WriteString(header + p.infoStyle.Render(info) + "\n")

	// File path
	b.WriteString(p.infoStyle.Render(p.FilePath) + "\n")

	// Separator
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#313244")).
		Render(strings.Repeat("─", max(1, p.Width-4))) + "\n")

	// Viewport content
	b.WriteString(p.viewport.View())

	// Scroll indicator
	if p.TotalLines > p.viewport.Height {
		scrollPercent := p.viewport.ScrollPercent() * 100
		scrollInfo := fmt.Sprintf("─── %.0f%% ───", scrollPercent)
		b.WriteString("\n" + p.infoStyle.Render(scrollInfo))
	}

	style := p.borderStyle.
		Width(p.Width).
		Height(p.Height)

	return style.Render(b.String())
}

// ScrollUp scrolls up one line
func (p *SourceView) ScrollUp() {
	p.viewport.LineUp(1)
}

// ScrollDown scrolls down one line
func (p *SourceView) ScrollDown() {
	p.viewport.LineDown(1)
}

// PageUp scrolls up by a page
func (p *SourceView) PageUp() {
	p.viewport.ViewUp()
}

// PageDown scrolls down by a page
func (p *SourceView) PageDown() {
	p.viewport.ViewDown()
}

// GoToTop goes to the beginning
func (p *SourceView) GoToTop() {
	p.viewport.GotoTop()
}

// GoToBottom goes to the end
func (p *SourceView) GoToBottom() {
	p.viewport.GotoBottom()
}

// isBinaryContent checks if content appears to be binary
func isBinaryContent(data []byte) bool {
	// Check first 512 bytes for null bytes or high proportion of non-printable chars
	checkLen := 512
	if len(data) < checkLen {
		checkLen = len(data)
	}
	if checkLen == 0 {
		return false
	}

	nonPrintable := 0
	for i := 0; i < checkLen; i++ {
		if data[i] == 0 {
			return true
		}
		if data[i] < 32 && data[i] != '\n' && data[i] != '\r' && data[i] != '\t' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(checkLen) > 0.3
}

// formatBytes formats bytes to human readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// stripAnsi removes ANSI escape codes from a string
func stripAnsi(str string) string {
	var result strings.Builder
	inEscape := false

	for i := 0; i < len(str); i++ {
		if str[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if str[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(str[i])
	}

	return result.String()
}
