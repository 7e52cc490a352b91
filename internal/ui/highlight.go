package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter provides syntax highlighting for previewed files
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// HighlightLine highlights a single line based on the file name
func (h *Highlighter) HighlightLine(line, filename string) string {
	lexer := getLexerForFile(filename)
	if lexer == nil {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := h.style.Get(token.Type)
		text := token.Value

		if style.Colour.IsSet() {
			color := style.Colour.String()
			styled := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			if style.Bold == chroma.Yes {
				styled = styled.Bold(true)
			}
			if style.Italic == chroma.Yes {
				styled = styled.Italic(true)
			}
			result.WriteString(styled.Render(text))
		} else {
			result.WriteString(text)
		}
	}

	return result.String()
}

// HighlightLines highlights multiple lines
func (h *Highlighter) HighlightLines(lines []string, filename string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = h.HighlightLine(line, filename)
	}
	return result
}

// getLexerForFile returns the appropriate lexer for a filename. Desktop
// entries and the rc files are INI-shaped.
func getLexerForFile(filename string) chroma.Lexer {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".desktop":
		return lexers.Get("ini")
	case ".json":
		return lexers.Get("json")
	case ".yaml", ".yml":
		return lexers.Get("yaml")
	case ".conf", ".cfg", ".ini":
		return lexers.Get("ini")
	case ".md", ".markdown":
		return lexers.Get("markdown")
	case ".sh", ".bash":
		return lexers.Get("bash")
	}

	base := strings.ToLower(filepath.Base(filename))
	if strings.HasSuffix(base, "rc") {
		return lexers.Get("ini")
	}

	return lexers.Match(filename)
}

// GetFileType returns a human-readable file type for display
func GetFileType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".desktop":
		return "Desktop Entry"
	case ".json":
		return "JSON"
	case ".yaml", ".yml":
		return "YAML"
	case ".conf", ".cfg", ".ini":
		return "Config"
	case ".md", ".markdown":
		return "Markdown"
	case ".sh", ".bash":
		return "Bash"
	}

	if strings.HasSuffix(strings.ToLower(filepath.Base(filename)), "rc") {
		return "Config"
	}
	return "Text"
}
