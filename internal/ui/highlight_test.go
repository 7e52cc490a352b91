package ui

import (
	"testing"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"compress.desktop", "Desktop Entry"},
		{"data.json", "JSON"},
		{"settings.yaml", "YAML"},
		{"sources.yml", "YAML"},
		{"app.conf", "Config"},
		{"app.cfg", "Config"},
		{"settings.ini", "Config"},
		{"README.md", "Markdown"},
		{"DOCS.markdown", "Markdown"},
		{"install.sh", "Bash"},
		{"servicemenurc", "Config"},
		{"filemanagerrc", "Config"},
		{"globalsrc", "Config"},
		{"unknown.xyz", "Text"},
		{"noextension", "Text"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			result := GetFileType(tt.filename)
			if result != tt.expected {
				t.Errorf("GetFileType(%s) = %s, want %s", tt.filename, result, tt.expected)
			}
		})
	}
}

func TestGetLexerForFile(t *testing.T) {
	tests := []string{
		"openterminal.desktop",
		"data.json",
		"sources.yaml",
		"sources.yml",
		"app.conf",
		"app.cfg",
		"settings.ini",
		"README.md",
		"install.sh",
		"servicemenurc",
		"filemanagerrc",
		"globalsrc",
	}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			if getLexerForFile(filename) == nil {
				t.Errorf("getLexerForFile(%s) should find a lexer", filename)
			}
		})
	}
}

func TestHighlighter_HighlightLine(t *testing.T) {
	h := NewHighlighter()

	// Test basic highlighting doesn't panic
	tests := []struct {
		line     string
		filename string
	}{
		{"[Desktop Entry]", "compress.desktop"},
		{"Exec=tar czf %f.tar.gz %F", "compress.desktop"},
		{"compressHere=false", "servicemenurc"},
		{"enabledPlugins=Git", "filemanagerrc"},
		{`{"KPlugin": {"Id": "git"}}`, "manifest.json"},
		{"repo: https://example.com/menus.git", "sources.yaml"},
		{"# Service menus", "README.md"},
		{"echo installed", "install.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			result := h.HighlightLine(tt.line, tt.filename)
			if result == "" {
				t.Errorf("HighlightLine should return non-empty result")
			}
		})
	}
}

func TestHighlighter_HighlightLines(t *testing.T) {
	h := NewHighlighter()

	lines := []string{
		"[Desktop Entry]",
		"Type=Service",
		"X-KDE-Submenu=Compress",
	}

	result := h.HighlightLines(lines, "compress.desktop")

	if len(result) != len(lines) {
		t.Errorf("HighlightLines should return same number of lines")
	}

	for i, line := range result {
		if line == "" {
			t.Errorf("Line %d should not be empty", i)
		}
	}
}

func TestHighlighter_HighlightLines_Empty(t *testing.T) {
	h := NewHighlighter()

	result := h.HighlightLines([]string{}, "compress.desktop")
	if len(result) != 0 {
		t.Error("HighlightLines with empty input should return empty")
	}
}

func TestHighlighter_UnknownFile(t *testing.T) {
	h := NewHighlighter()

	line := "some random content"
	result := h.HighlightLine(line, "unknown.xyz")
	if result == "" {
		t.Error("HighlightLine should return non-empty for unknown files")
	}
}

func TestHighlighter_EmptyLine(t *testing.T) {
	h := NewHighlighter()

	result := h.HighlightLine("", "compress.desktop")
	_ = result
}

func TestNewHighlighter(t *testing.T) {
	h := NewHighlighter()
	if h == nil {
		t.Fatal("NewHighlighter should not return nil")
	}
	if h.style == nil {
		t.Error("Highlighter style should not be nil")
	}
}
