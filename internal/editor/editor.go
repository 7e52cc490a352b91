// Package editor opens service-menu source files in the user's editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// fallbackEditors are tried in order when no environment preference is set.
var fallbackEditors = []string{"nano", "vim", "vi"}

// Resolve returns the editor command to use: $VISUAL first, then $EDITOR,
// then the first common editor found in PATH.
func Resolve() (string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if cmd := strings.TrimSpace(os.Getenv(env)); cmd != "" {
			return cmd, nil
		}
	}

	for _, name := range fallbackEditors {
		if isCommandAvailable(name) {
			return name, nil
		}
	}

	return "", fmt.Errorf("no editor found (set $EDITOR or install nano, vim, or vi)")
}

// Command builds the command that opens path in the given editor. The editor
// value may carry extra arguments, the way $EDITOR allows.
func Command(editorCmd, path string) (*exec.Cmd, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty editor command")
	}
	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}

// Open resolves the editor and returns the command for the given file.
func Open(path string) (*exec.Cmd, error) {
	editorCmd, err := Resolve()
	if err != nil {
		return nil, err
	}
	return Command(editorCmd, path)
}

// isCommandAvailable checks if a command exists in PATH
func isCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ModTime returns the file's modification time, zero when the file cannot
// be read.
func ModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// ChangedSince reports whether the file was modified after the given time,
// used to decide if the catalog needs a rebuild after editing.
func ChangedSince(path string, since time.Time) bool {
	mod := ModTime(path)
	return !mod.IsZero() && mod.After(since)
}
