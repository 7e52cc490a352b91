// Package desktop parses desktop-entry files: the INI-like descriptors used
// for applications, service menus and legacy plugins. Only the subset needed
// for context-menu services is mapped.
package desktop

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	mainGroup         = "Desktop Entry"
	actionGroupPrefix = "Desktop Action "

	// SeparatorID marks a menu separator inside an action list.
	SeparatorID = "_SEPARATOR_"
)

// Entry is one parsed desktop-entry file.
type Entry struct {
	Path         string
	Type         string
	Name         string
	Comment      string
	Icon         string
	NoDisplay    bool
	Hidden       bool
	Submenu      string
	ServiceTypes []string
	Actions      []Action
}

// Action is a user-defined action declared by a desktop entry.
type Action struct {
	ID        string
	Text      string
	Icon      string
	Exec      string
	NoDisplay bool
}

// IsSeparator reports whether the action is a menu separator rather than a
// real entry.
func (a Action) IsSeparator() bool {
	return a.ID == SeparatorID
}

var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:       "=",
	KeyValueDelimiterOnWrite: "=",
	IgnoreInlineComment:      true,
}

// Parse reads and parses the desktop-entry file at path.
func Parse(path string) (*Entry, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read desktop entry %s: %w", path, err)
	}
	return fromFile(f, path)
}

// ParseBytes parses desktop-entry content that is already in memory. The
// path is only recorded on the returned entry.
func ParseBytes(data []byte, path string) (*Entry, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse desktop entry %s: %w", path, err)
	}
	return fromFile(f, path)
}

func fromFile(f *ini.File, path string) (*Entry, error) {
	main, err := f.GetSection(mainGroup)
	if err != nil {
		return nil, fmt.Errorf("%s: missing [%s] group", path, mainGroup)
	}

	entry := &Entry{
		Path:         path,
		Type:         main.Key("Type").String(),
		Name:         main.Key("Name").String(),
		Comment:      main.Key("Comment").String(),
		Icon:         main.Key("Icon").String(),
		NoDisplay:    boolKey(main, "NoDisplay"),
		Hidden:       boolKey(main, "Hidden"),
		Submenu:      main.Key("X-KDE-Submenu").String(),
		ServiceTypes: splitList(firstOf(main, "X-KDE-ServiceTypes", "ServiceTypes")),
	}

	for _, id := range splitList(main.Key("Actions").String()) {
		if id == SeparatorID {
			entry.Actions = append(entry.Actions, Action{ID: id})
			continue
		}
		group, err := f.GetSection(actionGroupPrefix + id)
		if err != nil {
			// Declared but undefined actions are dropped.
			continue
		}
		entry.Actions = append(entry.Actions, Action{
			ID:        id,
			Text:      group.Key("Name").String(),
			Icon:      group.Key("Icon").String(),
			Exec:      group.Key("Exec").String(),
			NoDisplay: boolKey(group, "NoDisplay"),
		})
	}

	return entry, nil
}

// HasServiceType reports whether the entry declares the given service type.
func (e *Entry) HasServiceType(t string) bool {
	for _, st := range e.ServiceTypes {
		if st == t {
			return true
		}
	}
	return false
}

func boolKey(s *ini.Section, key string) bool {
	v, err := s.Key(key).Bool()
	return err == nil && v
}

func firstOf(s *ini.Section, keys ...string) string {
	for _, k := range keys {
		if s.HasKey(k) {
			return s.Key(k).String()
		}
	}
	return ""
}

// splitList splits a semicolon-separated desktop-entry list value.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
