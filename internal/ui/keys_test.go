package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Home", km.Home},
		{"End", km.End},
		{"Space", km.Space},
		{"Enter", km.Enter},
		{"Search", km.Search},
		{"Escape", km.Escape},
		{"Apply", km.Apply},
		{"Defaults", km.Defaults},
		{"Refresh", km.Refresh},
		{"Download", km.Download},
		{"Changes", km.Changes},
		{"Snapshots", km.Snapshots},
		{"Preview", km.Preview},
		{"Edit", km.Edit},
		{"NextHunk", km.NextHunk},
		{"PrevHunk", km.PrevHunk},
		{"Help", km.Help},
		{"Quit", km.Quit},
	}

	for _, b := range bindings {
		if len(b.binding.Keys()) == 0 {
			t.Errorf("%s binding should have keys", b.name)
		}
		if b.binding.Help().Key == "" {
			t.Errorf("%s binding should have help key", b.name)
		}
		if b.binding.Help().Desc == "" {
			t.Errorf("%s binding should have help description", b.name)
		}
	}
}

func TestKeyMap_Navigation(t *testing.T) {
	km := DefaultKeyMap()

	navKeys := []struct {
		name    string
		binding key.Binding
		vimKey  string
	}{
		{"Up", km.Up, "k"},
		{"Down", km.Down, "j"},
	}

	for _, nk := range navKeys {
		keys := nk.binding.Keys()
		hasVimKey := false
		for _, k := range keys {
			if k == nk.vimKey {
				hasVimKey = true
				break
			}
		}
		if !hasVimKey {
			t.Errorf("%s should include vim key '%s'", nk.name, nk.vimKey)
		}
	}
}

func TestKeyMap_Quit(t *testing.T) {
	km := DefaultKeyMap()
	keys := km.Quit.Keys()

	if len(keys) != 2 {
		t.Errorf("Quit should have 2 keys, got %d", len(keys))
	}
}

func TestKeyMap_SettingsKeys(t *testing.T) {
	km := DefaultKeyMap()

	if km.Apply.Keys()[0] != "a" {
		t.Errorf("Apply key should be 'a', got '%s'", km.Apply.Keys()[0])
	}
	if km.Defaults.Keys()[0] != "D" {
		t.Errorf("Defaults key should be 'D', got '%s'", km.Defaults.Keys()[0])
	}
	if km.Search.Keys()[0] != "/" {
		t.Errorf("Search key should be '/', got '%s'", km.Search.Keys()[0])
	}
	if km.Changes.Keys()[0] != "d" {
		t.Errorf("Changes key should be 'd', got '%s'", km.Changes.Keys()[0])
	}
	if km.NextHunk.Keys()[0] != "n" {
		t.Errorf("NextHunk key should be 'n', got '%s'", km.NextHunk.Keys()[0])
	}
	if km.PrevHunk.Keys()[0] != "N" {
		t.Errorf("PrevHunk key should be 'N', got '%s'", km.PrevHunk.Keys()[0])
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.ShortHelp()

	if len(help) != 7 {
		t.Errorf("ShortHelp should have 7 bindings, got %d", len(help))
	}
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()
	help := km.FullHelp()

	if len(help) < 4 {
		t.Errorf("FullHelp should have at least 4 groups, got %d", len(help))
	}

	for i, group := range help {
		if len(group) == 0 {
			t.Errorf("FullHelp group %d should not be empty", i)
		}
	}
}
