// Package registry enumerates the services and plugins a file manager can
// show in its context menu. Entries come from desktop-entry files and JSON
// plugin manifests under a set of data roots; the Registry interface keeps
// the catalog logic independent of the filesystem.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"svcmenu/internal/desktop"
)

// Category selects one of the three service namespaces.
type Category int

const (
	// ServiceMenus are desktop-entry files declaring user-defined
	// context-menu actions.
	ServiceMenus Category = iota
	// FileItemActions are plugins contributing dynamic context-menu
	// actions.
	FileItemActions
	// VersionControlPlugins integrate version-control systems into the
	// file views.
	VersionControlPlugins
)

// String returns the category's directory-style name.
func (c Category) String() string {
	switch c {
	case ServiceMenus:
		return "servicemenus"
	case FileItemActions:
		return "fileitemactions"
	case VersionControlPlugins:
		return "vcsplugins"
	}
	return "unknown"
}

// Service types declared by legacy desktop-entry plugins.
const (
	TypeFileItemAction       = "FileItemAction/Plugin"
	TypeVersionControlPlugin = "FileViewVersionControlPlugin"
)

// Entry is one discovered service or plugin.
type Entry struct {
	// ID is the desktop entry name or plugin id, unique within a category.
	ID string
	// Name is the human-readable plugin name. Empty for service-menu
	// files, whose display text comes from their actions.
	Name string
	// Icon is the entry's icon name, when declared.
	Icon string
	// Path is the backing file.
	Path string
	// Submenu is the submenu title a service-menu file groups its actions
	// under, when declared.
	Submenu string
	// Actions are the user-defined actions of a service-menu file.
	Actions []desktop.Action
}

// Registry enumerates services per category. Enumeration order is
// deterministic; an empty result is not an error, and implementations
// swallow per-file problems rather than failing a whole query.
type Registry interface {
	Query(c Category) []Entry
}

// DirRegistry implements Registry over data-root directories. Each root may
// contain a subdirectory per category; earlier roots shadow later ones by
// entry ID, so user entries override system ones.
type DirRegistry struct {
	roots []string
}

// NewDirRegistry creates a registry over the given roots, falling back to
// DefaultRoots when none are given.
func NewDirRegistry(roots []string) *DirRegistry {
	if len(roots) == 0 {
		roots = DefaultRoots()
	}
	return &DirRegistry{roots: roots}
}

// DefaultRoots returns the user and system data roots.
func DefaultRoots() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".local", "share", "filemanager"),
		"/usr/share/filemanager",
	}
}

// Roots returns the data roots in priority order.
func (r *DirRegistry) Roots() []string {
	return r.roots
}

// InstallRoot returns the first root, the place downloaded or user-created
// entries are written to.
func (r *DirRegistry) InstallRoot() string {
	if len(r.roots) == 0 {
		return ""
	}
	return r.roots[0]
}

// Query implements Registry.
func (r *DirRegistry) Query(c Category) []Entry {
	switch c {
	case ServiceMenus:
		return r.queryServiceMenus()
	case FileItemActions:
		return r.queryPlugins(c, TypeFileItemAction)
	case VersionControlPlugins:
		return r.queryPlugins(c, TypeVersionControlPlugin)
	}
	return nil
}

// queryServiceMenus parses every desktop-entry file in the servicemenus
// directories. Files marked Hidden are treated as deleted and also mask
// same-named files in later roots.
func (r *DirRegistry) queryServiceMenus() []Entry {
	var entries []Entry
	seen := make(map[string]bool)

	for _, root := range r.roots {
		dir := filepath.Join(root, ServiceMenus.String())
		for _, path := range listFiles(dir, ".desktop") {
			id := entryName(path)
			if seen[id] {
				continue
			}
			e, err := desktop.Parse(path)
			if err != nil {
				continue
			}
			seen[id] = true
			if e.Hidden {
				continue
			}
			entries = append(entries, Entry{
				ID:      id,
				Name:    e.Name,
				Icon:    e.Icon,
				Path:    path,
				Submenu: e.Submenu,
				Actions: e.Actions,
			})
		}
	}
	return entries
}

// queryPlugins lists a plugin category: JSON manifests first, then legacy
// desktop-entry plugins declaring the matching service type.
func (r *DirRegistry) queryPlugins(c Category, serviceType string) []Entry {
	var entries []Entry
	seen := make(map[string]bool)

	for _, root := range r.roots {
		dir := filepath.Join(root, c.String())
		for _, path := range listFiles(dir, ".json") {
			e, err := parseManifest(path)
			if err != nil || seen[e.ID] {
				continue
			}
			seen[e.ID] = true
			entries = append(entries, e)
		}
	}

	for _, root := range r.roots {
		dir := filepath.Join(root, c.String())
		for _, path := range listFiles(dir, ".desktop") {
			id := entryName(path)
			if seen[id] {
				continue
			}
			e, err := desktop.Parse(path)
			if err != nil {
				continue
			}
			if e.Hidden {
				seen[id] = true
				continue
			}
			if !e.HasServiceType(serviceType) {
				continue
			}
			seen[id] = true
			entries = append(entries, Entry{
				ID:   id,
				Name: e.Name,
				Icon: e.Icon,
				Path: path,
			})
		}
	}
	return entries
}

// manifest is the JSON plugin metadata block.
type manifest struct {
	KPlugin struct {
		ID          string `json:"Id"`
		Name        string `json:"Name"`
		Icon        string `json:"Icon"`
		Description string `json:"Description"`
	} `json:"KPlugin"`
}

func parseManifest(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Entry{}, err
	}

	id := m.KPlugin.ID
	if id == "" {
		id = entryName(path)
	}
	name := m.KPlugin.Name
	if name == "" {
		name = id
	}
	return Entry{
		ID:   id,
		Name: name,
		Icon: m.KPlugin.Icon,
		Path: path,
	}, nil
}

// listFiles returns the files with the given extension in dir, sorted by
// name. A missing or unreadable directory yields nothing.
func listFiles(dir, ext string) []string {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	return paths
}

// entryName returns the desktop-entry-name of a file: its base name without
// the extension.
func entryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
