// Package kconfig reads and writes the INI-style configuration files of the
// managed file manager: grouped key/value files in the user's config
// directory. All access goes through the Store interface so the settings
// logic can run against an in-memory store in tests.
package kconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Well-known file names inside the managed config directory.
const (
	ServiceMenuRC = "servicemenurc"
	GlobalsRC     = "globalsrc"
	FileManagerRC = "filemanagerrc"
)

// Well-known groups and keys.
const (
	GroupShow           = "Show"
	GroupKDE            = "KDE"
	GroupGeneral        = "General"
	GroupVersionControl = "VersionControl"
	GroupNotifications  = "Notification Messages"

	KeyShowDeleteCommand = "ShowDeleteCommand"
	KeyShowCopyMoveMenu  = "ShowCopyMoveMenu"
	KeyEnabledPlugins    = "enabledPlugins"
)

// ListSeparator joins and splits string-list values.
const ListSeparator = ","

func init() {
	// rc files use key=value without alignment padding.
	ini.PrettyFormat = false
}

// Store is a group-scoped configuration store. Writes are buffered in memory
// until Flush is called for the file.
type Store interface {
	// Group returns a handle for a group in the given file, creating both
	// lazily. Reading from a missing file behaves like an empty file.
	Group(file, name string) Group

	// Flush persists buffered changes for the given file.
	Flush(file string) error

	// Render returns the current (possibly unflushed) serialized content of
	// the given file.
	Render(file string) ([]byte, error)
}

// Group reads and writes keys inside a single configuration group.
type Group interface {
	Has(key string) bool
	Bool(key string, def bool) bool
	SetBool(key string, v bool)
	String(key, def string) string
	SetString(key, v string)
	List(key string) []string
	SetList(key string, v []string)
	DeleteKey(key string)
}

// loadOptions keeps ini parsing close to how the desktop environment reads
// these files: '=' is the only delimiter and '#'/';' inside values are data.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:       "=",
	KeyValueDelimiterOnWrite: "=",
	IgnoreInlineComment:      true,
}

// FileStore implements Store over rc files in a single directory.
type FileStore struct {
	dir   string
	files map[string]*ini.File
}

// NewFileStore creates a store rooted at dir. An empty dir selects the
// user's config directory.
func NewFileStore(dir string) *FileStore {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir()
	}
	return &FileStore{
		dir:   dir,
		files: make(map[string]*ini.File),
	}
}

// DefaultDir returns the directory holding the managed rc files.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Dir returns the directory this store reads from and writes to.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the absolute path of a file within the store.
func (s *FileStore) Path(file string) string {
	return filepath.Join(s.dir, file)
}

func (s *FileStore) load(file string) *ini.File {
	if f, ok := s.files[file]; ok {
		return f
	}
	f, err := ini.LoadSources(loadOptions, s.Path(file))
	if err != nil {
		// Missing or unreadable files start out empty; writes can still
		// be flushed later.
		f = ini.Empty(loadOptions)
	}
	s.files[file] = f
	return f
}

// Group implements Store.
func (s *FileStore) Group(file, name string) Group {
	return iniGroup{section: s.load(file).Section(name)}
}

// Flush implements Store.
func (s *FileStore) Flush(file string) error {
	f := s.load(file)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return f.SaveTo(s.Path(file))
}

// Render implements Store.
func (s *FileStore) Render(file string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.load(file).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// iniGroup adapts an ini section to the Group interface.
type iniGroup struct {
	section *ini.Section
}

func (g iniGroup) Has(key string) bool {
	return g.section.HasKey(key)
}

func (g iniGroup) Bool(key string, def bool) bool {
	if !g.section.HasKey(key) {
		return def
	}
	v, err := g.section.Key(key).Bool()
	if err != nil {
		return def
	}
	return v
}

func (g iniGroup) SetBool(key string, v bool) {
	g.section.Key(key).SetValue(strconv.FormatBool(v))
}

func (g iniGroup) String(key, def string) string {
	if !g.section.HasKey(key) {
		return def
	}
	return g.section.Key(key).String()
}

func (g iniGroup) SetString(key, v string) {
	g.section.Key(key).SetValue(v)
}

func (g iniGroup) List(key string) []string {
	if !g.section.HasKey(key) {
		return nil
	}
	raw := g.section.Key(key).String()
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (g iniGroup) SetList(key string, v []string) {
	g.section.Key(key).SetValue(strings.Join(v, ListSeparator))
}

func (g iniGroup) DeleteKey(key string) {
	g.section.DeleteKey(key)
}
