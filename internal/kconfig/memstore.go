package kconfig

import (
	"bytes"

	"gopkg.in/ini.v1"
)

// MemStore implements Store entirely in memory. It backs unit tests and the
// pending-changes projection, where writes must not touch disk.
type MemStore struct {
	files   map[string]*ini.File
	Flushed map[string]int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		files:   make(map[string]*ini.File),
		Flushed: make(map[string]int),
	}
}

// Seed initializes a file from serialized INI content, replacing any
// previous state for that file.
func (s *MemStore) Seed(file string, data []byte) error {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return err
	}
	s.files[file] = f
	return nil
}

func (s *MemStore) load(file string) *ini.File {
	if f, ok := s.files[file]; ok {
		return f
	}
	f := ini.Empty(loadOptions)
	s.files[file] = f
	return f
}

// Group implements Store.
func (s *MemStore) Group(file, name string) Group {
	return iniGroup{section: s.load(file).Section(name)}
}

// Flush implements Store. It only records that a flush happened.
func (s *MemStore) Flush(file string) error {
	s.Flushed[file]++
	return nil
}

// Render implements Store.
func (s *MemStore) Render(file string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.load(file).WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
