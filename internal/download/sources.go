// Package download fetches service-menu and plugin entries from git
// repositories and installs them into the registry's install root.
package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"svcmenu/internal/registry"
)

// Source describes one repository services can be fetched from.
type Source struct {
	Name        string `yaml:"name"`
	Repo        string `yaml:"repo"`
	Category    string `yaml:"category,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// Catalog persists the configured download sources in a YAML file.
type Catalog struct {
	path string
}

// NewCatalog creates a source catalog backed by the given file.
func NewCatalog(path string) *Catalog {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	return &Catalog{path: path}
}

// DefaultPath returns the default sources file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "svcmenu", "sources.yaml")
}

// Load returns all configured sources.
func (c *Catalog) Load() ([]Source, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Source{}, nil
		}
		return nil, err
	}

	var f sourcesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Sources == nil {
		return []Source{}, nil
	}
	return f.Sources, nil
}

// Add appends a source to the catalog.
func (c *Catalog) Add(src Source) error {
	src, err := sanitizeSource(src)
	if err != nil {
		return err
	}

	existing, err := c.Load()
	if err != nil {
		return err
	}

	for _, s := range existing {
		if strings.EqualFold(s.Name, src.Name) {
			return fmt.Errorf("source %q already exists", src.Name)
		}
	}

	existing = append(existing, src)
	return c.save(existing)
}

// Remove deletes a source by name.
func (c *Catalog) Remove(name string) error {
	existing, err := c.Load()
	if err != nil {
		return err
	}

	kept := existing[:0]
	for _, s := range existing {
		if !strings.EqualFold(s.Name, name) {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(existing) {
		return fmt.Errorf("source %q not found", name)
	}
	return c.save(kept)
}

func (c *Catalog) save(sources []Source) error {
	data, err := yaml.Marshal(sourcesFile{Sources: sources})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

func sanitizeSource(src Source) (Source, error) {
	src.Name = strings.TrimSpace(src.Name)
	src.Repo = strings.TrimSpace(src.Repo)
	src.Category = strings.TrimSpace(src.Category)
	src.Description = strings.TrimSpace(src.Description)

	if src.Name == "" {
		return src, fmt.Errorf("name is required")
	}
	if src.Repo == "" {
		return src, fmt.Errorf("repo is required")
	}
	if src.Category == "" {
		src.Category = registry.ServiceMenus.String()
	}

	switch src.Category {
	case registry.ServiceMenus.String(), registry.FileItemActions.String(), registry.VersionControlPlugins.String():
	default:
		return src, fmt.Errorf("unknown category %q", src.Category)
	}

	return src, nil
}
