// Package config holds the tool's own settings: where the registry roots,
// configuration files, and caches live.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"svcmenu/internal/backup"
	"svcmenu/internal/download"
	"svcmenu/internal/kconfig"
	"svcmenu/internal/registry"
)

// Config holds the application configuration
type Config struct {
	Roots       []string `json:"roots,omitempty"`        // registry data roots, highest priority first
	ConfigDir   string   `json:"config_dir,omitempty"`   // directory of the rc files
	SourcesFile string   `json:"sources_file,omitempty"` // download sources catalog
	CacheDir    string   `json:"cache_dir,omitempty"`    // source clone cache
	BackupDir   string   `json:"backup_dir,omitempty"`   // snapshot directory
	FirstRun    bool     `json:"-"`
}

// configFileName is the name of the config file
const configFileName = "svcmenu.json"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Roots:       registry.DefaultRoots(),
		ConfigDir:   kconfig.DefaultDir(),
		SourcesFile: download.DefaultPath(),
		CacheDir:    download.DefaultCacheDir(),
		BackupDir:   backup.DefaultDir(),
		FirstRun:    true,
	}
}

// ConfigDirPath returns the directory containing svcmenu's own files
func ConfigDirPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "svcmenu")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(ConfigDirPath(), configFileName)
}

// Load loads the configuration from the default location
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from the given path. A missing file
// yields the defaults with FirstRun set.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	return &cfg, nil
}

// normalize fills unset fields with defaults so a partial file keeps
// working.
func (c *Config) normalize() {
	def := Default()
	if len(c.Roots) == 0 {
		c.Roots = def.Roots
	}
	if c.ConfigDir == "" {
		c.ConfigDir = def.ConfigDir
	}
	if c.SourcesFile == "" {
		c.SourcesFile = def.SourcesFile
	}
	if c.CacheDir == "" {
		c.CacheDir = def.CacheDir
	}
	if c.BackupDir == "" {
		c.BackupDir = def.BackupDir
	}
}

// Save saves the configuration to the default location
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo saves the configuration to the given path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the writable directories the tool needs
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.CacheDir,
		c.BackupDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// Registry builds the registry over the configured roots
func (c *Config) Registry() *registry.DirRegistry {
	return registry.NewDirRegistry(c.Roots)
}

// Store builds the configuration store over the configured directory
func (c *Config) Store() *kconfig.FileStore {
	return kconfig.NewFileStore(c.ConfigDir)
}

// Sources builds the download source catalog
func (c *Config) Sources() *download.Catalog {
	return download.NewCatalog(c.SourcesFile)
}

// Backups builds the snapshot manager
func (c *Config) Backups() *backup.Manager {
	return backup.New(c.BackupDir)
}

// Downloads builds the source fetcher, installing into the first root
func (c *Config) Downloads() *download.Manager {
	return download.NewManager(c.Sources(), c.CacheDir, c.Registry().InstallRoot())
}
