package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default should return a Config")
	}
	if len(cfg.Roots) == 0 {
		t.Error("Roots should not be empty")
	}
	if cfg.ConfigDir == "" {
		t.Error("ConfigDir should not be empty")
	}
	if cfg.SourcesFile == "" {
		t.Error("SourcesFile should not be empty")
	}
	if !cfg.FirstRun {
		t.Error("FirstRun should be true by default")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()

	if !filepath.IsAbs(path) {
		t.Error("ConfigPath should return an absolute path")
	}
	if filepath.Base(path) != "svcmenu.json" {
		t.Errorf("Expected config file name 'svcmenu.json', got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != "svcmenu" {
		t.Errorf("Expected parent dir 'svcmenu', got %s", filepath.Base(filepath.Dir(path)))
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if !cfg.FirstRun {
		t.Error("a missing file should count as the first run")
	}
	if len(cfg.Roots) == 0 {
		t.Error("defaults should be filled in")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "svcmenu.json")

	cfg := Default()
	cfg.Roots = []string{"/tmp/share/filemanager"}
	cfg.ConfigDir = "/tmp/conf"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.FirstRun {
		t.Error("an existing file should not count as the first run")
	}
	if len(loaded.Roots) != 1 || loaded.Roots[0] != "/tmp/share/filemanager" {
		t.Errorf("unexpected roots: %v", loaded.Roots)
	}
	if loaded.ConfigDir != "/tmp/conf" {
		t.Errorf("unexpected config dir: %s", loaded.ConfigDir)
	}
}

func TestLoadFromFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svcmenu.json")
	if err := os.WriteFile(path, []byte(`{"config_dir": "/etc/xdg"}`), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.ConfigDir != "/etc/xdg" {
		t.Errorf("expected the configured dir, got %s", cfg.ConfigDir)
	}
	if len(cfg.Roots) == 0 {
		t.Error("unset roots should fall back to defaults")
	}
	if cfg.CacheDir == "" {
		t.Error("unset cache dir should fall back to the default")
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svcmenu.json")
	if err := os.WriteFile(path, []byte(`{invalid json}`), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmp := t.TempDir()
	cfg := Default()
	cfg.CacheDir = filepath.Join(tmp, "cache")
	cfg.BackupDir = filepath.Join(tmp, "backups")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.CacheDir, cfg.BackupDir} {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("expected %s to exist: %v", dir, err)
		}
	}
}

func TestCollaboratorBuilders(t *testing.T) {
	cfg := Default()
	cfg.Roots = []string{"/tmp/a", "/tmp/b"}
	cfg.ConfigDir = "/tmp/conf"

	if got := cfg.Registry().Roots(); len(got) != 2 || got[0] != "/tmp/a" {
		t.Errorf("unexpected registry roots: %v", got)
	}
	if got := cfg.Store().Dir(); got != "/tmp/conf" {
		t.Errorf("unexpected store dir: %s", got)
	}
	if cfg.Sources() == nil || cfg.Backups() == nil || cfg.Downloads() == nil {
		t.Error("expected collaborator builders to work")
	}
}
