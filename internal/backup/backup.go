// Package backup keeps timestamped snapshots of the configuration files so
// an apply can be undone.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"svcmenu/internal/kconfig"
)

// Manager stores snapshots below a single directory, one subdirectory per
// snapshot plus a manifest listing them.
type Manager struct {
	dir   string
	files []string
}

// Snapshot is one recorded copy of the configuration files. Files that did
// not exist at snapshot time are not captured.
type Snapshot struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Files   []string  `json:"files"`
}

type manifestFile struct {
	Snapshots []Snapshot `json:"snapshots"`
}

// New creates a manager storing snapshots under dir, falling back to
// DefaultDir when empty.
func New(dir string) *Manager {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Manager{
		dir: dir,
		files: []string{
			kconfig.ServiceMenuRC,
			kconfig.GlobalsRC,
			kconfig.FileManagerRC,
		},
	}
}

// DefaultDir returns the default snapshot directory.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "svcmenu", "backups")
}

// Take copies the store's current files into a new snapshot and records it
// in the manifest.
func (m *Manager) Take(store *kconfig.FileStore) (Snapshot, error) {
	snap := Snapshot{
		ID:      m.newID(),
		Created: time.Now(),
	}

	dest := filepath.Join(m.dir, snap.ID)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return snap, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	for _, file := range m.files {
		src := store.Path(file)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := copyFile(src, filepath.Join(dest, file)); err != nil {
			return snap, fmt.Errorf("failed to snapshot %s: %w", file, err)
		}
		snap.Files = append(snap.Files, file)
	}

	manifest, err := m.loadManifest()
	if err != nil {
		return snap, err
	}
	manifest.Snapshots = append(manifest.Snapshots, snap)
	if err := m.saveManifest(manifest); err != nil {
		return snap, err
	}

	return snap, nil
}

// newID builds a timestamp id, suffixed when a snapshot from the same second
// already exists.
func (m *Manager) newID() string {
	base := time.Now().Format("20060102-150405")
	id := base
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(m.dir, id)); os.IsNotExist(err) {
			return id
		}
		id = base + "-" + strconv.Itoa(i)
	}
}

func (m *Manager) manifestPath() string {
	return filepath.Join(m.dir, "manifest.json")
}

func (m *Manager) loadManifest() (*manifestFile, error) {
	data, err := os.ReadFile(m.manifestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &manifestFile{}, nil
		}
		return nil, fmt.Errorf("failed to read the snapshot manifest: %w", err)
	}

	var manifest manifestFile
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse the snapshot manifest: %w", err)
	}
	return &manifest, nil
}

func (m *Manager) saveManifest(manifest *manifestFile) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.manifestPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write the snapshot manifest: %w", err)
	}
	return nil
}

// copyFile copies src to dst, creating directories and preserving the file
// mode.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	if srcInfo, err := os.Stat(src); err == nil {
		os.Chmod(dst, srcInfo.Mode())
	}

	return nil
}
