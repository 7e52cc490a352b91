package backup

import (
	"fmt"
	"path/filepath"

	"svcmenu/internal/kconfig"
)

// List returns the recorded snapshots, oldest first.
func (m *Manager) List() ([]Snapshot, error) {
	manifest, err := m.loadManifest()
	if err != nil {
		return nil, err
	}
	return manifest.Snapshots, nil
}

// Latest returns the most recent snapshot, if any.
func (m *Manager) Latest() (Snapshot, bool, error) {
	snapshots, err := m.List()
	if err != nil || len(snapshots) == 0 {
		return Snapshot{}, false, err
	}
	return snapshots[len(snapshots)-1], true, nil
}

// Restore copies a snapshot's files back over the store's files. Files the
// snapshot did not capture are left alone.
func (m *Manager) Restore(id string, store *kconfig.FileStore) error {
	snapshots, err := m.List()
	if err != nil {
		return err
	}

	for _, snap := range snapshots {
		if snap.ID != id {
			continue
		}
		for _, file := range snap.Files {
			src := filepath.Join(m.dir, snap.ID, file)
			if err := copyFile(src, store.Path(file)); err != nil {
				return fmt.Errorf("failed to restore %s: %w", file, err)
			}
		}
		return nil
	}

	return fmt.Errorf("snapshot %q not found", id)
}
