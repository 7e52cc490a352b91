package changes

import (
	"fmt"

	"svcmenu/internal/catalog"
	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
)

// Pending stages the model's selections into a scratch copy of the
// configuration and diffs the result against what is currently saved. Files
// the apply would leave untouched are omitted.
func Pending(store kconfig.Store, model *models.Model) ([]*FileDiff, error) {
	files := []string{kconfig.ServiceMenuRC, kconfig.GlobalsRC, kconfig.FileManagerRC}

	saved := make(map[string][]byte, len(files))
	scratch := kconfig.NewMemStore()
	for _, file := range files {
		data, err := store.Render(file)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", file, err)
		}
		saved[file] = data
		if err := scratch.Seed(file, data); err != nil {
			return nil, fmt.Errorf("failed to stage %s: %w", file, err)
		}
	}

	catalog.WriteRows(scratch, model)

	var diffs []*FileDiff
	for _, file := range files {
		pending, err := scratch.Render(file)
		if err != nil {
			return nil, fmt.Errorf("failed to render staged %s: %w", file, err)
		}
		d := Compute(file, string(saved[file]), string(pending))
		if d.HasChanges() {
			diffs = append(diffs, d)
		}
	}
	return diffs, nil
}
