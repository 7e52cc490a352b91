// Package catalog builds the context-menu services list from the registry
// and persisted configuration, and writes the user's selections back.
package catalog

import (
	"fmt"
	"slices"

	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
	"svcmenu/internal/registry"
)

// Identifiers of the rows that do not come from the registry. Version
// control rows are prefixed so their identifiers cannot collide with
// desktop entry names.
const (
	VersionControlPrefix = "_version_control_"
	DeleteIdentifier     = "_delete"
	CopyMoveIdentifier   = "_copy_to_move_to"
)

const (
	vcsIcon      = "code-class"
	deleteIcon   = "edit-delete"
	copyMoveIcon = "edit-copy"

	deleteText   = "Delete"
	copyMoveText = "'Copy To' and 'Move To' commands"
)

// LoadResult captures the persisted state the rows were loaded from, so a
// later apply can tell what actually changed.
type LoadResult struct {
	// EnabledPlugins is the version-control plugin list as read from
	// configuration, in file order.
	EnabledPlugins []string
}

// Load populates the model from the registry and the persisted selections:
// service menus first, then file-item actions, then version-control plugins,
// then the two built-in command toggles. Rows already present are left
// untouched, so loading into a non-empty model never duplicates anything.
func Load(reg registry.Registry, store kconfig.Store, model *models.Model) LoadResult {
	show := store.Group(kconfig.ServiceMenuRC, kconfig.GroupShow)

	for _, entry := range reg.Query(registry.ServiceMenus) {
		for _, action := range entry.Actions {
			if action.NoDisplay || action.IsSeparator() {
				continue
			}
			text := action.Text
			if entry.Submenu != "" {
				text = fmt.Sprintf("%s: %s", entry.Submenu, action.Text)
			}
			icon := action.Icon
			if icon == "" {
				icon = entry.Icon
			}
			model.Append(models.ServiceRow{
				Icon:        icon,
				DisplayText: text,
				Identifier:  action.ID,
				Kind:        models.KindService,
				Checked:     show.Bool(action.ID, true),
				SourcePath:  entry.Path,
			})
		}
	}

	for _, entry := range reg.Query(registry.FileItemActions) {
		model.Append(models.ServiceRow{
			Icon:        entry.Icon,
			DisplayText: entry.Name,
			Identifier:  entry.ID,
			Kind:        models.KindService,
			Checked:     show.Bool(entry.ID, true),
			SourcePath:  entry.Path,
		})
	}

	enabled := store.Group(kconfig.FileManagerRC, kconfig.GroupVersionControl).List(kconfig.KeyEnabledPlugins)
	for _, entry := range reg.Query(registry.VersionControlPlugins) {
		model.Append(models.ServiceRow{
			Icon:        vcsIcon,
			DisplayText: entry.Name,
			Identifier:  VersionControlPrefix + entry.Name,
			Kind:        models.KindVersionControl,
			Checked:     slices.Contains(enabled, entry.Name),
			SourcePath:  entry.Path,
		})
	}

	model.Append(models.ServiceRow{
		Icon:        deleteIcon,
		DisplayText: deleteText,
		Identifier:  DeleteIdentifier,
		Kind:        models.KindDelete,
		Checked:     store.Group(kconfig.GlobalsRC, kconfig.GroupKDE).Bool(kconfig.KeyShowDeleteCommand, false),
	})
	model.Append(models.ServiceRow{
		Icon:        copyMoveIcon,
		DisplayText: copyMoveText,
		Identifier:  CopyMoveIdentifier,
		Kind:        models.KindCopyMove,
		Checked:     store.Group(kconfig.FileManagerRC, kconfig.GroupGeneral).Bool(kconfig.KeyShowCopyMoveMenu, true),
	})

	return LoadResult{EnabledPlugins: enabled}
}

// Reload discards the rows and builds the list again, picking up entries
// installed or removed since the last load.
func Reload(reg registry.Registry, store kconfig.Store, model *models.Model) LoadResult {
	model.Clear()
	return Load(reg, store, model)
}
