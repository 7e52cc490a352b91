package catalog

import (
	"fmt"
	"slices"

	"svcmenu/internal/kconfig"
	"svcmenu/internal/models"
)

// RestartNoticeKey is the notification-group flag that suppresses the
// restart notice once the user has acknowledged it.
const RestartNoticeKey = "ShowVcsRestartInformation"

// ApplyResult reports the outcome of persisting the selections.
type ApplyResult struct {
	// RestartNeeded is set when the version-control plugin selection
	// changed and the restart notice has not been suppressed.
	RestartNeeded bool
}

// EnabledPlugins returns the checked version-control plugin names, ordered
// by display text the way the list presents them.
func EnabledPlugins(model *models.Model) []string {
	var names []string
	for _, row := range models.NewProjection(model).Rows() {
		if row.Kind == models.KindVersionControl && row.Checked {
			names = append(names, row.DisplayText)
		}
	}
	return names
}

// WriteRows stages every row's checked state into the store without
// flushing. Generic services go to the Show group, the built-in command
// toggles to their own groups, and the checked version-control plugins are
// written as one ordered list, left untouched when nothing changed.
func WriteRows(store kconfig.Store, model *models.Model) {
	show := store.Group(kconfig.ServiceMenuRC, kconfig.GroupShow)
	for _, row := range model.Rows() {
		switch row.Kind {
		case models.KindDelete:
			store.Group(kconfig.GlobalsRC, kconfig.GroupKDE).SetBool(kconfig.KeyShowDeleteCommand, row.Checked)
		case models.KindCopyMove:
			store.Group(kconfig.FileManagerRC, kconfig.GroupGeneral).SetBool(kconfig.KeyShowCopyMoveMenu, row.Checked)
		case models.KindVersionControl:
		default:
			show.SetBool(row.Identifier, row.Checked)
		}
	}

	vc := store.Group(kconfig.FileManagerRC, kconfig.GroupVersionControl)
	enabled := EnabledPlugins(model)
	if !slices.Equal(enabled, vc.List(kconfig.KeyEnabledPlugins)) {
		vc.SetList(kconfig.KeyEnabledPlugins, enabled)
	}
}

// Apply persists the selections and flushes every touched file. The loaded
// snapshot is compared against the new plugin list, order included, and
// updated in place; a reordering alone counts as a change.
func Apply(store kconfig.Store, model *models.Model, loaded *LoadResult) (ApplyResult, error) {
	enabled := EnabledPlugins(model)
	changed := !slices.Equal(enabled, loaded.EnabledPlugins)

	WriteRows(store, model)

	for _, file := range []string{kconfig.ServiceMenuRC, kconfig.GlobalsRC, kconfig.FileManagerRC} {
		if err := store.Flush(file); err != nil {
			return ApplyResult{}, fmt.Errorf("failed to save %s: %w", file, err)
		}
	}

	loaded.EnabledPlugins = enabled
	return ApplyResult{RestartNeeded: changed && RestartNoticeEnabled(store)}, nil
}

// RestoreDefaults resets every row to its stock state: generic services
// shown, version-control plugins and the built-in command toggles off.
// Nothing is persisted until the next Apply.
func RestoreDefaults(model *models.Model) {
	for _, row := range model.Rows() {
		row.Checked = row.Kind == models.KindService
	}
}

// RestartNoticeEnabled reports whether the restart notice should still be
// shown.
func RestartNoticeEnabled(store kconfig.Store) bool {
	return store.Group(kconfig.FileManagerRC, kconfig.GroupNotifications).Bool(RestartNoticeKey, true)
}

// SuppressRestartNotice records that the user does not want to see the
// restart notice again.
func SuppressRestartNotice(store kconfig.Store) error {
	store.Group(kconfig.FileManagerRC, kconfig.GroupNotifications).SetBool(RestartNoticeKey, false)
	if err := store.Flush(kconfig.FileManagerRC); err != nil {
		return fmt.Errorf("failed to save notification settings: %w", err)
	}
	return nil
}
