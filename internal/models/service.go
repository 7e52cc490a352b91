package models

// RowKind classifies a service row. The kind is assigned when the row is
// created and decides where its checked-state is persisted; it is never
// re-derived from the identifier.
type RowKind int

const (
	// KindService is a context-menu service or file-item-action plugin,
	// persisted per-identifier in the Show group.
	KindService RowKind = iota
	// KindVersionControl is a version-control plugin, persisted through the
	// ordered enabled-plugins list.
	KindVersionControl
	// KindDelete is the built-in Delete command toggle.
	KindDelete
	// KindCopyMove is the built-in 'Copy To'/'Move To' command toggle.
	KindCopyMove
)

// String returns the identifier-style name of the kind.
func (k RowKind) String() string {
	switch k {
	case KindService:
		return "service"
	case KindVersionControl:
		return "version-control"
	case KindDelete:
		return "delete"
	case KindCopyMove:
		return "copy-move"
	default:
		return "unknown"
	}
}

// ServiceRow is one checkable entry in the services list.
type ServiceRow struct {
	Icon        string
	DisplayText string
	Identifier  string
	Kind        RowKind
	Checked     bool

	// SourcePath is the file backing the row (desktop entry or plugin
	// manifest) when one exists. Built-in rows have none.
	SourcePath string
}

// Toggle flips the checked state.
func (r *ServiceRow) Toggle() {
	r.Checked = !r.Checked
}
