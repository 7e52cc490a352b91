package models

// Model is the ordered collection of service rows. Insertion order is
// preserved; sorting is a projection-level concern.
type Model struct {
	rows []*ServiceRow
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// Len returns the number of rows.
func (m *Model) Len() int {
	return len(m.rows)
}

// Rows returns the rows in insertion order. The slice is shared; callers
// must not reorder it.
func (m *Model) Rows() []*ServiceRow {
	return m.rows
}

// Row returns the row at index i, or nil when out of range.
func (m *Model) Row(i int) *ServiceRow {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return m.rows[i]
}

// Find returns the row with the given identifier, or nil.
func (m *Model) Find(identifier string) *ServiceRow {
	for _, r := range m.rows {
		if r.Identifier == identifier {
			return r
		}
	}
	return nil
}

// Contains reports whether a row with the given identifier exists.
func (m *Model) Contains(identifier string) bool {
	return m.Find(identifier) != nil
}

// Append adds a row unless its identifier is already present. It reports
// whether the row was added.
func (m *Model) Append(row ServiceRow) bool {
	if m.Contains(row.Identifier) {
		return false
	}
	r := row
	m.rows = append(m.rows, &r)
	return true
}

// SetChecked sets the checked state of the row with the given identifier
// and reports whether such a row exists.
func (m *Model) SetChecked(identifier string, checked bool) bool {
	r := m.Find(identifier)
	if r == nil {
		return false
	}
	r.Checked = checked
	return true
}

// Clear removes all rows.
func (m *Model) Clear() {
	m.rows = nil
}

// CheckedCount returns the number of checked rows.
func (m *Model) CheckedCount() int {
	n := 0
	for _, r := range m.rows {
		if r.Checked {
			n++
		}
	}
	return n
}
