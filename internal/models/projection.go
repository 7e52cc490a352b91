package models

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Projection is the view over a Model: a display-text substring filter plus
// a locale-aware, case-insensitive sort. It never mutates the model; the
// visible row set is recomputed on demand, so sorting is automatically
// reapplied after every batch insert.
type Projection struct {
	model  *Model
	filter string
	coll   *collate.Collator
}

// NewProjection creates a projection over the given model, collating in the
// locale taken from the environment.
func NewProjection(m *Model) *Projection {
	return &Projection{
		model: m,
		coll:  collate.New(localeTag(), collate.IgnoreCase),
	}
}

// SetFilter sets the substring filter. An empty string shows all rows.
func (p *Projection) SetFilter(s string) {
	p.filter = s
}

// Filter returns the current substring filter.
func (p *Projection) Filter() string {
	return p.filter
}

// Rows returns the visible rows: filtered by display text and sorted by
// display text. Rows are shared with the model, so toggling a returned row
// toggles the model row.
func (p *Projection) Rows() []*ServiceRow {
	needle := strings.ToLower(p.filter)

	visible := make([]*ServiceRow, 0, p.model.Len())
	for _, r := range p.model.Rows() {
		if needle == "" || strings.Contains(strings.ToLower(r.DisplayText), needle) {
			visible = append(visible, r)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return p.coll.CompareString(visible[i].DisplayText, visible[j].DisplayText) < 0
	})
	return visible
}

// Len returns the number of visible rows.
func (p *Projection) Len() int {
	return len(p.Rows())
}

// localeTag resolves the collation locale from the usual environment
// variables, falling back to the root locale.
func localeTag() language.Tag {
	for _, env := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		v := os.Getenv(env)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i > 0 {
			v = v[:i]
		}
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.Und
}
