package registry

// Static is a fixed in-memory registry, mainly for tests and previews.
type Static struct {
	Entries map[Category][]Entry
}

// NewStatic creates an empty static registry.
func NewStatic() *Static {
	return &Static{Entries: make(map[Category][]Entry)}
}

// Add appends an entry to a category.
func (s *Static) Add(c Category, e Entry) *Static {
	s.Entries[c] = append(s.Entries[c], e)
	return s
}

// Query implements Registry.
func (s *Static) Query(c Category) []Entry {
	return s.Entries[c]
}
