package linkmap

import "sort"

// Entry is a single chapter link: a human-readable chapter label and the
// relative path of its quiz page.
type Entry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Map is an insertion-ordered mapping from chapter label to quiz path.
// Setting an existing label replaces its path in place. The zero value is an
// empty map ready to use. Read methods accept a nil *Map and treat it as empty.
type Map struct {
	labels []string
	paths  map[string]string
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{paths: make(map[string]string)}
}

// FromEntries builds a map from entries. Later entries win on duplicate labels.
func FromEntries(entries ...Entry) *Map {
	m := NewMap()
	for _, e := range entries {
		m.Set(e.Label, e.Path)
	}
	return m
}

// Set assigns path to label.
func (m *Map) Set(label, path string) {
	if m.paths == nil {
		m.paths = make(map[string]string)
	}
	if _, ok := m.paths[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.paths[label] = path
}

// Get returns the path stored for label.
func (m *Map) Get(label string) (string, bool) {
	if m == nil {
		return "", false
	}
	p, ok := m.paths[label]
	return p, ok
}

// Delete removes label if present.
func (m *Map) Delete(label string) {
	if _, ok := m.paths[label]; !ok {
		return
	}
	delete(m.paths, label)
	for i, l := range m.labels {
		if l == label {
			m.labels = append(m.labels[:i], m.labels[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.labels)
}

// Entries returns the entries in insertion order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.labels))
	for _, l := range m.labels {
		out = append(out, Entry{Label: l, Path: m.paths[l]})
	}
	return out
}

// Sorted returns the entries ordered by label, byte-wise.
func (m *Map) Sorted() []Entry {
	out := m.Entries()
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Clone returns an independent copy.
func (m *Map) Clone() *Map {
	c := NewMap()
	for _, e := range m.Entries() {
		c.Set(e.Label, e.Path)
	}
	return c
}

// Merge returns the union of existing and batch. Entries from batch replace
// entries of existing with the same label. Neither argument is modified.
func Merge(existing, batch *Map) *Map {
	out := existing.Clone()
	for _, e := range batch.Entries() {
		out.Set(e.Label, e.Path)
	}
	return out
}
