package linkmap

import "strings"

// Predicate reports whether an entry should be dropped before merging.
type Predicate func(Entry) bool

// KeepAll drops nothing.
func KeepAll(Entry) bool { return false }

// PathContains drops entries whose path contains substr. An empty substr
// drops nothing.
func PathContains(substr string) Predicate {
	if substr == "" {
		return KeepAll
	}
	return func(e Entry) bool { return strings.Contains(e.Path, substr) }
}

// LabelIs drops entries whose label is one of labels.
func LabelIs(labels ...string) Predicate {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return func(e Entry) bool {
		_, ok := set[e.Label]
		return ok
	}
}

// Any drops an entry when at least one of preds would.
func Any(preds ...Predicate) Predicate {
	return func(e Entry) bool {
		for _, p := range preds {
			if p != nil && p(e) {
				return true
			}
		}
		return false
	}
}

// Filter returns a copy of m without the entries drop reports. A nil drop
// keeps everything.
func Filter(m *Map, drop Predicate) *Map {
	out := NewMap()
	for _, e := range m.Entries() {
		if drop != nil && drop(e) {
			continue
		}
		out.Set(e.Label, e.Path)
	}
	return out
}
