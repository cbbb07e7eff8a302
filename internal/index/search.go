package index

import (
	"sort"

	"sourcescout/internal/domain"
)

// Scope narrows search output to sources, filters, or both. It is applied on
// top of Search's result, not inside it.
type Scope string

const (
	ScopeSources Scope = "sources"
	ScopeFilters Scope = "filters"
	ScopeAll     Scope = "all"
)

// ParseScope maps user input to a Scope, defaulting to sources.
func ParseScope(s string) Scope {
	switch Scope(s) {
	case ScopeFilters:
		return ScopeFilters
	case ScopeAll:
		return ScopeAll
	default:
		return ScopeSources
	}
}

// Search returns the items of the current generation that survive, in order:
// a validity check (backing object still exists), the type filter ("" or
// "all" keeps everything, otherwise exact type id match), and the text filter
// (case-insensitive substring of the current name; empty text keeps
// everything).
//
// Results are sorted by current name using plain byte-wise, case-sensitive
// comparison ("Mid" < "Zeta" < "alpha"); ordering across equal names is
// unspecified.
func (c *Collection) Search(text, typeFilter string) []*domain.Item {
	var results []*domain.Item
	for _, it := range c.items {
		if !it.Valid() {
			continue
		}
		if !it.MatchesType(typeFilter) {
			continue
		}
		if !it.MatchesSearch(text) {
			continue
		}
		results = append(results, it)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name() < results[j].Name()
	})

	return results
}

// ApplyScope applies the caller-side second filter to Search output: the
// sources/filters/all scope, plus the orphan rule: a plain source no scene
// or group holds is host-internal noise and is dropped entirely. Scenes,
// groups and filters are kept regardless of parents. Order is preserved.
func ApplyScope(items []*domain.Item, scope Scope) []*domain.Item {
	var out []*domain.Item
	for _, it := range items {
		if scope == ScopeSources && it.IsFilter() {
			continue
		}
		if scope == ScopeFilters && !it.IsFilter() {
			continue
		}
		if !it.IsFilter() && !it.IsContainer() && !it.HasParents() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// TypeEntry is one discovered source type for the type-filter dropdown.
type TypeEntry struct {
	ID      string
	Display string
}

// Types returns the current generation's discovered types, sorted by display
// name.
func (c *Collection) Types() []TypeEntry {
	entries := make([]TypeEntry, 0, len(c.types))
	for id, display := range c.types {
		entries = append(entries, TypeEntry{ID: id, Display: display})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Display != entries[j].Display {
			return entries[i].Display < entries[j].Display
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}
