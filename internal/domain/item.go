package domain

import (
	"sort"
	"strings"
)

// Class partitions indexed items by their role in the composition graph.
type Class int

const (
	ClassSource Class = iota // plain input source
	ClassScene               // canvas composition root
	ClassGroup               // lightweight grouping inside a scene
	ClassFilter              // attached to exactly one carrier source
)

func (c Class) String() string {
	switch c {
	case ClassSource:
		return "source"
	case ClassScene:
		return "scene"
	case ClassGroup:
		return "group"
	case ClassFilter:
		return "filter"
	}
	return "unknown"
}

// Backing resolves the live object behind an indexed item. Resolution fails
// once the host has destroyed the object; a Backing never extends its
// lifetime, so every access must check ok.
type Backing interface {
	Resolve() (name string, ok bool)
}

// Item is one indexed object from a single snapshot generation. Identity,
// class and type id are cached at snapshot time and immutable; the name is
// always read through the back-reference, so a destroyed object drops out of
// queries and a renamed one matches its current name until the next refresh
// replaces the generation.
type Item struct {
	UUID   string
	Class  Class
	TypeID string

	// Vertical marks a scene that lives on a secondary canvas (it was not
	// in the host's primary scene list at snapshot time). Scenes only.
	Vertical bool

	backing      Backing
	parentScenes map[string]struct{}
	parentSource string
}

// NewItem creates an item for one live object.
func NewItem(uuid string, class Class, typeID string, backing Backing) *Item {
	return &Item{
		UUID:         uuid,
		Class:        class,
		TypeID:       typeID,
		backing:      backing,
		parentScenes: make(map[string]struct{}),
	}
}

// Valid reports whether the backing object still exists.
func (it *Item) Valid() bool {
	if it.backing == nil {
		return false
	}
	_, ok := it.backing.Resolve()
	return ok
}

// Name returns the current display name, or "" once the object is gone.
func (it *Item) Name() string {
	if it.backing == nil {
		return ""
	}
	name, ok := it.backing.Resolve()
	if !ok {
		return ""
	}
	return name
}

// DisplayName is Name with a canvas-side prefix for scenes: "(H) " for the
// primary canvas, "(V) " for a secondary one.
func (it *Item) DisplayName() string {
	name := it.Name()
	if name == "" || it.Class != ClassScene {
		return name
	}
	if it.Vertical {
		return "(V) " + name
	}
	return "(H) " + name
}

// IsFilter reports whether the item is a filter attached to another source.
func (it *Item) IsFilter() bool { return it.Class == ClassFilter }

// IsContainer reports whether the item can hold children.
func (it *Item) IsContainer() bool {
	return it.Class == ClassScene || it.Class == ClassGroup
}

// AddParentScene records a scene or group that directly holds this item.
func (it *Item) AddParentScene(name string) {
	it.parentScenes[name] = struct{}{}
}

// ParentScenes returns the recorded parent container names, sorted.
func (it *Item) ParentScenes() []string {
	names := make([]string, 0, len(it.parentScenes))
	for name := range it.parentScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasParents reports whether any container held this item at snapshot time.
func (it *Item) HasParents() bool { return len(it.parentScenes) > 0 }

// SetParentSource records the carrier source's display name. Filters only.
func (it *Item) SetParentSource(name string) { it.parentSource = name }

// ParentSource returns the carrier source's display name; "" for non-filters.
func (it *Item) ParentSource() string { return it.parentSource }

// MatchesSearch reports whether the current name contains text,
// case-insensitively. Empty text matches everything. Only the name is
// searched; type ids and parent names are not.
func (it *Item) MatchesSearch(text string) bool {
	if text == "" {
		return true
	}
	return containsFold(it.Name(), text)
}

// MatchesType reports whether the item's type id equals the filter exactly.
// "" and "all" are sentinels that match everything.
func (it *Item) MatchesType(typeFilter string) bool {
	if typeFilter == "" || typeFilter == "all" {
		return true
	}
	return it.TypeID == typeFilter
}

// containsFold reports whether haystack contains needle, ignoring case.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
