// Package index builds and queries flat, de-duplicated snapshots of a live
// composition graph. One Collection owns one snapshot generation at a time;
// Refresh replaces the generation wholesale, never patches it in place.
//
// A Collection is single-owner: all index and query operations must happen
// on one goroutine. Host notifications cross goroutines only through the
// Coalescer.
package index

import (
	"log/slog"
	"strings"

	"sourcescout/internal/domain"
	"sourcescout/internal/ports"
)

// Collection holds every searchable item discovered in one pass over the
// host graph, plus the catalog of type ids encountered.
type Collection struct {
	graph ports.Graph

	items  []*domain.Item
	byUUID map[string]*domain.Item
	types  map[string]string // type id -> display name
}

// NewCollection creates an empty collection over a host graph. Call Refresh
// to materialize the first generation.
func NewCollection(graph ports.Graph) *Collection {
	c := &Collection{graph: graph}
	c.Clear()
	return c
}

// Clear discards the current generation.
func (c *Collection) Clear() {
	c.items = nil
	c.byUUID = make(map[string]*domain.Item)
	c.types = make(map[string]string)
}

// Len returns the number of indexed items in the current generation.
func (c *Collection) Len() int { return len(c.items) }

// Items returns the current generation's items in discovery order.
func (c *Collection) Items() []*domain.Item { return c.items }

// TypeDisplay returns the catalog display name for a type id, falling back
// to the raw id for types outside the current generation.
func (c *Collection) TypeDisplay(typeID string) string {
	if name, ok := c.types[typeID]; ok {
		return name
	}
	return typeID
}

// Refresh rebuilds the whole generation from the live graph in three strictly
// ordered phases: top-level sources, then their filters, then scene-item
// linking. Idempotent against an unchanged graph.
func (c *Collection) Refresh() {
	c.Clear()

	main := make(map[string]struct{})
	for _, s := range c.graph.MainScenes() {
		main[s.UUID()] = struct{}{}
	}

	c.graph.EnumSources(func(src ports.Source) bool {
		c.addSource(src, main)
		return true
	})

	c.linkFilters()
	c.linkSceneItems()

	slog.Info("source index refreshed", "items", len(c.items), "types", len(c.types))
}

// excludedType reports host-internal type ids that are never shown: audio
// monitoring taps, internal audio routing, and wrapper sources produced by
// other extensions.
func excludedType(typeID string) bool {
	switch typeID {
	case "audio_monitor", "audio_line":
		return true
	}
	return strings.Contains(typeID, "_wrapper_")
}

func (c *Collection) addSource(src ports.Source, main map[string]struct{}) {
	// Filters join in a later targeted pass; transitions are host plumbing.
	kind := src.Kind()
	if kind == ports.KindFilter || kind == ports.KindTransition {
		return
	}

	name := src.Name()
	if name == "" {
		return
	}

	typeID := src.TypeID()
	if typeID == "" || excludedType(typeID) {
		return
	}

	// Stinger transitions spawn internal media sources named after them.
	if strings.Contains(name, "(Stinger)") {
		return
	}

	uuid := src.UUID()
	if uuid == "" {
		return
	}
	if _, dup := c.byUUID[uuid]; dup {
		return
	}

	class := domain.ClassSource
	switch kind {
	case ports.KindScene:
		class = domain.ClassScene
	case ports.KindGroup:
		class = domain.ClassGroup
	}

	item := domain.NewItem(uuid, class, typeID, weakRef{graph: c.graph, uuid: uuid})
	if class == domain.ClassScene {
		_, onMain := main[uuid]
		item.Vertical = !onMain
	}

	c.registerType(typeID)
	c.byUUID[uuid] = item
	c.items = append(c.items, item)
}

// linkFilters enumerates the filters attached to every indexed source and
// indexes them too, bound to their carrier's display name. Runs over a fixed
// prefix of the item slice because it appends as it goes.
func (c *Collection) linkFilters() {
	carriers := make([]*domain.Item, len(c.items))
	copy(carriers, c.items)

	for _, carrier := range carriers {
		live, ok := c.graph.GetByUUID(carrier.UUID)
		if !ok {
			continue
		}
		parentName := carrier.Name()
		for _, filter := range c.graph.Filters(live) {
			c.addFilter(filter, parentName)
		}
	}
}

func (c *Collection) addFilter(filter ports.Source, parentName string) {
	name := filter.Name()
	if name == "" {
		return
	}

	typeID := filter.TypeID()
	if typeID == "" || excludedType(typeID) {
		return
	}

	uuid := filter.UUID()
	if uuid == "" {
		return
	}
	if _, dup := c.byUUID[uuid]; dup {
		return
	}

	item := domain.NewItem(uuid, domain.ClassFilter, typeID, weakRef{graph: c.graph, uuid: uuid})
	item.SetParentSource(parentName)

	c.registerType(typeID)
	c.byUUID[uuid] = item
	c.items = append(c.items, item)
}

// linkSceneItems walks each indexed scene and group's direct children and
// records the container's display name on every child it holds. Items no
// container reaches keep an empty parent set.
func (c *Collection) linkSceneItems() {
	for _, container := range c.items {
		if !container.IsContainer() {
			continue
		}
		live, ok := c.graph.GetByUUID(container.UUID)
		if !ok {
			continue
		}
		containerName := container.Name()
		for _, child := range c.graph.SceneItems(live) {
			if item, ok := c.byUUID[child.UUID()]; ok {
				item.AddParentScene(containerName)
			}
		}
	}
}

func (c *Collection) registerType(typeID string) {
	if _, ok := c.types[typeID]; ok {
		return
	}
	c.types[typeID] = domain.TypeDisplayName(typeID, c.graph.TypeDisplayName)
}

// weakRef resolves an item's live object through the graph by identity.
// Resolution fails once the host destroys the object; holding a weakRef
// never keeps the object alive.
type weakRef struct {
	graph ports.Graph
	uuid  string
}

func (w weakRef) Resolve() (string, bool) {
	src, ok := w.graph.GetByUUID(w.uuid)
	if !ok {
		return "", false
	}
	return src.Name(), true
}
