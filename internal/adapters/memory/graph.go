// Package memory provides an in-memory host graph implementing the ports.
// It backs loaded project files and serves as the scriptable graph in tests:
// every mutator emits the same notifications a live host would.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"sourcescout/internal/ports"
)

type node struct {
	uuid     string
	name     string
	typeID   string
	kind     ports.Kind
	vertical bool
	children []string // child uuids, host order (scenes and groups)
	filters  []string // filter uuids, host order
}

// Graph is an in-memory implementation of ports.Graph, ports.Events and
// ports.Actions. Mutators are safe from any goroutine; event handlers run
// synchronously on the mutating goroutine, so subscribers must hand off.
type Graph struct {
	mu        sync.RWMutex
	nodes     map[string]*node
	order     []string          // top-level enumeration order
	typeNames map[string]string // registered type display names

	handlerMu sync.Mutex
	handlers  map[int]func(ports.Event)
	nextSub   int

	actionMu   sync.Mutex
	lastAction string // for tests: last pass-through action, "" if none
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*node),
		typeNames: make(map[string]string),
		handlers:  make(map[int]func(ports.Event)),
	}
}

// Spec describes one object to add. UUID is generated when empty.
type Spec struct {
	UUID     string
	Name     string
	TypeID   string
	Kind     ports.Kind
	Vertical bool // scenes: place on the secondary canvas
}

// Add creates a top-level object and emits a created event.
func (g *Graph) Add(spec Spec) ports.Source {
	if spec.UUID == "" {
		spec.UUID = uuid.NewString()
	}

	g.mu.Lock()
	g.nodes[spec.UUID] = &node{
		uuid:     spec.UUID,
		name:     spec.Name,
		typeID:   spec.TypeID,
		kind:     spec.Kind,
		vertical: spec.Vertical,
	}
	g.order = append(g.order, spec.UUID)
	g.mu.Unlock()

	g.emit(ports.Event{Kind: ports.SourceCreated, UUID: spec.UUID})
	return source{g: g, uuid: spec.UUID}
}

// AddInput adds a plain input source.
func (g *Graph) AddInput(name, typeID string) ports.Source {
	return g.Add(Spec{Name: name, TypeID: typeID, Kind: ports.KindInput})
}

// AddScene adds a primary-canvas scene.
func (g *Graph) AddScene(name string) ports.Source {
	return g.Add(Spec{Name: name, TypeID: "scene", Kind: ports.KindScene})
}

// AddVerticalScene adds a secondary-canvas scene.
func (g *Graph) AddVerticalScene(name string) ports.Source {
	return g.Add(Spec{Name: name, TypeID: "scene", Kind: ports.KindScene, Vertical: true})
}

// AddGroup adds a group.
func (g *Graph) AddGroup(name string) ports.Source {
	return g.Add(Spec{Name: name, TypeID: "group", Kind: ports.KindGroup})
}

// AddTransition adds a transition (host plumbing; the index must skip it).
func (g *Graph) AddTransition(name, typeID string) ports.Source {
	return g.Add(Spec{Name: name, TypeID: typeID, Kind: ports.KindTransition})
}

// AddFilter attaches a filter to a carrier source and emits a created event.
func (g *Graph) AddFilter(carrier ports.Source, name, typeID string) ports.Source {
	return g.AddFilterSpec(carrier.UUID(), Spec{Name: name, TypeID: typeID})
}

// AddFilterSpec attaches a filter by carrier uuid, honoring an explicit UUID.
func (g *Graph) AddFilterSpec(carrierUUID string, spec Spec) ports.Source {
	if spec.UUID == "" {
		spec.UUID = uuid.NewString()
	}

	g.mu.Lock()
	c, ok := g.nodes[carrierUUID]
	if !ok {
		g.mu.Unlock()
		return nil
	}
	g.nodes[spec.UUID] = &node{
		uuid:   spec.UUID,
		name:   spec.Name,
		typeID: spec.TypeID,
		kind:   ports.KindFilter,
	}
	c.filters = append(c.filters, spec.UUID)
	g.mu.Unlock()

	g.emit(ports.Event{Kind: ports.SourceCreated, UUID: spec.UUID})
	return source{g: g, uuid: spec.UUID}
}

// AddChild appends a child to a scene or group.
func (g *Graph) AddChild(container, child ports.Source) {
	g.mu.Lock()
	if c, ok := g.nodes[container.UUID()]; ok {
		c.children = append(c.children, child.UUID())
	}
	g.mu.Unlock()
}

// SetChildren replaces a container's child list wholesale. Membership
// changes are not mutation events on the host, so none are emitted.
func (g *Graph) SetChildren(containerUUID string, childUUIDs []string) {
	g.mu.Lock()
	if c, ok := g.nodes[containerUUID]; ok {
		c.children = append([]string(nil), childUUIDs...)
	}
	g.mu.Unlock()
}

// Rename changes an object's display name and emits a renamed event.
func (g *Graph) Rename(uuid, newName string) {
	g.mu.Lock()
	n, ok := g.nodes[uuid]
	if ok {
		n.name = newName
	}
	g.mu.Unlock()

	if ok {
		g.emit(ports.Event{Kind: ports.SourceRenamed, UUID: uuid})
	}
}

// Destroy removes an object and its attached filters, emitting destroyed
// events for each. Destroying an unknown uuid is a no-op.
func (g *Graph) Destroy(uuid string) {
	g.mu.Lock()
	n, ok := g.nodes[uuid]
	if !ok {
		g.mu.Unlock()
		return
	}

	destroyed := append([]string(nil), n.filters...)
	destroyed = append(destroyed, uuid)

	for _, id := range destroyed {
		delete(g.nodes, id)
	}
	g.order = removeAll(g.order, uuid)
	for _, other := range g.nodes {
		other.children = removeAll(other.children, uuid)
		other.filters = removeAll(other.filters, uuid)
	}
	g.mu.Unlock()

	for _, id := range destroyed {
		g.emit(ports.Event{Kind: ports.SourceDestroyed, UUID: id})
	}
}

// RegisterTypeName records a host display name for a source type id.
func (g *Graph) RegisterTypeName(typeID, display string) {
	g.mu.Lock()
	g.typeNames[typeID] = display
	g.mu.Unlock()
}

func removeAll(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// --- ports.Graph ---

func (g *Graph) EnumSources(visit func(ports.Source) bool) {
	g.mu.RLock()
	order := append([]string(nil), g.order...)
	g.mu.RUnlock()

	for _, id := range order {
		g.mu.RLock()
		n, ok := g.nodes[id]
		isFilter := ok && n.kind == ports.KindFilter
		g.mu.RUnlock()
		if !ok || isFilter {
			continue
		}
		if !visit(source{g: g, uuid: id}) {
			return
		}
	}
}

func (g *Graph) MainScenes() []ports.Source {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var scenes []ports.Source
	for _, id := range g.order {
		if n, ok := g.nodes[id]; ok && n.kind == ports.KindScene && !n.vertical {
			scenes = append(scenes, source{g: g, uuid: id})
		}
	}
	return scenes
}

func (g *Graph) SceneItems(scene ports.Source) []ports.Source {
	return g.refs(scene.UUID(), func(n *node) []string { return n.children })
}

func (g *Graph) Filters(src ports.Source) []ports.Source {
	return g.refs(src.UUID(), func(n *node) []string { return n.filters })
}

func (g *Graph) refs(uuid string, pick func(*node) []string) []ports.Source {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[uuid]
	if !ok {
		return nil
	}
	out := make([]ports.Source, 0, len(pick(n)))
	for _, id := range pick(n) {
		if _, ok := g.nodes[id]; ok {
			out = append(out, source{g: g, uuid: id})
		}
	}
	return out
}

func (g *Graph) GetByUUID(uuid string) (ports.Source, bool) {
	g.mu.RLock()
	_, ok := g.nodes[uuid]
	g.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return source{g: g, uuid: uuid}, true
}

func (g *Graph) TypeDisplayName(typeID string) (string, bool) {
	g.mu.RLock()
	name, ok := g.typeNames[typeID]
	g.mu.RUnlock()
	return name, ok
}

// --- ports.Events ---

func (g *Graph) Subscribe(handler func(ports.Event)) (func(), error) {
	g.handlerMu.Lock()
	id := g.nextSub
	g.nextSub++
	g.handlers[id] = handler
	g.handlerMu.Unlock()

	return func() {
		g.handlerMu.Lock()
		delete(g.handlers, id)
		g.handlerMu.Unlock()
	}, nil
}

func (g *Graph) emit(ev ports.Event) {
	g.handlerMu.Lock()
	handlers := make([]func(ports.Event), 0, len(g.handlers))
	for _, h := range g.handlers {
		handlers = append(handlers, h)
	}
	g.handlerMu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// --- ports.Actions ---

// OpenProperties records the request; a stale uuid is a silent no-op.
func (g *Graph) OpenProperties(uuid string) error {
	return g.action("properties", uuid)
}

// OpenFilters records the request; a stale uuid is a silent no-op.
func (g *Graph) OpenFilters(uuid string) error {
	return g.action("filters", uuid)
}

func (g *Graph) action(kind, uuid string) error {
	if _, ok := g.GetByUUID(uuid); !ok {
		return nil
	}
	g.actionMu.Lock()
	g.lastAction = kind + ":" + uuid
	g.actionMu.Unlock()
	return nil
}

// LastAction returns the most recent pass-through action, for tests.
func (g *Graph) LastAction() string {
	g.actionMu.Lock()
	defer g.actionMu.Unlock()
	return g.lastAction
}
