package ports

// Kind identifies what a live host object fundamentally is.
type Kind int

const (
	KindInput Kind = iota
	KindScene
	KindGroup
	KindFilter
	KindTransition
)

// Source is a read-only view of one live object in the host's composition
// graph. The host owns the object's lifetime; a Source handle never extends
// it. Name may change between calls (renames land immediately on the host
// side) and returns "" once the object is gone.
type Source interface {
	UUID() string
	Name() string
	TypeID() string
	Kind() Kind
}

// Graph is the read-only boundary to the host's live object graph.
// All methods are synchronous queries against current host state.
type Graph interface {
	// EnumSources visits every top-level source (inputs, scenes, groups,
	// never filters). Enumeration stops early when visit returns false.
	EnumSources(visit func(Source) bool)

	// MainScenes returns the scenes on the primary canvas, in host order.
	// Scenes enumerated by EnumSources but absent here belong to a
	// secondary canvas.
	MainScenes() []Source

	// SceneItems returns the direct children of a scene or group, in host
	// order. Non-container sources yield nil.
	SceneItems(scene Source) []Source

	// Filters returns the filters attached to a source, in host order.
	Filters(source Source) []Source

	// GetByUUID resolves a live source by identity. ok is false once the
	// object has been destroyed; the host never reuses an identity while
	// its object lives.
	GetByUUID(uuid string) (Source, bool)

	// TypeDisplayName returns the host-registered display name for a
	// source type id, if the host knows one.
	TypeDisplayName(typeID string) (string, bool)
}
