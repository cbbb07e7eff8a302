package ports

// EventKind classifies a graph mutation notification.
type EventKind int

const (
	SourceCreated EventKind = iota
	SourceDestroyed
	SourceRenamed
)

func (k EventKind) String() string {
	switch k {
	case SourceCreated:
		return "created"
	case SourceDestroyed:
		return "destroyed"
	case SourceRenamed:
		return "renamed"
	}
	return "unknown"
}

// Event is a fire-and-forget graph mutation notification. Under load the
// host may deliver events out of causal order; consumers must tolerate that
// (the coalesced refresh does).
type Event struct {
	Kind EventKind
	UUID string
}

// Events delivers graph mutation notifications. Handlers may be invoked on
// any goroutine; a subscriber must hand the event off to its own execution
// context before touching an index.
type Events interface {
	// Subscribe registers a handler and returns a function that removes it.
	Subscribe(handler func(Event)) (unsubscribe func(), err error)
}
