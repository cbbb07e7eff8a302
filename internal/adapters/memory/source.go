package memory

import "sourcescout/internal/ports"

// source is a live handle into the graph. It reads current state on every
// call, so renames are visible immediately and a destroyed object reads as
// empty.
type source struct {
	g    *Graph
	uuid string
}

var _ ports.Source = source{}

func (s source) UUID() string { return s.uuid }

func (s source) Name() string {
	s.g.mu.RLock()
	defer s.g.mu.RUnlock()
	if n, ok := s.g.nodes[s.uuid]; ok {
		return n.name
	}
	return ""
}

func (s source) TypeID() string {
	s.g.mu.RLock()
	defer s.g.mu.RUnlock()
	if n, ok := s.g.nodes[s.uuid]; ok {
		return n.typeID
	}
	return ""
}

func (s source) Kind() ports.Kind {
	s.g.mu.RLock()
	defer s.g.mu.RUnlock()
	if n, ok := s.g.nodes[s.uuid]; ok {
		return n.kind
	}
	return ports.KindInput
}
