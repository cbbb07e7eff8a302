// Package project serves a scene-collection JSON file as a live host graph.
// The file is loaded into a memory.Graph; a watcher reloads it on change and
// applies the difference through the graph's mutators, so downstream
// subscribers see ordinary created/destroyed/renamed notifications.
package project

import (
	"encoding/json"
	"fmt"
	"os"

	"sourcescout/internal/adapters/memory"
	"sourcescout/internal/ports"
)

// File is the scene-collection document. Scene and group items reference
// other entries by name. UUIDs are optional; entries without one get a fresh
// identity on every load, so give entries explicit uuids when the file will
// be edited while sourcescout is watching it.
type File struct {
	// Types maps source type ids to display names the host registers.
	Types map[string]string `json:"types,omitempty"`

	Scenes  []SceneDef  `json:"scenes"`
	Groups  []GroupDef  `json:"groups,omitempty"`
	Sources []SourceDef `json:"sources"`
}

type SceneDef struct {
	UUID     string      `json:"uuid,omitempty"`
	Name     string      `json:"name"`
	Vertical bool        `json:"vertical,omitempty"`
	Items    []string    `json:"items,omitempty"`
	Filters  []FilterDef `json:"filters,omitempty"`
}

type GroupDef struct {
	UUID    string      `json:"uuid,omitempty"`
	Name    string      `json:"name"`
	Items   []string    `json:"items,omitempty"`
	Filters []FilterDef `json:"filters,omitempty"`
}

type SourceDef struct {
	UUID    string      `json:"uuid,omitempty"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Filters []FilterDef `json:"filters,omitempty"`
}

type FilterDef struct {
	UUID string `json:"uuid,omitempty"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Load reads a project file into a fresh graph.
func Load(path string) (*memory.Graph, error) {
	f, err := readFile(path)
	if err != nil {
		return nil, err
	}
	g := memory.New()
	apply(g, f)
	return g, nil
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	return &f, nil
}

// desired is one flattened entry from the file.
type desired struct {
	uuid     string // "" when the file assigns none
	name     string
	typeID   string
	kind     ports.Kind
	vertical bool
	items    []string // child names, containers only
	filters  []FilterDef
}

func flatten(f *File) []desired {
	var out []desired
	for _, s := range f.Scenes {
		out = append(out, desired{
			uuid: s.UUID, name: s.Name, typeID: "scene", kind: ports.KindScene,
			vertical: s.Vertical, items: s.Items, filters: s.Filters,
		})
	}
	for _, g := range f.Groups {
		out = append(out, desired{
			uuid: g.UUID, name: g.Name, typeID: "group", kind: ports.KindGroup,
			items: g.Items, filters: g.Filters,
		})
	}
	for _, s := range f.Sources {
		out = append(out, desired{
			uuid: s.UUID, name: s.Name, typeID: s.Type, kind: ports.KindInput,
			filters: s.Filters,
		})
	}
	return out
}

// existing is a snapshot row of the live graph used for diffing.
type existing struct {
	uuid    string
	name    string
	typeID  string
	kind    ports.Kind
	carrier string // filters: carrier uuid
}

func snapshot(g *memory.Graph) []existing {
	var rows []existing
	g.EnumSources(func(src ports.Source) bool {
		rows = append(rows, existing{
			uuid: src.UUID(), name: src.Name(), typeID: src.TypeID(), kind: src.Kind(),
		})
		for _, fl := range g.Filters(src) {
			rows = append(rows, existing{
				uuid: fl.UUID(), name: fl.Name(), typeID: fl.TypeID(),
				kind: ports.KindFilter, carrier: src.UUID(),
			})
		}
		return true
	})
	return rows
}

// apply reconciles the live graph with the file: entries matched by uuid are
// renamed in place, unmatched file entries are created, and live objects the
// file no longer mentions are destroyed. Applying to an empty graph is a
// plain load. Entries without a uuid fall back to (kind, type, name) matching
// to avoid destroy/create churn on unrelated edits.
func apply(g *memory.Graph, f *File) {
	for id, display := range f.Types {
		g.RegisterTypeName(id, display)
	}

	rows := snapshot(g)
	byUUID := make(map[string]existing)
	byKey := make(map[string]existing)
	matched := make(map[string]bool)
	for _, row := range rows {
		byUUID[row.uuid] = row
		byKey[matchKey(row.kind, row.typeID, row.name, row.carrier)] = row
	}

	claim := func(kind ports.Kind, typeID, name, carrier, uuid string) (existing, bool) {
		if uuid != "" {
			if row, ok := byUUID[uuid]; ok && !matched[row.uuid] && row.kind == kind {
				matched[row.uuid] = true
				return row, true
			}
			return existing{}, false
		}
		if row, ok := byKey[matchKey(kind, typeID, name, carrier)]; ok && !matched[row.uuid] {
			matched[row.uuid] = true
			return row, true
		}
		return existing{}, false
	}

	defs := flatten(f)
	actual := make(map[string]string, len(defs)) // entry name -> live uuid

	// Top-level entries first; filters need their carrier's live uuid.
	for _, d := range defs {
		if d.name == "" {
			continue
		}
		row, ok := claim(d.kind, d.typeID, d.name, "", d.uuid)
		if ok {
			if row.name != d.name {
				g.Rename(row.uuid, d.name)
			}
			actual[d.name] = row.uuid
			continue
		}
		src := g.Add(memory.Spec{
			UUID: d.uuid, Name: d.name, TypeID: d.typeID,
			Kind: d.kind, Vertical: d.vertical,
		})
		actual[d.name] = src.UUID()
	}

	for _, d := range defs {
		carrier, ok := actual[d.name]
		if !ok {
			continue
		}
		for _, fd := range d.filters {
			if fd.Name == "" {
				continue
			}
			row, ok := claim(ports.KindFilter, fd.Type, fd.Name, carrier, fd.UUID)
			if ok {
				if row.name != fd.Name {
					g.Rename(row.uuid, fd.Name)
				}
				continue
			}
			g.AddFilterSpec(carrier, memory.Spec{
				UUID: fd.UUID, Name: fd.Name, TypeID: fd.Type,
			})
		}
	}

	// Everything the file no longer mentions goes away. Filters first so a
	// carrier's cascade never races a filter the file kept.
	for _, row := range rows {
		if !matched[row.uuid] && row.kind == ports.KindFilter {
			g.Destroy(row.uuid)
		}
	}
	for _, row := range rows {
		if !matched[row.uuid] && row.kind != ports.KindFilter {
			g.Destroy(row.uuid)
		}
	}

	// Child lists are replaced wholesale, in file order.
	for _, d := range defs {
		if d.kind != ports.KindScene && d.kind != ports.KindGroup {
			continue
		}
		container, ok := actual[d.name]
		if !ok {
			continue
		}
		var children []string
		for _, item := range d.items {
			if id, ok := actual[item]; ok {
				children = append(children, id)
			}
		}
		g.SetChildren(container, children)
	}
}

func matchKey(kind ports.Kind, typeID, name, carrier string) string {
	return fmt.Sprintf("%d\x00%s\x00%s\x00%s", kind, typeID, name, carrier)
}
