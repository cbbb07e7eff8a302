package project

import (
	"os"
	"path/filepath"
	"testing"

	"sourcescout/internal/index"
	"sourcescout/internal/ports"
)

const sampleProject = `{
  "types": {"acme_widget": "Acme Widget"},
  "scenes": [
    {"uuid": "scene-main", "name": "Main", "items": ["Cam1", "Overlays"]},
    {"uuid": "scene-vert", "name": "Vertical", "vertical": true, "items": ["Cam1"]}
  ],
  "groups": [
    {"uuid": "group-1", "name": "Overlays", "items": ["Logo"]}
  ],
  "sources": [
    {"uuid": "src-cam", "name": "Cam1", "type": "dshow_input",
     "filters": [{"uuid": "flt-blur", "name": "Blur", "type": "color_correction"}]},
    {"uuid": "src-logo", "name": "Logo", "type": "image_source"}
  ]
}`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "show.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	g, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	c := index.NewCollection(g)
	c.Refresh()

	if c.Len() != 6 { // 2 scenes + 1 group + 2 sources + 1 filter
		for _, it := range c.Items() {
			t.Logf("indexed: %s (%s)", it.Name(), it.Class)
		}
		t.Fatalf("Len() = %d, want 6", c.Len())
	}

	results := index.ApplyScope(c.Search("cam", ""), index.ScopeSources)
	if len(results) != 1 {
		t.Fatalf("search cam: %d results, want 1", len(results))
	}
	parents := results[0].ParentScenes()
	if len(parents) != 2 || parents[0] != "Main" || parents[1] != "Vertical" {
		t.Errorf("Cam1 parents = %v, want [Main Vertical]", parents)
	}

	filters := index.ApplyScope(c.Search("blur", ""), index.ScopeFilters)
	if len(filters) != 1 || filters[0].ParentSource() != "Cam1" {
		t.Fatalf("filter linking broken: %v", filters)
	}

	if name, ok := g.TypeDisplayName("acme_widget"); !ok || name != "Acme Widget" {
		t.Errorf("registered type name = %q, %v", name, ok)
	}

	// Vertical flag came through the main-scene list.
	for _, it := range c.Items() {
		switch it.Name() {
		case "Main":
			if it.Vertical {
				t.Error("Main flagged vertical")
			}
		case "Vertical":
			if !it.Vertical {
				t.Error("Vertical not flagged")
			}
		}
	}
}

func TestApplyDiffEmitsEvents(t *testing.T) {
	g, err := Load(writeProject(t, sampleProject))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var events []ports.Event
	unsub, _ := g.Subscribe(func(ev ports.Event) {
		events = append(events, ev)
	})
	defer unsub()

	// Rename Cam1, drop Logo, add Mic. Uuids keep identities stable.
	next := &File{
		Scenes: []SceneDef{
			{UUID: "scene-main", Name: "Main", Items: []string{"Camera A", "Overlays"}},
			{UUID: "scene-vert", Name: "Vertical", Vertical: true, Items: []string{"Camera A"}},
		},
		Groups: []GroupDef{{UUID: "group-1", Name: "Overlays"}},
		Sources: []SourceDef{
			{UUID: "src-cam", Name: "Camera A", Type: "dshow_input",
				Filters: []FilterDef{{UUID: "flt-blur", Name: "Blur", Type: "color_correction"}}},
			{UUID: "src-mic", Name: "Mic", Type: "wasapi_input_capture"},
		},
	}
	apply(g, next)

	counts := make(map[ports.EventKind]int)
	for _, ev := range events {
		counts[ev.Kind]++
	}
	if counts[ports.SourceRenamed] != 1 {
		t.Errorf("renamed events = %d, want 1 (Cam1 -> Camera A)", counts[ports.SourceRenamed])
	}
	if counts[ports.SourceCreated] != 1 {
		t.Errorf("created events = %d, want 1 (Mic)", counts[ports.SourceCreated])
	}
	if counts[ports.SourceDestroyed] != 1 {
		t.Errorf("destroyed events = %d, want 1 (Logo)", counts[ports.SourceDestroyed])
	}

	// Identity survived the rename.
	src, ok := g.GetByUUID("src-cam")
	if !ok {
		t.Fatal("src-cam lost its identity across apply")
	}
	if src.Name() != "Camera A" {
		t.Errorf("src-cam name = %q, want Camera A", src.Name())
	}
	if _, ok := g.GetByUUID("src-logo"); ok {
		t.Error("src-logo should be destroyed")
	}
}

func TestApplyMatchesByShapeWithoutUUIDs(t *testing.T) {
	g, err := Load(writeProject(t, `{
	  "scenes": [{"name": "Main", "items": ["Cam1"]}],
	  "sources": [{"name": "Cam1", "type": "dshow_input"}]
	}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var events []ports.Event
	unsub, _ := g.Subscribe(func(ev ports.Event) { events = append(events, ev) })
	defer unsub()

	// Identical file again: shape matching must produce no churn.
	apply(g, &File{
		Scenes:  []SceneDef{{Name: "Main", Items: []string{"Cam1"}}},
		Sources: []SourceDef{{Name: "Cam1", Type: "dshow_input"}},
	})

	if len(events) != 0 {
		t.Errorf("no-op apply emitted %d events: %v", len(events), events)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load(writeProject(t, "{not json")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected read error")
	}
}
