package memory

import (
	"testing"

	"sourcescout/internal/ports"
)

func TestGraphEvents(t *testing.T) {
	g := New()

	var events []ports.Event
	unsub, err := g.Subscribe(func(ev ports.Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer unsub()

	cam := g.AddInput("Camera 1", "dshow_input")
	g.Rename(cam.UUID(), "Camera A")
	g.Destroy(cam.UUID())

	want := []ports.EventKind{ports.SourceCreated, ports.SourceRenamed, ports.SourceDestroyed}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, kind := range want {
		if events[i].Kind != kind {
			t.Errorf("event %d = %v, want %v", i, events[i].Kind, kind)
		}
		if events[i].UUID != cam.UUID() {
			t.Errorf("event %d uuid = %q, want %q", i, events[i].UUID, cam.UUID())
		}
	}
}

func TestGraphWeakResolution(t *testing.T) {
	g := New()
	cam := g.AddInput("Camera 1", "dshow_input")

	if _, ok := g.GetByUUID(cam.UUID()); !ok {
		t.Fatal("expected live source to resolve")
	}

	g.Rename(cam.UUID(), "Camera A")
	if got := cam.Name(); got != "Camera A" {
		t.Errorf("handle Name() after rename = %q, want %q", got, "Camera A")
	}

	g.Destroy(cam.UUID())
	if _, ok := g.GetByUUID(cam.UUID()); ok {
		t.Error("expected destroyed source to fail resolution")
	}
	if got := cam.Name(); got != "" {
		t.Errorf("handle Name() after destroy = %q, want empty", got)
	}
}

func TestGraphDestroyCascadesFilters(t *testing.T) {
	g := New()
	cam := g.AddInput("Camera 1", "dshow_input")
	blur := g.AddFilter(cam, "Blur", "color_correction")

	var destroyed []string
	unsub, _ := g.Subscribe(func(ev ports.Event) {
		if ev.Kind == ports.SourceDestroyed {
			destroyed = append(destroyed, ev.UUID)
		}
	})
	defer unsub()

	g.Destroy(cam.UUID())

	if len(destroyed) != 2 {
		t.Fatalf("got %d destroy events, want 2 (filter + carrier)", len(destroyed))
	}
	if _, ok := g.GetByUUID(blur.UUID()); ok {
		t.Error("expected filter to be destroyed with its carrier")
	}
}

func TestGraphEnumSourcesSkipsFilters(t *testing.T) {
	g := New()
	cam := g.AddInput("Camera 1", "dshow_input")
	g.AddFilter(cam, "Blur", "color_correction")

	var seen []string
	g.EnumSources(func(s ports.Source) bool {
		seen = append(seen, s.Name())
		return true
	})

	if len(seen) != 1 || seen[0] != "Camera 1" {
		t.Errorf("EnumSources visited %v, want only the input", seen)
	}
}

func TestGraphMainScenes(t *testing.T) {
	g := New()
	g.AddScene("Main")
	g.AddVerticalScene("Portrait")

	main := g.MainScenes()
	if len(main) != 1 || main[0].Name() != "Main" {
		t.Errorf("MainScenes() = %d scenes, want just Main", len(main))
	}
}

func TestGraphActions(t *testing.T) {
	g := New()
	cam := g.AddInput("Camera 1", "dshow_input")

	if err := g.OpenProperties(cam.UUID()); err != nil {
		t.Fatalf("OpenProperties: %v", err)
	}
	if got := g.LastAction(); got != "properties:"+cam.UUID() {
		t.Errorf("LastAction() = %q", got)
	}

	// Stale uuid is a silent no-op.
	g.Destroy(cam.UUID())
	if err := g.OpenFilters(cam.UUID()); err != nil {
		t.Fatalf("OpenFilters on stale uuid: %v", err)
	}
	if got := g.LastAction(); got != "properties:"+cam.UUID() {
		t.Errorf("stale action should not be recorded, got %q", got)
	}
}
