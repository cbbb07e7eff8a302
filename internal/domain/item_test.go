package domain

import "testing"

type fakeBacking struct {
	name string
	gone bool
}

func (f *fakeBacking) Resolve() (string, bool) {
	if f.gone {
		return "", false
	}
	return f.name, true
}

func TestItemName(t *testing.T) {
	b := &fakeBacking{name: "Camera 1"}
	it := NewItem("u1", ClassSource, "dshow_input", b)

	if got := it.Name(); got != "Camera 1" {
		t.Errorf("Name() = %q, want %q", got, "Camera 1")
	}
	if !it.Valid() {
		t.Error("expected item to be valid")
	}

	// Rename lands on the live object; the item sees it immediately.
	b.name = "Camera 2"
	if got := it.Name(); got != "Camera 2" {
		t.Errorf("Name() after rename = %q, want %q", got, "Camera 2")
	}

	// Destruction makes the back-reference fail.
	b.gone = true
	if it.Valid() {
		t.Error("expected item to be invalid after destroy")
	}
	if got := it.Name(); got != "" {
		t.Errorf("Name() after destroy = %q, want empty", got)
	}
}

func TestItemDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		class    Class
		vertical bool
		want     string
	}{
		{"Main", ClassScene, false, "(H) Main"},
		{"Portrait", ClassScene, true, "(V) Portrait"},
		{"Overlay", ClassGroup, false, "Overlay"},
		{"Camera 1", ClassSource, false, "Camera 1"},
		{"Blur", ClassFilter, false, "Blur"},
	}

	for _, tt := range tests {
		it := NewItem("u", tt.class, "x", &fakeBacking{name: tt.name})
		it.Vertical = tt.vertical
		if got := it.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q, %v) = %q, want %q", tt.name, tt.class, got, tt.want)
		}
	}
}

func TestItemMatchesSearch(t *testing.T) {
	it := NewItem("u1", ClassSource, "dshow_input", &fakeBacking{name: "Camera 1"})

	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"cam", true},
		{"CAM", true},
		{"Camera 1", true},
		{"era 1", true},
		{"webcam", false},
		{"dshow", false}, // type ids are not searched
	}

	for _, tt := range tests {
		if got := it.MatchesSearch(tt.text); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestItemMatchesType(t *testing.T) {
	it := NewItem("u1", ClassSource, "dshow_input", &fakeBacking{name: "Camera 1"})

	tests := []struct {
		filter string
		want   bool
	}{
		{"", true},
		{"all", true},
		{"dshow_input", true},
		{"dshow", false}, // exact match only
		{"image_source", false},
	}

	for _, tt := range tests {
		if got := it.MatchesType(tt.filter); got != tt.want {
			t.Errorf("MatchesType(%q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestItemParentScenes(t *testing.T) {
	it := NewItem("u1", ClassSource, "dshow_input", &fakeBacking{name: "Camera 1"})

	if it.HasParents() {
		t.Error("new item should have no parents")
	}

	it.AddParentScene("Vertical")
	it.AddParentScene("Main")
	it.AddParentScene("Main") // duplicates collapse

	got := it.ParentScenes()
	want := []string{"Main", "Vertical"}
	if len(got) != len(want) {
		t.Fatalf("ParentScenes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParentScenes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestContainsFold(t *testing.T) {
	tests := []struct {
		haystack string
		needle   string
		want     bool
	}{
		{"Camera 1", "cam", true},
		{"Camera 1", "CAM", true},
		{"camera", "CAMERA", true},
		{"Camera 1", "", true},
		{"", "cam", false},
		{"Cam", "camera", false},
	}

	for _, tt := range tests {
		if got := containsFold(tt.haystack, tt.needle); got != tt.want {
			t.Errorf("containsFold(%q, %q) = %v, want %v", tt.haystack, tt.needle, got, tt.want)
		}
	}
}
