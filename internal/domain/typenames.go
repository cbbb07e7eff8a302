package domain

// typeNames maps well-known source type ids to human-readable names, used
// when the host has no display name registered for a type.
var typeNames = map[string]string{
	"scene":                  "Scene",
	"group":                  "Group",
	"image_source":           "Image",
	"color_source":           "Color Source",
	"color_source_v3":        "Color Source v3",
	"slideshow":              "Image Slide Show",
	"browser_source":         "Browser",
	"ffmpeg_source":          "Media Source",
	"vlc_source":             "VLC Video Source",
	"text_gdiplus":           "Text (GDI+)",
	"text_gdiplus_v2":        "Text (GDI+) v2",
	"text_gdiplus_v3":        "Text (GDI+) v3",
	"text_ft2_source":        "Text (FreeType 2)",
	"text_ft2_source_v2":     "Text (FreeType 2) v2",
	"monitor_capture":        "Display Capture",
	"window_capture":         "Window Capture",
	"game_capture":           "Game Capture",
	"dshow_input":            "Video Capture Device",
	"wasapi_input_capture":   "Audio Input Capture",
	"wasapi_output_capture":  "Audio Output Capture",
	"pulse_input_capture":    "Audio Input Capture (PulseAudio)",
	"pulse_output_capture":   "Audio Output Capture (PulseAudio)",
	"ndi_source":             "NDI Source",
	"obs_stinger_transition": "Stinger",
}

// TypeDisplayName resolves a friendly name for a source type id: the static
// table first, then the host lookup, then the raw id as a last resort.
// lookup may be nil.
func TypeDisplayName(typeID string, lookup func(string) (string, bool)) string {
	if name, ok := typeNames[typeID]; ok {
		return name
	}
	if lookup != nil {
		if name, ok := lookup(typeID); ok && name != "" {
			return name
		}
	}
	return typeID
}
