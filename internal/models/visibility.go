package models

// WidgetDef describes one entry of the fixed widget registry.
type WidgetDef struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Group string `json:"group,omitempty"`
}

// WidgetRegistry is the closed set of widget identifiers known at build time.
var WidgetRegistry = []WidgetDef{
	{Id: "clock", Label: "Clock"},
	{Id: "profile", Label: "Profile"},
	{Id: "quote", Label: "Quote of the day"},
	{Id: "weather", Label: "Weather"},
	{Id: "background", Label: "Background"},
	{Id: "skills", Label: "Skills"},
	{Id: "notes", Label: "Notes"},
	{Id: "gallery", Label: "Gallery"},
	{Id: "backup", Label: "Backup"},
	{Id: "quicklaunch", Label: "Quick Launch"},
	{Id: "weatherHours", Label: "Next hours", Group: "extra"},
	{Id: "worldClock", Label: "World Clock", Group: "extra"},
	{Id: "focusTimer", Label: "Focus Timer", Group: "extra"},
	{Id: "sunArc", Label: "Sun Arc", Group: "extra"},
	{Id: "exif", Label: "EXIF Viewer", Group: "extra"},
	{Id: "systemStatus", Label: "System Status", Group: "extra"},
}

// KnownWidget reports whether id belongs to the registry.
func KnownWidget(id string) bool {
	for _, w := range WidgetRegistry {
		if w.Id == id {
			return true
		}
	}
	return false
}

type VisibilityMap map[string]bool

// DefaultVisibility returns the hardcoded default map: core cards visible,
// extras hidden.
func DefaultVisibility() VisibilityMap {
	out := make(VisibilityMap, len(WidgetRegistry))
	for _, w := range WidgetRegistry {
		out[w.Id] = w.Group != "extra"
	}
	return out
}

// Normalize prunes keys outside the registry and fills missing known keys
// from the defaults. Applied on every load, so the default set doubles as a
// migration mechanism when new widgets join the registry.
func (v VisibilityMap) Normalize() VisibilityMap {
	defaults := DefaultVisibility()
	out := make(VisibilityMap, len(defaults))
	for id, def := range defaults {
		if val, ok := v[id]; ok {
			out[id] = val
		} else {
			out[id] = def
		}
	}
	return out
}

func (v VisibilityMap) Clone() VisibilityMap {
	out := make(VisibilityMap, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
