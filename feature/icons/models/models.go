package models

// Icon is the merged record of one icon id across every snapshot.
// Field order matches the published document.
type Icon struct {
	// ID is the raw icon key (e.g. "lucide-box" or a bespoke key).
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// SVG is the raw glyph markup.
	SVG string `json:"svg"`
	// Lucide reports whether the id comes from the Lucide library.
	Lucide bool `json:"lucide"`
	// FirstVersion is the oldest snapshot version containing the id.
	FirstVersion string `json:"firstVersion"`
	// LastVersion is the newest snapshot version containing the id.
	LastVersion string `json:"lastVersion"`
	// Alternatives lists interchangeable icon ids. Omitted when empty.
	Alternatives Alternatives `json:"alternatives,omitempty"`
	// Deprecated is true when the icon is missing from the newest snapshot.
	Deprecated bool `json:"deprecated"`
	// IsNew is true when the icon first appeared at or after the threshold version.
	IsNew bool `json:"is_new"`
	// Tags are catalog labels. Always present, possibly empty.
	Tags []string `json:"tags"`
	// Categories are catalog classifications. Always present, possibly empty.
	Categories []string `json:"categories"`
}

// Alternatives is an optional set of icon ids.
// A nil or empty value is absent and is not serialized.
type Alternatives []string

// Present reports whether any alternative is set.
func (a Alternatives) Present() bool {
	return len(a) > 0
}

// Document is the consolidated output artifact.
type Document struct {
	Icons      []*Icon  `json:"icons"`
	Versions   []string `json:"versions"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}
