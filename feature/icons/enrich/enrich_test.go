package enrich

import (
	"testing"

	"icon-data/feature/icons/catalog"
	"icon-data/feature/icons/models"
	"icon-data/feature/icons/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOptions = Options{SourcePrefix: "lucide-", NewVersion: "1.7.7"}

func merged(icons ...*models.Icon) *snapshot.Merged {
	m := &snapshot.Merged{Icons: make(map[string]*models.Icon), Versions: []string{"1.7.7"}}
	for _, icon := range icons {
		m.Icons[icon.ID] = icon
	}
	return m
}

func newIcon(id, svg, first string) *models.Icon {
	return &models.Icon{ID: id, Name: id, SVG: svg, FirstVersion: first, LastVersion: first}
}

func TestNormalizeSVG(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Wrapper", `<svg xmlns="http://www.w3.org/2000/svg" width="24"><path d="M0 0"/></svg>`, `<path d="M0 0"/>`},
		{"Whitespace", "<svg class=\"svg-icon\">\n  <path d=\"M0 0\"/>\n</svg>\n", `<path d="M0 0"/>`},
		{"InnerWhitespaceKept", `<svg><path  d="M0 0"/></svg>`, `<path  d="M0 0"/>`},
		{"NoWrapper", `<path d="M0 0"/>`, `<path d="M0 0"/>`},
		{"Empty", `<svg></svg>`, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSVG(tt.in))
		})
	}
}

func TestApply_SVGGrouping(t *testing.T) {
	m := merged(
		newIcon("a", `<svg width="24"><path d="M0 0"/></svg>`, "1.7.7"),
		newIcon("b", `<svg class="svg-icon lucide-b"> <path d="M0 0"/> </svg>`, "1.7.7"),
		newIcon("c", `<svg><path d="M1 1"/></svg>`, "1.7.7"),
	)

	stats := Apply(m, catalog.New(nil), nil, defaultOptions)

	assert.Equal(t, models.Alternatives{"b"}, m.Icons["a"].Alternatives)
	assert.Equal(t, models.Alternatives{"a"}, m.Icons["b"].Alternatives)
	assert.False(t, m.Icons["c"].Alternatives.Present())
	assert.Equal(t, 1, stats.DuplicateGroups)
	assert.Equal(t, 2, stats.WithAlternatives)
}

func TestApply_ExactBodyRequired(t *testing.T) {
	m := merged(
		newIcon("a", `<svg><path d="M0 0" fill="none"/></svg>`, "1.7.7"),
		newIcon("b", `<svg><path fill="none" d="M0 0"/></svg>`, "1.7.7"),
		newIcon("c", `<svg><path d="M0.0 0" fill="none"/></svg>`, "1.7.7"),
	)

	Apply(m, catalog.New(nil), nil, defaultOptions)

	for _, icon := range m.Icons {
		assert.Nil(t, icon.Alternatives, icon.ID)
	}
}

func TestApply_ManualAlternatives(t *testing.T) {
	m := merged(
		newIcon("dice", `<svg><path d="M1"/></svg>`, "1.7.7"),
		newIcon("lucide-dice-5", `<svg><path d="M2"/></svg>`, "1.7.7"),
		newIcon("lucide-dice-6", `<svg><path d="M2"/></svg>`, "1.7.7"),
	)
	manual := map[string][]string{
		"dice":    {"lucide-dice-5", "dice", "lucide-dice-5", "lucide-retired"},
		"missing": {"dice"},
	}

	Apply(m, catalog.New(nil), manual, defaultOptions)

	assert.Equal(t, models.Alternatives{"lucide-dice-5", "lucide-retired"}, m.Icons["dice"].Alternatives)
	assert.Equal(t, models.Alternatives{"dice", "lucide-dice-6"}, m.Icons["lucide-dice-5"].Alternatives)
	assert.Equal(t, models.Alternatives{"lucide-dice-5"}, m.Icons["lucide-dice-6"].Alternatives)
	_, ok := m.Icons["missing"]
	assert.False(t, ok)
}

func TestApply_AlternativeSymmetry(t *testing.T) {
	m := merged(
		newIcon("a", `<svg><path d="M0"/></svg>`, "1.7.7"),
		newIcon("b", `<svg><path d="M0"/></svg>`, "1.7.7"),
		newIcon("c", `<svg><path d="M1"/></svg>`, "1.7.7"),
		newIcon("d", `<svg><path d="M2"/></svg>`, "1.7.7"),
	)
	manual := map[string][]string{"c": {"a"}, "d": {"c"}}

	Apply(m, catalog.New(nil), manual, defaultOptions)

	for id, icon := range m.Icons {
		assert.NotContains(t, icon.Alternatives, id)
		for _, alt := range icon.Alternatives {
			other, ok := m.Icons[alt]
			require.True(t, ok)
			assert.Contains(t, other.Alternatives, id, "%s -> %s is not symmetric", id, alt)
		}
	}
}

func TestApply_Catalog(t *testing.T) {
	cat := catalog.New(map[string]catalog.Entry{
		"box":  {Tags: []string{"shape"}, Categories: []string{"shapes"}, Aliases: []catalog.Alias{"package"}},
		"bell": {Tags: []string{"alert", "ring"}, Categories: []string{"notifications"}},
	})
	m := merged(
		newIcon("package", `<svg><path d="M0"/></svg>`, "1.7.7"),
		newIcon("lucide-bell", `<svg><path d="M1"/></svg>`, "1.7.7"),
		newIcon("lucide-package", `<svg><path d="M2"/></svg>`, "1.7.7"),
		newIcon("obsidian-logo", `<svg><path d="M3"/></svg>`, "1.7.7"),
	)

	stats := Apply(m, cat, nil, defaultOptions)

	assert.Equal(t, []string{"shape"}, m.Icons["package"].Tags)
	assert.Equal(t, []string{"shape"}, m.Icons["lucide-package"].Tags)
	assert.Equal(t, []string{"alert", "ring"}, m.Icons["lucide-bell"].Tags)
	assert.Equal(t, []string{"notifications"}, m.Icons["lucide-bell"].Categories)
	assert.Equal(t, []string{}, m.Icons["obsidian-logo"].Tags)
	assert.Equal(t, []string{}, m.Icons["obsidian-logo"].Categories)
	assert.Equal(t, 3, stats.Matched)

	m.Icons["package"].Tags[0] = "changed"
	entry, _ := cat.Lookup("box")
	assert.Equal(t, []string{"shape"}, entry.Tags)
}

func TestApply_IsNew(t *testing.T) {
	m := merged(
		newIcon("old", `<svg><path d="M0"/></svg>`, "1.6.0"),
		newIcon("edge", `<svg><path d="M1"/></svg>`, "1.7.7"),
		newIcon("later", `<svg><path d="M2"/></svg>`, "1.10.0"),
	)

	Apply(m, catalog.New(nil), nil, defaultOptions)

	assert.False(t, m.Icons["old"].IsNew)
	assert.True(t, m.Icons["edge"].IsNew)
	assert.True(t, m.Icons["later"].IsNew)
}

func TestLookupKey(t *testing.T) {
	assert.Equal(t, "box", LookupKey("lucide-box", "lucide-"))
	assert.Equal(t, "box", LookupKey("box", "lucide-"))
	assert.Equal(t, "lucide-box", LookupKey("lucide-box", ""))
}
