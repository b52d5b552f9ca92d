package enrich

import (
	"sort"
	"strings"

	"icon-data/core/version"
	"icon-data/feature/icons/catalog"
	"icon-data/feature/icons/models"
	"icon-data/feature/icons/snapshot"
)

// Options controls the enrichment pass.
type Options struct {
	// SourcePrefix is stripped from ids before catalog lookup (e.g. "lucide-").
	SourcePrefix string
	// NewVersion is the threshold at or after which an icon is new.
	NewVersion string
}

// Stats summarizes one enrichment pass.
type Stats struct {
	// Matched counts icons that resolved to a catalog entry.
	Matched int
	// WithAlternatives counts icons with at least one alternative.
	WithAlternatives int
	// DuplicateGroups counts normalized SVG bodies shared by two or more icons.
	DuplicateGroups int
}

// LookupKey returns the catalog key for an icon id.
func LookupKey(id, prefix string) string {
	if prefix == "" {
		return id
	}
	return strings.TrimPrefix(id, prefix)
}

// Apply attaches tags, categories, alternatives and the new flag to every
// merged icon. The catalog and the manual mapping are only read.
func Apply(merged *snapshot.Merged, cat *catalog.Catalog, manual map[string][]string, opts Options) Stats {
	var stats Stats

	for id, icon := range merged.Icons {
		icon.Tags, icon.Categories = []string{}, []string{}
		if entry, ok := cat.Lookup(LookupKey(id, opts.SourcePrefix)); ok {
			stats.Matched++
			icon.Tags = append(icon.Tags, entry.Tags...)
			icon.Categories = append(icon.Categories, entry.Categories...)
		}
		icon.IsNew = version.AtLeast(icon.FirstVersion, opts.NewVersion)
	}

	alternatives := make(map[string]map[string]struct{}, len(merged.Icons))
	link := func(from, to string) {
		if from == to {
			return
		}
		if alternatives[from] == nil {
			alternatives[from] = make(map[string]struct{})
		}
		alternatives[from][to] = struct{}{}
	}

	for id, alts := range manual {
		if _, ok := merged.Icons[id]; !ok {
			continue
		}
		for _, alt := range alts {
			link(id, alt)
			if _, ok := merged.Icons[alt]; ok {
				link(alt, id)
			}
		}
	}

	svgs := make(map[string]string, len(merged.Icons))
	for id, icon := range merged.Icons {
		svgs[id] = icon.SVG
	}
	for _, group := range groupBySVG(svgs) {
		if len(group) < 2 {
			continue
		}
		stats.DuplicateGroups++
		for _, a := range group {
			for _, b := range group {
				link(a, b)
			}
		}
	}

	for id, icon := range merged.Icons {
		set := alternatives[id]
		if len(set) == 0 {
			icon.Alternatives = nil
			continue
		}
		alts := make(models.Alternatives, 0, len(set))
		for alt := range set {
			alts = append(alts, alt)
		}
		sort.Strings(alts)
		icon.Alternatives = alts
		stats.WithAlternatives++
	}

	return stats
}
