package snapshot

import (
	"icon-data/core/version"
	"icon-data/feature/icons/models"

	"github.com/spf13/afero"
)

// Merged is the result of folding every snapshot into one record per id.
type Merged struct {
	// Icons holds one record per icon id.
	Icons map[string]*models.Icon
	// Versions holds every distinct snapshot version, oldest first.
	Versions []string
}

// Latest returns the most recent version, or "" when nothing was merged.
func (m *Merged) Latest() string {
	if len(m.Versions) == 0 {
		return ""
	}
	return m.Versions[len(m.Versions)-1]
}

// Merger folds snapshots into per-icon records and tracks their version range.
// A Merger holds only its own state, so one process can run many merges.
type Merger struct {
	icons    map[string]*models.Icon
	versions []string
	seen     map[string]struct{}
}

// NewMerger creates an empty merger.
func NewMerger() *Merger {
	return &Merger{
		icons: make(map[string]*models.Icon),
		seen:  make(map[string]struct{}),
	}
}

// Add merges the entries of the snapshot taken at version v.
// An unseen id gets a record with FirstVersion = LastVersion = v. A known id
// only has its range widened: name and svg are kept from the first sighting.
func (m *Merger) Add(v string, entries map[string]Entry) {
	if _, ok := m.seen[v]; !ok {
		m.seen[v] = struct{}{}
		m.versions = append(m.versions, v)
	}

	for id, entry := range entries {
		icon, ok := m.icons[id]
		if !ok {
			m.icons[id] = &models.Icon{
				ID:           id,
				Name:         entry.Name,
				SVG:          entry.SVG,
				Lucide:       entry.Lucide,
				FirstVersion: v,
				LastVersion:  v,
			}
			continue
		}
		if version.Compare(v, icon.FirstVersion) < 0 {
			icon.FirstVersion = v
		}
		if version.Compare(v, icon.LastVersion) > 0 {
			icon.LastVersion = v
		}
	}
}

// Result returns the merged records and the ordered version set.
func (m *Merger) Result() *Merged {
	versions := append([]string(nil), m.versions...)
	version.Sort(versions)
	return &Merged{Icons: m.icons, Versions: versions}
}

// MergeDir discovers and merges every snapshot in dir. Any unreadable or
// invalid snapshot aborts the merge.
func MergeDir(fsys afero.Fs, dir string) (*Merged, error) {
	files, err := Discover(fsys, dir)
	if err != nil {
		return nil, err
	}

	m := NewMerger()
	for _, file := range files {
		entries, err := Read(fsys, file)
		if err != nil {
			return nil, err
		}
		m.Add(file.Version, entries)
	}

	return m.Result(), nil
}
