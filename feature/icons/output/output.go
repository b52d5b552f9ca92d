package output

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"sort"

	"icon-data/core/collation"
	"icon-data/feature/icons/models"
	"icon-data/feature/icons/snapshot"

	"github.com/spf13/afero"
)

// Build turns enriched records into the published document. Icons are ordered
// by display name (case-insensitive, numeric-aware) with the id as tiebreaker;
// every list inside is sorted. Build trusts its input and performs no validation.
func Build(merged *snapshot.Merged) *models.Document {
	latest := merged.Latest()
	tags := make(map[string]struct{})
	categories := make(map[string]struct{})

	icons := make([]*models.Icon, 0, len(merged.Icons))
	for _, icon := range merged.Icons {
		if icon.Tags == nil {
			icon.Tags = []string{}
		}
		if icon.Categories == nil {
			icon.Categories = []string{}
		}
		sort.Strings(icon.Tags)
		sort.Strings(icon.Categories)
		sort.Strings(icon.Alternatives)
		icon.Deprecated = icon.LastVersion != latest

		for _, tag := range icon.Tags {
			tags[tag] = struct{}{}
		}
		for _, category := range icon.Categories {
			categories[category] = struct{}{}
		}
		icons = append(icons, icon)
	}

	names := collation.Names()
	sort.SliceStable(icons, func(i, j int) bool {
		if c := names.CompareString(icons[i].Name, icons[j].Name); c != 0 {
			return c < 0
		}
		return icons[i].ID < icons[j].ID
	})

	return &models.Document{
		Icons:      icons,
		Versions:   append([]string{}, merged.Versions...),
		Tags:       sortedKeys(tags),
		Categories: sortedKeys(categories),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Encode writes doc as two-space indented JSON. Markup is not HTML-escaped.
func Encode(w io.Writer, doc *models.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Write encodes doc fully in memory, then replaces path through a temp file
// in the same directory. A failed write leaves any previous output untouched.
func Write(fsys afero.Fs, path string, doc *models.Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return &models.FilesystemError{Op: "encode", Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return &models.FilesystemError{Op: "create dir", Path: dir, Err: err}
	}

	tmp, err := afero.TempFile(fsys, dir, ".icons-*.json.tmp")
	if err != nil {
		return &models.FilesystemError{Op: "create temp", Path: dir, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return &models.FilesystemError{Op: "write", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return &models.FilesystemError{Op: "close", Path: tmpName, Err: err}
	}
	if err := fsys.Chmod(tmpName, 0o644); err != nil {
		_ = fsys.Remove(tmpName)
		return &models.FilesystemError{Op: "chmod", Path: tmpName, Err: err}
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		_ = fsys.Remove(tmpName)
		return &models.FilesystemError{Op: "rename", Path: path, Err: err}
	}

	return nil
}
