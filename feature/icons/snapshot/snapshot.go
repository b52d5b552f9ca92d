package snapshot

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"icon-data/core/version"
	"icon-data/feature/icons/models"

	"github.com/spf13/afero"
)

const snapshotExt = ".json"

// File is one version-named snapshot on disk.
type File struct {
	// Name is the base filename (e.g. "1.7.7.json").
	Name string
	// Path is the full path of the file.
	Path string
	// Version is the version encoded in the filename (e.g. "1.7.7").
	Version string
}

// Entry is one icon as exported by the editor plugin.
type Entry struct {
	Name   string
	SVG    string
	Lucide bool
}

// rawEntry detects missing fields; extra fields are ignored.
type rawEntry struct {
	Name   *string `json:"name"`
	SVG    *string `json:"svg"`
	Lucide *bool   `json:"lucide"`
}

// Discover lists the snapshot files in dir, oldest version first.
// Files whose name is not <major>.<minor>.<patch>.json are skipped.
func Discover(fsys afero.Fs, dir string) ([]File, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, &models.FilesystemError{Op: "read dir", Path: dir, Err: err}
	}

	var files []File
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), snapshotExt) {
			continue
		}
		v := strings.TrimSuffix(info.Name(), snapshotExt)
		if !version.IsSnapshot(v) {
			continue
		}
		files = append(files, File{
			Name:    info.Name(),
			Path:    filepath.Join(dir, info.Name()),
			Version: v,
		})
	}

	slices.SortStableFunc(files, func(a, b File) int {
		if c := version.Compare(a.Version, b.Version); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return files, nil
}

// Read decodes one snapshot file. Every entry must carry name, svg and lucide.
func Read(fsys afero.Fs, file File) (map[string]Entry, error) {
	data, err := afero.ReadFile(fsys, file.Path)
	if err != nil {
		return nil, &models.SnapshotParseError{File: file.Name, Err: err}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &models.SnapshotParseError{File: file.Name, Err: err}
	}
	if raw == nil {
		return nil, &models.SnapshotParseError{File: file.Name, Err: fmt.Errorf("snapshot is not an object")}
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make(map[string]Entry, len(raw))
	for _, id := range ids {
		var re rawEntry
		if err := json.Unmarshal(raw[id], &re); err != nil {
			return nil, &models.SnapshotParseError{File: file.Name, Icon: id, Err: err}
		}
		switch {
		case re.Name == nil:
			return nil, &models.SnapshotParseError{File: file.Name, Icon: id, Err: fmt.Errorf(`missing "name"`)}
		case re.SVG == nil:
			return nil, &models.SnapshotParseError{File: file.Name, Icon: id, Err: fmt.Errorf(`missing "svg"`)}
		case re.Lucide == nil:
			return nil, &models.SnapshotParseError{File: file.Name, Icon: id, Err: fmt.Errorf(`missing "lucide"`)}
		}
		entries[id] = Entry{Name: *re.Name, SVG: *re.SVG, Lucide: *re.Lucide}
	}

	return entries, nil
}
