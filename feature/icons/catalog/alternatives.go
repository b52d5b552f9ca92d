package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"

	"icon-data/feature/icons/models"

	"github.com/spf13/afero"
)

// LoadAlternatives reads the manually curated mapping icon id -> other ids.
// The file is optional: a missing file yields an empty mapping.
func LoadAlternatives(fsys afero.Fs, path string) (map[string][]string, error) {
	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, &models.MalformedCatalogError{Path: path, Err: err}
	}

	var alternatives map[string][]string
	if err := json.Unmarshal(data, &alternatives); err != nil {
		return nil, &models.MalformedCatalogError{Path: path, Err: err}
	}
	if alternatives == nil {
		alternatives = map[string][]string{}
	}
	return alternatives, nil
}
