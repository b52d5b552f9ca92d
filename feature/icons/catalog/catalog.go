package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"icon-data/feature/icons/models"

	"github.com/spf13/afero"
)

// Entry is the catalog metadata of one canonical Lucide icon.
// Other metadata in the file ($schema, contributors) is ignored.
type Entry struct {
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
	Aliases    []Alias  `json:"aliases,omitempty"`
}

// Alias is an additional id resolving to a catalog entry. Lucide writes
// aliases either as plain strings or as objects with a "name" field.
type Alias string

// UnmarshalJSON accepts "name" and {"name": "name", ...}.
func (a *Alias) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Name == "" {
			return fmt.Errorf("alias object without name")
		}
		*a = Alias(obj.Name)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("alias must be a string or an object: %w", err)
	}
	*a = Alias(s)
	return nil
}

// Catalog is the loaded Lucide metadata with its alias index.
// It is immutable after construction.
type Catalog struct {
	entries map[string]Entry
	aliases map[string]string
}

// New builds a catalog and its alias index from entries.
// Ids are walked in ascending order and the first id claiming an alias keeps it.
func New(entries map[string]Entry) *Catalog {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	aliases := make(map[string]string)
	for _, id := range ids {
		for _, alias := range entries[id].Aliases {
			if _, taken := aliases[string(alias)]; taken {
				continue
			}
			aliases[string(alias)] = id
		}
	}

	return &Catalog{entries: entries, aliases: aliases}
}

// Load reads and validates the catalog file at path.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &models.MalformedCatalogError{Path: path, Err: err}
	}

	var entries map[string]Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &models.MalformedCatalogError{Path: path, Err: err}
	}
	if entries == nil {
		return nil, &models.MalformedCatalogError{Path: path, Err: fmt.Errorf("catalog is not an object")}
	}

	return New(entries), nil
}

// Entries returns the catalog keyed by canonical id. Callers must not modify it.
func (c *Catalog) Entries() map[string]Entry {
	return c.entries
}

// Aliases returns the alias index: alias -> canonical id. Callers must not modify it.
func (c *Catalog) Aliases() map[string]string {
	return c.aliases
}

// Len returns the number of canonical entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup resolves key by exact id first, then through the alias index.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	if entry, ok := c.entries[key]; ok {
		return entry, true
	}
	if id, ok := c.aliases[key]; ok {
		return c.entries[id], true
	}
	return Entry{}, false
}
