// Package catalog loads the Lucide icon metadata catalog and the manual
// alternatives mapping.
//
// The catalog maps canonical Lucide ids to their tags, categories and
// aliases. Load builds the alias index once, so Lookup is a pure read:
// exact id first, then alias.
//
// # Usage
//
//	cat, err := catalog.Load(fs, "icon-data/lucide-icons.json")
//	entry, ok := cat.Lookup("package") // resolves the "box" entry through its alias
package catalog
