package models

import "fmt"

// MalformedCatalogError is returned when the catalog (or the manual
// alternatives file) cannot be read or does not have the expected shape.
type MalformedCatalogError struct {
	Path string
	Err  error
}

func (e *MalformedCatalogError) Error() string {
	return fmt.Sprintf("malformed catalog %s: %v", e.Path, e.Err)
}

func (e *MalformedCatalogError) Unwrap() error { return e.Err }

// SnapshotParseError is returned when a snapshot file cannot be read or an
// entry lacks a required field. Icon is empty when the whole file is invalid.
type SnapshotParseError struct {
	File string
	Icon string
	Err  error
}

func (e *SnapshotParseError) Error() string {
	if e.Icon != "" {
		return fmt.Sprintf("snapshot %s: icon %q: %v", e.File, e.Icon, e.Err)
	}
	return fmt.Sprintf("snapshot %s: %v", e.File, e.Err)
}

func (e *SnapshotParseError) Unwrap() error { return e.Err }

// FilesystemError is returned when a directory cannot be listed or the output
// cannot be written.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
