// Package models defines the icon record, the published document and the
// error taxonomy shared by every stage of the combine job.
//
// # Errors
//
//   - MalformedCatalogError: catalog or alternatives file unreadable or schema-invalid.
//   - SnapshotParseError: a snapshot is not valid JSON or an entry misses name, svg or lucide.
//   - FilesystemError: the input directory cannot be listed or the output cannot be written.
//
// All three are fatal and wrap their cause, so callers can use errors.As and errors.Is.
package models
