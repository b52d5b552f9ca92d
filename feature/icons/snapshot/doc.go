// Package snapshot discovers, decodes and merges version-named icon snapshots.
//
// A snapshot is a JSON object written by the editor plugin, named after the
// version it was taken from (e.g. "1.7.7.json"), mapping icon ids to
// {name, svg, lucide}. Other files in the directory, such as the Lucide
// catalog, the alternatives mapping or the combined output, are skipped by name.
//
// Snapshots are merged oldest first by numeric version order. The Merger
// keeps, for every icon id, the first and last version it was seen in.
package snapshot
