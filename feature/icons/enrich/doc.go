// Package enrich attaches catalog metadata and alternatives to merged icons.
//
// For every icon:
//   - tags and categories come from the Lucide catalog, looked up by id with
//     the source prefix stripped, then by alias; unmatched icons get empty lists;
//   - alternatives are the union of the manual mapping (made symmetric) and
//     every other icon with a byte-identical normalized SVG body;
//   - the new flag is set when the icon first appeared at or after the
//     configured threshold version.
package enrich
