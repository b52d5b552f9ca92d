// Package icons implements the icon data combine job.
//
// It folds the version-named snapshots exported by the editor plugin and the
// Lucide metadata catalog into one document consumed by the documentation site.
//
// # Pipeline
//
//  1. catalog: load the Lucide catalog and build the alias index.
//  2. snapshot: merge every <major>.<minor>.<patch>.json snapshot, tracking
//     the first and last version of each icon id.
//  3. enrich: attach tags, categories and alternatives (manual and
//     SVG-identical), and flag new icons.
//  4. output: sort, compute deprecation against the newest version, write.
//
// The run is all-or-nothing: any error aborts before the output is touched.
//
// # Components
//
//   - Service: orchestrates Combine and Publish.
//   - Config: input directory, filenames, threshold version and source prefix.
//   - models: the icon record, the document and the error taxonomy.
package icons
