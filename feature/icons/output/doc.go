// Package output builds and writes the consolidated icons document:
//
//	{ "icons": [...], "versions": [...], "tags": [...], "categories": [...] }
//
// Write never truncates the previous document: the new one is written to a
// temp file next to it and renamed into place.
package output
