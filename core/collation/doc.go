// Package collation builds the locale-aware collators used to order icon
// names and non-semantic version strings.
//
// It wraps golang.org/x/text/collate so that every stage sorts with the same
// options.
package collation
