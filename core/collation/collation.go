package collation

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Names returns a collator for display names: case-insensitive and
// numeric-aware, so "icon-2" sorts before "icon-10".
//
// A Collator is not safe for concurrent use; callers create one per run.
func Names() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase, collate.Numeric)
}

// Numeric returns a case-insensitive collator that orders digit runs by value.
// It is the fallback ordering for version strings that are not semantic versions.
func Numeric() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
}
