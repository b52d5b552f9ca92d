package version

import (
	"regexp"
	"slices"

	"icon-data/core/collation"

	"golang.org/x/mod/semver"
)

var snapshotPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsSnapshot reports whether v has the three-component numeric form used in
// snapshot filenames.
func IsSnapshot(v string) bool {
	return snapshotPattern.MatchString(v)
}

// Compare returns -1, 0 or +1 depending on whether a is older than, equal to
// or newer than b. Components are compared as numbers, so "1.7.7" < "1.10.0".
// Strings that are not valid semantic versions (e.g. with leading zeros) fall
// back to a numeric-aware collation.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	va, vb := "v"+a, "v"+b
	if semver.IsValid(va) && semver.IsValid(vb) {
		return semver.Compare(va, vb)
	}
	return collation.Numeric().CompareString(a, b)
}

// Sort orders versions oldest first, in place.
func Sort(versions []string) {
	slices.SortStableFunc(versions, Compare)
}

// AtLeast reports whether v is the same as or newer than threshold.
func AtLeast(v, threshold string) bool {
	return Compare(v, threshold) >= 0
}
