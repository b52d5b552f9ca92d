// Package version orders the version identifiers that name icon snapshots.
//
// Snapshot versions look like "1.7.7" and must never be compared as plain
// strings: "1.10.0" is newer than "1.9.0". Compare uses golang.org/x/mod/semver
// for well-formed versions and a numeric collation otherwise.
package version
