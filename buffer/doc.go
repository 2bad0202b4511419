// Package buffer implements the rich-text document model for autolist.
//
// The document is a sequence of grapheme clusters. Each cluster carries an
// optional paragraph style. Offsets and ranges count clusters, and ranges
// are half-open: [Location, Location+Length).
//
// Every effective text mutation is reported synchronously to OnEdit
// observers before the mutating call returns. Style-only changes are not
// reported.
package buffer
