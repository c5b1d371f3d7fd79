// Package libdiff compares preferences documents.
//
// [Diff] compares the scalars of two trees by path, [Text] produces a
// line diff of two texts for display, and [Inline] marks the changed
// runs within a single value.
package libdiff
