// Package mergeop applies JSON merge patches (RFC 7386) and JSON patches
// (RFC 6902) to preferences trees.
//
// Patches operate on the tree's JSON export (see package export). The
// patched document is compared with the original and each changed or
// added scalar is written back with Set, so the tree keeps its layout
// and only the touched lines change. Patches that would remove a key are
// rejected with ErrRemoveUnsupported.
package mergeop
