// Package encode writes [ir.Tree] values back as preferences text.
//
// # Usage
//
//	// Write the document, preserving everything that was not changed
//	err := encode.Encode(tree, os.Stdout)
//
//	// As a string
//	s := encode.Source(tree)
//
//	// Canonical "path = value" listing of every scalar
//	err := encode.Flatten(tree, w)
//
// Encode replays the source lines in order. Lines of unchanged keys are
// copied byte for byte; a changed key gets only its value token
// replaced. Keys created by Set are written as new "key = value" lines
// next to the closest existing part of the document.
//
// # Related Packages
//
//   - github.com/signadot/prefs/parse - Parse text into trees
//   - github.com/signadot/prefs/ir - Tree representation
package encode
