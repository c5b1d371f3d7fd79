// Package kpath parses and manipulates dotted preference paths.
//
// A path is a non-empty sequence of fields joined by '.', such as
// "editor.font.size". Fields may contain any character except '.';
// they cannot be empty, so "a..b", ".a" and "a." are rejected.
//
// # Usage
//
//	kp, err := kpath.Parse("editor.font.size")
//	kp.Segments()           // ["editor", "font", "size"]
//	kp.Parent().String()    // "editor.font"
//	kpath.Join("a", "b.c")  // "a.b.c"
//
// # Related Packages
//
//   - github.com/signadot/prefs/ir - Node model resolving paths
package kpath
