// Package ir provides the in-memory representation of a preferences
// document.
//
// A [Tree] owns a root [Node] and the document's source lines. Every node
// is addressed by a dotted path and may hold a scalar value, children,
// or both at once: adding a child under a node that already has a value
// keeps the value ("namespace promotion"). [Node.Kind] reports which of
// these variants a node currently is.
//
// # Reading and writing
//
//	tree.Get("editor.font", "mono")      // string, *Node or the default
//	tree.GetString("editor.font", "")    // string only
//	tree.Has("editor")                    // true for values and namespaces
//	tree.Set("editor.font.size", "12")    // creates missing nodes
//
// Get returns a *Node for a path naming a pure namespace, so lookups can
// be chained:
//
//	ed := tree.Get("editor", nil).(*ir.Node)
//	ed.Get("font", "")
//
// Set marks the node and all its ancestors dirty; the encoder uses the
// dirty flags to decide which parts of the document to regenerate.
//
// # Related Packages
//
//   - github.com/signadot/prefs/ir/kpath - Path parsing
//   - github.com/signadot/prefs/parse - Build trees from text
//   - github.com/signadot/prefs/encode - Write trees as text
package ir
