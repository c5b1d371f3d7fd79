// Package eval evaluates expr-lang expressions against preferences
// trees.
//
// [Filter] selects nodes with a boolean expression evaluated once per
// node. Each evaluation sees:
//
//	path         the node's dotted path
//	key          its last path segment
//	value        its scalar ("" if none)
//	hasValue     whether it has a scalar
//	isNamespace  whether it has children
//	depth        number of segments in path
//
// and the functions pref(path), has(path) and getenv(name).
package eval
