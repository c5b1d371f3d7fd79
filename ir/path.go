package ir

import (
	"strings"

	"github.com/signadot/prefs/ir/kpath"
)

// Path returns the node's dotted path from the root; the root's path is
// empty.
func (y *Node) Path() string {
	var keys []string
	for x := y; x.Parent != nil; x = x.Parent {
		keys = append(keys, x.Key)
	}
	if len(keys) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(keys) - 1; i >= 0; i-- {
		b.WriteString(keys[i])
		if i != 0 {
			b.WriteByte(kpath.Sep)
		}
	}
	return b.String()
}

// Rel returns the node's path relative to the ancestor a. It returns
// false if a is not an ancestor of y (or y itself).
func (y *Node) Rel(a *Node) (string, bool) {
	var keys []string
	x := y
	for ; x != nil && x != a; x = x.Parent {
		keys = append(keys, x.Key)
	}
	if x == nil {
		return "", false
	}
	var b strings.Builder
	for i := len(keys) - 1; i >= 0; i-- {
		b.WriteString(keys[i])
		if i != 0 {
			b.WriteByte(kpath.Sep)
		}
	}
	return b.String(), true
}
