package ir

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/signadot/prefs/ir/kpath"
	"github.com/signadot/prefs/token"
)

// Node is one key in the document tree.
//
// The scalar and the children are independent: a node may carry either,
// both or neither. Children keep the order in which they were first
// created.
type Node struct {
	Key    string
	Parent *Node

	// Line is the source line the scalar was read from, nil for nodes
	// whose value was never parsed (intermediates and nodes created by
	// Set).
	Line *token.Line

	value    string
	hasValue bool
	children []*Node
	index    map[string]*Node
	dirty    bool
}

func NewNode() *Node {
	return &Node{}
}

func (y *Node) Kind() Kind {
	switch {
	case y.hasValue && len(y.children) != 0:
		return BothKind
	case y.hasValue:
		return ScalarKind
	case len(y.children) != 0:
		return NamespaceKind
	default:
		return EmptyKind
	}
}

// Value returns the scalar and whether there is one.
func (y *Node) Value() (string, bool) {
	return y.value, y.hasValue
}

func (y *Node) HasValue() bool { return y.hasValue }

func (y *Node) Len() int { return len(y.children) }

// Children returns the children in creation order.
func (y *Node) Children() []*Node {
	return slices.Clone(y.children)
}

func (y *Node) Child(key string) *Node {
	return y.index[key]
}

func (y *Node) Root() *Node {
	for y.Parent != nil {
		y = y.Parent
	}
	return y
}

// Dirty reports whether this node or a descendant was changed by Set
// since the tree was built.
func (y *Node) Dirty() bool { return y.dirty }

// Depth is the number of keys in the node's path.
func (y *Node) Depth() int {
	d := 0
	for x := y; x.Parent != nil; x = x.Parent {
		d++
	}
	return d
}

// Attach returns the child named key, creating it when absent. It does
// not mark anything dirty and is meant for building trees from source.
func (y *Node) Attach(key string) *Node {
	if c := y.index[key]; c != nil {
		return c
	}
	c := &Node{Key: key, Parent: y}
	if y.index == nil {
		y.index = make(map[string]*Node)
	}
	y.index[key] = c
	y.children = append(y.children, c)
	return c
}

// Load sets the scalar read from ln without marking anything dirty.
func (y *Node) Load(value string, ln *token.Line) {
	y.value = value
	y.hasValue = true
	y.Line = ln
}

func (y *Node) markDirty() {
	for x := y; x != nil && !x.dirty; x = x.Parent {
		x.dirty = true
	}
}

// Lookup resolves a relative dotted path. A malformed path resolves to
// nothing.
func (y *Node) Lookup(path string) (*Node, bool) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, false
	}
	return y.lookup(kp)
}

func (y *Node) lookup(kp *kpath.KPath) (*Node, bool) {
	n := y
	for x := kp; x != nil; x = x.Next {
		n = n.index[x.Field]
		if n == nil {
			return nil, false
		}
	}
	return n, true
}

// Get resolves path and returns the node's scalar as a string when it
// has one, the *Node itself when it is a pure namespace, and def when
// nothing is there.
func (y *Node) Get(path string, def any) any {
	n, ok := y.Lookup(path)
	if !ok {
		return def
	}
	if n.hasValue {
		return n.value
	}
	if len(n.children) != 0 {
		return n
	}
	return def
}

// GetString is Get restricted to scalars.
func (y *Node) GetString(path string, def string) string {
	n, ok := y.Lookup(path)
	if !ok || !n.hasValue {
		return def
	}
	return n.value
}

// Has reports whether path names a scalar or a namespace.
func (y *Node) Has(path string) bool {
	n, ok := y.Lookup(path)
	return ok && (n.hasValue || len(n.children) != 0)
}

// Set assigns value at path, creating missing nodes on the way. Scalars
// met along the path are kept and their nodes become namespaces as well.
// Paths with segments that could not be written back as keys are
// rejected along with malformed ones, as are values that are not valid
// UTF-8.
func (y *Node) Set(path, value string) error {
	kp, err := kpath.ParseKey(path)
	if err != nil {
		return err
	}
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %q at %s", ErrBadValue, value, path)
	}
	n := y
	for x := kp; x != nil; x = x.Next {
		c := n.index[x.Field]
		if c == nil {
			c = n.Attach(x.Field)
			n.markDirty()
		}
		n = c
	}
	n.value = value
	n.hasValue = true
	n.markDirty()
	return nil
}

// Visit walks the subtree depth first in child order, calling f before
// (isPost false) and after (isPost true) each node's children. Returning
// false from the pre call skips the children and the post call.
func (y *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	ok, err := f(y, false)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for _, c := range y.children {
		if err := c.Visit(f); err != nil {
			return err
		}
	}
	_, err = f(y, true)
	return err
}
