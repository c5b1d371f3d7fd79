package ir

import (
	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/token"
)

// Tree is a parsed document: the node tree plus the source lines it was
// built from.
type Tree struct {
	Root     *Node
	Format   format.Format
	Lines    []*token.Line
	Warnings []Warning

	owners map[*token.Line]*Node
}

func NewTree(f format.Format) *Tree {
	return &Tree{
		Root:   NewNode(),
		Format: f,
		owners: map[*token.Line]*Node{},
	}
}

// AddLine appends a source line. owner is the node whose scalar the line
// currently defines, or nil.
func (t *Tree) AddLine(ln *token.Line, owner *Node) {
	t.Lines = append(t.Lines, ln)
	if owner != nil {
		t.owners[ln] = owner
	}
}

// SetOwner records that ln now defines the scalar of n; a line defining
// a duplicate key loses ownership to a later one.
func (t *Tree) SetOwner(ln *token.Line, n *Node) {
	if n == nil {
		delete(t.owners, ln)
		return
	}
	t.owners[ln] = n
}

// Owner returns the node whose scalar ln defines. Overridden duplicate
// lines and non key/value lines have no owner.
func (t *Tree) Owner(ln *token.Line) *Node {
	return t.owners[ln]
}

func (t *Tree) Warn(w Warning) {
	t.Warnings = append(t.Warnings, w)
}

func (t *Tree) Dirty() bool { return t.Root.Dirty() }

func (t *Tree) Get(path string, def any) any { return t.Root.Get(path, def) }

func (t *Tree) GetString(path, def string) string { return t.Root.GetString(path, def) }

func (t *Tree) Has(path string) bool { return t.Root.Has(path) }

func (t *Tree) Lookup(path string) (*Node, bool) { return t.Root.Lookup(path) }

func (t *Tree) Set(path, value string) error { return t.Root.Set(path, value) }
