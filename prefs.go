// Package prefs reads and writes preferences documents without losing
// their layout.
//
// A document is a list of "key = value" lines with dotted keys, comments,
// blank lines and optional "[section]" headers. Parsing builds a tree of
// keys; writing the tree back reproduces the document byte for byte
// except where values were changed or keys added:
//
//	tree, err := prefs.Parse("editor.font = mono # default\n")
//	...
//	tree.Get("editor.font", "")        // "mono"
//	tree.Set("editor.font", "serif")
//	tree.Source()                      // "editor.font = serif # default\n"
//
// [File] adds locking and atomic saving for documents kept on disk.
package prefs

import (
	"io"

	"github.com/signadot/prefs/encode"
	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/parse"
)

// Tree is a parsed document. Get, Set, Has and Lookup come from
// [ir.Tree].
type Tree struct {
	*ir.Tree
}

func Parse(text string, opts ...parse.ParseOption) (*Tree, error) {
	return ParseBytes([]byte(text), opts...)
}

func ParseBytes(d []byte, opts ...parse.ParseOption) (*Tree, error) {
	t, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Tree{Tree: t}, nil
}

// New returns an empty document.
func New(f format.Format) *Tree {
	return &Tree{Tree: ir.NewTree(f)}
}

// Source returns the document text.
func (t *Tree) Source(opts ...encode.EncodeOption) string {
	return encode.Source(t.Tree, opts...)
}

func (t *Tree) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(t.Tree, w, opts...)
}
