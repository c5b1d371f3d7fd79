package encode

import (
	"strings"

	"github.com/signadot/prefs/ir"
)

// Source returns the document text of tree.
func Source(tree *ir.Tree, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Encode(tree, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustString returns the flattened listing of tree without the final
// line ending.
func MustString(tree *ir.Tree) string {
	buf := &strings.Builder{}
	if err := Flatten(tree, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
