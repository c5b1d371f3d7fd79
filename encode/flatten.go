package encode

import (
	"io"

	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/token"
)

// Flatten writes one "path = value" line for every scalar in tree, in
// depth first order. Values are quoted only when needed to read back.
func Flatten(tree *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	es := newState(tree, w, opts)
	if es.eol == "" {
		es.eol = "\n"
	}
	return tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		v, ok := n.Value()
		if isPost || !ok {
			return true, nil
		}
		raw := token.FormatValue(v, 0, es.markers)
		return true, es.writeString(es.kv("", n.Path(), " "+es.sep+" ", raw, "", es.eol, false))
	})
}
