package eval

import (
	"fmt"

	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

func nodeEnv(n *ir.Node) map[string]any {
	v, ok := n.Value()
	return map[string]any{
		"path":        n.Path(),
		"key":         n.Key,
		"value":       v,
		"hasValue":    ok,
		"isNamespace": n.Len() != 0,
		"depth":       n.Depth(),
	}
}

// Filter returns the nodes of tree, in depth first order and excluding
// the root, for which src evaluates to true.
func Filter(tree *ir.Tree, src string) ([]*ir.Node, error) {
	opts := append(exprOpts(tree.Root),
		expr.Env(nodeEnv(tree.Root)),
		expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	var res []*ir.Node
	err = tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Parent == nil {
			return true, nil
		}
		out, err := vm.Run(prg, nodeEnv(n))
		if err != nil {
			return false, fmt.Errorf("at %q: %w", n.Path(), err)
		}
		if debug.Eval() {
			debug.Logf("filter %q at %s gave %v\n", src, n.Path(), out)
		}
		if out.(bool) {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
