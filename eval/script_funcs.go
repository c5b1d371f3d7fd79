package eval

import (
	"os"

	"github.com/signadot/prefs/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("pref", func(params ...any) (any, error) {
			return root.GetString(params[0].(string), ""), nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			return root.Has(params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
