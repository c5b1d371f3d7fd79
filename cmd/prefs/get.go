package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/token"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	tree, err := getTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var def *string
	if optSet(cfg.Get, "d") {
		def = &cfg.Default
	}
	return writeValue(cc.Out, tree.Tree, args[0], def)
}

// writeValue prints the value at path. A namespace without a value is
// printed as the listing of its subtree, relative to path.
func writeValue(w io.Writer, tree *ir.Tree, path string, def *string) error {
	n, ok := tree.Lookup(path)
	if !ok || (!n.HasValue() && n.Len() == 0) {
		if def != nil {
			_, err := fmt.Fprintln(w, *def)
			return err
		}
		return fmt.Errorf("%w at %q", ir.ErrNoValue, path)
	}
	if v, ok := n.Value(); ok {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	markers := tree.Format.CommentMarkers()
	sep := tree.Format.Separators()[:1]
	return n.Visit(func(x *ir.Node, isPost bool) (bool, error) {
		v, ok := x.Value()
		if isPost || !ok {
			return true, nil
		}
		rel, _ := x.Rel(n)
		_, err := fmt.Fprintf(w, "%s %s %s\n", rel, sep, token.FormatValue(v, 0, markers))
		return true, err
	})
}

// optSet reports whether the named flag of cmd was given.
func optSet(cmd *cli.Command, name string) bool {
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}
