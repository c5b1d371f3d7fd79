package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/eval"
	"github.com/signadot/prefs/token"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	tree, err := getTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	n, err := findNodes(cc.Out, tree, args[0], cfg.Paths)
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func findNodes(w io.Writer, tree *prefs.Tree, src string, pathsOnly bool) (int, error) {
	nodes, err := eval.Filter(tree.Tree, src)
	if err != nil {
		return 0, err
	}
	markers := tree.Format.CommentMarkers()
	for _, n := range nodes {
		v, ok := n.Value()
		if pathsOnly || !ok {
			_, err = fmt.Fprintln(w, n.Path())
		} else {
			_, err = fmt.Fprintf(w, "%s = %s\n", n.Path(), token.FormatValue(v, 0, markers))
		}
		if err != nil {
			return 0, err
		}
	}
	return len(nodes), nil
}
