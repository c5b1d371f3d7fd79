package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, err := getTree(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getTree(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffTrees(cc.Out, a, b, cfg.Text)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffTrees(w io.Writer, a, b *prefs.Tree, text bool) (bool, error) {
	if text {
		d := libdiff.Text(a.Source(), b.Source())
		if d == "" {
			return false, nil
		}
		_, err := io.WriteString(w, d)
		return true, err
	}
	changes := libdiff.Diff(a.Tree, b.Tree)
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return false, err
		}
	}
	return len(changes) != 0, nil
}
