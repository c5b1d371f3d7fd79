package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	files := filesOrStdin(args)
	for i, file := range files {
		tree, err := getTree(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(cc.Out)
			}
			fmt.Fprintf(cc.Out, "# %s\n", file)
		}
		if err := dumpTree(cc.Out, tree, cfg.Warnings); err != nil {
			return fmt.Errorf("error dumping %s: %w", file, err)
		}
	}
	return nil
}

func dumpTree(w io.Writer, tree *prefs.Tree, warnings bool) error {
	if warnings {
		for _, wn := range tree.Warnings {
			if _, err := fmt.Fprintln(w, warningComment(wn)); err != nil {
				return err
			}
		}
	}
	return encode.Flatten(tree.Tree, w)
}
