package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func has(cfg *HasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Has.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: has requires one argument, a dotted path", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	tree, err := getTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	if !tree.Has(args[0]) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
