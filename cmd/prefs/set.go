package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	path, value := args[0], args[1]
	return editFile(cfg.MainConfig, cc, file, cfg.Write, cfg.DryRun, func(t *prefs.Tree) error {
		return t.Set(path, value)
	})
}
