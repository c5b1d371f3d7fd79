package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	pexport "github.com/signadot/prefs/export"
	"github.com/signadot/prefs/format"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	tree, err := getTree(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return exportTree(cc.Out, tree, f)
}

func exportTree(w io.Writer, tree *prefs.Tree, f format.Format) error {
	switch f {
	case format.JSONFormat:
		return pexport.JSON(tree.Tree, w)
	case format.YAMLFormat:
		return pexport.YAML(tree.Tree, w)
	case format.PrefsFormat, format.INIFormat:
		return dumpTree(w, tree, false)
	default:
		return fmt.Errorf("%w: cannot export to %s", cli.ErrUsage, f)
	}
}
