package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/encode"
	"github.com/signadot/prefs/libdiff"
)

// editFile applies edit to the document in file. With write the result
// replaces the file, with dryRun a diff is printed, and otherwise the
// edited document is.
func editFile(cfg *MainConfig, cc *cli.Context, file string, write, dryRun bool, edit func(*prefs.Tree) error) error {
	if write && file == "-" {
		return fmt.Errorf("%w: -w requires a file", cli.ErrUsage)
	}
	if write && !dryRun {
		f, err := prefs.Open(file, cfg.parseOpts(file)...)
		if err != nil {
			return err
		}
		if err := f.Update(edit); err != nil {
			return err
		}
		if !f.Dirty() {
			return nil
		}
		if err := f.Save(); err != nil {
			return err
		}
		theLog.Debug("saved", "file", file)
		return nil
	}
	tree, err := getTree(cfg, cc, file)
	if err != nil {
		return err
	}
	return editTree(cc.Out, tree, dryRun, edit, cfg.encOpts(cc.Out))
}

func editTree(w io.Writer, tree *prefs.Tree, dryRun bool, edit func(*prefs.Tree) error, opts []encode.EncodeOption) error {
	old := tree.Source()
	if err := edit(tree); err != nil {
		return err
	}
	if dryRun {
		_, err := io.WriteString(w, libdiff.Text(old, tree.Source()))
		return err
	}
	return tree.Encode(w, opts...)
}
