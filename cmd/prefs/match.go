package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/encode"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match document", cli.ErrUsage)
	}
	m, err := getMatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	files := filesOrStdin(args[1:])
	found := 0
	for _, file := range files {
		tree, err := getTree(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		ok, err := matchTree(cc.Out, cfg, m, tree, file, found > 0)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if ok {
			found++
		}
	}
	if found == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getMatch(cfg *MatchConfig, cc *cli.Context, arg string) (*prefs.Tree, error) {
	var d []byte
	if cfg.File {
		var err error
		d, err = readInput(cc, arg)
		if err != nil {
			return nil, err
		}
	} else {
		// one assignment per argument line; ';' also separates them
		d = []byte(strings.ReplaceAll(arg, ";", "\n"))
	}
	res, err := prefs.ParseBytes(d, cfg.parseOpts(arg)...)
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding match: %w", cli.ErrUsage, err)
	}
	return res, nil
}

// matchTree prints file, or with -trim the matched values of tree, when
// tree matches m.
func matchTree(w io.Writer, cfg *MatchConfig, m, tree *prefs.Tree, file string, sep bool) (bool, error) {
	ok, err := prefs.Match(tree.Root, m.Root, prefs.MatchGlob(cfg.Glob))
	if err != nil || !ok {
		return false, err
	}
	if !cfg.Trim {
		_, err := fmt.Fprintln(w, file)
		return true, err
	}
	res, err := prefs.Trim(m.Root, tree.Root)
	if err != nil {
		return false, err
	}
	if sep {
		if _, err := w.Write([]byte("\n")); err != nil {
			return false, err
		}
	}
	if _, err := fmt.Fprintf(w, "# %s\n", file); err != nil {
		return false, err
	}
	return true, encode.Flatten(res.Tree, w)
}
