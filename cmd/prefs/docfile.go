package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
)

// readInput reads path, or the command input when path is "-".
func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getTree(cfg *MainConfig, cc *cli.Context, path string) (*prefs.Tree, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	tree, err := prefs.ParseBytes(d, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return tree, nil
}

// fileArg returns args[i], or "-" when there are only i arguments.
func fileArg(args []string, i int) (string, error) {
	switch {
	case len(args) == i:
		return "-", nil
	case len(args) == i+1:
		return args[i], nil
	default:
		return "", fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args[i+1:])
	}
}

func filesOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
