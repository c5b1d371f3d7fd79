package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/encode"
	"github.com/signadot/prefs/libdiff"
	"github.com/signadot/prefs/parse"
)

var (
	errRoundTrip = errors.New("document is not written back unchanged")
	errListing   = errors.New("listing does not read back to the same values")
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range filesOrStdin(args) {
		d, err := readInput(cc, file)
		if err == nil {
			err = checkSource(d, cfg.parseOpts(file))
		}
		if err != nil {
			failed++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "FAIL %s: %v\n", file, err)
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "ok   %s\n", file)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkSource verifies that d parses, that the parsed tree is written
// back as d, and that its flattened listing parses to the same values.
func checkSource(d []byte, opts []parse.ParseOption) error {
	tree, err := prefs.ParseBytes(d, opts...)
	if err != nil {
		return err
	}
	if out := tree.Source(); out != string(d) {
		return fmt.Errorf("%w:\n%s", errRoundTrip, libdiff.Text(string(d), out))
	}
	var buf strings.Builder
	if err := encode.Flatten(tree.Tree, &buf); err != nil {
		return err
	}
	flat, err := prefs.Parse(buf.String(), opts...)
	if err != nil {
		return fmt.Errorf("%w: %w", errListing, err)
	}
	if changes := libdiff.Diff(tree.Tree, flat.Tree); len(changes) != 0 {
		return fmt.Errorf("%w: %v", errListing, changes[0])
	}
	return nil
}
