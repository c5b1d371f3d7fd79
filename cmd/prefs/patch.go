package main

import (
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/mergeop"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	if args[0] == "-" && file == "-" {
		return fmt.Errorf("%w: the patch and the document cannot both be read from stdin", cli.ErrUsage)
	}
	p, err := getPatch(cc, args[0])
	if err != nil {
		return err
	}
	apply := mergeop.JSONPatch
	if cfg.Merge {
		apply = mergeop.MergePatch
	}
	return editFile(cfg.MainConfig, cc, file, cfg.Write, cfg.DryRun, func(t *prefs.Tree) error {
		if err := apply(t.Tree, p); err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		return nil
	})
}

// getPatch reads a patch document, converting YAML files to JSON.
func getPatch(cc *cli.Context, path string) ([]byte, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", path, err)
		}
		return j, nil
	}
	return d, nil
}
