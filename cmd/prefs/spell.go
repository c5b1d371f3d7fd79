package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/spell"
)

func spellCheck(cfg *SpellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Spell.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Lang == "" || cfg.Dir == "" {
		return fmt.Errorf("%w: spell requires -lang and -dir", cli.ErrUsage)
	}
	checker, err := spell.NewChecker(cfg.Dir, 4)
	if err != nil {
		return err
	}
	var n int
	if cfg.Prefs != "" {
		if len(args) != 0 {
			return fmt.Errorf("%w: text arguments cannot be combined with -prefs", cli.ErrUsage)
		}
		tree, err := getTree(cfg.MainConfig, cc, cfg.Prefs)
		if err != nil {
			return err
		}
		n, err = spellTree(cc.Out, checker, tree, cfg.Lang)
		if err != nil {
			return err
		}
	} else {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			d, err := readInput(cc, "-")
			if err != nil {
				return err
			}
			text = string(d)
		}
		ms, err := checker.Check(text, cfg.Lang)
		if err != nil {
			return err
		}
		n = len(ms)
		if err := writeMisspellings(cc.Out, "", ms); err != nil {
			return err
		}
	}
	if n != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// spellTree checks every value of tree and returns the number of
// misspellings found.
func spellTree(w io.Writer, c *spell.Checker, tree *prefs.Tree, lang string) (int, error) {
	total := 0
	err := tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		v, ok := n.Value()
		if isPost || !ok {
			return true, nil
		}
		ms, err := c.Check(v, lang)
		if err != nil {
			return false, err
		}
		total += len(ms)
		return true, writeMisspellings(w, n.Path()+": ", ms)
	})
	return total, err
}

func writeMisspellings(w io.Writer, prefix string, ms []spell.Misspelling) error {
	for _, m := range ms {
		line := fmt.Sprintf("%s%s (offset %d)", prefix, m.Word, m.Offset)
		if len(m.Suggestions) != 0 {
			line += " -> " + strings.Join(m.Suggestions, ", ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
