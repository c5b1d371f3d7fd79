package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input dialect: prefs/p, ini/i (default from the file name)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat, true), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "prefs").
		WithSynopsis("prefs [opts] command [opts]").
		WithDescription("prefs reads and edits preferences files, keeping their layout.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return prefsMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			HasCommand(cfg),
			ViewCommand(cfg),
			DumpCommand(cfg),
			ExportCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg),
			FindCommand(cfg),
			PatchCommand(cfg),
			MatchCommand(cfg),
			ServeCommand(cfg),
			SpellCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-d default] <path> [file]").
		WithDescription("print the value at a dotted path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-n] [-w] <path> <value> [file]").
		WithDescription("set the value at a dotted path and print the document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func HasCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HasConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Has, "has").
		WithSynopsis("has <path> [file]").
		WithDescription("exit with status 0 if the path is present, 1 otherwise").
		WithRun(func(cc *cli.Context, args []string) error {
			return has(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("print documents as written, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-warn] [files]").
		WithDescription("list every value as one full-path line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y (default json)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat, false), "(format)"),
		},
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-O json|yaml] [file]").
		WithDescription("render a document as nested JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-t] a b").
		WithDescription("diff preferences documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-q] [files]").
		WithDescription("verify that documents parse and are written back unchanged").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-l] <expr> [file]").
		WithDescription(findDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find lists the keys for which an expression is true.

The expression is evaluated once per key with these variables:

  path         full dotted path
  key          last path segment
  value        the value, "" when there is none
  hasValue     whether the key has a value
  isNamespace  whether the key has children
  depth        number of path segments

and these functions:

  pref(path)    value at another path, nil when absent
  has(path)     whether another path is present
  getenv(name)  an environment variable

For example:

  prefs find 'key == "font" && value != "mono"' settings.prefs
  prefs find 'isNamespace && depth == 1' settings.prefs`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-merge] [-n] [-w] <patchfile> [file]").
		WithDescription("apply a JSON patch (RFC 6902) or merge patch to a document; YAML patch files are accepted").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <matchdoc> [files]").
		WithDescription("print the files whose values include those of a match document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-config file] [-addr addr] [-gops] <file>").
		WithDescription("serve a preferences file over HTTP").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func SpellCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SpellConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Spell, "spell").
		WithSynopsis("spell -lang <lang> -dir <dictdir> [-prefs file] [text]").
		WithDescription("spell check text, standard input or the values of a preferences file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return spellCheck(cfg, cc, args)
		})
}
