package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs/encode"
	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Strict  bool `cli:"name=strict desc='fail on duplicate keys'"`
	Verbose bool `cli:"name=v desc='log structure warnings and debug messages'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// fmtFunc parses a format name into *fp. With text set, only formats
// that can be parsed are accepted.
func (cfg *MainConfig) fmtFunc(fp **format.Format, text bool) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if text && !f.IsText() {
			return nil, fmt.Errorf("%w: cannot read %s documents", cli.ErrUsage, f)
		}
		*fp = &f
		return f, nil
	})
}

// inFormat is the dialect of file: the -I flag if given, otherwise ini
// for files named *.ini and prefs for everything else.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if filepath.Ext(file) == format.INIFormat.Suffix() {
		return format.INIFormat
	}
	return format.PrefsFormat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	var res []parse.ParseOption
	switch f := cfg.inFormat(file); f {
	case format.INIFormat:
		res = append(res, parse.ParseINI())
	case format.PrefsFormat:
		res = append(res, parse.ParsePrefs())
	default:
		res = append(res, parse.ParseFormat(f))
	}
	if cfg.Strict {
		res = append(res, parse.ParseStrict())
	}
	if cfg.Verbose {
		res = append(res, parse.ParseLogger(theLog.With("file", file)))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	if optSet(cfg.Main, "color") {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type GetConfig struct {
	*MainConfig
	Default string `cli:"name=d desc='print this instead of failing when the key is absent'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n desc='show the change as a diff'"`
	Write  bool `cli:"name=w desc='write the result to the file'"`

	Set *cli.Command
}

type HasConfig struct {
	*MainConfig

	Has *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Warnings bool `cli:"name=warn desc='list structure warnings as comments'"`

	Dump *cli.Command
}

type ExportConfig struct {
	*MainConfig
	OutFormat *format.Format

	Export *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=t desc='diff document text instead of values'"`

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type FindConfig struct {
	*MainConfig
	Paths bool `cli:"name=l desc='list paths only'"`

	Find *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='patch is a JSON merge patch (RFC 7386)'"`
	DryRun bool `cli:"name=n desc='show the change as a diff'"`
	Write  bool `cli:"name=w desc='write the result to the file'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim bool `cli:"name=trim desc='trim the results to the match'"`
	Glob bool `cli:"name=glob desc='match values as glob patterns'"`
	File bool `cli:"name=f desc='consider match a file path'"`
}

type ServeConfig struct {
	*MainConfig
	Config string `cli:"name=config desc='server settings file'"`
	Addr   string `cli:"name=addr desc='listen address, overrides server.addr'"`
	Gops   bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	Serve *cli.Command
}

type SpellConfig struct {
	*MainConfig
	Lang  string `cli:"name=lang desc='language of the text'"`
	Dir   string `cli:"name=dir desc='dictionary directory'"`
	Prefs string `cli:"name=prefs desc='check the values of this preferences file'"`

	Spell *cli.Command
}

// warningComment renders w as a comment line of a dump.
func warningComment(w ir.Warning) string {
	return "# warning: " + w.String()
}
