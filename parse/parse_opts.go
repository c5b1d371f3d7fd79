package parse

import (
	"log/slog"

	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/token"
)

type parseOpts struct {
	format   format.Format
	strict   bool
	warnings []func(ir.Warning)
	logger   *slog.Logger
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.TokenFormat(o.format)}
}

type ParseOption func(*parseOpts)

func ParsePrefs() ParseOption {
	return ParseFormat(format.PrefsFormat)
}
func ParseINI() ParseOption {
	return ParseFormat(format.INIFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseStrict makes a duplicate key fail the parse with ErrDuplicateKey.
func ParseStrict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// ParseWarnings registers a callback for structure warnings.
func ParseWarnings(f func(ir.Warning)) ParseOption {
	return func(o *parseOpts) { o.warnings = append(o.warnings, f) }
}

func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}
