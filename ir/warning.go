package ir

import (
	"fmt"
	"log/slog"

	"github.com/signadot/prefs/token"
)

type WarningKind int

const (
	// DuplicateKey: a key was assigned more than once; the last
	// assignment wins.
	DuplicateKey WarningKind = iota
	// Promotion: a key holding a scalar also received children.
	Promotion
)

func (k WarningKind) String() string {
	switch k {
	case DuplicateKey:
		return "duplicate key"
	case Promotion:
		return "promotion"
	default:
		return "<unknown warning>"
	}
}

// Warning is a non-fatal observation made while building a tree.
type Warning struct {
	Kind WarningKind
	Path string
	Pos  token.Pos
	// Prev is the position of the earlier line involved, if any.
	Prev *token.Pos
}

func (w Warning) String() string {
	s := fmt.Sprintf("%s %q at line %d", w.Kind, w.Path, w.Pos.Line)
	if w.Prev != nil {
		s += fmt.Sprintf(" (previous at line %d)", w.Prev.Line)
	}
	return s
}

func (w Warning) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", w.Kind.String()),
		slog.String("path", w.Path),
		slog.Int("line", w.Pos.Line),
	}
	if w.Prev != nil {
		attrs = append(attrs, slog.Int("prev", w.Prev.Line))
	}
	return slog.GroupValue(attrs...)
}
