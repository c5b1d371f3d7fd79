package encode

import (
	"io"
	"runtime"
	"strings"

	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/token"
)

const bom = "\uFEFF"

type EncState struct {
	eol     string
	markers string
	sep     string

	// whether everything written so far ends a line
	atEOL bool
	w     io.Writer

	Color func(token.LineType, ColorAttr, string) string
}

func newState(tree *ir.Tree, w io.Writer, opts []EncodeOption) *EncState {
	es := &EncState{
		markers: tree.Format.CommentMarkers(),
		sep:     tree.Format.Separators()[:1],
		atEOL:   true,
		w:       w,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes tree's document to w.
func Encode(tree *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	es := newState(tree, w, opts)
	if es.eol == "" {
		es.eol = docEOL(tree.Lines)
	}
	ins := place(tree)
	lines := tree.Lines
	if len(ins[-1]) != 0 && len(lines) != 0 && strings.HasPrefix(lines[0].Indent, bom) {
		// keep the byte order mark in front
		if err := es.writeString(bom); err != nil {
			return err
		}
		es.atEOL = true
		first := *lines[0]
		first.Indent = first.Indent[len(bom):]
		lines = append([]*token.Line{&first}, lines[1:]...)
	}
	if err := es.inserts(ins[-1]); err != nil {
		return err
	}
	for i, ln := range lines {
		if err := es.writeString(es.line(tree, tree.Lines[i], ln)); err != nil {
			return err
		}
		if err := es.inserts(ins[i]); err != nil {
			return err
		}
	}
	return nil
}

func docEOL(lines []*token.Line) string {
	for _, ln := range lines {
		if ln.EOL != "" {
			return ln.EOL
		}
	}
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func (es *EncState) writeString(s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(es.w, s)
	es.atEOL = strings.HasSuffix(s, "\n")
	return err
}

// line renders one source line. src is the line as stored on the tree,
// ln the one to write (they differ only in a stripped byte order mark).
func (es *EncState) line(tree *ir.Tree, src, ln *token.Line) string {
	if ln.Type == token.LKeyValue {
		if n := tree.Owner(src); n != nil && n.Line == src && n.Dirty() {
			if v, _ := n.Value(); v != ln.Value {
				raw := token.FormatValue(v, ln.Quote, es.markers)
				if debug.Encode() {
					debug.Logf("line %d: %s value %q -> %q\n", ln.Pos.Line, n.Path(), ln.Raw, raw)
				}
				if es.Color == nil {
					return ln.WithValue(raw)
				}
				sep, trail := ln.Spacing(raw)
				return es.kv(ln.Indent, ln.Key, sep, raw, trail, ln.EOL, true)
			}
		}
	}
	if es.Color == nil {
		return ln.String()
	}
	return es.colorLine(ln)
}

func (es *EncState) inserts(ins []insert) error {
	for _, in := range ins {
		if !es.atEOL {
			if err := es.writeString(es.eol); err != nil {
				return err
			}
		}
		v, _ := in.node.Value()
		raw := token.FormatValue(v, 0, es.markers)
		if debug.Encode() {
			debug.Logf("new line %s = %s\n", in.key, raw)
		}
		s := es.kv("", in.key, " "+es.sep+" ", raw, "", es.eol, true)
		if err := es.writeString(s); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) color(t token.LineType, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) kv(indent, key, sep, raw, trail, eol string, changed bool) string {
	va := ValueColor
	if changed {
		va = ChangedColor
	}
	t := token.LKeyValue
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(es.color(t, KeyColor, key))
	b.WriteString(es.color(t, SepColor, sep))
	b.WriteString(es.color(t, va, raw))
	b.WriteString(es.color(t, CommentColor, trail))
	b.WriteString(eol)
	return b.String()
}

func (es *EncState) colorLine(ln *token.Line) string {
	switch ln.Type {
	case token.LKeyValue:
		return es.kv(ln.Indent, ln.Key, ln.Sep, ln.Raw, ln.Trail, ln.EOL, false)
	case token.LSection:
		return ln.Indent + es.color(ln.Type, SectionColor, ln.Raw) +
			es.color(ln.Type, CommentColor, ln.Trail) + ln.EOL
	case token.LComment:
		return ln.Indent + es.color(ln.Type, CommentColor, ln.Text) + ln.EOL
	default:
		return ln.String()
	}
}
