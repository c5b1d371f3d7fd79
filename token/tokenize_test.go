package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/prefs/format"
)

type lineView struct {
	Type                   LineType
	Indent, Key, Sep, Raw  string
	Value, Trail, EOL      string
	Text, Section          string
	Quote                  byte
}

func view(lns []*Line) []lineView {
	res := make([]lineView, len(lns))
	for i, ln := range lns {
		res[i] = lineView{
			Type:    ln.Type,
			Indent:  ln.Indent,
			Key:     ln.Key,
			Sep:     ln.Sep,
			Raw:     ln.Raw,
			Value:   ln.Value,
			Trail:   ln.Trail,
			EOL:     ln.EOL,
			Text:    ln.Text,
			Section: ln.Section,
			Quote:   ln.Quote,
		}
	}
	return res
}

func TestTokenizeClassify(t *testing.T) {
	src := "# header\n\n  a.b = 1 # one\n[sect]  # s\nc=\"x y\"\r\nd = 'it\\'s'\ne =\nf = a#b"
	lns, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []lineView{
		{Type: LComment, Text: "# header", EOL: "\n"},
		{Type: LBlank, EOL: "\n"},
		{Type: LKeyValue, Indent: "  ", Key: "a.b", Sep: " = ", Raw: "1", Value: "1", Trail: " # one", EOL: "\n"},
		{Type: LSection, Raw: "[sect]", Section: "sect", Trail: "  # s", EOL: "\n"},
		{Type: LKeyValue, Key: "c", Sep: "=", Raw: `"x y"`, Value: "x y", Quote: '"', EOL: "\r\n"},
		{Type: LKeyValue, Key: "d", Sep: " = ", Raw: `'it\'s'`, Value: "it's", Quote: '\'', EOL: "\n"},
		{Type: LKeyValue, Key: "e", Sep: " =", EOL: "\n"},
		{Type: LKeyValue, Key: "f", Sep: " = ", Raw: "a#b", Value: "a#b"},
	}
	if diff := cmp.Diff(want, view(lns)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeVerbatim(t *testing.T) {
	docs := []string{
		"",
		"\n",
		"a = b",
		"a = b\n",
		"\xEF\xBB\xBFa = b\n",
		"  # indented comment\n\t\n",
		"x.y = \"quoted # not a comment\"   # comment\n",
		"[ spaced.section ]\nk = v\n",
		"k = v   \n",
		"k = \"\\u00e9\\n\" \r\n",
	}
	for _, doc := range docs {
		lns, err := Tokenize([]byte(doc))
		if err != nil {
			t.Errorf("%q: %v", doc, err)
			continue
		}
		var b strings.Builder
		for _, ln := range lns {
			b.Write(ln.Bytes())
		}
		if b.String() != doc {
			t.Errorf("round trip: got %q want %q", b.String(), doc)
		}
	}
}

func TestTokenizeINI(t *testing.T) {
	lns, err := Tokenize([]byte("; note\nname: value ; c\n"), TokenFormat(format.INIFormat))
	if err != nil {
		t.Fatal(err)
	}
	if lns[0].Type != LComment {
		t.Errorf("expected comment, got %s", lns[0].Type)
	}
	if lns[1].Value != "value" || lns[1].Trail != " ; c" {
		t.Errorf("got value %q trail %q", lns[1].Value, lns[1].Trail)
	}
	if _, err := Tokenize([]byte("name: value\n")); !errors.Is(err, ErrMissingSep) {
		t.Errorf("prefs dialect should reject ':' separator, got %v", err)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
		line int
	}{
		{"a = \"open\n", ErrUnterminated, 1},
		{"ok = 1\nb = 'open", ErrUnterminated, 2},
		{"a..b = 1", ErrBadKey, 1},
		{".a = 1", ErrBadKey, 1},
		{"a. = 1", ErrBadKey, 1},
		{"a\\.b = 1", ErrBadKey, 1},
		{"= 1", ErrBadKey, 1},
		{"novalue", ErrMissingSep, 1},
		{"[open", ErrBadSection, 1},
		{"[a..b]", ErrBadSection, 1},
		{"[a] junk", ErrTrailing, 1},
		{"a = \"x\" y", ErrTrailing, 1},
		{"a = \"\\q\"", ErrBadEscape, 1},
		{"a = \"\\ud800\"", ErrBadUnicode, 1},
		{"a = \xff", ErrBadUTF8, 1},
	}
	for _, tt := range tests {
		_, err := Tokenize([]byte(tt.in))
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, err)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%q: expected *FormatError, got %T", tt.in, err)
			continue
		}
		if fe.Pos.Line != tt.line {
			t.Errorf("%q: expected line %d, got %d", tt.in, tt.line, fe.Pos.Line)
		}
	}
}
