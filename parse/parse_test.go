package parse

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/token"
)

type parseTest struct {
	in   string
	want map[string]string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   "test.test-me = oldvalue\n",
			want: map[string]string{"test.test-me": "oldvalue"},
		},
		{
			in:   "a=1\nb = \"two words\" # c\nc = 'it\\'s'\n",
			want: map[string]string{"a": "1", "b": "two words", "c": "it's"},
		},
		{
			in:   "# header\n\n[editor]\nfont = mono\n[editor.tabs]\nwidth = 4\n",
			want: map[string]string{"editor.font": "mono", "editor.tabs.width": "4"},
		},
		{
			in:   "a =\nb = # nothing\n",
			want: map[string]string{"a": "", "b": ""},
		},
		{
			in:   "x = 1",
			want: map[string]string{"x": "1"},
		},
	}
	for _, pt := range pts {
		tree, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		got := map[string]string{}
		err = tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
			if v, ok := n.Value(); ok && !isPost {
				got[n.Path()] = v
			}
			return true, nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(pt.want, got); d != "" {
			t.Errorf("%q (-want +got):\n%s", pt.in, d)
		}
	}
}

func TestParseKeepsLines(t *testing.T) {
	in := "# c\na = 1\n\n[s]\nb = 2\r\n"
	tree, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	for _, ln := range tree.Lines {
		b.WriteString(ln.String())
	}
	if b.String() != in {
		t.Errorf("lines do not rebuild input: %q", b.String())
	}
	a, _ := tree.Lookup("a")
	if tree.Owner(tree.Lines[1]) != a || a.Line != tree.Lines[1] {
		t.Error("owner of line 2 should be a")
	}
	if tree.Owner(tree.Lines[0]) != nil || tree.Owner(tree.Lines[3]) != nil {
		t.Error("comment and section lines have no owner")
	}
	s, _ := tree.Lookup("s")
	if s.Line != nil || s.HasValue() {
		t.Error("section header should not give its node a value")
	}
}

func TestParseDuplicate(t *testing.T) {
	in := "a = 1\nb = 2\na = 3\n"
	var ws []ir.Warning
	tree, err := ParseString(in, ParseWarnings(func(w ir.Warning) { ws = append(ws, w) }))
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Get("a", nil); got != "3" {
		t.Errorf("last write should win, got %v", got)
	}
	if len(ws) != 1 || ws[0].Kind != ir.DuplicateKey || ws[0].Path != "a" {
		t.Fatalf("warnings %v", ws)
	}
	if ws[0].Pos.Line != 3 || ws[0].Prev == nil || ws[0].Prev.Line != 1 {
		t.Errorf("warning positions %v", ws[0])
	}
	if tree.Owner(tree.Lines[0]) != nil {
		t.Error("overridden line should lose ownership")
	}
	if d := cmp.Diff(ws, tree.Warnings, cmp.Comparer(func(a, b token.Pos) bool { return a.I == b.I })); d != "" {
		t.Errorf("tree warnings differ:\n%s", d)
	}
}

func TestParseStrict(t *testing.T) {
	_, err := ParseString("a = 1\n[x]\ny = 1\n[]\n", ParseStrict())
	if !errors.Is(err, token.ErrBadSection) {
		t.Errorf("expected ErrBadSection, got %v", err)
	}
	_, err = ParseString("[x]\ny = 1\n[ x ]\ny = 2\n", ParseStrict())
	if !errors.Is(err, ErrDuplicateKey) || !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	var fe *token.FormatError
	if !errors.As(err, &fe) || fe.Pos.Line != 4 {
		t.Errorf("expected FormatError on line 4, got %v", err)
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"children under scalar", "a = 1\na.b = 2\n", "a"},
		{"scalar on namespace", "a.b = 2\na = 1\n", "a"},
		{"section over scalar", "a = 1\n[a]\nb = 2\n", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if len(tree.Warnings) != 1 {
				t.Fatalf("warnings %v", tree.Warnings)
			}
			w := tree.Warnings[0]
			if w.Kind != ir.Promotion || w.Path != tt.path {
				t.Errorf("warning %v", w)
			}
			n, _ := tree.Lookup(tt.path)
			if n.Kind() != ir.BothKind {
				t.Errorf("kind %s", n.Kind())
			}
			if tree.Get("a", nil) != "1" || tree.Get("a.b", nil) != "2" {
				t.Error("values lost")
			}
		})
	}
}

func TestParseLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	if _, err := ParseString("a = 1\na = 2\n", ParseLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "duplicate key") {
		t.Errorf("log output %q", buf.String())
	}
}

func TestParseINI(t *testing.T) {
	tree, err := ParseString("; comment\n[core]\nname: x\n", ParseINI())
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.GetString("core.name", ""); got != "x" {
		t.Errorf("got %q", got)
	}
	if _, err := ParseString("; comment\n"); err == nil {
		t.Error("';' is not a comment in the prefs dialect")
	}
}

func TestParseErrorNoTree(t *testing.T) {
	tree, err := ParseString("a = 1\nb = \"open\n")
	if err == nil || tree != nil {
		t.Fatalf("want error and no tree, got %v %v", tree, err)
	}
	if !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("got %v", err)
	}
}
