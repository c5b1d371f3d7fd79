package prefs

import (
	"testing"

	"github.com/signadot/prefs/encode"
	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
)

func TestScenarioReadUntouched(t *testing.T) {
	src := "test.test-me = oldvalue\n"
	tree, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Get("test.test-me", ""); got != "oldvalue" {
		t.Errorf("got %v", got)
	}
	if got := tree.Source(); got != src {
		t.Errorf("source changed: %q", got)
	}
}

func TestScenarioReplace(t *testing.T) {
	tree, err := Parse("test.test-me = oldvalue\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Set("test.test-me", "newvalue"); err != nil {
		t.Fatal(err)
	}
	if got := tree.Source(); got != "test.test-me = newvalue\n" {
		t.Errorf("got %q", got)
	}
}

func TestScenarioCreate(t *testing.T) {
	tree := New(format.PrefsFormat)
	if err := tree.Set("new-test.test-crazy", "newvalue"); err != nil {
		t.Fatal(err)
	}
	src := tree.Source(encode.EncodeLineEnding("\n"))
	if src != "new-test.test-crazy = newvalue\n" {
		t.Errorf("got %q", src)
	}
	re, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := re.Get("new-test.test-crazy", ""); got != "newvalue" {
		t.Errorf("re-read %v", got)
	}
}

func TestScenarioMissing(t *testing.T) {
	tree, err := Parse("a = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.Get("missing.path", ""); got != "" {
		t.Errorf("got %v", got)
	}
	if tree.Has("missing.path") {
		t.Error("has missing")
	}
}

func TestScenarioNeighbour(t *testing.T) {
	second := "  other.key   =   'keep me'   # untouched\n"
	tree, err := Parse("first.key = 1\n" + second)
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Set("first.key", "2"); err != nil {
		t.Fatal(err)
	}
	if got := tree.Source(); got != "first.key = 2\n"+second {
		t.Errorf("got %q", got)
	}
}

func TestChainedAccess(t *testing.T) {
	tree, err := Parse("[editor]\nfont.name = mono\nfont.size = 12\n")
	if err != nil {
		t.Fatal(err)
	}
	ed, ok := tree.Get("editor", nil).(*ir.Node)
	if !ok {
		t.Fatal("editor should be a namespace handle")
	}
	font, ok := ed.Get("font", nil).(*ir.Node)
	if !ok {
		t.Fatal("font should be a namespace handle")
	}
	for _, k := range []string{"name", "size"} {
		if font.Get(k, nil) != tree.Get("editor.font."+k, 0) {
			t.Errorf("chained %s differs", k)
		}
	}
}
