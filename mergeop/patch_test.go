package mergeop

import (
	"errors"
	"testing"

	"github.com/signadot/prefs/encode"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/parse"
)

const doc = "# ui\n[ui]\ntheme = dark # default\nzoom = 1\n"

func TestMergePatch(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		want  string
	}{
		{
			name:  "noop",
			patch: `{}`,
			want:  doc,
		},
		{
			name:  "change",
			patch: `{"ui": {"theme": "light"}}`,
			want:  "# ui\n[ui]\ntheme = light # default\nzoom = 1\n",
		},
		{
			name:  "add",
			patch: `{"ui": {"font": {"size": 12}}, "top": true}`,
			want:  "top = true\n# ui\n[ui]\ntheme = dark # default\nzoom = 1\nfont.size = 12\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := parse.ParseString(doc)
			if err != nil {
				t.Fatal(err)
			}
			if err := MergePatch(tree, []byte(tt.patch)); err != nil {
				t.Fatal(err)
			}
			if got := encode.Source(tree); got != tt.want {
				t.Errorf("got\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestMergePatchRemove(t *testing.T) {
	for _, patch := range []string{`{"ui": {"zoom": null}}`, `{"ui": "flat"}`} {
		tree, err := parse.ParseString(doc)
		if err != nil {
			t.Fatal(err)
		}
		err = MergePatch(tree, []byte(patch))
		if !errors.Is(err, ErrRemoveUnsupported) {
			t.Errorf("%s: got %v", patch, err)
		}
		if tree.Dirty() {
			t.Errorf("%s: failed patch changed the tree", patch)
		}
	}
}

func TestJSONPatch(t *testing.T) {
	tree, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	patch := `[
		{"op": "replace", "path": "/ui/zoom", "value": "2"},
		{"op": "add", "path": "/ui/lang", "value": "en"},
		{"op": "test", "path": "/ui/theme", "value": "dark"}
	]`
	if err := JSONPatch(tree, []byte(patch)); err != nil {
		t.Fatal(err)
	}
	want := "# ui\n[ui]\ntheme = dark # default\nzoom = 2\nlang = en\n"
	if got := encode.Source(tree); got != want {
		t.Errorf("got %q", got)
	}
	err = JSONPatch(tree, []byte(`[{"op": "remove", "path": "/ui/lang"}]`))
	if !errors.Is(err, ErrRemoveUnsupported) {
		t.Errorf("got %v", err)
	}
	err = JSONPatch(tree, []byte(`[{"op": "test", "path": "/ui/theme", "value": "x"}]`))
	if err == nil {
		t.Error("failed test op should be an error")
	}
}

func TestPatchBadKey(t *testing.T) {
	tree, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	err = MergePatch(tree, []byte(`{"a": "1", "b c": "2"}`))
	var pe *ir.PathError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if tree.Has("a") {
		t.Error("nothing should be set")
	}
}
