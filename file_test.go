package prefs

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
)

func TestFileSave(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.prefs")
	orig := "# settings\nui.theme = dark\n"
	if err := os.WriteFile(p, []byte(orig), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Open(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("ui.theme", "light"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("ui.zoom", "2"); err != nil {
		t.Fatal(err)
	}
	if !f.Dirty() {
		t.Fatal("expected dirty")
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	if f.Dirty() {
		t.Error("saved file should be clean")
	}
	d, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if want := "# settings\nui.theme = light\nui.zoom = 2\n"; string(d) != want {
		t.Errorf("got %q want %q", d, want)
	}
	fi, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("mode %v", fi.Mode().Perm())
	}
	ents, _ := os.ReadDir(filepath.Dir(p))
	if len(ents) != 1 {
		t.Errorf("temp files left: %v", ents)
	}
}

func TestFileSetInvalidUTF8(t *testing.T) {
	p := filepath.Join(t.TempDir(), "app.prefs")
	if err := os.WriteFile(p, []byte("a = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Open(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Set("a\xff", "v"); err == nil {
		t.Error("expected error for invalid utf8 key")
	}
	if err := f.Set("b", "x\xffy"); err == nil {
		t.Error("expected error for invalid utf8 value")
	}
	if f.Dirty() {
		t.Fatal("rejected sets left the file dirty")
	}
	if err := f.Set("b", "2"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	if got := f.GetString("b", ""); got != "2" {
		t.Errorf("got %q", got)
	}
}

func TestFileMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "new.prefs")
	f, err := Open(p)
	if err != nil {
		t.Fatal(err)
	}
	if f.Has("a") {
		t.Fatal("empty document has a")
	}
	if err := f.Set("a.b", "c"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	g, err := Open(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.GetString("a.b", ""); got != "c" {
		t.Errorf("got %q", got)
	}
}

func TestFileBadSource(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.prefs")
	if err := os.WriteFile(p, []byte("no separator\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(p); err == nil {
		t.Error("expected error")
	}
}

func TestFileConcurrent(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "c.prefs"))
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k := "k." + strconv.Itoa(i)
			for j := range 50 {
				if err := f.Set(k, strconv.Itoa(j)); err != nil {
					t.Error(err)
					return
				}
				_ = f.Get(k, "")
				_ = f.Source()
			}
		}()
	}
	wg.Wait()
	for i := range 8 {
		if got := f.GetString("k."+strconv.Itoa(i), ""); got != "49" {
			t.Errorf("k.%d = %q", i, got)
		}
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
}
