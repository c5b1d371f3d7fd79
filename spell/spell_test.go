package spell

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCacheHits(t *testing.T) {
	probes := map[string]int{}
	c, err := NewCache(ProberFunc(func(lang string) (bool, error) {
		probes[lang]++
		return lang == "en", nil
	}), 8)
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		ok, err := c.CanCheck("en")
		if err != nil || !ok {
			t.Fatalf("en: %t %v", ok, err)
		}
		ok, err = c.CanCheck("fr")
		if err != nil || ok {
			t.Fatalf("fr: %t %v", ok, err)
		}
	}
	if d := cmp.Diff(map[string]int{"en": 1, "fr": 1}, probes); d != "" {
		t.Errorf("probes (-want +got):\n%s", d)
	}
	if d := cmp.Diff(Stats{Hits: 4, Misses: 2, Len: 2}, c.Stats()); d != "" {
		t.Errorf("stats (-want +got):\n%s", d)
	}
	c.Reset()
	if d := cmp.Diff(Stats{}, c.Stats()); d != "" {
		t.Errorf("stats after reset (-want +got):\n%s", d)
	}
	if _, err := c.CanCheck("en"); err != nil {
		t.Fatal(err)
	}
	if probes["en"] != 2 {
		t.Errorf("reset should force a new probe, got %d", probes["en"])
	}
}

func TestCacheCanonical(t *testing.T) {
	var seen []string
	c, err := NewCache(ProberFunc(func(lang string) (bool, error) {
		seen = append(seen, lang)
		return true, nil
	}), 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range []string{"en-US", "en_us", "EN-us"} {
		if _, err := c.CanCheck(l); err != nil {
			t.Fatal(err)
		}
	}
	if d := cmp.Diff([]string{"en-US"}, seen); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if _, err := c.CanCheck("not a tag"); !errors.Is(err, ErrBadLanguage) {
		t.Errorf("got %v", err)
	}
}

func TestCacheProbeError(t *testing.T) {
	fail := errors.New("boom")
	n := 0
	c, err := NewCache(ProberFunc(func(string) (bool, error) {
		n++
		return false, fail
	}), 8)
	if err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if _, err := c.CanCheck("de"); !errors.Is(err, fail) {
			t.Errorf("got %v", err)
		}
	}
	if n != 2 {
		t.Errorf("errors should not be cached, probed %d times", n)
	}
}

func newChecker(t *testing.T) *Checker {
	t.Helper()
	dir := t.TempDir()
	dic := "# english\nhello\nworld\nword\nWorlds\ndon't\ncafé\n"
	if err := os.WriteFile(filepath.Join(dir, "en.dic"), []byte(dic), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := NewChecker(dir, 4)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCheck(t *testing.T) {
	c := newChecker(t)
	got, err := c.Check("Hello, wrld! Don't CAFÉ worlds xyzzy.", "en")
	if err != nil {
		t.Fatal(err)
	}
	want := []Misspelling{
		{Word: "wrld", Offset: 7, Suggestions: []string{"world", "word", "worlds"}},
		{Word: "xyzzy", Offset: 31},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if ok, err := c.CanCheck("fr"); err != nil || ok {
		t.Errorf("fr: %t %v", ok, err)
	}
	if _, err := c.Check("bonjour", "fr"); !errors.Is(err, ErrNoDictionary) {
		t.Errorf("got %v", err)
	}
	if s := c.Cache().Stats(); s.Misses != 2 || s.Hits != 1 {
		t.Errorf("stats %+v", s)
	}
}

func TestWords(t *testing.T) {
	var got []string
	for _, w := range words("it's 'quoted' a1b — naïve") {
		got = append(got, w.text)
	}
	if d := cmp.Diff([]string{"it's", "quoted", "a", "b", "naïve"}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
