package spell

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// MaxSuggestions bounds Misspelling.Suggestions.
const MaxSuggestions = 3

type Misspelling struct {
	Word string `json:"word"`
	// Offset is the byte offset of Word in the checked text.
	Offset      int      `json:"offset"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type dict struct {
	words  map[string]struct{}
	sorted []string
}

// Checker checks text with the dictionaries found in a directory.
type Checker struct {
	dir   string
	cache *Cache
	dicts *lru.Cache[string, *dict]
}

// NewChecker returns a checker for the dictionaries in dir, keeping up
// to size languages cached.
func NewChecker(dir string, size int) (*Checker, error) {
	c := &Checker{dir: dir}
	dicts, err := lru.New[string, *dict](size)
	if err != nil {
		return nil, err
	}
	c.dicts = dicts
	cache, err := NewCache(ProberFunc(c.probe), size)
	if err != nil {
		return nil, err
	}
	c.cache = cache
	return c, nil
}

func (c *Checker) Cache() *Cache { return c.cache }

func (c *Checker) Dir() string { return c.dir }

func (c *Checker) dictPath(tag string) string {
	return filepath.Join(c.dir, tag+".dic")
}

func (c *Checker) probe(tag string) (bool, error) {
	fi, err := os.Stat(c.dictPath(tag))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	default:
		return fi.Mode().IsRegular(), nil
	}
}

func (c *Checker) CanCheck(lang string) (bool, error) {
	return c.cache.CanCheck(lang)
}

// Check returns the words of text missing from lang's dictionary, in
// order of appearance.
func (c *Checker) Check(text, lang string) ([]Misspelling, error) {
	ok, err := c.cache.CanCheck(lang)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoDictionary, lang)
	}
	tag, _ := Canonical(lang)
	d, err := c.dict(tag)
	if err != nil {
		return nil, err
	}
	var res []Misspelling
	for _, w := range words(text) {
		key := fold(w.text)
		if _, ok := d.words[key]; ok {
			continue
		}
		res = append(res, Misspelling{Word: w.text, Offset: w.off, Suggestions: d.suggest(key)})
	}
	return res, nil
}

func (c *Checker) dict(tag string) (*dict, error) {
	if d, ok := c.dicts.Get(tag); ok {
		return d, nil
	}
	f, err := os.Open(c.dictPath(tag))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d := &dict{words: map[string]struct{}{}}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || ln[0] == '#' {
			continue
		}
		w := fold(ln)
		if _, dup := d.words[w]; dup {
			continue
		}
		d.words[w] = struct{}{}
		d.sorted = append(d.sorted, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name(), err)
	}
	slices.Sort(d.sorted)
	c.dicts.Add(tag, d)
	return d, nil
}

// suggest returns dictionary words within edit distance 2 of w, closest
// first.
func (d *dict) suggest(w string) []string {
	type cand struct {
		word string
		dist int
	}
	dmp := diffpatch.New()
	var cs []cand
	n := utf8.RuneCountInString(w)
	for _, x := range d.sorted {
		if m := utf8.RuneCountInString(x); m > n+2 || m < n-2 {
			continue
		}
		dist := dmp.DiffLevenshtein(dmp.DiffMain(w, x, false))
		if dist <= 2 {
			cs = append(cs, cand{x, dist})
		}
	}
	slices.SortStableFunc(cs, func(a, b cand) int { return a.dist - b.dist })
	var res []string
	for i := 0; i < len(cs) && i < MaxSuggestions; i++ {
		res = append(res, cs[i].word)
	}
	return res
}

func fold(w string) string {
	return norm.NFC.String(cases.Fold().String(w))
}

type word struct {
	text string
	off  int
}

// words splits text into runs of letters, keeping inner apostrophes
// ("don't").
func words(text string) []word {
	var res []word
	start := -1
	for i, r := range text {
		in := unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) ||
			(r == '\'' && start != -1 && i+1 < len(text) && isLetterAt(text, i+1))
		switch {
		case in && start == -1:
			start = i
		case !in && start != -1:
			res = append(res, word{text[start:i], start})
			start = -1
		}
	}
	if start != -1 {
		res = append(res, word{text[start:], start})
	}
	return res
}

func isLetterAt(s string, i int) bool {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsLetter(r)
}
