package libdiff

import (
	"fmt"

	"github.com/signadot/prefs/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeType int

const (
	Added ChangeType = iota
	Removed
	Changed
)

func (c ChangeType) String() string {
	switch c {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "~"
	default:
		return "?"
	}
}

// Change is a difference in the scalar at Path.
type Change struct {
	Type     ChangeType
	Path     string
	From, To string
}

func (c Change) String() string {
	switch c.Type {
	case Added:
		return fmt.Sprintf("+ %s = %q", c.Path, c.To)
	case Removed:
		return fmt.Sprintf("- %s = %q", c.Path, c.From)
	default:
		return fmt.Sprintf("~ %s: %q -> %q", c.Path, c.From, c.To)
	}
}

type scalar struct {
	path, value string
}

// Diff returns the scalar differences between from and to. Paths are
// aligned in document order, so the result lists changes in the order
// a reader meets them.
func Diff(from, to *ir.Tree) []Change {
	fs, ts := scalars(from.Root), scalars(to.Root)
	pathMap := map[string]rune{}
	fromRunes := mapPathsTo(pathMap, fs)
	toRunes := mapPathsTo(pathMap, ts)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	// index into res of a path seen as removed or added
	removed, added := map[string]int{}, map[string]int{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range []rune(diff.Text) {
				s := fs[fi]
				if j, ok := added[s.path]; ok {
					res[j] = Change{Type: Changed, Path: s.path, From: s.value, To: res[j].To}
				} else {
					removed[s.path] = len(res)
					res = append(res, Change{Type: Removed, Path: s.path, From: s.value})
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for range []rune(diff.Text) {
				f, t := fs[fi], ts[ti]
				if f.value != t.value {
					res = append(res, Change{Type: Changed, Path: f.path, From: f.value, To: t.value})
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range []rune(diff.Text) {
				s := ts[ti]
				if j, ok := removed[s.path]; ok {
					res[j] = Change{Type: Changed, Path: s.path, From: res[j].From, To: s.value}
				} else {
					added[s.path] = len(res)
					res = append(res, Change{Type: Added, Path: s.path, To: s.value})
				}
				ti++
			}
		}
	}
	// moved but equal
	out := res[:0]
	for _, c := range res {
		if c.Type == Changed && c.From == c.To {
			continue
		}
		out = append(out, c)
	}
	return out
}

func scalars(root *ir.Node) []scalar {
	var res []scalar
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if v, ok := n.Value(); ok && !isPost {
			res = append(res, scalar{path: n.Path(), value: v})
		}
		return true, nil
	})
	return res
}

func mapPathsTo(m map[string]rune, ss []scalar) []rune {
	rs := make([]rune, len(ss))
	for i := range ss {
		p := ss[i].path
		r, ok := m[p]
		if !ok {
			r = rune(len(m))
			m[p] = r
		}
		rs[i] = r
	}
	return rs
}
