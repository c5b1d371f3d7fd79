package prefs

import (
	"fmt"
	"path"

	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
)

type MatchConfig struct {
	Glob bool
}

type MatchOpt func(*MatchConfig)

// MatchGlob makes scalars in the pattern match as path.Match globs.
func MatchGlob(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Glob = v }
}

// Match reports whether doc contains every key of match with a matching
// value. Keys of doc absent from match are ignored.
func Match(doc, match *ir.Node, opts ...MatchOpt) (bool, error) {
	cfg := &MatchConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return matchNode(doc, match, cfg)
}

func matchNode(doc, match *ir.Node, cfg *MatchConfig) (bool, error) {
	if mv, ok := match.Value(); ok {
		dv, ok := doc.Value()
		if !ok {
			return false, nil
		}
		if !cfg.Glob {
			if dv != mv {
				return false, nil
			}
		} else {
			ok, err := path.Match(mv, dv)
			if err != nil {
				return false, fmt.Errorf("pattern at %q: %w", match.Path(), err)
			}
			if !ok {
				return false, nil
			}
		}
	}
	for _, mc := range match.Children() {
		dc := doc.Child(mc.Key)
		if dc == nil {
			return false, nil
		}
		ok, err := matchNode(dc, mc, cfg)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

// Trim returns a new document with only the scalars of doc whose paths
// appear in match.
func Trim(match, doc *ir.Node) (*Tree, error) {
	res := New(format.PrefsFormat)
	err := match.Visit(func(m *ir.Node, isPost bool) (bool, error) {
		if isPost || m.Parent == nil {
			return true, nil
		}
		p := m.Path()
		d, ok := doc.Lookup(p)
		if !ok {
			return false, nil
		}
		if v, ok := d.Value(); ok {
			return true, res.Set(p, v)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
