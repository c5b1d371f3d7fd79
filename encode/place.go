package encode

import (
	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/ir/kpath"
	"github.com/signadot/prefs/token"
)

// insert is a synthesized line: key is n's path relative to the section
// in effect where the line goes.
type insert struct {
	node *ir.Node
	key  string
}

// place finds the nodes that have a value but no source line and decides
// where their lines go. The result maps a line index to the inserts
// written right after it; index -1 is the start of the document.
func place(tree *ir.Tree) map[int][]insert {
	var synth []*ir.Node
	_ = tree.Root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if !n.Dirty() {
			return false, nil
		}
		if n.HasValue() && n.Line == nil {
			synth = append(synth, n)
		}
		return true, nil
	})
	if len(synth) == 0 {
		return nil
	}
	lines := tree.Lines
	last := lastLines(tree)
	sections := sectionAt(lines)
	res := map[int][]insert{}
	for _, n := range synth {
		path := n.Path()
		at := len(lines) - 1
		for x := n; x.Parent != nil; x = x.Parent {
			if i, ok := last[x.Path()]; ok {
				at = i
				break
			}
		}
		key := path
		if at >= 0 && sections[at] != "" {
			prefix := sections[at]
			if path != prefix && kpath.HasPrefix(path, prefix) {
				key = kpath.TrimPrefix(path, prefix)
			} else {
				at = preambleEnd(lines)
			}
		}
		if debug.Encode() {
			debug.Logf("place %s after line %d as %q\n", path, at+1, key)
		}
		res[at] = append(res[at], insert{node: n, key: key})
	}
	return res
}

// lastLines maps a path to the index of the last source line that
// belongs to it: a line defining its scalar or a descendant's, or its
// own section header.
func lastLines(tree *ir.Tree) map[string]int {
	last := map[string]int{}
	for i, ln := range tree.Lines {
		switch ln.Type {
		case token.LSection:
			last[ln.Section] = i
		case token.LKeyValue:
			n := tree.Owner(ln)
			if n == nil {
				continue
			}
			for x := n; x.Parent != nil; x = x.Parent {
				last[x.Path()] = i
			}
		}
	}
	return last
}

// sectionAt returns the section prefix in effect at each line.
func sectionAt(lines []*token.Line) []string {
	res := make([]string, len(lines))
	prefix := ""
	for i, ln := range lines {
		if ln.Type == token.LSection {
			prefix = ln.Section
		}
		res[i] = prefix
	}
	return res
}

// preambleEnd returns the index of the last line before the first
// section header, not counting the comment lines directly above the
// header.
func preambleEnd(lines []*token.Line) int {
	h := len(lines)
	for i, ln := range lines {
		if ln.Type == token.LSection {
			h = i
			break
		}
	}
	for h > 0 && lines[h-1].Type == token.LComment {
		h--
	}
	return h - 1
}
