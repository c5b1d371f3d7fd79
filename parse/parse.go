package parse

import (
	"fmt"

	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/format"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/ir/kpath"
	"github.com/signadot/prefs/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Tree, error) {
	pOpts := &parseOpts{format: format.PrefsFormat}
	for _, f := range opts {
		f(pOpts)
	}
	lns, err := token.Tokenize(d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	ps := &pState{opts: pOpts, tree: ir.NewTree(pOpts.format)}
	for _, ln := range lns {
		if err := ps.line(ln); err != nil {
			return nil, err
		}
	}
	return ps.tree, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Tree, error) {
	return Parse([]byte(s), opts...)
}

type pState struct {
	opts   *parseOpts
	tree   *ir.Tree
	prefix string
}

func (ps *pState) line(ln *token.Line) error {
	switch ln.Type {
	case token.LSection:
		ps.prefix = ln.Section
		if debug.Parse() {
			debug.Logf("line %d: section %q\n", ln.Pos.Line, ps.prefix)
		}
		ps.tree.AddLine(ln, nil)
	case token.LKeyValue:
		n, err := ps.assign(ln)
		if err != nil {
			return err
		}
		ps.tree.AddLine(ln, n)
	default:
		ps.tree.AddLine(ln, nil)
	}
	return nil
}

func (ps *pState) assign(ln *token.Line) (*ir.Node, error) {
	path := kpath.Join(ps.prefix, ln.Key)
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, token.NewFormatError(fmt.Errorf("%w: %w", token.ErrBadKey, err), ln.Pos)
	}
	n := ps.tree.Root
	for x := kp; x != nil; x = x.Next {
		if n.HasValue() && n.Len() == 0 {
			ps.warn(ir.Warning{Kind: ir.Promotion, Path: n.Path(), Pos: ln.Pos, Prev: linePos(n.Line)})
		}
		n = n.Attach(x.Field)
	}
	switch {
	case n.HasValue():
		if ps.opts.strict {
			return nil, token.NewFormatError(fmt.Errorf("%w %q", ErrDuplicateKey, path), ln.Pos)
		}
		ps.warn(ir.Warning{Kind: ir.DuplicateKey, Path: path, Pos: ln.Pos, Prev: linePos(n.Line)})
		if n.Line != nil {
			ps.tree.SetOwner(n.Line, nil)
		}
	case n.Len() != 0:
		ps.warn(ir.Warning{Kind: ir.Promotion, Path: path, Pos: ln.Pos})
	}
	n.Load(ln.Value, ln)
	if debug.Parse() {
		debug.Logf("line %d: %s = %q\n", ln.Pos.Line, path, ln.Value)
	}
	return n, nil
}

func linePos(ln *token.Line) *token.Pos {
	if ln == nil {
		return nil
	}
	p := ln.Pos
	return &p
}

func (ps *pState) warn(w ir.Warning) {
	ps.tree.Warn(w)
	for _, f := range ps.opts.warnings {
		f(w)
	}
	if ps.opts.logger != nil {
		ps.opts.logger.Warn("prefs structure", "warning", w)
	}
}
