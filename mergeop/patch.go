package mergeop

import (
	"fmt"
	"slices"

	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/export"
	"github.com/signadot/prefs/ir"
	"github.com/signadot/prefs/ir/kpath"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies an RFC 7386 merge patch given as JSON.
func MergePatch(tree *ir.Tree, patch []byte) error {
	doc, err := export.MarshalJSON(tree)
	if err != nil {
		return err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return fmt.Errorf("merge patch: %w", err)
	}
	return apply(tree, out)
}

// JSONPatch applies an RFC 6902 patch given as JSON.
func JSONPatch(tree *ir.Tree, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("decode json patch: %w", err)
	}
	doc, err := export.MarshalJSON(tree)
	if err != nil {
		return err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("json patch: %w", err)
	}
	return apply(tree, out)
}

// apply folds the patched export back into tree. Nothing is set unless
// the whole result can be applied.
func apply(tree *ir.Tree, patched []byte) error {
	vals, nulls, err := export.FlattenJSON(patched)
	if err != nil {
		return err
	}
	if len(nulls) != 0 {
		return fmt.Errorf("%w: %v", ErrRemoveUnsupported, nulls)
	}
	cur := export.Flat(tree)
	for p := range cur {
		if _, ok := vals[p]; !ok {
			return fmt.Errorf("%w: %s", ErrRemoveUnsupported, p)
		}
	}
	var paths []string
	for p, v := range vals {
		if old, ok := cur[p]; ok && old == v {
			continue
		}
		if _, err := kpath.ParseKey(p); err != nil {
			return err
		}
		paths = append(paths, p)
	}
	// parents before children, siblings in a stable order
	slices.Sort(paths)
	for _, p := range paths {
		if debug.Eval() {
			debug.Logf("patch set %s = %q\n", p, vals[p])
		}
		if err := tree.Set(p, vals[p]); err != nil {
			return err
		}
	}
	return nil
}
