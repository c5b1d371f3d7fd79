package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Context is the number of unchanged lines Text keeps around a change.
const Context = 2

// Text returns a line diff of a and b: removed lines start with "-",
// added ones with "+" and context lines with a space. Runs of unchanged
// lines longer than the context are elided as "...". Equal texts give
// the empty string.
func Text(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var out strings.Builder
	for i, d := range diffs {
		ls := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(&out, "-", ls)
		case diffpatch.DiffInsert:
			writeLines(&out, "+", ls)
		case diffpatch.DiffEqual:
			var head, tail int
			if i > 0 {
				head = Context
			}
			if i < len(diffs)-1 {
				tail = Context
			}
			if len(ls) <= head+tail {
				writeLines(&out, " ", ls)
				continue
			}
			writeLines(&out, " ", ls[:head])
			out.WriteString("...\n")
			writeLines(&out, " ", ls[len(ls)-tail:])
		}
	}
	return out.String()
}

func splitLines(s string) []string {
	ls := strings.SplitAfter(s, "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	return ls
}

func writeLines(out *strings.Builder, prefix string, ls []string) {
	for _, l := range ls {
		out.WriteString(prefix)
		out.WriteString(l)
		if !strings.HasSuffix(l, "\n") {
			out.WriteString("\n\\ no newline at end\n")
		}
	}
}

// Inline renders the change from a to b within one value, marking
// removed runs as [-x-] and added ones as {+y+}.
func Inline(a, b string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(a, b, false))
	var out strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			out.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			out.WriteString("{+" + d.Text + "+}")
		default:
			out.WriteString(d.Text)
		}
	}
	return out.String()
}
