package token

import "strings"

// commentStart returns the offset in d at which a trailing comment
// begins, or len(d) when there is none. A comment marker only starts a
// comment at the beginning of d or after whitespace, so values such as
// "a#b" keep their marker.
func commentStart(d []byte, markers string) int {
	for i, c := range d {
		if strings.IndexByte(markers, c) == -1 {
			continue
		}
		if i == 0 || isSpace(d[i-1]) {
			return i
		}
	}
	return len(d)
}

// isTrail reports whether d may follow a complete value: optional
// whitespace and then either nothing or a comment.
func isTrail(d []byte, markers string) bool {
	i := 0
	for i < len(d) && isSpace(d[i]) {
		i++
	}
	return i == len(d) || strings.IndexByte(markers, d[i]) != -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
