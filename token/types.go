package token

import "strings"

type LineType int

const (
	LBlank LineType = iota
	LComment
	LKeyValue
	LSection
)

func (t LineType) String() string {
	return map[LineType]string{
		LBlank:    "LBlank",
		LComment:  "LComment",
		LKeyValue: "LKeyValue",
		LSection:  "LSection",
	}[t]
}

// Line is one source line. Depending on Type only some fields are set:
//
//	LBlank, LComment: Indent, Text
//	LSection:         Indent, Raw ("[name]"), Section, Trail
//	LKeyValue:        Indent, Key, Sep, Raw, Quote, Value, Trail
//
// EOL is "\n", "\r\n" or "" for a last line without terminator.
type Line struct {
	Type LineType
	Pos  Pos

	Indent  string
	Text    string
	Section string

	Key   string
	Sep   string
	Raw   string
	Quote byte
	Value string

	Trail string
	EOL   string
}

// Bytes returns the line exactly as it appeared in the source.
func (l *Line) Bytes() []byte {
	return []byte(l.String())
}

func (l *Line) String() string {
	var b strings.Builder
	b.WriteString(l.Indent)
	switch l.Type {
	case LBlank, LComment:
		b.WriteString(l.Text)
	case LSection:
		b.WriteString(l.Raw)
		b.WriteString(l.Trail)
	case LKeyValue:
		b.WriteString(l.Key)
		b.WriteString(l.Sep)
		b.WriteString(l.Raw)
		b.WriteString(l.Trail)
	}
	b.WriteString(l.EOL)
	return b.String()
}

// WithValue returns the line with its value token replaced by raw; every
// other piece is kept.
func (l *Line) WithValue(raw string) string {
	sep, trail := l.Spacing(raw)
	var b strings.Builder
	b.WriteString(l.Indent)
	b.WriteString(l.Key)
	b.WriteString(sep)
	b.WriteString(raw)
	b.WriteString(trail)
	b.WriteString(l.EOL)
	return b.String()
}

// Spacing returns the separator and trailer to write around raw when it
// replaces the line's value. When the original value was empty a space
// is put around the new token so it does not run into the separator or
// a trailing comment.
func (l *Line) Spacing(raw string) (sep, trail string) {
	sep, trail = l.Sep, l.Trail
	if l.Raw == "" && raw != "" {
		if !endsSpace(sep) {
			sep += " "
		}
		if trail != "" && !isSpace(trail[0]) {
			trail = " " + trail
		}
	}
	return sep, trail
}

func endsSpace(s string) bool {
	return s != "" && isSpace(s[len(s)-1])
}
