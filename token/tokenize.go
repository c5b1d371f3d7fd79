package token

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/prefs/debug"
	"github.com/signadot/prefs/format"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type TokenOpt func(*tkState)

func TokenFormat(f format.Format) TokenOpt {
	return func(ts *tkState) {
		ts.markers = f.CommentMarkers()
		ts.seps = f.Separators()
	}
}

func TokenPrefs() TokenOpt { return TokenFormat(format.PrefsFormat) }

type tkState struct {
	markers string
	seps    string

	// position of the line being tokenized
	off, lineNo int
	body        []byte
}

// Tokenize splits src into line records. The concatenation of the
// records' Bytes is always src.
func Tokenize(src []byte, opts ...TokenOpt) ([]*Line, error) {
	ts := &tkState{}
	TokenPrefs()(ts)
	for _, opt := range opts {
		opt(ts)
	}
	var res []*Line
	off, lineNo := 0, 1
	for off < len(src) {
		var eol string
		next := len(src)
		body := src[off:]
		if end := bytes.IndexByte(body, '\n'); end != -1 {
			body = body[:end]
			next = off + end + 1
			eol = "\n"
			if n := len(body); n > 0 && body[n-1] == '\r' {
				body = body[:n-1]
				eol = "\r\n"
			}
		}
		ts.off, ts.lineNo, ts.body = off, lineNo, body
		ln, err := ts.line()
		if err != nil {
			return nil, err
		}
		ln.EOL = eol
		if debug.Tokenize() {
			debug.Logf("%d: %s %q\n", lineNo, ln.Type, ln.String())
		}
		res = append(res, ln)
		off = next
		lineNo++
	}
	return res, nil
}

func (ts *tkState) pos(col int) Pos {
	return posIn(ts.body, ts.off, ts.lineNo, col)
}

func (ts *tkState) line() (*Line, error) {
	body := ts.body
	if !utf8.Valid(body) {
		i := 0
		for i < len(body) {
			r, n := utf8.DecodeRune(body[i:])
			if r == utf8.RuneError && n <= 1 {
				break
			}
			i += n
		}
		return nil, NewFormatError(ErrBadUTF8, ts.pos(i))
	}
	i := 0
	if ts.off == 0 && bytes.HasPrefix(body, utf8BOM) {
		i = len(utf8BOM)
	}
	for i < len(body) && isSpace(body[i]) {
		i++
	}
	ln := &Line{
		Pos:    ts.pos(0),
		Indent: string(body[:i]),
	}
	rest := body[i:]
	switch {
	case len(rest) == 0:
		ln.Type = LBlank
		return ln, nil
	case strings.IndexByte(ts.markers, rest[0]) != -1:
		ln.Type = LComment
		ln.Text = string(rest)
		return ln, nil
	case rest[0] == '[':
		ln.Type = LSection
		return ln, ts.section(ln, i)
	default:
		ln.Type = LKeyValue
		return ln, ts.keyValue(ln, i)
	}
}

func (ts *tkState) section(ln *Line, i int) error {
	rest := ts.body[i:]
	end := bytes.IndexByte(rest, ']')
	if end == -1 {
		return NewFormatError(fmt.Errorf("%w: missing ']'", ErrBadSection), ts.pos(len(ts.body)))
	}
	name := string(bytes.TrimSpace(rest[1:end]))
	if err := CheckKey(name); err != nil {
		return NewFormatError(fmt.Errorf("%w: %w", ErrBadSection, err), ts.pos(i+1))
	}
	trail := rest[end+1:]
	if !isTrail(trail, ts.markers) {
		return UnexpectedErr(fmt.Sprintf("%q after section header", trail), ts.pos(i+end+1))
	}
	ln.Raw = string(rest[:end+1])
	ln.Section = name
	ln.Trail = string(trail)
	return nil
}

func (ts *tkState) isSep(c byte) bool {
	return strings.IndexByte(ts.seps, c) != -1
}

func (ts *tkState) keyValue(ln *Line, i int) error {
	rest := ts.body[i:]
	k := 0
	for k < len(rest) && !isSpace(rest[k]) && !ts.isSep(rest[k]) {
		k++
	}
	key := string(rest[:k])
	if err := CheckKey(key); err != nil {
		return NewFormatError(err, ts.pos(i))
	}
	j := k
	for j < len(rest) && isSpace(rest[j]) {
		j++
	}
	if j == len(rest) || !ts.isSep(rest[j]) {
		return ExpectedErr(fmt.Sprintf("one of %q after key %q", ts.seps, key), ts.pos(i+j))
	}
	j++
	for j < len(rest) && isSpace(rest[j]) {
		j++
	}
	ln.Key = key
	ln.Sep = string(rest[k:j])
	val := rest[j:]
	col := i + j
	if len(val) > 0 && (val[0] == '"' || val[0] == '\'') {
		n := quotedLen(val)
		if n == -1 {
			return NewFormatError(fmt.Errorf("%w: quoted value", ErrUnterminated), ts.pos(col))
		}
		raw := string(val[:n])
		v, err := Unquote(raw)
		if err != nil {
			return NewFormatError(err, ts.pos(col))
		}
		if !isTrail(val[n:], ts.markers) {
			return UnexpectedErr(fmt.Sprintf("%q after quoted value", val[n:]), ts.pos(col+n))
		}
		ln.Raw = raw
		ln.Quote = val[0]
		ln.Value = v
		ln.Trail = string(val[n:])
		return nil
	}
	end := commentStart(val, ts.markers)
	raw := bytes.TrimRight(val[:end], " \t")
	ln.Raw = string(raw)
	ln.Value = ln.Raw
	ln.Trail = string(val[len(raw):])
	return nil
}

// CheckKey validates a dotted key: non-empty segments, no whitespace and
// no backslash (the path separator cannot be escaped).
func CheckKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrBadKey)
	}
	if i := strings.IndexAny(key, " \t"); i != -1 {
		return fmt.Errorf("%w: whitespace in %q", ErrBadKey, key)
	}
	if strings.IndexByte(key, '\\') != -1 {
		return fmt.Errorf("%w: escaped separator in %q", ErrBadKey, key)
	}
	for _, seg := range strings.Split(key, ".") {
		if seg == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrBadKey, key)
		}
	}
	return nil
}
