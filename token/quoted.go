package token

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// NeedsQuote reports whether v must be quoted to be read back unchanged
// as an unquoted value in a dialect with the given comment markers.
func NeedsQuote(v string, markers string) bool {
	if v == "" {
		return true
	}
	if isSpace(v[0]) || isSpace(v[len(v)-1]) {
		return true
	}
	switch v[0] {
	case '"', '\'':
		return true
	}
	if commentStart([]byte(v), markers) != len(v) {
		return true
	}
	for _, r := range v {
		if r == '\t' {
			continue
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return true
		}
	}
	return false
}

// FormatValue renders v as a value token. Unquoted values stay unquoted
// when possible; quote selects the style used otherwise (0 means double
// quotes).
func FormatValue(v string, quote byte, markers string) string {
	if quote == 0 {
		if !NeedsQuote(v, markers) {
			return v
		}
		quote = '"'
	}
	return Quote(v, quote)
}

// Quote quotes v with q ('"' or '\''). Single quotes cannot hold control
// characters; such values are double quoted instead.
func Quote(v string, q byte) string {
	if q == '\'' && !hasControl(v) {
		d := make([]byte, 1, len(v)+2)
		d[0] = '\''
		for i := 0; i < len(v); i++ {
			switch v[i] {
			case '\'', '\\':
				d = append(d, '\\', v[i])
			default:
				d = append(d, v[i])
			}
		}
		d = append(d, '\'')
		return string(d)
	}
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

func hasControl(v string) bool {
	for _, r := range v {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// quotedLen returns the length of the quoted token at the start of d,
// closing quote included, or -1 if it is not terminated.
func quotedLen(d []byte) int {
	q := d[0]
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\\':
			i++
		case q:
			return i + 1
		}
	}
	return -1
}

// Unquote decodes a complete quoted token.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != v[len(v)-1] || (v[0] != '"' && v[0] != '\'') {
		return "", ErrUnterminated
	}
	body := v[1 : len(v)-1]
	if v[0] == '\'' {
		return unquoteSingle(body), nil
	}
	return unquoteDouble(body)
}

func unquoteSingle(body string) string {
	if strings.IndexByte(body, '\\') == -1 {
		return body
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' && i+1 < len(body) && (body[i+1] == '\'' || body[i+1] == '\\') {
			i++
			c = body[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

func unquoteDouble(body string) (string, error) {
	if strings.IndexByte(body, '\\') == -1 {
		return body, nil
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(body) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		switch body[i] {
		case '"', '\\', '/':
			b.WriteByte(body[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, n, err := unicodeEscape(body[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, body[i])
		}
	}
	return b.String(), nil
}

// unicodeEscape decodes the hex digits following "\u", joining a
// surrogate pair when one follows. It returns the rune and the number of
// bytes consumed after the 'u'.
func unicodeEscape(d string) (rune, int, error) {
	r, err := hex4(d)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	if len(d) < 10 || d[4] != '\\' || d[5] != 'u' {
		return 0, 0, fmt.Errorf("%w: unpaired surrogate", ErrBadUnicode)
	}
	r2, err := hex4(d[6:])
	if err != nil {
		return 0, 0, err
	}
	dr := utf16.DecodeRune(r, r2)
	if dr == utf8.RuneError {
		return 0, 0, fmt.Errorf("%w: bad surrogate pair", ErrBadUnicode)
	}
	return dr, 10, nil
}

func hex4(d string) (rune, error) {
	if len(d) < 4 {
		return 0, fmt.Errorf("%w: short \\u escape", ErrBadUnicode)
	}
	n, err := strconv.ParseUint(d[:4], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadUnicode, d[:4])
	}
	return rune(n), nil
}
