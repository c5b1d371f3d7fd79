package kpath

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const Sep = '.'

var (
	ErrEmptyPath    = errors.New("empty path")
	ErrEmptySegment = errors.New("empty path segment")
	ErrBadSegment   = errors.New("segment cannot be written as a key")
)

// PathError reports a malformed path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: %s", e.Path, e.Err.Error())
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// KPath is a parsed path: one field per segment, linked root first.
type KPath struct {
	Field string
	Next  *KPath
}

// Parse parses a dotted path.
//
// Examples:
//   - "a.b.c" → 3 segments
//   - "a" → 1 segment
//   - "" → ErrEmptyPath
//   - "a..b" → ErrEmptySegment
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, &PathError{Path: kpath, Err: ErrEmptyPath}
	}
	var root, last *KPath
	for seg := range strings.SplitSeq(kpath, string(Sep)) {
		if seg == "" {
			return nil, &PathError{Path: kpath, Err: ErrEmptySegment}
		}
		p := &KPath{Field: seg}
		if root == nil {
			root = p
		} else {
			last.Next = p
		}
		last = p
	}
	return root, nil
}

// ParseKey is Parse restricted to paths whose segments can be written
// back as keys: no whitespace, control characters, separators ('=' or
// ':') or backslashes, and no segment starting with '#', ';' or '['.
func ParseKey(kpath string) (*KPath, error) {
	p, err := Parse(kpath)
	if err != nil {
		return nil, err
	}
	for x := p; x != nil; x = x.Next {
		if !writable(x.Field) {
			return nil, &PathError{Path: kpath, Err: fmt.Errorf("%w: %q", ErrBadSegment, x.Field)}
		}
	}
	return p, nil
}

func writable(seg string) bool {
	if !utf8.ValidString(seg) {
		return false
	}
	switch seg[0] {
	case '#', ';', '[':
		return false
	}
	for _, r := range seg {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '=', ':', '\\':
			return false
		}
	}
	return true
}

// MustParse is like Parse but panics on malformed paths.
func MustParse(kpath string) *KPath {
	p, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for x := p; x != nil; x = x.Next {
		if b.Len() > 0 {
			b.WriteByte(Sep)
		}
		b.WriteString(x.Field)
	}
	return b.String()
}

// Segments returns the fields from root to leaf.
func (p *KPath) Segments() []string {
	var res []string
	for x := p; x != nil; x = x.Next {
		res = append(res, x.Field)
	}
	return res
}

func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the leaf segment.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of p without its leaf segment, or nil for a
// single-segment path.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := &KPath{Field: p.Field}
	dst := res
	for x := p.Next; x.Next != nil; x = x.Next {
		dst.Next = &KPath{Field: x.Field}
		dst = dst.Next
	}
	return res
}

// Append returns a copy of p followed by q.
func (p *KPath) Append(q *KPath) *KPath {
	segs := append(p.Segments(), q.Segments()...)
	if len(segs) == 0 {
		return nil
	}
	res := &KPath{Field: segs[0]}
	dst := res
	for _, s := range segs[1:] {
		dst.Next = &KPath{Field: s}
		dst = dst.Next
	}
	return res
}

// Split splits a path into its first segment and the rest.
//
// Examples:
//   - Split("a.b.c") → ("a", "b.c")
//   - Split("a") → ("a", "")
//   - Split("") → ("", "")
func Split(kpath string) (first string, rest string) {
	i := strings.IndexByte(kpath, Sep)
	if i == -1 {
		return kpath, ""
	}
	return kpath[:i], kpath[i+1:]
}

// RSplit splits a path into its parent and its last segment.
//
// Examples:
//   - RSplit("a.b.c") → ("a.b", "c")
//   - RSplit("a") → ("", "a")
func RSplit(kpath string) (parent string, last string) {
	i := strings.LastIndexByte(kpath, Sep)
	if i == -1 {
		return "", kpath
	}
	return kpath[:i], kpath[i+1:]
}

// Join joins non-empty path parts with the separator.
func Join(parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(Sep)
		}
		b.WriteString(part)
	}
	return b.String()
}

// HasPrefix reports whether prefix names path itself or one of its
// ancestors, segment-wise: "a.b" has prefix "a" but not "a.b.c" or "a.".
func HasPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == Sep
}

// TrimPrefix removes an ancestor prefix from path. It returns path
// unchanged if prefix is not a segment-wise prefix of it.
func TrimPrefix(path, prefix string) string {
	if prefix == "" || !HasPrefix(path, prefix) {
		return path
	}
	if len(path) == len(prefix) {
		return ""
	}
	return path[len(prefix)+1:]
}
