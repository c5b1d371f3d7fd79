package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	PrefsFormat Format = iota
	INIFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":     PrefsFormat,
		"prefs": PrefsFormat,
		"i":     INIFormat,
		"ini":   INIFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PrefsFormat:
		return []byte("prefs"), nil
	case INIFormat:
		return []byte("ini"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsPrefs() bool { return f == PrefsFormat }
func (f Format) IsINI() bool   { return f == INIFormat }
func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// IsText reports whether documents in this format can be parsed into a
// tree and written back.
func (f Format) IsText() bool {
	return f == PrefsFormat || f == INIFormat
}

// CommentMarkers returns the bytes that start a comment.
func (f Format) CommentMarkers() string {
	if f == INIFormat {
		return "#;"
	}
	return "#"
}

// Separators returns the bytes accepted between a key and its value.
// The first one is used when a line is synthesized.
func (f Format) Separators() string {
	if f == INIFormat {
		return "=:"
	}
	return "="
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case PrefsFormat:
		return ".prefs"
	case INIFormat:
		return ".ini"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{PrefsFormat, INIFormat, JSONFormat, YAMLFormat}
}
