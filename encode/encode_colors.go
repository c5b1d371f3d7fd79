package encode

import (
	"strings"

	"github.com/signadot/prefs/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Type token.LineType
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	SepColor
	ValueColor
	SectionColor
	// ChangedColor is used for values that differ from the source.
	ChangedColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range []token.LineType{token.LComment, token.LKeyValue, token.LSection} {
		colors.Map[Colorable{Type: t, Attr: CommentColor}] = color.BlueString
	}
	able := Colorable{Type: token.LKeyValue}
	able.Attr = KeyColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	able.Attr = ValueColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = ChangedColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Type = token.LSection
	able.Attr = SectionColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t token.LineType, a ColorAttr, s string) string {
	if s == "" {
		return s
	}
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t token.LineType, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
