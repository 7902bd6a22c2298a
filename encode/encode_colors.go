package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	SepColor ColorAttr = iota
	TagColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[SepColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[TagColor] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[ValueColor] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) color(a ColorAttr, s string) string {
	f := c.Map[a]
	if f == nil {
		return c.Default(s)
	}
	return f(s)
}
