package encode

import (
	"github.com/fatih/color"

	"github.com/signadot/rjson/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(...any) string
	Map     map[Colorable]func(...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, t := range []ir.Type{ir.SignedType, ir.UnsignedType, ir.DoubleType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintFunc()
	}

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintFunc()

	able.Type = ir.BoolType
	colors.Map[able] = color.New(color.FgCyan).SprintFunc()

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintFunc()

	able.Type = ir.ObjectType
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintFunc()
	return colors
}

func colorDefault(v ...any) string {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			return s
		}
	}
	return ""
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
