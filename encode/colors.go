package encode

import (
	"strings"

	"github.com/signadot/hashproxy/ir"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/printer"
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
	AbsentColor
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
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = AbsentColor
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	able.Attr = ValueColor

	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// property splits the escape sequences a color function wraps around its
// argument.
func (c *Colors) property(t ir.Type, a ColorAttr) printer.PrintFunc {
	prefix, suffix, _ := strings.Cut(c.Color(t, a, "\x00"), "\x00")
	return func() *printer.Property {
		return &printer.Property{Prefix: prefix, Suffix: suffix}
	}
}

func (c *Colors) printer() *printer.Printer {
	return &printer.Printer{
		MapKey: c.property(ir.ObjectType, FieldColor),
		Bool:   c.property(ir.BoolType, ValueColor),
		String: c.property(ir.StringType, ValueColor),
		Number: c.property(ir.NumberType, ValueColor),
	}
}
