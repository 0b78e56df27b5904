package encode

import (
	"io"
	"strings"

	"github.com/signadot/hashproxy/ir"
	"github.com/signadot/hashproxy/proxy"

	"github.com/mattn/go-runewidth"
)

// EncodeKeys writes the keys of p in Keys order. YAML output puts one key
// per line with the kind of its value in an aligned column; JSON output is
// an array of keys. Nothing is converted, so unconverted entries report the
// kind of their raw value.
func EncodeKeys(p *proxy.Proxy, w io.Writer, opts ...EncodeOption) error {
	es := mkState(opts...)
	keys := p.Keys()
	if es.format.IsJSON() {
		return Encode(keys, w, opts...)
	}
	c := es.colors
	if c == nil {
		c = &Colors{Default: colorDefault}
	}
	width := 0
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k))
	}
	for i, v := range p.Values() {
		kind := proxy.KindOf(v)
		kindText := c.Default(kind.String())
		if kind == proxy.AbsentKind {
			kindText = c.Color(ir.NullType, AbsentColor, kind.String())
		}
		ln := c.Color(ir.ObjectType, FieldColor, keys[i]) +
			c.Color(ir.ObjectType, SepColor, ":") +
			strings.Repeat(" ", 1+width-runewidth.StringWidth(keys[i])) +
			kindText + "\n"
		if err := writeString(w, ln); err != nil {
			return err
		}
	}
	return nil
}
