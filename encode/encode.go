package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/signadot/hashproxy/format"
	"github.com/signadot/hashproxy/ir"
	"github.com/signadot/hashproxy/proxy"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
)

type EncState struct {
	indent int
	format format.Format
	colors *Colors
}

// Encode writes v followed by a newline.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := mkState(opts...)
	if proxy.IsAbsent(v) && es.colors != nil {
		return writeString(w, es.colors.Color(ir.NullType, AbsentColor, "null")+"\n")
	}
	d, err := marshal(v, es)
	if err != nil {
		return err
	}
	d = bytes.TrimRight(d, "\n")
	if es.colors != nil {
		d = []byte(es.colors.printer().PrintTokens(lexer.Tokenize(string(d))))
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func marshal(v any, es *EncState) ([]byte, error) {
	if es.format.IsJSON() {
		v = proxy.Plain(v)
		if es.indent <= 0 {
			return json.Marshal(v)
		}
		return json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	}
	return yaml.MarshalWithOptions(v, yaml.Indent(max(es.indent, 1)))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
