package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/hashproxy/format"
	"github.com/signadot/hashproxy/ir"
	"github.com/signadot/hashproxy/proxy"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
)

func orderedFixture() *proxy.Proxy {
	return proxy.FromMapSlice(yaml.MapSlice{
		{Key: "b", Value: uint64(1)},
		{Key: "a", Value: yaml.MapSlice{{Key: "c", Value: "d"}}},
	})
}

func TestEncodeYAML(t *testing.T) {
	p := orderedFixture()
	if got, want := MustString(p), "b: 1\na:\n  c: d"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	p.Get("b")
	if got, want := MustString(p), "a:\n  c: d\nb: 1"; got != want {
		t.Errorf("after get: got %q want %q", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	p := orderedFixture()
	opts := []EncodeOption{EncodeFormat(format.JSONFormat), EncodeIndent(0)}
	want := `{"a":{"c":"d"},"b":1}`
	if got := MustString(p, opts...); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	raw := []any{yaml.MapSlice{{Key: "x", Value: true}}}
	if got, want := MustString(raw, opts...), `[{"x":true}]`; got != want {
		t.Errorf("raw: got %q want %q", got, want)
	}
}

func TestEncodeAbsent(t *testing.T) {
	for _, f := range format.AllFormats() {
		if got := MustString(proxy.NoValue, EncodeFormat(f)); got != "null" {
			t.Errorf("%s: got %q want null", f, got)
		}
	}
}

func TestEncodeNewline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode("x", buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "x\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeKeys(t *testing.T) {
	p := proxy.New(map[string]any{"a": 1, "b": nil, "c": []any{}})
	p.Get("zz")
	buf := bytes.NewBuffer(nil)
	if err := EncodeKeys(p, buf); err != nil {
		t.Fatal(err)
	}
	want := "a:  Scalar\nb:  Absent\nc:  Sequence\nzz: Absent\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := p.Values()[0]; got != 1 {
		t.Errorf("listing converted a: %v", got)
	}
	buf.Reset()
	if err := EncodeKeys(p, buf, EncodeFormat(format.JSONFormat), EncodeIndent(0)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `["a","b","c","zz"]`+"\n"; got != want {
		t.Errorf("json: got %q want %q", got, want)
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	c := NewColors()
	got := c.Color(ir.StringType, ValueColor, "100%")
	if !strings.Contains(got, "100%") || !strings.HasPrefix(got, "\x1b[") {
		t.Errorf("got %q", got)
	}
	if got := c.Color(ir.ArrayType, ValueColor, "x"); got != "x" {
		t.Errorf("default: got %q", got)
	}
	out := MustString(orderedFixture(), EncodeColors(c))
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("no escapes in %q", out)
	}
	if got := MustString(proxy.NoValue, EncodeColors(c)); !strings.Contains(got, "null") || got == "null" {
		t.Errorf("absent: got %q", got)
	}
}
