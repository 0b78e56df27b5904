package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/hashproxy"
	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/format"
	"github.com/signadot/hashproxy/parse"
	"github.com/signadot/hashproxy/proxy"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

const serviceDoc = `
name: web
ports:
  - port: 80
labels:
  app: web
`

func loadService(t *testing.T) *proxy.Proxy {
	t.Helper()
	p, err := hashproxy.Load([]byte(serviceDoc))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

var jsonOpts = []encode.EncodeOption{
	encode.EncodeFormat(format.JSONFormat),
	encode.EncodeIndent(0),
}

func TestGetDoc(t *testing.T) {
	p := loadService(t)
	for path, want := range map[string]string{
		"labels.app":    `"web"`,
		"ports[0].port": `80`,
		"ports[-1]":     `{"port":80}`,
		"labels.nope.x": `null`,
	} {
		buf := bytes.NewBuffer(nil)
		if err := getDoc(buf, p, path, jsonOpts...); err != nil {
			t.Errorf("%s: %v", path, err)
			continue
		}
		if got := strings.TrimSpace(buf.String()); got != want {
			t.Errorf("%s: got %s want %s", path, got, want)
		}
	}
	if err := getDoc(bytes.NewBuffer(nil), p, "a[", jsonOpts...); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("bad path: got %v want usage error", err)
	}
}

func TestKeysDoc(t *testing.T) {
	p := loadService(t)
	buf := bytes.NewBuffer(nil)
	if err := keysDoc(buf, p, "", encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	want := "name:   Scalar\nports:  Sequence\nlabels: Mapping\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	if err := keysDoc(buf, p, "labels", jsonOpts...); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != `["app"]` {
		t.Errorf("labels: got %s", got)
	}
	if err := keysDoc(buf, p, "name"); err == nil {
		t.Error("keys of a scalar: expected error")
	}
}

func TestSetDoc(t *testing.T) {
	p := loadService(t)
	buf := bytes.NewBuffer(nil)
	if err := setDoc(buf, p, "labels.tier=back", jsonOpts...); err != nil {
		t.Fatal(err)
	}
	want := `{"labels":{"app":"web","tier":"back"},"name":"web","ports":[{"port":80}]}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if err := setDoc(buf, p, "name.x=1", jsonOpts...); !errors.Is(err, proxy.ErrInvalidOperation) {
		t.Errorf("set into scalar: got %v", err)
	}
}

func TestParseAssign(t *testing.T) {
	path, val, err := parseAssign("a.b=[1, x]")
	if err != nil {
		t.Fatal(err)
	}
	if path != "a.b" {
		t.Errorf("path %q", path)
	}
	if diff := cmp.Diff([]any{uint64(1), "x"}, val); diff != "" {
		t.Error(diff)
	}
	for _, bad := range []string{"a", "=1", "a=[1"} {
		if _, _, err := parseAssign(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestEvalDoc(t *testing.T) {
	for src, want := range map[string]string{
		`text("name") + "-x"`:        `"web-x"`,
		`has("labels.missing")`:      `false`,
		`has("labels.app")`:          `true`,
		`keys("labels")`:             `["app"]`,
		`get("ports[0].port") > 50`:  `true`,
		`absent(get("nope.deeper"))`: `true`,
		`text("nope")`:               `""`,
		`doc.Size()`:                 `3`,
	} {
		p := loadService(t)
		buf := bytes.NewBuffer(nil)
		if err := evalDoc(buf, p, src, jsonOpts...); err != nil {
			t.Errorf("%s: %v", src, err)
			continue
		}
		if got := strings.TrimSpace(buf.String()); got != want {
			t.Errorf("%s: got %s want %s", src, got, want)
		}
	}
	if err := evalDoc(bytes.NewBuffer(nil), loadService(t), `keys("name")`); err == nil {
		t.Error("keys of a scalar: expected error")
	}
}

func TestPatchDoc(t *testing.T) {
	ops, err := decodePatch([]byte(`[
		{"op": "replace", "path": "/name", "value": "api"},
		{"op": "add", "path": "/labels/tier", "value": "back"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	p, err := patchDoc(loadService(t), ops)
	if err != nil {
		t.Fatal(err)
	}
	if got := proxy.Dig(p, "name"); got != "api" {
		t.Errorf("name: got %v", got)
	}
	if got := proxy.Dig(p, "labels", "tier"); got != "back" {
		t.Errorf("tier: got %v", got)
	}

	ops, err = decodePatch([]byte("- op: remove\n  path: /ports\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, err = patchDoc(loadService(t), ops)
	if err != nil {
		t.Fatal(err)
	}
	if p.Has("ports") {
		t.Error("ports not removed")
	}

	ops, err = decodePatch([]byte(`[{"op": "remove", "path": "/nope"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := patchDoc(loadService(t), ops); err == nil {
		t.Error("remove of missing path: expected error")
	}
}

func TestDumpLoad(t *testing.T) {
	p := loadService(t)
	buf := bytes.NewBuffer(nil)
	if err := dumpDoc(buf, p, splitPaths("labels.app,nope")); err != nil {
		t.Fatal(err)
	}
	if err := dumpDoc(buf, loadService(t), nil); err != nil {
		t.Fatal(err)
	}
	ps, err := loadDump(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d proxies", len(ps))
	}
	_, conv := ps[0].State()
	if diff := cmp.Diff([]string{"labels", "nope"}, pairKeys(conv)); diff != "" {
		t.Error(diff)
	}
	want := encode.MustString(p, jsonOpts...)
	if got := encode.MustString(ps[0], jsonOpts...); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if _, err := loadDump([]byte("{}\nnot json\n")); !errors.Is(err, proxy.ErrBadState) {
		t.Errorf("got %v want ErrBadState", err)
	}
}

func pairKeys(ps []proxy.Pair) []string {
	res := make([]string, len(ps))
	for i, p := range ps {
		res[i] = p.Key
	}
	return res
}

func TestVerifyDoc(t *testing.T) {
	doc, err := parse.Parse([]byte(serviceDoc))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	ok, err := verifyDoc(buf, doc, splitPaths("labels.app,ports[0].port"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok || buf.String() != "ok\n" {
		t.Errorf("got %v %q", ok, buf.String())
	}

	doc, _ = parse.Parse([]byte(serviceDoc))
	buf.Reset()
	ok, err = verifyDoc(buf, doc, splitPaths("missing"))
	if err != nil {
		t.Fatal(err)
	}
	if ok || !strings.Contains(buf.String(), "missing") {
		t.Errorf("cached miss: got %v %q", ok, buf.String())
	}

	if _, err := verifyDoc(buf, []any{1}, nil); !errors.Is(err, hashproxy.ErrNotMapping) {
		t.Errorf("got %v want ErrNotMapping", err)
	}
}
