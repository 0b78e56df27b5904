package hashproxy

import (
	"errors"
	"testing"

	"github.com/signadot/hashproxy/parse"
	"github.com/signadot/hashproxy/proxy"

	"github.com/google/go-cmp/cmp"
)

func TestCreateFrom(t *testing.T) {
	for _, doc := range []any{
		map[string]any{"a": 1},
		map[any]any{1: "x"},
		proxy.New(nil),
	} {
		if _, err := CreateFrom(doc); err != nil {
			t.Errorf("%T: %v", doc, err)
		}
	}
	for _, doc := range []any{nil, []any{1}, "s", 0, proxy.NoValue} {
		if _, err := CreateFrom(doc); !errors.Is(err, ErrNotMapping) {
			t.Errorf("%#v: got %v want ErrNotMapping", doc, err)
		}
	}
}

func TestLoad(t *testing.T) {
	d := []byte(`
name: web
ports:
  - port: 80
    proto: tcp
labels:
  app: web
`)
	p, err := Load(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"name", "ports", "labels"}, p.Keys()); diff != "" {
		t.Error(diff)
	}
	if got := proxy.Dig(p, "ports", 0, "port"); got != uint64(80) {
		t.Errorf("port: got %#v", got)
	}
	if got := proxy.Dig(p, "labels", "missing", "deeper"); got != proxy.NoValue {
		t.Errorf("missing: got %#v", got)
	}
	if got, err := proxy.GetPath(p, "labels.app"); err != nil || got != "web" {
		t.Errorf("path: got %v, %v", got, err)
	}
}

func TestLoadJSON(t *testing.T) {
	p, err := Load([]byte(`{"b": 1, "a": {"c": null}}`), parse.ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if got := proxy.Dig(p, "a", "c"); got != proxy.NoValue {
		t.Errorf("null: got %#v", got)
	}
	if _, err := Load([]byte(`[1, 2]`), parse.ParseJSON()); !errors.Is(err, ErrNotMapping) {
		t.Errorf("got %v want ErrNotMapping", err)
	}
}

func TestLoadAll(t *testing.T) {
	ps, err := LoadAll([]byte("a: 1\n---\nb: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 || !ps[1].Has("b") {
		t.Fatalf("got %v", ps)
	}
	_, err = LoadAll([]byte("a: 1\n---\n- 2\n"))
	if !errors.Is(err, ErrNotMapping) {
		t.Errorf("got %v want ErrNotMapping", err)
	}
}
