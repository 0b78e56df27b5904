package proxy

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes the union of both partitions, converted entries
// winning, as encoding/json would encode the plain document. The output
// does not depend on how much of the proxy has been converted, and
// encoding converts nothing.
func (p *Proxy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.flatten())
}

func (p *Proxy) flatten() map[string]any {
	res := make(map[string]any, p.Size())
	for k, v := range p.raw.all() {
		res[k] = Plain(v)
	}
	for k, v := range p.converted.all() {
		res[k] = v
	}
	return res
}

// Plain rewrites the raw mapping shapes encoding/json cannot encode
// faithfully into map[string]any, copying as needed so raw values are left
// untouched.
func Plain(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := make(map[string]any, len(x))
		for _, item := range x {
			res[NormalizeKey(item.Key)] = Plain(item.Value)
		}
		return res
	case map[any]any:
		res := normalizeKeys(x)
		for k, elt := range res {
			res[k] = Plain(elt)
		}
		return res
	case map[string]any:
		if !needsPlain(x) {
			return x
		}
		res := make(map[string]any, len(x))
		for k, elt := range x {
			res[k] = Plain(elt)
		}
		return res
	case []any:
		if !needsPlain(x) {
			return x
		}
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = Plain(elt)
		}
		return res
	default:
		return v
	}
}

func needsPlain(v any) bool {
	switch x := v.(type) {
	case yaml.MapSlice, map[any]any:
		return true
	case map[string]any:
		for _, elt := range x {
			if needsPlain(elt) {
				return true
			}
		}
	case []any:
		for _, elt := range x {
			if needsPlain(elt) {
				return true
			}
		}
	}
	return false
}

// MarshalYAML implements yaml.InterfaceMarshaler, producing the union of
// both partitions in Keys order.
func (p *Proxy) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, 0, p.Size())
	for k, v := range p.raw.all() {
		res = append(res, yaml.MapItem{Key: k, Value: v})
	}
	for k, v := range p.converted.all() {
		res = append(res, yaml.MapItem{Key: k, Value: v})
	}
	return res, nil
}
