package proxy

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/hashproxy/debug"
	"github.com/signadot/hashproxy/ir"

	"github.com/goccy/go-yaml"
)

const (
	// ProxyTag marks the persisted form of a Proxy: an array holding the
	// raw and converted partitions as objects.
	ProxyTag = "!proxy"
	// AbsentTag marks a persisted Absent.
	AbsentTag = "!absent"
)

// State returns the raw and converted partitions, in order. The values
// are shared with the proxy.
func (p *Proxy) State() (raw, converted []Pair) {
	return statePairs(p.raw), statePairs(p.converted)
}

func statePairs(e *entries) []Pair {
	res := make([]Pair, 0, e.len())
	for k, v := range e.all() {
		res = append(res, Pair{Key: k, Value: v})
	}
	return res
}

// FromState builds a proxy with the given partitions, as returned by
// State. Values are used verbatim: raw values are not converted and
// converted values are trusted to be converted already. A key present in
// both partitions is kept only in converted.
func FromState(raw, converted []Pair) *Proxy {
	p := &Proxy{raw: newEntries(len(raw)), converted: newEntries(len(converted))}
	for _, pair := range converted {
		p.converted.set(pair.Key, pair.Value)
	}
	for _, pair := range raw {
		if p.converted.has(pair.Key) {
			continue
		}
		p.raw.set(pair.Key, pair.Value)
	}
	return p
}

// MarshalIR returns the persisted form of p: an array tagged ProxyTag
// whose two elements are the raw and converted partitions. Nested proxies
// are persisted the same way, so conversion progress survives a round
// trip at every depth.
//
// Integer widths are not kept: every integer, such as the uint64 and
// int64 values produced by parsing, is restored as int, and an unsigned
// value beyond the int64 range is restored as its decimal string.
func (p *Proxy) MarshalIR() (*ir.Node, error) {
	raw, err := entriesIR(p.raw)
	if err != nil {
		return nil, fmt.Errorf("raw: %w", err)
	}
	conv, err := entriesIR(p.converted)
	if err != nil {
		return nil, fmt.Errorf("converted: %w", err)
	}
	return ir.FromSlice([]*ir.Node{raw, conv}).WithTag(ProxyTag), nil
}

func entriesIR(e *entries) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, e.len())
	for k, v := range e.all() {
		n, err := valueIR(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(k), Val: n})
	}
	return ir.FromKeyVals(kvs), nil
}

func valueIR(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *Proxy:
		if x == nil {
			return ir.Null(), nil
		}
		return x.MarshalIR()
	case Absent:
		return ir.Null().WithTag(AbsentTag), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := valueIR(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		return mappingIR(len(keys), func(i int) (string, any) { return keys[i], x[keys[i]] })
	case map[any]any:
		return valueIR(normalizeKeys(x))
	case yaml.MapSlice:
		return mappingIR(len(x), func(i int) (string, any) { return NormalizeKey(x[i].Key), x[i].Value })
	default:
		return ir.FromAny(v)
	}
}

func mappingIR(n int, at func(int) (string, any)) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, n)
	for i := range n {
		k, v := at(i)
		node, err := valueIR(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		kvs[i] = ir.KeyVal{Key: ir.FromString(k), Val: node}
	}
	return ir.FromKeyVals(kvs), nil
}

// FromIR rebuilds a proxy from its persisted form.
func FromIR(node *ir.Node) (*Proxy, error) {
	if node.Tag != ProxyTag || node.Type != ir.ArrayType || len(node.Values) != 2 {
		return nil, fmt.Errorf("%w: expected %s array of 2 partitions", ErrBadState, ProxyTag)
	}
	rawNode, convNode := node.Values[0], node.Values[1]
	if rawNode.Type != ir.ObjectType || convNode.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: partitions must be objects", ErrBadState)
	}
	raw, err := pairsFromIR(rawNode)
	if err != nil {
		return nil, fmt.Errorf("raw: %w", err)
	}
	conv, err := pairsFromIR(convNode)
	if err != nil {
		return nil, fmt.Errorf("converted: %w", err)
	}
	return FromState(raw, conv), nil
}

// UnmarshalIR restores p from node, replacing both partitions.
func (p *Proxy) UnmarshalIR(node *ir.Node) error {
	q, err := FromIR(node)
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

func pairsFromIR(node *ir.Node) ([]Pair, error) {
	res := make([]Pair, len(node.Fields))
	for i, f := range node.Fields {
		v, err := valueFromIR(node.Values[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.String, err)
		}
		res[i] = Pair{Key: f.String, Value: v}
	}
	return res, nil
}

func valueFromIR(node *ir.Node) (any, error) {
	switch node.Tag {
	case ProxyTag:
		return FromIR(node)
	case AbsentTag:
		return NoValue, nil
	case "":
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", ErrBadState, node.Tag)
	}
	switch node.Type {
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := valueFromIR(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			v, err := valueFromIR(node.Values[i])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.String, err)
			}
			res[f.String] = v
		}
		return res, nil
	default:
		return ir.ToAny(node), nil
	}
}

// MarshalBinary encodes the persisted form of p as IR JSON. This also
// makes a Proxy encodable with encoding/gob. Scalars are normalized as
// described for MarshalIR.
func (p *Proxy) MarshalBinary() ([]byte, error) {
	node, err := p.MarshalIR()
	if err != nil {
		return nil, err
	}
	d, err := ir.ToJSON(node)
	if err != nil {
		return nil, err
	}
	if debug.Persist() {
		debug.Logf("proxy: persisted %d raw %d converted (%d bytes)\n", p.raw.len(), p.converted.len(), len(d))
	}
	return d, nil
}

// UnmarshalBinary restores p from the output of MarshalBinary, replacing
// both partitions.
func (p *Proxy) UnmarshalBinary(d []byte) error {
	node, err := ir.FromJSON(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadState, err)
	}
	if err := p.UnmarshalIR(node); err != nil {
		return err
	}
	if debug.Persist() {
		debug.Logf("proxy: restored %d raw %d converted\n", p.raw.len(), p.converted.len())
	}
	return nil
}
