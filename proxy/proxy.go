package proxy

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/hashproxy/debug"

	"github.com/goccy/go-yaml"
)

// AssignSuffix marks a dispatched name as a setter.
const AssignSuffix = "="

// Proxy wraps one mapping of a document. Entries start in the raw
// partition in their decoded form and move to the converted partition,
// wrapped, the first time they are requested. A key is in exactly one
// partition at a time.
//
// A Proxy is not safe for concurrent use.
type Proxy struct {
	raw       *entries
	converted *entries

	// conversions run by this proxy, for tests.
	nconv int
}

// New wraps m, taking ownership of it. Entries of m are removed from it as
// they are converted. Raw keys are ordered lexically.
func New(m map[string]any) *Proxy {
	if m == nil {
		m = map[string]any{}
	}
	raw := &entries{
		keys: slices.Sorted(maps.Keys(m)),
		vals: m,
	}
	return &Proxy{raw: raw, converted: newEntries(0)}
}

// FromAnyMap wraps a mapping with arbitrary keys, normalizing them to
// strings. Raw keys are ordered lexically. When several keys normalize to
// the same string, such as 1 and "1", the value of the key whose Go type
// name sorts last is kept.
func FromAnyMap(m map[any]any) *Proxy {
	return New(normalizeKeys(m))
}

func normalizeKeys(m map[any]any) map[string]any {
	keys := slices.SortedFunc(maps.Keys(m), func(a, b any) int {
		return cmp.Or(
			strings.Compare(NormalizeKey(a), NormalizeKey(b)),
			strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)),
		)
	})
	res := make(map[string]any, len(m))
	for _, k := range keys {
		res[NormalizeKey(k)] = m[k]
	}
	return res
}

// FromMapSlice wraps an ordered mapping, keeping its order in the raw
// partition. For repeated keys the last value wins at the position of the
// first.
func FromMapSlice(ms yaml.MapSlice) *Proxy {
	raw := newEntries(len(ms))
	for _, item := range ms {
		raw.set(NormalizeKey(item.Key), item.Value)
	}
	return &Proxy{raw: raw, converted: newEntries(0)}
}

// Wrap returns a proxy for any mapping kind, and false for anything else.
func Wrap(v any) (*Proxy, bool) {
	switch x := v.(type) {
	case *Proxy:
		return x, x != nil
	case map[string]any:
		return New(x), true
	case map[any]any:
		return FromAnyMap(x), true
	case yaml.MapSlice:
		return FromMapSlice(x), true
	default:
		return nil, false
	}
}

// NormalizeKey returns the canonical string form of a key.
func NormalizeKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprint(key)
	}
}

// Convert returns the navigable form of v: sequences have their elements
// converted in place, mappings become a new Proxy, nil and Absent become
// NoValue and scalars are returned unchanged. Nested mappings are wrapped
// but not themselves converted.
func Convert(v any) any {
	switch KindOf(v) {
	case SequenceKind:
		seq := v.([]any)
		for i := range seq {
			seq[i] = Convert(seq[i])
		}
		return seq
	case MappingKind:
		p, _ := Wrap(v)
		return p
	case AbsentKind:
		return NoValue
	default:
		return v
	}
}

func (p *Proxy) convert(k string, v any) any {
	p.nconv++
	res := Convert(v)
	if debug.Convert() {
		debug.Logf("proxy: converted %q %s -> %s\n", k, KindOf(v), KindOf(res))
	}
	return res
}

// Get returns the converted value for key, converting and caching it on
// first access. Missing keys yield NoValue, which is cached as well.
func (p *Proxy) Get(key any) any {
	k := NormalizeKey(key)
	if v, ok := p.converted.get(k); ok {
		return v
	}
	raw, _ := p.raw.remove(k)
	v := p.convert(k, raw)
	p.converted.set(k, v)
	return v
}

// Set stores the converted form of v under key, replacing any prior value
// in either partition.
func (p *Proxy) Set(key any, v any) {
	k := NormalizeKey(key)
	p.raw.remove(k)
	p.converted.set(k, p.convert(k, v))
}

// Has reports whether key is present in either partition.
func (p *Proxy) Has(key any) bool {
	k := NormalizeKey(key)
	return p.converted.has(k) || p.raw.has(k)
}

// Delete removes key, reporting whether it was present.
func (p *Proxy) Delete(key any) bool {
	k := NormalizeKey(key)
	if _, ok := p.converted.remove(k); ok {
		return true
	}
	_, ok := p.raw.remove(k)
	return ok
}

// Size returns the number of keys over both partitions.
func (p *Proxy) Size() int {
	return p.raw.len() + p.converted.len()
}

// Keys returns the raw keys followed by the converted keys. It does not
// convert anything.
func (p *Proxy) Keys() []string {
	res := make([]string, 0, p.Size())
	res = append(res, p.raw.keys...)
	return append(res, p.converted.keys...)
}

// Values returns the raw values, as decoded, followed by the converted
// values. It does not convert anything, so raw mappings are returned
// unwrapped.
func (p *Proxy) Values() []any {
	res := make([]any, 0, p.Size())
	for _, v := range p.raw.all() {
		res = append(res, v)
	}
	for _, v := range p.converted.all() {
		res = append(res, v)
	}
	return res
}

// RespondsTo reports whether name, less any assignment suffix, is a key in
// either partition. Since Get caches misses, a name responds after it has
// been requested once, even if it was never in the document.
func (p *Proxy) RespondsTo(name string) bool {
	if name != AssignSuffix {
		name = strings.TrimSuffix(name, AssignSuffix)
	}
	return p.Has(name)
}

// Dispatch serves attribute style access: a name ending in AssignSuffix
// sets the key before the suffix to args[0] and returns the stored value;
// any other name is a Get. The bare suffix is an error.
func (p *Proxy) Dispatch(name string, args ...any) (any, error) {
	if name == AssignSuffix {
		return nil, fmt.Errorf("%w: %q has no key", ErrInvalidOperation, name)
	}
	k, isSet := strings.CutSuffix(name, AssignSuffix)
	if !isSet {
		return p.Get(name), nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s expects 1 argument, got %d", ErrInvalidOperation, name, len(args))
	}
	p.Set(k, args[0])
	return p.Get(k), nil
}

func (p *Proxy) String() string {
	d, err := p.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<proxy: %v>", err)
	}
	return string(d)
}
