// Package proxy provides lazy, memoizing navigation over decoded documents.
//
// # Overview
//
// A decoded JSON or YAML document is a tree of mappings, sequences and
// scalars. A Proxy wraps one mapping and converts its entries only when
// they are requested:
//
//	p := proxy.New(map[string]any{
//	    "a": map[string]any{"b": "v"},
//	})
//	a := p.Get("a")             // a *Proxy, created on this call
//	v := proxy.Dig(p, "a", "b") // "v"
//
// Each Proxy keeps two partitions. The raw partition holds entries as they
// were decoded; the converted partition holds entries that have been
// requested, in their navigable form. Get moves an entry from raw to
// converted exactly once, so later requests cost a map lookup.
//
// # Conversion
//
// Convert maps a value by its Kind:
//
//   - MappingKind: a new Proxy, itself lazy
//   - SequenceKind: the same []any, elements converted in place
//   - AbsentKind: NoValue
//   - ScalarKind: unchanged
//
// # Missing keys
//
// Requesting a key that is not present yields NoValue, an Absent. Absent
// navigates to itself and coerces to zero values, so
//
//	proxy.Dig(p, "no", "such", "key").(proxy.Absent).String() == ""
//
// Misses are cached like any other entry, so a requested missing key is
// afterwards reported by Has and RespondsTo.
//
// # Keys
//
// Keys are normalized to strings when a mapping is wrapped and when a key
// is requested. Raw keys keep the order of a yaml.MapSlice source and are
// sorted for Go maps; converted keys are in first request order. Keys and
// Values list raw entries first, unconverted; All lists converted entries
// first and converts the raw ones as it goes.
//
// # Serialization
//
// MarshalJSON encodes the same JSON as the plain document, however much
// has been converted. MarshalBinary and UnmarshalBinary persist both
// partitions through the ir package, so a partially converted proxy comes
// back partially converted.
//
// # Thread Safety
//
// Even Get mutates a Proxy. Synchronize access yourself when sharing one
// between goroutines.
package proxy
