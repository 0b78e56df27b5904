// Package ir provides a small tagged-union representation of documents.
//
// # Overview
//
// A Node is one value of a document tree. The Type field says which of the
// value fields is meaningful:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64, Float64 or, as a fallback, Number
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields[i] is the string key for Values[i]
//
// Nodes may carry a Tag, such as "!proxy", which consumers use to mark
// values needing special reconstruction.
//
// # Wire form
//
// Nodes marshal to and from JSON in a self-describing form:
//
//	d, err := ir.ToJSON(node)
//	node, err := ir.FromJSON(d)
//
// The proxy package uses this form to persist a Proxy's raw and converted
// partitions.
//
// # Plain values
//
// FromAny and ToAny convert between nodes and plain decoded Go values
// (map[string]any, []any and scalars).
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
