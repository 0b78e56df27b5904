// Package parse decodes JSON and YAML text into raw documents.
//
// Mappings decode as yaml.MapSlice so that the source order of keys is
// kept; sequences decode as []any; scalars as string, bool, int64, uint64,
// float64 or nil. These are the shapes proxy.Convert understands.
//
//	doc, err := parse.Parse(d, parse.ParseJSON())
//
// Related packages:
//
//   - github.com/signadot/hashproxy/proxy - Navigate a raw document lazily
//   - github.com/signadot/hashproxy/encode - Encode documents to text
package parse
