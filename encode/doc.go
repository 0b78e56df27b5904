// Package encode writes documents and proxies as JSON or YAML.
//
// A *proxy.Proxy encodes through its MarshalJSON and MarshalYAML methods,
// so encoding never converts entries. Raw documents from the parse package
// are encoded as they are, with ordered mappings made plain for JSON.
//
// # Colors
//
// EncodeColors highlights keys and scalars by type. Colors follow
// github.com/fatih/color, so they are disabled when output is not a
// terminal unless color.NoColor is cleared.
package encode
