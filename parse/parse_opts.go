package parse

import (
	"github.com/signadot/hashproxy/format"
)

type parseOpts struct {
	format    format.Format
	unordered bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// Unordered decodes with gopkg.in/yaml.v3: mappings as map[string]any
// instead of yaml.MapSlice and integers as int.
func Unordered() ParseOption {
	return func(o *parseOpts) { o.unordered = true }
}

func mkOpts(opts ...ParseOption) *parseOpts {
	res := &parseOpts{}
	for _, f := range opts {
		f(res)
	}
	return res
}
