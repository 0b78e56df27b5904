// Package hashproxy builds lazy proxies over decoded JSON and YAML
// documents.
//
// Subpackages:
//
//   - proxy: the lazy mapping wrapper and the Absent sentinel
//   - parse: ordered decoding of JSON and YAML text
//   - encode: JSON and YAML output of proxies and raw documents
//   - kpath: key paths such as a.b[0].c
//   - ir: the tagged node tree used to persist proxies
package hashproxy

import (
	"errors"
	"fmt"

	"github.com/signadot/hashproxy/debug"
	"github.com/signadot/hashproxy/parse"
	"github.com/signadot/hashproxy/proxy"
)

var ErrNotMapping = errors.New("document is not a mapping")

// CreateFrom wraps a decoded document whose root is a mapping. The
// document is owned by the returned proxy.
func CreateFrom(doc any) (*proxy.Proxy, error) {
	p, ok := proxy.Wrap(doc)
	if !ok {
		return nil, fmt.Errorf("%w: root is %s", ErrNotMapping, proxy.KindOf(doc))
	}
	if debug.Load() {
		debug.Logf("hashproxy: wrapped %d raw entries\n", p.Size())
	}
	return p, nil
}

// Load parses a single document and wraps it.
func Load(d []byte, opts ...parse.ParseOption) (*proxy.Proxy, error) {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return CreateFrom(doc)
}

// LoadAll parses a document stream and wraps each document.
func LoadAll(d []byte, opts ...parse.ParseOption) ([]*proxy.Proxy, error) {
	docs, err := parse.ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	res := make([]*proxy.Proxy, len(docs))
	for i, doc := range docs {
		p, err := CreateFrom(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = p
	}
	return res, nil
}
