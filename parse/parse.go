package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/hashproxy/debug"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"
	yamlv3 "gopkg.in/yaml.v3"
)

// Parse decodes a single document. Empty input yields nil.
func Parse(d []byte, opts ...ParseOption) (any, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	switch len(docs) {
	case 0:
		return nil, nil
	case 1:
		return docs[0], nil
	default:
		return nil, fmt.Errorf("%w: expected 1 document, got %d", ErrParse, len(docs))
	}
}

// ParseAll decodes every document of a YAML stream. JSON input holds a
// single document.
func ParseAll(d []byte, opts ...ParseOption) ([]any, error) {
	pOpts := mkOpts(opts...)
	if pOpts.format.IsJSON() && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	var (
		res []any
		err error
	)
	if pOpts.unordered {
		res, err = decodeUnordered(d)
	} else {
		res, err = decodeOrdered(d)
	}
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("parse: decoded %d %s documents from %d bytes\n", len(res), pOpts.format, len(d))
	}
	return res, nil
}

func decodeOrdered(d []byte) ([]any, error) {
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	res := make([]any, 0, len(file.Docs))
	for i, doc := range file.Docs {
		if doc.Body == nil {
			if len(file.Docs) > 1 {
				res = append(res, nil)
			}
			continue
		}
		var v any
		if err := dec.DecodeFromNode(doc.Body, &v); err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, i, err)
		}
		res = append(res, v)
	}
	return res, nil
}

// decodeUnordered decodes mappings as map[string]any and integers as int.
func decodeUnordered(d []byte) ([]any, error) {
	dec := yamlv3.NewDecoder(bytes.NewReader(d))
	var res []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, len(res), err)
		}
		res = append(res, v)
	}
}
