// Package kpath parses navigation paths such as "a.b[0].c" or "$.a.'x.y'".
package kpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// KPath is one step of a parsed path. Exactly one of Field or Index is set,
// except for the empty root path which has neither.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

// Keys returns the steps of the path as navigation keys: string for fields
// and int for indices.
func (p *KPath) Keys() []any {
	var res []any
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			res = append(res, *x.Field)
		case x.Index != nil:
			res = append(res, *x.Index)
		}
	}
	return res
}

func (p *KPath) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			f := *x.Field
			if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
				buf.WriteString("." + f)
				continue
			}
			buf.WriteString(".'" + strings.ReplaceAll(f, "'", "\\'") + "'")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Parse parses p. A leading '$' is optional, as is the '.' before the first
// field.
func Parse(p string) (*KPath, error) {
	p = strings.TrimPrefix(p, "$")
	root := &KPath{}
	if len(p) == 0 {
		return root, nil
	}
	if p[0] != '.' && p[0] != '[' {
		p = "." + p
	}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *KPath) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &KPath{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseIndex accepts negative indices, which count from the end of a
// sequence when navigated.
func parseIndex(is string) (int, error) {
	i64, err := strconv.ParseInt(is, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: %w", is, err)
	}
	return int(i64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				res = append(res, c)
			}
			escaped = !escaped
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}
