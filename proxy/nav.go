package proxy

import (
	"fmt"
	"strconv"

	"github.com/signadot/hashproxy/kpath"
)

// Navigator is implemented by values that can be navigated by key: *Proxy
// and Absent.
type Navigator interface {
	Get(key any) any
}

var (
	_ Navigator = (*Proxy)(nil)
	_ Navigator = Absent{}
)

// Dig navigates from v through keys. Navigators are navigated with Get;
// sequences are indexed with int keys or decimal string keys, negative
// indices counting from the end. Anything else, or an index out of range,
// yields NoValue, and so does every later step.
func Dig(v any, keys ...any) any {
	for _, k := range keys {
		v = step(v, k)
	}
	return v
}

func step(v, key any) any {
	switch x := v.(type) {
	case Navigator:
		return x.Get(key)
	case []any:
		i, ok := seqIndex(len(x), key)
		if !ok {
			return NoValue
		}
		if x[i] == nil {
			return NoValue
		}
		return x[i]
	default:
		return NoValue
	}
}

func seqIndex(n int, key any) (int, bool) {
	var i int
	switch k := key.(type) {
	case int:
		i = k
	case string:
		v, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		i = v
	default:
		return 0, false
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// GetPath digs from v along a path such as "a.b[0].c".
func GetPath(v any, path string) (any, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, err
	}
	return Dig(v, kp.Keys()...), nil
}

// SetPath sets val at path below p, creating empty proxies for missing or
// absent intermediate keys. Setting through a scalar, or at an index
// outside a sequence, is an error.
func SetPath(p *Proxy, path string, val any) error {
	kp, err := kpath.Parse(path)
	if err != nil {
		return err
	}
	keys := kp.Keys()
	if len(keys) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidOperation)
	}
	var cur any = p
	for i, k := range keys {
		last := i == len(keys)-1
		switch x := cur.(type) {
		case *Proxy:
			if last {
				x.Set(k, val)
				return nil
			}
			next := x.Get(k)
			if IsAbsent(next) {
				next = New(nil)
				x.Set(k, next)
			}
			cur = next
		case []any:
			j, ok := seqIndex(len(x), k)
			if !ok {
				return fmt.Errorf("%w: index %v out of range at %s", ErrInvalidOperation, k, pathPrefix(keys[:i+1]))
			}
			if last {
				x[j] = Convert(val)
				return nil
			}
			cur = x[j]
		default:
			return fmt.Errorf("%w: cannot set through %s at %s", ErrInvalidOperation, KindOf(cur), pathPrefix(keys[:i]))
		}
	}
	return nil
}

func pathPrefix(keys []any) string {
	root := &kpath.KPath{}
	x := root
	for i, k := range keys {
		switch kk := k.(type) {
		case int:
			x.Index = &kk
		case string:
			x.Field = &kk
		}
		if i < len(keys)-1 {
			x.Next = &kpath.KPath{}
			x = x.Next
		}
	}
	return root.String()
}
