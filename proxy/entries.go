package proxy

import (
	"iter"
	"slices"
)

// entries is an insertion ordered string keyed map.
type entries struct {
	keys []string
	vals map[string]any
}

func newEntries(n int) *entries {
	return &entries{
		keys: make([]string, 0, n),
		vals: make(map[string]any, n),
	}
}

func (e *entries) len() int {
	return len(e.keys)
}

func (e *entries) has(k string) bool {
	_, ok := e.vals[k]
	return ok
}

func (e *entries) get(k string) (any, bool) {
	v, ok := e.vals[k]
	return v, ok
}

// set overwrites in place when k is present, otherwise appends.
func (e *entries) set(k string, v any) {
	if _, ok := e.vals[k]; !ok {
		e.keys = append(e.keys, k)
	}
	e.vals[k] = v
}

func (e *entries) remove(k string) (any, bool) {
	v, ok := e.vals[k]
	if !ok {
		return nil, false
	}
	delete(e.vals, k)
	if i := slices.Index(e.keys, k); i != -1 {
		e.keys = slices.Delete(e.keys, i, i+1)
	}
	return v, true
}

func (e *entries) all() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range e.keys {
			if !yield(k, e.vals[k]) {
				return
			}
		}
	}
}
