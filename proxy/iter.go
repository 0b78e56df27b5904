package proxy

import (
	"iter"
	"slices"
)

// Pair is one key and value of a proxy.
type Pair struct {
	Key   string
	Value any
}

// All yields every entry: first the converted entries as they are, then
// the raw entries, each converted as with Get as it is yielded. The keys
// are fixed when iteration starts; entries deleted meanwhile are skipped.
// Stopping early leaves the remaining raw entries unconverted.
func (p *Proxy) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		convKeys := slices.Clone(p.converted.keys)
		rawKeys := slices.Clone(p.raw.keys)
		for _, k := range convKeys {
			v, ok := p.converted.get(k)
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
		for _, k := range rawKeys {
			if !p.Has(k) {
				continue
			}
			if !yield(k, p.Get(k)) {
				return
			}
		}
	}
}

// Each calls f on the entries of All until f returns false.
func (p *Proxy) Each(f func(key string, v any) bool) {
	for k, v := range p.All() {
		if !f(k, v) {
			return
		}
	}
}

// Pairs collects All.
func (p *Proxy) Pairs() []Pair {
	res := make([]Pair, 0, p.Size())
	for k, v := range p.All() {
		res = append(res, Pair{Key: k, Value: v})
	}
	return res
}

// Take collects at most n entries of All, converting only those.
func (p *Proxy) Take(n int) []Pair {
	if n <= 0 {
		return []Pair{}
	}
	res := make([]Pair, 0, min(n, p.Size()))
	for k, v := range p.All() {
		res = append(res, Pair{Key: k, Value: v})
		if len(res) == n {
			break
		}
	}
	return res
}
