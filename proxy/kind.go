package proxy

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Kind classifies a document value for conversion.
type Kind int

const (
	AbsentKind Kind = iota
	ScalarKind
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		AbsentKind:   "Absent",
		ScalarKind:   "Scalar",
		SequenceKind: "Sequence",
		MappingKind:  "Mapping",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Absent":   AbsentKind,
		"Scalar":   ScalarKind,
		"Sequence": SequenceKind,
		"Mapping":  MappingKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// KindOf reports the kind of v. Mappings are the decoded shapes produced by
// encoding/json and goccy/go-yaml (map[string]any, map[any]any,
// yaml.MapSlice) and existing proxies; sequences are []any. Go nil and
// Absent are AbsentKind; everything else, including false, 0 and "", is a
// scalar.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil, Absent:
		return AbsentKind
	case *Proxy:
		if x == nil {
			return AbsentKind
		}
		return MappingKind
	case map[string]any, map[any]any, yaml.MapSlice:
		return MappingKind
	case []any:
		return SequenceKind
	default:
		return ScalarKind
	}
}
