package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// FromAny converts a plain decoded value (nil, bool, string, Go numbers,
// []any, map[string]any) to a node. Integers fitting int64 become Int64
// numbers; larger unsigned values are kept as Number strings.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			kvs[i] = KeyVal{Key: FromString(k), Val: n}
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}
	}
	return FromInt(int64(u))
}

// ToAny converts a node back to a plain value. Objects become
// map[string]any, arrays []any, Int64 numbers int. Tags are ignored.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		return ToNumber(node)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// ToNumber returns the Go value of a number node: int for Int64, float64
// for Float64, and the Number string otherwise.
func ToNumber(node *Node) any {
	if node.Int64 != nil {
		return int(*node.Int64)
	}
	if node.Float64 != nil {
		return *node.Float64
	}
	return node.Number
}
