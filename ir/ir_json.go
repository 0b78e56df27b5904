package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type   Type    `json:"type"`
	Fields []*Node `json:"fields,omitempty"`
	Values []*Node `json:"values,omitempty"`

	Tag     string   `json:"tag,omitempty"`
	Number  string   `json:"number,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Tag:     y.Tag,
		Number:  y.Number,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Values = tmp.Values
	y.Fields = tmp.Fields
	y.Bool = tmp.Bool
	y.String = tmp.String
	y.Number = tmp.Number
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64
	y.Tag = tmp.Tag

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("%w: %d fields but %d values", ErrBadNode, len(y.Fields), len(y.Values))
		}
		for _, f := range y.Fields {
			if f == nil || f.Type != StringType {
				return fmt.Errorf("%w: object fields must be strings", ErrBadNode)
			}
		}
		for _, v := range y.Values {
			if v == nil {
				return fmt.Errorf("%w: nil object value", ErrBadNode)
			}
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("%w: array with fields", ErrBadNode)
		}
		for _, v := range y.Values {
			if v == nil {
				return fmt.Errorf("%w: nil array element", ErrBadNode)
			}
		}
	}
	return nil
}

// ToJSON encodes a node in the IR wire form.
func ToJSON(y *Node) ([]byte, error) {
	return json.Marshal(y)
}

// FromJSON decodes a node from the IR wire form.
func FromJSON(d []byte) (*Node, error) {
	res := &Node{}
	if err := json.Unmarshal(d, res); err != nil {
		return nil, err
	}
	return res, nil
}
