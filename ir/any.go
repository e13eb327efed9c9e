package ir

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ToAny converts the tree to plain Go data: nil, bool, int, float64,
// string, []any and map[string]any. Members of an object that repeat a
// name, as XML element sequences do, collect into a []any under that
// name. Attribute markers and namespaces are dropped.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			name := node.Fields[i].Name
			v := ToAny(node.Values[i])
			prev, ok := res[name]
			if !ok {
				res[name] = v
				continue
			}
			if s, ok := prev.([]any); ok {
				res[name] = append(s, v)
				continue
			}
			res[name] = []any{prev, v}
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
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny builds a tree from plain Go data as produced by generic
// JSON or YAML unmarshaling. Object keys sort lexically.
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
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return FromNumber(strconv.FormatUint(x, 10)), nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	case []any:
		elts := make([]*Node, len(x))
		for i, e := range x {
			var err error
			if elts[i], err = FromAny(e); err != nil {
				return nil, err
			}
		}
		return FromSlice(elts), nil
	case map[string]any:
		sub := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			sub[k] = n
		}
		return FromMap(sub), nil
	default:
		return nil, fmt.Errorf("cannot build node from %T", v)
	}
}
