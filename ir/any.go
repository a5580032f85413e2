package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ToAny converts v into plain Go values: nil, bool, int64, uint64,
// float64, string, []any and map[string]any.
func (v *Value) ToAny() any {
	switch v.Type() {
	case BoolType:
		return v.b
	case SignedType:
		return v.i
	case UnsignedType:
		return v.u
	case DoubleType:
		return v.f
	case StringType:
		return v.s
	case ArrayType:
		res := make([]any, len(v.elems))
		for i, e := range v.elems {
			res[i] = e.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.keys))
		for i, k := range v.keys {
			res[k] = v.vals[i].ToAny()
		}
		return res
	default:
		return nil
	}
}

// FromAny is the inverse of ToAny. It also accepts the other sized
// integer and float kinds, json.Number, map[string]*Value and *Value.
// Map keys are ordered.
func FromAny(x any) (*Value, error) {
	switch y := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return y.Clone(), nil
	case bool:
		return FromBool(y), nil
	case int:
		return FromInt(int64(y)), nil
	case int8:
		return FromInt(int64(y)), nil
	case int16:
		return FromInt(int64(y)), nil
	case int32:
		return FromInt(int64(y)), nil
	case int64:
		return FromInt(y), nil
	case uint:
		return FromUint(uint64(y)), nil
	case uint8:
		return FromUint(uint64(y)), nil
	case uint16:
		return FromUint(uint64(y)), nil
	case uint32:
		return FromUint(uint64(y)), nil
	case uint64:
		return FromUint(y), nil
	case float32:
		return FromFloat(float64(y)), nil
	case float64:
		return FromFloat(y), nil
	case string:
		return FromString(y), nil
	case json.Number:
		return fromNumber(string(y))
	case []any:
		res := NewArray()
		for i, e := range y {
			ev, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.elems = append(res.elems, ev)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(y)) {
			ev, err := FromAny(y[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			res.put(k, ev)
		}
		return res, nil
	case map[string]*Value:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(y)) {
			res.put(k, y[k].Clone())
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrTypeMismatch, x)
	}
}

// fromNumber picks the numeric subtype the way the parser does.
func fromNumber(s string) (*Value, error) {
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: number %s", ErrOutOfRange, s)
		}
		return FromFloat(f), nil
	}
	if strings.HasPrefix(s, "-") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", ErrOutOfRange, s)
		}
		return FromInt(i), nil
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %s", ErrOutOfRange, s)
	}
	return FromUint(u), nil
}
