package ir

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Value is a single document node: a null, a boolean, one of three
// numeric subtypes, a string, an array or an object.
//
// A Value exclusively owns its children. Values handed out by
// accessors such as Entry, At and Append are references into the tree
// and remain valid until the owning container is modified at or above
// them.
type Value struct {
	typ Type

	b bool
	i int64
	u uint64
	f float64
	s string

	elems []*Value

	keys  []string
	vals  []*Value
	index map[string]int
}

// KeyVal is an object entry.
type KeyVal struct {
	Key   string
	Value *Value
}

func Null() *Value {
	return &Value{}
}

func FromBool(b bool) *Value {
	return &Value{typ: BoolType, b: b}
}

func FromInt(i int64) *Value {
	return &Value{typ: SignedType, i: i}
}

func FromUint(u uint64) *Value {
	return &Value{typ: UnsignedType, u: u}
}

func FromFloat(f float64) *Value {
	return &Value{typ: DoubleType, f: f}
}

func FromString(s string) *Value {
	return &Value{typ: StringType, s: s}
}

func NewArray() *Value {
	return &Value{typ: ArrayType, elems: []*Value{}}
}

func NewObject() *Value {
	return &Value{typ: ObjectType, index: map[string]int{}}
}

// FromSlice creates an array owning the given elements. Nil elements are
// stored as null.
func FromSlice(vs []*Value) *Value {
	res := NewArray()
	for _, v := range vs {
		if v == nil {
			v = Null()
		}
		res.elems = append(res.elems, v)
	}
	return res
}

// FromKeyVals creates an object from kvs in order. A repeated key
// overwrites the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Value {
	res := NewObject()
	for _, kv := range kvs {
		res.put(kv.Key, kv.Value)
	}
	return res
}

// FromMap creates an object with the keys of m in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.put(k, m[k])
	}
	return res
}

func (v *Value) Type() Type {
	if v == nil {
		return NullType
	}
	return v.typ
}

func (v *Value) IsNull() bool      { return v.Type() == NullType }
func (v *Value) IsBool() bool      { return v.Type() == BoolType }
func (v *Value) IsSigned() bool    { return v.Type() == SignedType }
func (v *Value) IsUnsigned() bool  { return v.Type() == UnsignedType }
func (v *Value) IsDouble() bool    { return v.Type() == DoubleType }
func (v *Value) IsNum() bool       { return v.Type().IsNum() }
func (v *Value) IsString() bool    { return v.Type() == StringType }
func (v *Value) IsArray() bool     { return v.Type() == ArrayType }
func (v *Value) IsObject() bool    { return v.Type() == ObjectType }
func (v *Value) IsContainer() bool { return v.Type().IsContainer() }

func (v *Value) mismatch(want Type) error {
	return fmt.Errorf("%w: value is %s, not %s", ErrTypeMismatch, v.Type(), want)
}

func (v *Value) Bool() (bool, error) {
	if v.Type() != BoolType {
		return false, v.mismatch(BoolType)
	}
	return v.b, nil
}

func (v *Value) Int64() (int64, error) {
	if v.Type() != SignedType {
		return 0, v.mismatch(SignedType)
	}
	return v.i, nil
}

func (v *Value) Uint64() (uint64, error) {
	if v.Type() != UnsignedType {
		return 0, v.mismatch(UnsignedType)
	}
	return v.u, nil
}

func (v *Value) Float64() (float64, error) {
	if v.Type() != DoubleType {
		return 0, v.mismatch(DoubleType)
	}
	return v.f, nil
}

func (v *Value) Str() (string, error) {
	if v.Type() != StringType {
		return "", v.mismatch(StringType)
	}
	return v.s, nil
}

// Len returns the number of elements of an array or entries of an
// object.
func (v *Value) Len() (int, error) {
	switch v.Type() {
	case ArrayType:
		return len(v.elems), nil
	case ObjectType:
		return len(v.keys), nil
	default:
		return 0, fmt.Errorf("%w: %s has no size", ErrTypeMismatch, v.Type())
	}
}

// Keys returns the keys of an object in document order.
func (v *Value) Keys() ([]string, error) {
	if v.Type() != ObjectType {
		return nil, v.mismatch(ObjectType)
	}
	return slices.Clone(v.keys), nil
}

// Fields iterates over the entries of an object in order. It yields
// nothing for other types.
func (v *Value) Fields() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.Type() != ObjectType {
			return
		}
		for i, k := range v.keys {
			if !yield(k, v.vals[i]) {
				return
			}
		}
	}
}

// Elements iterates over the elements of an array. It yields nothing
// for other types.
func (v *Value) Elements() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.Type() != ArrayType {
			return
		}
		for i, e := range v.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

func (v *Value) HasKey(key string) bool {
	if v.Type() != ObjectType {
		return false
	}
	_, ok := v.index[key]
	return ok
}

func (v *Value) HasIndex(i int) bool {
	if v.Type() != ArrayType {
		return false
	}
	return i >= 0 && i < len(v.elems)
}

// Get returns the value stored under key without modifying v.
func (v *Value) Get(key string) (*Value, error) {
	if v.Type() != ObjectType {
		return nil, v.mismatch(ObjectType)
	}
	i, ok := v.index[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchKey, key)
	}
	return v.vals[i], nil
}

// At returns the element at index i.
func (v *Value) At(i int) (*Value, error) {
	if v.Type() != ArrayType {
		return nil, v.mismatch(ArrayType)
	}
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(v.elems))
	}
	return v.elems[i], nil
}
