package ir

import (
	"fmt"
	"slices"
)

var errNilValue = fmt.Errorf("%w: nil *Value", ErrTypeMismatch)

// reset and the Set, Clear and Assign methods built on it require a
// non-nil v. Entry, Set and Push report a nil v as ErrTypeMismatch.
func (v *Value) reset(t Type) {
	*v = Value{typ: t}
	switch t {
	case ArrayType:
		v.elems = []*Value{}
	case ObjectType:
		v.index = map[string]int{}
	}
}

// Clear releases the payload of v and leaves it null.
func (v *Value) Clear() {
	v.reset(NullType)
}

func (v *Value) SetNull() {
	v.reset(NullType)
}

func (v *Value) SetBool(b bool) {
	v.reset(BoolType)
	v.b = b
}

func (v *Value) SetInt(i int64) {
	v.reset(SignedType)
	v.i = i
}

func (v *Value) SetUint(u uint64) {
	v.reset(UnsignedType)
	v.u = u
}

func (v *Value) SetFloat(f float64) {
	v.reset(DoubleType)
	v.f = f
}

func (v *Value) SetString(s string) {
	v.reset(StringType)
	v.s = s
}

// SetArray makes v an empty array.
func (v *Value) SetArray() {
	v.reset(ArrayType)
}

// SetObject makes v an empty object.
func (v *Value) SetObject() {
	v.reset(ObjectType)
}

// Assign replaces v with a deep copy of o.
func (v *Value) Assign(o *Value) {
	if v == o {
		return
	}
	*v = *o.Clone()
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	if v == nil {
		return Null()
	}
	res := &Value{typ: v.typ, b: v.b, i: v.i, u: v.u, f: v.f, s: v.s}
	switch v.typ {
	case ArrayType:
		res.elems = make([]*Value, len(v.elems))
		for i, e := range v.elems {
			res.elems[i] = e.Clone()
		}
	case ObjectType:
		res.keys = slices.Clone(v.keys)
		res.vals = make([]*Value, len(v.vals))
		res.index = make(map[string]int, len(v.keys))
		for i, e := range v.vals {
			res.vals[i] = e.Clone()
			res.index[v.keys[i]] = i
		}
	}
	return res
}

// Take moves the payload of v into a new Value and leaves v null.
func (v *Value) Take() *Value {
	res := &Value{}
	*res = *v
	v.reset(NullType)
	return res
}

// Entry returns the value stored under key, inserting a null entry if
// key is absent. A null v is first turned into an empty object; any
// other non-object is an error and v is left untouched.
func (v *Value) Entry(key string) (*Value, error) {
	switch v.Type() {
	case NullType:
		if v == nil {
			return nil, errNilValue
		}
		v.reset(ObjectType)
	case ObjectType:
	default:
		return nil, v.mismatch(ObjectType)
	}
	if i, ok := v.index[key]; ok {
		return v.vals[i], nil
	}
	return v.put(key, nil), nil
}

// Set stores x under key, taking ownership of x. Set follows the same
// conversion rules as Entry.
func (v *Value) Set(key string, x *Value) error {
	switch v.Type() {
	case NullType:
		if v == nil {
			return errNilValue
		}
		v.reset(ObjectType)
	case ObjectType:
	default:
		return v.mismatch(ObjectType)
	}
	v.put(key, x)
	return nil
}

func (v *Value) put(key string, x *Value) *Value {
	if x == nil {
		x = Null()
	}
	if i, ok := v.index[key]; ok {
		v.vals[i] = x
		return x
	}
	v.index[key] = len(v.keys)
	v.keys = append(v.keys, key)
	v.vals = append(v.vals, x)
	return x
}

// Append adds a null element to the array v and returns it. A null v is
// first turned into an empty array.
func (v *Value) Append() (*Value, error) {
	return v.Push(Null())
}

// AppendValue adds a deep copy of x to the array v and returns the new
// element.
func (v *Value) AppendValue(x *Value) (*Value, error) {
	return v.Push(x.Clone())
}

// Push adds x to the array v, taking ownership of it.
func (v *Value) Push(x *Value) (*Value, error) {
	switch v.Type() {
	case NullType:
		if v == nil {
			return nil, errNilValue
		}
		v.reset(ArrayType)
	case ArrayType:
	default:
		return nil, v.mismatch(ArrayType)
	}
	if x == nil {
		x = Null()
	}
	v.elems = append(v.elems, x)
	return x, nil
}

// Erase removes key from the object v. Erasing an absent key is not an
// error.
func (v *Value) Erase(key string) error {
	if v.Type() != ObjectType {
		return v.mismatch(ObjectType)
	}
	i, ok := v.index[key]
	if !ok {
		return nil
	}
	delete(v.index, key)
	v.keys = slices.Delete(v.keys, i, i+1)
	v.vals = slices.Delete(v.vals, i, i+1)
	for j := i; j < len(v.keys); j++ {
		v.index[v.keys[j]] = j
	}
	return nil
}

// EraseAt removes the element at index i from the array v.
func (v *Value) EraseAt(i int) error {
	if v.Type() != ArrayType {
		return v.mismatch(ArrayType)
	}
	if i < 0 || i >= len(v.elems) {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(v.elems))
	}
	v.elems = slices.Delete(v.elems, i, i+1)
	return nil
}
