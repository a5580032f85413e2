package schema

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/rjson/ir"
)

// Types is a set of schema types, kept in Type order.
type Types struct {
	list []Type
}

func NewTypes(ts ...Type) *Types {
	res := &Types{}
	for _, t := range ts {
		_ = res.Add(t)
	}
	return res
}

func (ts *Types) Add(t Type) error {
	i, found := slices.BinarySearch(ts.list, t)
	if found {
		return fmt.Errorf("%w: %s", ErrDuplicateType, t)
	}
	ts.list = slices.Insert(ts.list, i, t)
	return nil
}

// AddValue adds the types named by v, which is either a type name or an
// array of distinct type names.
func (ts *Types) AddValue(v *ir.Value) error {
	switch v.Type() {
	case ir.StringType:
		s, _ := v.Str()
		t, err := ParseType(s)
		if err != nil {
			return err
		}
		if ts.Has(t) {
			return nil
		}
		return ts.Add(t)
	case ir.ArrayType:
		for i, e := range v.Elements() {
			s, err := e.Str()
			if err != nil {
				return fmt.Errorf("type parameter %d must be a string: %w", i, err)
			}
			t, err := ParseType(s)
			if err != nil {
				return err
			}
			if err := ts.Add(t); err != nil {
				return fmt.Errorf("type parameters must be unique: %w", err)
			}
		}
		return nil
	}
	return fmt.Errorf("type must be a string or an array of unique strings, got %s", v.Type())
}

func (ts *Types) Has(t Type) bool {
	_, found := slices.BinarySearch(ts.list, t)
	return found
}

func (ts *Types) Remove(t Type) {
	if i, found := slices.BinarySearch(ts.list, t); found {
		ts.list = slices.Delete(ts.list, i, i+1)
	}
}

func (ts *Types) Len() int    { return len(ts.list) }
func (ts *Types) Empty() bool { return len(ts.list) == 0 }

func (ts *Types) List() []Type {
	return slices.Clone(ts.list)
}

// OnlyContainers reports whether every type in the set is object or
// array. An empty set has no containers.
func (ts *Types) OnlyContainers() bool {
	if ts.Empty() {
		return false
	}
	for _, t := range ts.list {
		if !t.IsContainer() {
			return false
		}
	}
	return true
}

func (ts *Types) HasNumeric() bool {
	return ts.Has(NumberType) || ts.Has(IntegerType)
}

var errNoTypes = errors.New("type not set")

// ToValue renders one type as a string and several as an array.
func (ts *Types) ToValue() (*ir.Value, error) {
	switch len(ts.list) {
	case 0:
		return nil, errNoTypes
	case 1:
		return ir.FromString(ts.list[0].String()), nil
	}
	res := ir.NewArray()
	for _, t := range ts.list {
		if _, err := res.Push(ir.FromString(t.String())); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (ts *Types) String() string {
	return fmt.Sprint(ts.list)
}
