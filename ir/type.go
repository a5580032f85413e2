package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	SignedType
	UnsignedType
	DoubleType
	StringType
	ArrayType
	ObjectType
)

var typeNames = map[Type]string{
	NullType:     "Null",
	BoolType:     "Bool",
	SignedType:   "Signed",
	UnsignedType: "Unsigned",
	DoubleType:   "Double",
	StringType:   "String",
	ArrayType:    "Array",
	ObjectType:   "Object",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return NullType, fmt.Errorf("unrecognized type %q", s)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		SignedType,
		UnsignedType,
		DoubleType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

// IsContainer reports whether t is ArrayType or ObjectType.
func (t Type) IsContainer() bool {
	return t == ArrayType || t == ObjectType
}

// IsNum reports whether t is one of the three numeric subtypes.
func (t Type) IsNum() bool {
	switch t {
	case SignedType, UnsignedType, DoubleType:
		return true
	default:
		return false
	}
}
