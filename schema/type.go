package schema

import (
	"fmt"
)

// Type is a JSON-Schema instance type name.
type Type int

const (
	NullType Type = iota
	ObjectType
	ArrayType
	StringType
	BooleanType
	NumberType
	IntegerType
)

var typeNames = [...]string{
	NullType:    "null",
	ObjectType:  "object",
	ArrayType:   "array",
	StringType:  "string",
	BooleanType: "boolean",
	NumberType:  "number",
	IntegerType: "integer",
}

func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("%w [%s]", ErrUnknownType, s)
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("<type %d>", int(t))
	}
	return typeNames[t]
}

func (t Type) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(typeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	pt, err := ParseType(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

func (t Type) IsContainer() bool {
	return t == ObjectType || t == ArrayType
}

func (t Type) IsNumeric() bool {
	return t == NumberType || t == IntegerType
}
