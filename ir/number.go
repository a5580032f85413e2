package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// Number reads a numeric value into T. Floating point targets require a
// double, signed targets a signed value and unsigned targets an unsigned
// value; the subtypes are never converted into each other.
func Number[T Integer | Float](v *Value) (T, error) {
	var zero, one T = 0, 1
	switch {
	case one/2 != zero:
		f, err := v.Float64()
		if err != nil {
			return zero, err
		}
		t := T(f)
		if !math.IsInf(f, 0) && math.IsInf(float64(t), 0) {
			return zero, fmt.Errorf("%w: %v", ErrOutOfRange, f)
		}
		return t, nil
	case zero-one < zero:
		i, err := v.Int64()
		if err != nil {
			return zero, err
		}
		t := T(i)
		if int64(t) != i {
			return zero, fmt.Errorf("%w: %d", ErrOutOfRange, i)
		}
		return t, nil
	default:
		u, err := v.Uint64()
		if err != nil {
			return zero, err
		}
		t := T(u)
		if uint64(t) != u {
			return zero, fmt.Errorf("%w: %d", ErrOutOfRange, u)
		}
		return t, nil
	}
}

// Presence describes the outcome of a lookup by key.
type Presence int

const (
	Missing Presence = iota
	Present
	PresentNull
)

func (p Presence) String() string {
	switch p {
	case Missing:
		return "missing"
	case Present:
		return "present"
	case PresentNull:
		return "null"
	default:
		return "<unknown presence>"
	}
}

// LookupNumber reads obj[key] into T. A missing key or a null value is
// reported through the returned Presence rather than as an error.
func LookupNumber[T Integer | Float](obj *Value, key string) (T, Presence, error) {
	var zero T
	if !obj.IsObject() {
		return zero, Missing, obj.mismatch(ObjectType)
	}
	v, err := obj.Get(key)
	if err != nil {
		return zero, Missing, nil
	}
	if v.IsNull() {
		return zero, PresentNull, nil
	}
	t, err := Number[T](v)
	if err != nil {
		return zero, Present, fmt.Errorf("key %q: %w", key, err)
	}
	return t, Present, nil
}

// AsStr renders a scalar as text. Strings are returned as is.
func (v *Value) AsStr() (string, error) {
	switch v.Type() {
	case StringType:
		return v.s, nil
	case BoolType:
		return strconv.FormatBool(v.b), nil
	case SignedType:
		return strconv.FormatInt(v.i, 10), nil
	case UnsignedType:
		return strconv.FormatUint(v.u, 10), nil
	case DoubleType:
		return FormatDouble(v.f), nil
	default:
		return "", fmt.Errorf("%w: cannot render %s as string", ErrTypeMismatch, v.Type())
	}
}

// FormatDouble returns the shortest text for f which reads back as a
// double, so integral values keep a fraction: 100 is "100.0".
func FormatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
