package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Objects compare by their entries in key order, so two objects holding
// the same entries in a different document order compare equal.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case SignedType, UnsignedType, DoubleType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.s, b.s)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same tree. Numeric subtypes
// must match: 1 and 1.0 are not equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case SignedType, UnsignedType, DoubleType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	// Sub-rank: Signed < Unsigned < Double
	if a.typ != b.typ {
		return cmp.Compare(a.typ, b.typ)
	}
	switch a.typ {
	case SignedType:
		return cmp.Compare(a.i, b.i)
	case UnsignedType:
		return cmp.Compare(a.u, b.u)
	default:
		return cmp.Compare(a.f, b.f)
	}
}

func compareArrays(a, b *Value) int {
	lenA := len(a.elems)
	lenB := len(b.elems)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Value) int {
	keysA := slices.Sorted(slices.Values(a.keys))
	keysB := slices.Sorted(slices.Values(b.keys))
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		va := a.vals[a.index[keysA[i]]]
		vb := b.vals[b.index[keysB[i]]]
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
