package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromUint(1), FromString("a"), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number sub-rank: Signed < Unsigned < Double
		{"Signed < Unsigned", FromInt(5), FromUint(1), -1},
		{"Unsigned < Double", FromUint(5), FromFloat(1.0), -1},
		{"Signed < Signed", FromInt(-2), FromInt(-1), -1},
		{"Double == Double", FromFloat(2.5), FromFloat(2.5), 0},

		{"Empty Array == Empty Array", FromSlice(nil), NewArray(), 0},
		{"Short Array < Long Array", FromSlice([]*Value{FromUint(1)}), FromSlice([]*Value{FromUint(1), FromUint(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Value{FromUint(1)}), FromSlice([]*Value{FromUint(2)}), -1},

		{"Empty Object == Empty Object", FromKeyVals(nil), NewObject(), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{Key: "a", Value: FromUint(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Value: FromUint(1)}, {Key: "b", Value: FromUint(2)}}),
			-1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{Key: "a", Value: FromUint(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Value: FromUint(1)}}),
			-1},
		{"Object Order Ignored",
			FromKeyVals([]KeyVal{{Key: "a", Value: FromUint(1)}, {Key: "b", Value: FromString("x")}}),
			FromKeyVals([]KeyVal{{Key: "b", Value: FromString("x")}, {Key: "a", Value: FromUint(1)}}),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEqualNumericSubtype(t *testing.T) {
	if Equal(FromUint(1), FromFloat(1)) {
		t.Error("1 and 1.0 should differ")
	}
	if Equal(FromInt(1), FromUint(1)) {
		t.Error("signed and unsigned 1 should differ")
	}
}
