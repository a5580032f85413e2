package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"
)

var valueCmp = cmp.Comparer(ir.Equal)

func obj(kvs ...any) *ir.Value {
	res := []ir.KeyVal{}
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: kvs[i].(string), Value: kvs[i+1].(*ir.Value)})
	}
	return ir.FromKeyVals(res)
}

func arr(vs ...*ir.Value) *ir.Value {
	return ir.FromSlice(vs)
}

type parseTest struct {
	in   string
	want *ir.Value
	opts []ParseOption
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `{}`, want: ir.NewObject()},
		{in: `[]`, want: ir.NewArray()},
		{in: "  \n\t[ ]  \n", want: ir.NewArray()},
		{in: `{"a":1}`, want: obj("a", ir.FromUint(1))},
		{in: `[null,true,false]`, want: arr(ir.Null(), ir.FromBool(true), ir.FromBool(false))},
		{in: `[[[]]]`, want: arr(arr(arr()))},
		{
			in:   `{"a" : [1, -2, 3.5, "x"], "b": {"c": null}}`,
			want: obj("a", arr(ir.FromUint(1), ir.FromInt(-2), ir.FromFloat(3.5), ir.FromString("x")), "b", obj("c", ir.Null())),
		},
		{in: "[\"multi\nline\"]", want: arr(ir.FromString("multi\nline"))},
		{in: `["\u0041"]`, want: arr(ir.FromString(`\u0041`))},
		{in: `["a\/b"]`, want: arr(ir.FromString("a/b"))},
		{in: `[0, -0, 0.0, 1E2, 1e-2, 2e+3]`, want: arr(ir.FromUint(0), ir.FromInt(0), ir.FromFloat(0), ir.FromFloat(100), ir.FromFloat(0.01), ir.FromFloat(2000))},
		{in: `[18446744073709551615, -9223372036854775808]`, want: arr(ir.FromUint(18446744073709551615), ir.FromInt(-9223372036854775808))},
		{
			in:   `{a: b, c: [x, y], d: true, e: 12}`,
			want: obj("a", ir.FromString("b"), "c", arr(ir.FromString("x"), ir.FromString("y")), "d", ir.FromBool(true), "e", ir.FromUint(12)),
			opts: []ParseOption{FlexibleKeys(true), FlexibleStrings(true)},
		},
		{
			in:   `{"k": nullish, "t": trueblue, "s": some\tthing}`,
			want: obj("k", ir.FromString("nullish"), "t", ir.FromString("trueblue"), "s", ir.FromString("some\tthing")),
			opts: []ParseOption{FlexibleStrings(true)},
		},
		{
			in:   `[True, FALSE, Null, NULL]`,
			want: arr(ir.FromBool(true), ir.FromBool(false), ir.Null(), ir.Null()),
			opts: []ParseOption{NocaseValues(true)},
		},
		{
			in:   `{"quoted": "still fine", bare: "x"}`,
			want: obj("quoted", ir.FromString("still fine"), "bare", ir.FromString("x")),
			opts: []ParseOption{FlexibleKeys(true)},
		},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			got, err := Parse([]byte(pt.in), pt.opts...)
			if err != nil {
				t.Fatalf("error parsing %q: %v", pt.in, err)
			}
			if diff := cmp.Diff(pt.want, got, valueCmp); diff != "" {
				t.Errorf("got %v want %v", got.ToAny(), pt.want.ToAny())
			}
		})
	}
}

func TestParseKeepsKeyOrder(t *testing.T) {
	v, err := ParseString(`{"z":1,"a":2,"m":3}`)
	if err != nil {
		t.Fatal(err)
	}
	keys, _ := v.Keys()
	if diff := cmp.Diff([]string{"z", "a", "m"}, keys); diff != "" {
		t.Error(diff)
	}
}

func TestDupKey(t *testing.T) {
	in := `{"k":"a","k":"b"}`
	tests := []struct {
		dup  DupKey
		want *ir.Value
	}{
		{Overwrite, obj("k", ir.FromString("b"))},
		{Ignore, obj("k", ir.FromString("a"))},
		{Append, obj("k", arr(ir.FromString("a"), ir.FromString("b")))},
	}
	for _, tt := range tests {
		t.Run(tt.dup.String(), func(t *testing.T) {
			got, err := ParseString(in, DuplicateKeys(tt.dup))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got, valueCmp); diff != "" {
				t.Errorf("got %v", got.ToAny())
			}
		})
	}
	_, err := ParseString(in, DuplicateKeys(Reject))
	if !errors.Is(err, token.ErrDupKey) {
		t.Errorf("reject: %v", err)
	}

	got, err := ParseString(`{"k":1,"k":2,"k":[3]}`, DuplicateKeys(Append))
	if err != nil {
		t.Fatal(err)
	}
	want := obj("k", arr(ir.FromUint(1), ir.FromUint(2), arr(ir.FromUint(3))))
	if diff := cmp.Diff(want, got, valueCmp); diff != "" {
		t.Errorf("got %v", got.ToAny())
	}
}

func TestRejectFailsBeforeValue(t *testing.T) {
	// the second value is malformed; reject must fail on the key first
	_, err := ParseString(`{"k":1,"k":@@@}`, DuplicateKeys(Reject))
	if !errors.Is(err, token.ErrDupKey) {
		t.Errorf("got %v", err)
	}
}

func TestNumberSubtypes(t *testing.T) {
	tests := []struct {
		in   string
		want ir.Type
	}{
		{"1", ir.UnsignedType},
		{"-1", ir.SignedType},
		{"1.0", ir.DoubleType},
		{"1e2", ir.DoubleType},
		{"-1.5E-3", ir.DoubleType},
	}
	for _, tt := range tests {
		v, err := ParseString("[" + tt.in + "]")
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		e, _ := v.At(0)
		if e.Type() != tt.want {
			t.Errorf("%s: got %s want %s", tt.in, e.Type(), tt.want)
		}
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"[01]", token.ErrNumberLeadingZero},
		{"[-]", token.ErrNumber},
		{"[1.]", token.ErrNumber},
		{"[1e]", token.ErrNumber},
		{"[1e+]", token.ErrNumber},
		{"[-a]", token.ErrNumber},
		{"[1x]", token.ErrUnexpected},
		{"[18446744073709551616]", token.ErrNumber},
		{"[-9223372036854775809]", token.ErrNumber},
		{"[1e999]", token.ErrNumber},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v want %v", tt.in, err, tt.want)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%s: %v does not wrap ErrParse", tt.in, err)
		}
	}
}

func TestEscapes(t *testing.T) {
	v, err := ParseString(`["Hello\nWorld\t\"Quote\""]`)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := v.At(0)
	s, _ := e.Str()
	if s != "Hello\nWorld\t\"Quote\"" {
		t.Errorf("got %q", s)
	}
	v, err = ParseString(`["\b\f\r\\"]`)
	if err != nil {
		t.Fatal(err)
	}
	e, _ = v.At(0)
	s, _ = e.Str()
	if s != "\b\f\r\\" {
		t.Errorf("got %q", s)
	}
	for _, in := range []string{`["\x"]`, `["\u12"]`, `["\u12G4"]`} {
		if _, err := ParseString(in); !errors.Is(err, token.ErrBadEscape) {
			t.Errorf("%s: got %v", in, err)
		}
	}
}

func TestComments(t *testing.T) {
	plain := `{"a":1,"b":[true,"x"]}`
	commented := `# leading
	// another
	/* block
	   comment */  {
		"a" /* inline */ : 1, // trailing
		# hash
		"b": [ true /**/, "x" ]
	} // done
	/* tail */ # end`
	want, err := ParseString(plain)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseString(commented)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got, valueCmp); diff != "" {
		t.Errorf("got %v", got.ToAny())
	}
}

func TestStructuralErrors(t *testing.T) {
	for _, in := range []string{
		`{invalid}`,
		`[1,2,]`,
		`{"key":}`,
		``,
		"   \n\t ",
		`42`,
		`"str"`,
		`{"a":1} x`,
		`{"a":1}}`,
		`{"a" 1}`,
		`{"a":1 "b":2}`,
		`[1 2]`,
		`[`,
		`{"a":`,
		`["abc`,
		`/* open`,
		`/x []`,
		`[] /`,
		`[nul]`,
		`[nulll]`,
		`{"a":True}`,
		`[,]`,
		`{,}`,
	} {
		if _, err := ParseString(in); err == nil {
			t.Errorf("%q: expected error", in)
		} else if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", in, err)
		}
	}
}

func TestFlexibleErrors(t *testing.T) {
	opts := []ParseOption{FlexibleKeys(true), FlexibleStrings(true)}
	for _, in := range []string{
		`{a"b: 1}`,
		`[ab"c]`,
		`{:1}`,
		`[abc`,
	} {
		if _, err := ParseString(in, opts...); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseString("{\n  \"a\": tru\n}")
	var pe *token.PosErr
	if !errors.As(err, &pe) {
		t.Fatalf("got %v", err)
	}
	if pe.Pos.Line != 2 || pe.Pos.Col != 11 {
		t.Errorf("got %s", pe.Pos)
	}
	if !strings.Contains(err.Error(), "@line:2, @pos:11") {
		t.Errorf("message %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Did you miss enclosing") {
		t.Errorf("message %q", err.Error())
	}
}

func TestStats(t *testing.T) {
	in := `{"a":[1,"x",true,null],"b":{},"c":-2.5}`
	st := &Stats{Objects: 99}
	if _, err := ParseString(in, ParseStats(st)); err != nil {
		t.Fatal(err)
	}
	want := Stats{
		Bytes:    uint64(len(in)),
		Objects:  2,
		Arrays:   1,
		Strings:  1,
		Numbers:  2,
		Booleans: 1,
		Nulls:    1,
		Keys:     3,
	}
	st.Elapsed = 0
	if diff := cmp.Diff(want, *st); diff != "" {
		t.Error(diff)
	}
}

func TestStatsOnError(t *testing.T) {
	st := &Stats{}
	_, err := ParseString(`[1, 2, {"a": oops}]`, ParseStats(st))
	if err == nil {
		t.Fatal("expected error")
	}
	if st.Numbers != 2 || st.Objects != 1 || st.Arrays != 1 || st.Keys != 1 {
		t.Errorf("got %+v", st)
	}
}

func TestStatsString(t *testing.T) {
	st := &Stats{Bytes: 1234567, Objects: 3}
	s := st.String()
	for _, want := range []string{
		"data size.....: 1,234,567 bytes\n",
		"objects.......: 3\n",
		"(time taken)..: 0.000 seconds\n",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	if _, err := ParseString(deep, MaxDepth(10)); err != nil {
		t.Errorf("depth 10: %v", err)
	}
	if _, err := ParseString(deep, MaxDepth(9)); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("depth 9: %v", err)
	}
	if _, err := ParseString(deep); err != nil {
		t.Errorf("unlimited: %v", err)
	}
}

func TestDupKeyText(t *testing.T) {
	for _, s := range []string{"overwrite", "ignore", "append", "reject"} {
		var d DupKey
		if err := d.UnmarshalText([]byte(s)); err != nil {
			t.Fatal(err)
		}
		if d.String() != s {
			t.Errorf("got %s want %s", d, s)
		}
	}
	d, err := ParseDupKey("accept")
	if err != nil || d != Overwrite {
		t.Errorf("accept: %v %v", d, err)
	}
	if _, err := ParseDupKey("merge"); !errors.Is(err, ErrBadControl) {
		t.Errorf("got %v", err)
	}
}
