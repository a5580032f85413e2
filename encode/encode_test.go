package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

func mustParse(t *testing.T, s string, opts ...parse.ParseOption) *ir.Value {
	t.Helper()
	v, err := parse.ParseString(s, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func relaxed() []parse.ParseOption {
	return []parse.ParseOption{parse.FlexibleKeys(true), parse.FlexibleStrings(true)}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`{"a": 1, "b": [true, null, "x"], "c": {}}`, `{"a":1,"b":[true,null,"x"],"c":{}}`},
		{`[-3, 18446744073709551615, 2.5, 1e3]`, `[-3,18446744073709551615,2.5,1000.0]`},
		{`{"z": 1, "a": 2, "m": 3}`, `{"z":1,"a":2,"m":3}`},
	}
	for _, tc := range tests {
		got, err := String(mustParse(t, tc.in))
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestPretty(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": [true, null, []], "c": {}, "d": {"e": "f"}}`)
	want := `
{
  "a" : 1,
  "b" : [
    true,
    null,
    []
  ],
  "c" : {},
  "d" : {
    "e" : "f"
  }
}`
	got, err := String(v, EncodeType(format.Pretty))
	if err != nil {
		t.Fatal(err)
	}
	if got != strings.TrimSpace(want) {
		t.Errorf("pretty mismatch:\n%s", diff.LineDiff(got, strings.TrimSpace(want)))
	}
}

func TestPrettyTabs(t *testing.T) {
	v := mustParse(t, `[1, [2]]`)
	f := format.Format{Type: format.Pretty, Indent: 1, Padding: '\t'}
	got, err := String(v, EncodeFormat(f), EncodeNewline(true))
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n\t1,\n\t[\n\t\t2\n\t]\n]\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	f.Padding = 0
	got, err = String(v, EncodeFormat(f))
	if err != nil {
		t.Fatal(err)
	}
	if want := "[\n1,\n[\n2\n]\n]"; got != want {
		t.Errorf("no padding: got %q want %q", got, want)
	}
}

func TestEscapes(t *testing.T) {
	v := mustParse(t, `["Hello\nWorld\t\"Quote\"", "back\\slash", "\u0041", "\b\f\r\/", {"k\"ey": 1}]`)
	got, err := String(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `["Hello\nWorld\t\"Quote\"","back\\slash","\u0041","\b\f\r/",{"k\"ey":1}]`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	again := mustParse(t, got)
	if !ir.Equal(v, again) {
		t.Errorf("round trip changed value: %v", again.ToAny())
	}
}

func TestNoQuotes(t *testing.T) {
	v := ir.FromKeyVals([]ir.KeyVal{
		{Key: "k", Value: ir.FromString("plain")},
		{Key: "two words", Value: ir.FromString("a,b")},
		{Key: "t", Value: ir.FromString("true")},
		{Key: "N", Value: ir.FromString("NULL")},
		{Key: "n", Value: ir.FromString("-1")},
		{Key: "e", Value: ir.FromString("")},
		{Key: "c", Value: ir.FromString("x:y")},
		{Key: "s", Value: ir.FromString(`a\b`)},
		{Key: "1", Value: ir.FromString("{x")},
		{Key: "q", Value: ir.FromString("x y,z")},
	})
	f := format.Format{Type: format.Compact, KeyNoQuotes: true, StringNoQuotes: true}
	got, err := String(v, EncodeFormat(f))
	if err != nil {
		t.Fatal(err)
	}
	want := `{k:plain,"two words":a\u002cb,t:"true",N:"NULL",n:"-1",e:"",c:"x:y",s:a\\b,"1":"{x",q:"x y\u002cz"}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
	back := mustParse(t, got, relaxed()...)
	// the comma escape is kept literally on the way back
	wantBack := v.Clone()
	if err := wantBack.Set("two words", ir.FromString(`a\u002cb`)); err != nil {
		t.Fatal(err)
	}
	if err := wantBack.Set("q", ir.FromString(`x y\u002cz`)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantBack.ToAny(), back.ToAny()); diff != "" {
		t.Errorf("round trip: %s", diff)
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	docs := []string{
		`{"a": [1, -2, 3.25, "x y", {"b": null}], "c": true}`,
		`[[], {}, [[{"deep": ["\u00e9"]}]]]`,
		"{\"multi\": \"line\\nbreak\", \"tab\": \"\\t\"}",
		`{"list": "a,b", "phrase": "x y,z", "lead": ",a", "arr": ["c,d", ","]}`,
	}
	formats := []format.Format{
		format.Default(),
		format.Of(format.Pretty),
		{Type: format.Pretty, Indent: 4, Padding: '\t', KeyNoQuotes: true},
		{Type: format.Compact, KeyNoQuotes: true, StringNoQuotes: true},
	}
	for _, d := range docs {
		for _, f := range formats {
			first, err := String(mustParse(t, d), EncodeFormat(f))
			if err != nil {
				t.Fatalf("%s %s: %v", d, f, err)
			}
			second, err := String(mustParse(t, first, relaxed()...), EncodeFormat(f))
			if err != nil {
				t.Fatalf("%s %s: %v", d, f, err)
			}
			if first != second {
				t.Errorf("%s: not idempotent\n%s", f, diff.LineDiff(first, second))
			}
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := String(ir.FromInt(1)); !errors.Is(err, ErrNotContainer) {
		t.Errorf("scalar root: got %v", err)
	}
	if _, err := String(nil); !errors.Is(err, ErrNotContainer) {
		t.Errorf("nil root: got %v", err)
	}
	bad := format.Format{Type: format.Pretty, Indent: 2, Padding: 'x'}
	sb := &strings.Builder{}
	if err := Encode(ir.NewArray(), sb, EncodeFormat(bad)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad padding: got %v", err)
	}
	if sb.Len() != 0 {
		t.Errorf("bad padding wrote %q", sb.String())
	}
	nan := ir.FromSlice([]*ir.Value{ir.FromFloat(math.NaN())})
	if _, err := String(nan); !errors.Is(err, ErrUnencodable) {
		t.Errorf("nan: got %v", err)
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	v := mustParse(t, `{"a": [1, "s", null]}`)
	plain := MustString(v)

	color.NoColor = true
	got := MustString(v, EncodeColors(NewColors()))
	if got != plain {
		t.Errorf("disabled colours: got %q want %q", got, plain)
	}
	color.NoColor = false
	got = MustString(v, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
}

func TestYAML(t *testing.T) {
	v := mustParse(t, `{"b": 1, "a": ["x", "true", 2.5], "n": null}`)
	sb := &strings.Builder{}
	if err := EncodeYAML(v, sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "b: 1\n") {
		t.Errorf("key order lost:\n%s", out)
	}
	var got map[string]any
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"b": 1,
		"a": []any{"x", "true", 2.5},
		"n": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml mismatch: %s\n%s", diff, out)
	}
}
