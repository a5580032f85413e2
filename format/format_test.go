package format

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"compact", Format{Type: Compact, Indent: 2, Padding: ' '}},
		{"xcompact", Format{Type: Compact, Indent: 2, Padding: ' ', KeyNoQuotes: true}},
		{"pretty", Format{Type: Pretty, Indent: 2, Padding: ' '}},
		{"xpretty:key-no-quotes=false", Format{Type: Pretty, Indent: 2, Padding: ' '}},
		{"pretty:sep=tab:indent=1", Format{Type: Pretty, Indent: 1, Padding: '\t'}},
		{"pretty:sep=t", Format{Type: Pretty, Indent: 2, Padding: '\t'}},
		{"pretty:sep", Format{Type: Pretty, Indent: 2, Padding: ' '}},
		{"pretty:sep=none:indent=0", Format{Type: Pretty, Padding: 0}},
		{"compact:string-no-quotes", Format{Type: Compact, Indent: 2, Padding: ' ', StringNoQuotes: true}},
		{"compact::string-no-quotes=1:", Format{Type: Compact, Indent: 2, Padding: ' ', StringNoQuotes: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"json",
		"compact:indent=2",
		"compact:sep=tab",
		"pretty:indent",
		"pretty:indent=-1",
		"pretty:sep=x",
		"pretty:sep=ab",
		"pretty:key-no-quotes=maybe",
		"pretty:colour",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, f := range []Format{
		Default(),
		Of(Pretty),
		{Type: Pretty, Indent: 4, Padding: '\t', KeyNoQuotes: true},
		{Type: Pretty, Padding: 0},
		{Type: Compact, Indent: 2, Padding: ' ', StringNoQuotes: true},
	} {
		got, err := Parse(f.String())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if f.Type == Compact {
			got.Indent, got.Padding = f.Indent, f.Padding
		}
		if diff := cmp.Diff(f, got); diff != "" {
			t.Errorf("%s: %s", f, diff)
		}
	}
	if s := Of(Pretty).String(); s != "pretty:sep=space:indent=2" {
		t.Errorf("got %q", s)
	}
}

func TestValidate(t *testing.T) {
	f := Of(Pretty)
	f.Padding = '-'
	if err := f.Validate(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if _, err := f.MarshalText(); err == nil {
		t.Error("expected marshal error")
	}
}
