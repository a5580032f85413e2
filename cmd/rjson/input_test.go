package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func writeFile(t *testing.T, d string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(d), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInputArgPiped(t *testing.T) {
	cfg := &MainConfig{}
	cc := &cli.Context{In: io.NopCloser(strings.NewReader(`{}`))}
	name, err := cfg.inputArg(cc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if name != "-" {
		t.Errorf("got %q", name)
	}
	if _, err := cfg.inputArg(cc, []string{"a.json"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("file with piped stdin: got %v", err)
	}
	if _, err := cfg.inputArg(cc, []string{"a", "b"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("two files: got %v", err)
	}
}

func TestInputArgInteractive(t *testing.T) {
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()
	cc := &cli.Context{In: devNull}

	cfg := &MainConfig{}
	name, err := cfg.inputArg(cc, []string{"a.json"})
	if err != nil || name != "a.json" {
		t.Errorf("got %q, %v", name, err)
	}
	if _, err := cfg.inputArg(cc, nil); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("no input: got %v", err)
	}
	cfg.Stdin = true
	if _, err := cfg.inputArg(cc, []string{"a.json"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("-stdin with file: got %v", err)
	}
}

func TestReadDoc(t *testing.T) {
	want := ir.FromMap(map[string]*ir.Value{"a": ir.FromUint(1)})
	path := writeFile(t, "  {a: 1}\n\n")
	strategies := []struct {
		use  string
		name string
	}{
		{"mmap", path},
		{"data", path},
		{"string", path},
		{"stream", path},
		{"seek", path},
		{"data", "-"},
		{"stream", "-"},
	}
	for _, s := range strategies {
		cfg := &MainConfig{FlexKeys: true}
		if _, err := cfg.useOpt(nil, s.use); err != nil {
			t.Fatal(err)
		}
		cc := &cli.Context{In: io.NopCloser(strings.NewReader("{a: 1}"))}
		st := &parse.Stats{}
		got, err := cfg.readDoc(cc, s.name, st)
		if err != nil {
			t.Errorf("%s %s: %v", s.use, s.name, err)
			continue
		}
		if !ir.Equal(got, want) {
			t.Errorf("%s %s: got %v", s.use, s.name, got.ToAny())
		}
		if diff := cmp.Diff(uint64(1), st.Objects); diff != "" {
			t.Errorf("%s %s objects: %s", s.use, s.name, diff)
		}
	}
}

func TestReadDocEmptyStdin(t *testing.T) {
	cfg := &MainConfig{}
	cc := &cli.Context{In: io.NopCloser(strings.NewReader(" \n\t"))}
	if _, err := cfg.readDoc(cc, "-", nil); !errors.Is(err, errNoInput) {
		t.Errorf("got %v", err)
	}
}

func TestUseOptBad(t *testing.T) {
	cfg := &MainConfig{}
	if _, err := cfg.useOpt(nil, "carrier-pigeon"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
	if _, err := cfg.dupOpt(nil, "sometimes"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestWriteResultScalars(t *testing.T) {
	cfg := &MainConfig{}
	vals := []*ir.Value{ir.Null(), ir.FromBool(true), ir.FromInt(-2), ir.FromFloat(0.5), ir.FromString("a b")}
	out := &bytes.Buffer{}
	cc := &cli.Context{Out: nopWriteCloser{out}}
	for _, v := range vals {
		if err := cfg.writeResult(cc, v); err != nil {
			t.Fatal(err)
		}
	}
	want := "null\ntrue\n-2\n0.5\na b\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Error(diff)
	}
}

func TestDiffDocs(t *testing.T) {
	a, _ := parse.ParseString(`{"a": 1, "b": [1, 2]}`)
	b, _ := parse.ParseString(`{"a": 2, "b": [1, 2]}`)
	for _, merge := range []bool{false, true} {
		cfg := &DiffConfig{MainConfig: &MainConfig{}, Merge: merge}
		d, err := diffDocs(cfg, a, a.Clone())
		if err != nil || d != nil {
			t.Errorf("merge=%t equal docs: got %v, %v", merge, d, err)
		}
		d, err = diffDocs(cfg, a, b)
		if err != nil {
			t.Fatal(err)
		}
		if d == nil {
			t.Errorf("merge=%t: expected a difference", merge)
		}
	}
	cfg := &DiffConfig{MainConfig: &MainConfig{}, Merge: true}
	d, err := diffDocs(cfg, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromMap(map[string]*ir.Value{"a": ir.FromUint(2)})
	if !ir.Equal(d, want) {
		t.Errorf("got %v", d.ToAny())
	}
}
