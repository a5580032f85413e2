package token

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func cursors(d string) map[string]Cursor {
	return map[string]Cursor{
		"bytes":  NewBytesCursor([]byte(d)),
		"reader": NewReaderCursor(iotest.OneByteReader(strings.NewReader(d))),
		"seek":   NewSeekCursor(strings.NewReader(d)),
	}
}

func drain(c Cursor) []byte {
	var res []byte
	for b, ok := c.Peek(); ok; b, ok = c.Next() {
		res = append(res, b)
	}
	return res
}

func TestCursorsRead(t *testing.T) {
	in := strings.Repeat("abcdefghij", 1000)
	for name, c := range cursors(in) {
		t.Run(name, func(t *testing.T) {
			got := drain(c)
			if !bytes.Equal(got, []byte(in)) {
				t.Errorf("read %d bytes, want %d", len(got), len(in))
			}
			if !c.EOF() {
				t.Error("expected EOF")
			}
			if c.Offset() != int64(len(in)) {
				t.Errorf("offset %d", c.Offset())
			}
		})
	}
}

func TestCursorsRewind(t *testing.T) {
	in := strings.Repeat("x", defaultBufferSize-3) + "truefalse"
	for name, c := range cursors(in) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < defaultBufferSize-3; i++ {
				c.Next()
			}
			c.Mark()
			var first []byte
			for i := 0; i < 6; i++ {
				b, _ := c.Peek()
				first = append(first, b)
				c.Next()
			}
			if err := c.Rewind(); err != nil {
				t.Fatal(err)
			}
			if c.Offset() != int64(defaultBufferSize-3) {
				t.Errorf("offset after rewind %d", c.Offset())
			}
			rest := drain(c)
			if diff := cmp.Diff("truefa", string(first)); diff != "" {
				t.Error(diff)
			}
			if diff := cmp.Diff("truefalse", string(rest)); diff != "" {
				t.Error(diff)
			}
			if err := c.Rewind(); err != ErrNoMark {
				t.Errorf("rewind without mark: %v", err)
			}
		})
	}
}

func TestLines(t *testing.T) {
	l := NewLines()
	if p := l.Pos(0); p.Line != 1 || p.Col != 1 {
		t.Errorf("start %v", p)
	}
	l.Newline(4)
	p := l.Pos(7)
	if p.Line != 2 || p.Col != 3 {
		t.Errorf("got %+v", p)
	}
	if p.String() != "@line:2, @pos:3" {
		t.Errorf("got %s", p)
	}
}

func TestMapFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := MapFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(m.Bytes()) != `{"a":1}` {
		t.Errorf("got %q", m.Bytes())
	}
	if err := m.Close(); err != nil {
		t.Error(err)
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	m, err = MapFile(empty)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Bytes()) != 0 {
		t.Errorf("got %q", m.Bytes())
	}
	m.Close()
}
