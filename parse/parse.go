package parse

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/token"
)

// Parse parses a document held in memory.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	return ParseCursor(token.NewBytesCursor(d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader parses a document pulled from r.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Value, error) {
	return ParseCursor(token.NewReaderCursor(r), opts...)
}

// ParseReadSeeker parses a document from the current offset of rs.
func ParseReadSeeker(rs io.ReadSeeker, opts ...ParseOption) (*ir.Value, error) {
	return ParseCursor(token.NewSeekCursor(rs), opts...)
}

// ParseFile parses the document at path, reading it as strategy says.
func ParseFile(path string, strategy FileStrategy, opts ...ParseOption) (*ir.Value, error) {
	switch strategy {
	case Mmap:
		m, err := token.MapFile(path)
		if err != nil {
			return nil, err
		}
		defer m.Close()
		return Parse(m.Bytes(), opts...)
	case ReadAll:
		d, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Parse(d, opts...)
	case Buffered, Seek:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if strategy == Seek {
			return ParseReadSeeker(f, opts...)
		}
		return ParseReader(f, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown file strategy %d", ErrBadControl, int(strategy))
	}
}

// ParseCursor parses the document read through c. The document must be
// an object or an array, optionally surrounded by whitespace and
// comments.
func ParseCursor(c token.Cursor, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	st := pOpts.stats
	if st == nil {
		st = &Stats{}
	}
	st.Reset()
	start := time.Now()
	p := newParser(c, pOpts, st)
	v, err := p.parseDoc()
	st.Bytes = uint64(c.Offset())
	st.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}
	return v, nil
}
