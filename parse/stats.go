package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats counts what a parse saw. Containers are counted when opened and
// scalars once parsed, so a failed parse reports what was read up to the
// error.
type Stats struct {
	Bytes    uint64
	Objects  uint64
	Arrays   uint64
	Strings  uint64
	Numbers  uint64
	Booleans uint64
	Nulls    uint64
	Keys     uint64
	Elapsed  time.Duration
}

func (s *Stats) Reset() {
	*s = Stats{}
}

func (s *Stats) TimeMS() int64 {
	return s.Elapsed.Milliseconds()
}

func (s *Stats) String() string {
	comma := func(n uint64) string {
		return humanize.Comma(int64(n))
	}
	ms := s.TimeMS()
	b := &strings.Builder{}
	fmt.Fprintf(b, "data size.....: %s bytes\n", comma(s.Bytes))
	fmt.Fprintf(b, "objects.......: %s\n", comma(s.Objects))
	fmt.Fprintf(b, "arrays........: %s\n", comma(s.Arrays))
	fmt.Fprintf(b, "strings.......: %s\n", comma(s.Strings))
	fmt.Fprintf(b, "numbers.......: %s\n", comma(s.Numbers))
	fmt.Fprintf(b, "booleans......: %s\n", comma(s.Booleans))
	fmt.Fprintf(b, "nulls.........: %s\n", comma(s.Nulls))
	fmt.Fprintf(b, "(keys)........: %s\n", comma(s.Keys))
	fmt.Fprintf(b, "(time taken)..: %s.%03d seconds\n", humanize.Comma(ms/1000), ms%1000)
	return b.String()
}
