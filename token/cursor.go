package token

// Cursor is a single byte lookahead over the input.
//
// Mark records the current offset; Rewind returns to it, and Unmark
// drops it. At most one mark is active at a time. The parser marks
// before speculative scans, such as matching a literal that may turn
// out to be an unquoted string.
type Cursor interface {
	// Peek returns the current byte. ok is false at end of input.
	Peek() (c byte, ok bool)
	// Next consumes the current byte and returns the new current byte.
	Next() (c byte, ok bool)
	EOF() bool
	// Offset is the number of bytes consumed so far.
	Offset() int64
	Mark()
	Rewind() error
	Unmark()
	// Err returns the first read error, other than io.EOF, that ended
	// the input.
	Err() error
}

type bytesCursor struct {
	d    []byte
	i    int
	mark int
}

// NewBytesCursor returns a cursor over d. The cursor does not copy d,
// which must not change while it is read.
func NewBytesCursor(d []byte) Cursor {
	return &bytesCursor{d: d, mark: -1}
}

func (c *bytesCursor) Peek() (byte, bool) {
	if c.i >= len(c.d) {
		return 0, false
	}
	return c.d[c.i], true
}

func (c *bytesCursor) Next() (byte, bool) {
	if c.i < len(c.d) {
		c.i++
	}
	return c.Peek()
}

func (c *bytesCursor) EOF() bool     { return c.i >= len(c.d) }
func (c *bytesCursor) Offset() int64 { return int64(c.i) }
func (c *bytesCursor) Mark()         { c.mark = c.i }
func (c *bytesCursor) Unmark()       { c.mark = -1 }
func (c *bytesCursor) Err() error    { return nil }

func (c *bytesCursor) Rewind() error {
	if c.mark < 0 {
		return ErrNoMark
	}
	c.i = c.mark
	c.mark = -1
	return nil
}
