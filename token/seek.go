package token

import (
	"bufio"
	"errors"
	"io"
)

// seekCursor reads a seekable stream through a bufio.Reader and
// rewinds by seeking the underlying stream.
type seekCursor struct {
	rs    io.ReadSeeker
	br    *bufio.Reader
	start int64
	off   int64
	mark  int64
	err   error
}

// NewSeekCursor returns a cursor reading rs from its current offset.
func NewSeekCursor(rs io.ReadSeeker) Cursor {
	c := &seekCursor{
		rs:   rs,
		br:   bufio.NewReaderSize(rs, defaultBufferSize),
		mark: -1,
	}
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		c.err = err
	}
	c.start = start
	return c
}

func (c *seekCursor) Peek() (byte, bool) {
	if c.err != nil {
		return 0, false
	}
	d, err := c.br.Peek(1)
	if len(d) == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			c.err = err
		}
		return 0, false
	}
	return d[0], true
}

func (c *seekCursor) Next() (byte, bool) {
	if _, ok := c.Peek(); ok {
		c.br.Discard(1)
		c.off++
	}
	return c.Peek()
}

func (c *seekCursor) EOF() bool {
	_, ok := c.Peek()
	return !ok
}

func (c *seekCursor) Offset() int64 { return c.off }
func (c *seekCursor) Mark()         { c.mark = c.off }
func (c *seekCursor) Unmark()       { c.mark = -1 }
func (c *seekCursor) Err() error    { return c.err }

func (c *seekCursor) Rewind() error {
	if c.mark < 0 {
		return ErrNoMark
	}
	if _, err := c.rs.Seek(c.start+c.mark, io.SeekStart); err != nil {
		c.err = err
		return err
	}
	c.br.Reset(c.rs)
	c.off = c.mark
	c.mark = -1
	return nil
}
