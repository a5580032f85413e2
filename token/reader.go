package token

import (
	"errors"
	"io"
)

const defaultBufferSize = 4096

// readerCursor pulls from an io.Reader through its own buffer. Bytes
// from an active mark onwards are retained so Rewind can replay them.
type readerCursor struct {
	r   io.Reader
	buf []byte
	// absolute offset of buf[0]
	bufStart int64
	bufPos   int
	mark     int64
	err      error
	eof      bool
}

func NewReaderCursor(r io.Reader) Cursor {
	return &readerCursor{
		r:    r,
		buf:  make([]byte, 0, defaultBufferSize),
		mark: -1,
	}
}

// fill makes sure buf[bufPos] is valid if any input remains.
func (c *readerCursor) fill() bool {
	if c.bufPos < len(c.buf) {
		return true
	}
	if c.eof {
		return false
	}
	keep := c.bufPos
	if c.mark >= 0 {
		keep = int(c.mark - c.bufStart)
	}
	if keep > 0 {
		n := copy(c.buf, c.buf[keep:])
		c.buf = c.buf[:n]
		c.bufStart += int64(keep)
		c.bufPos -= keep
	}
	if cap(c.buf)-len(c.buf) < defaultBufferSize/2 {
		nb := make([]byte, len(c.buf), 2*cap(c.buf)+defaultBufferSize)
		copy(nb, c.buf)
		c.buf = nb
	}
	for {
		n, err := c.r.Read(c.buf[len(c.buf):cap(c.buf)])
		c.buf = c.buf[:len(c.buf)+n]
		if err != nil {
			c.eof = true
			if !errors.Is(err, io.EOF) {
				c.err = err
			}
			return n > 0
		}
		if n > 0 {
			return true
		}
	}
}

func (c *readerCursor) Peek() (byte, bool) {
	if !c.fill() {
		return 0, false
	}
	return c.buf[c.bufPos], true
}

func (c *readerCursor) Next() (byte, bool) {
	if c.fill() {
		c.bufPos++
	}
	return c.Peek()
}

func (c *readerCursor) EOF() bool {
	return !c.fill()
}

func (c *readerCursor) Offset() int64 {
	return c.bufStart + int64(c.bufPos)
}

func (c *readerCursor) Mark() {
	c.mark = c.Offset()
}

func (c *readerCursor) Unmark() {
	c.mark = -1
}

func (c *readerCursor) Rewind() error {
	if c.mark < 0 {
		return ErrNoMark
	}
	c.bufPos = int(c.mark - c.bufStart)
	c.mark = -1
	return nil
}

func (c *readerCursor) Err() error {
	return c.err
}
