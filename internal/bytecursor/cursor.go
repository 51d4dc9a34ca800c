// Package bytecursor provides sequential decoding of in-memory frame
// payloads.
package bytecursor

import (
	"bytes"
	"fmt"
)

// Cursor reads a byte slice front to back, tracking how much has been
// consumed. Reads never go past the end of the slice: string reads
// degrade to empty results, fixed-size reads return an error with
// context for the caller to classify.
type Cursor struct {
	data []byte
	off  int
}

// New creates a Cursor positioned at the start of data. The cursor
// reads from the slice directly and does not copy it.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of bytes left to consume.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Empty reports whether the cursor has been fully consumed.
func (c *Cursor) Empty() bool {
	return c.off >= len(c.data)
}

// TakeByte consumes and returns exactly one byte. It fails when the
// cursor is empty; what names the field being read for error context.
func (c *Cursor) TakeByte(what string) (byte, error) {
	if c.Empty() {
		return 0, fmt.Errorf("reading %s: need 1 byte at offset %d, have 0", what, c.off)
	}
	b := c.data[c.off]
	c.off++
	return b, nil
}

// TakeTerminatedString consumes bytes up to and including the next 0x00
// terminator and returns them decoded as Latin-1. When no terminator
// exists before the end of the buffer the remainder is consumed and the
// empty string is returned.
func (c *Cursor) TakeTerminatedString() string {
	idx := bytes.IndexByte(c.data[c.off:], 0x00)
	if idx < 0 {
		c.off = len(c.data)
		return ""
	}
	s := DecodeLatin1(c.data[c.off : c.off+idx])
	c.off += idx + 1
	return s
}

// TakeRemaining consumes and returns all unread bytes. The result may
// be empty and aliases the cursor's backing slice.
func (c *Cursor) TakeRemaining() []byte {
	rest := c.data[c.off:]
	c.off = len(c.data)
	return rest
}
