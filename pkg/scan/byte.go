package scan

import "bytes"

// ByteCursor scans a borrowed buffer one byte at a time. It makes no
// assumption about its offset: it may sit anywhere in the buffer, including
// inside a multi-byte UTF-8 sequence. Use the bridge methods (Chars,
// CharsSkipToBoundary) to move to codepoint-oriented scanning.
//
// All views returned by a ByteCursor are sub-slices of the original input.
type ByteCursor struct {
	cursor
}

// NewBytes creates a byte-oriented cursor over data, positioned at offset 0.
// The cursor borrows data; it is never copied and never modified.
func NewBytes(data []byte) *ByteCursor {
	return &ByteCursor{cursor{input: data}}
}

// NewBytesString creates a byte-oriented cursor over the bytes of s,
// positioned at offset 0. No copy is made.
func NewBytesString(s string) *ByteCursor {
	return &ByteCursor{cursor{input: unsafeBytes(s)}}
}

// Backup returns a copy of the cursor. Assigning the copy back (or calling
// Restore) rewinds to the position at which the backup was taken. A plain
// value copy does the same thing; Backup and Restore exist to show intent.
func (c *ByteCursor) Backup() ByteCursor {
	return *c
}

// Restore rewinds the cursor to a previously taken backup.
func (c *ByteCursor) Restore(b ByteCursor) {
	*c = b
}

// Rest returns the still-unconsumed suffix of the input.
func (c *ByteCursor) Rest() []byte {
	return c.input[c.pos:]
}

// PeekByte returns the next byte without consuming it.
// Returns false at end of input.
func (c *ByteCursor) PeekByte() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// AcceptByte consumes the next byte if it equals b.
func (c *ByteCursor) AcceptByte(b byte) bool {
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// AcceptByteFunc consumes the next byte if f reports true for it, and returns
// the byte it consumed. On failure the cursor is untouched.
func (c *ByteCursor) AcceptByteFunc(f func(byte) bool) (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	b := c.input[c.pos]
	if !f(b) {
		return 0, false
	}
	c.pos++
	return b, true
}

// Accept consumes lit if the upcoming input starts with it. The returned
// slice is the matched window of the input, not lit itself, so it stays valid
// for the lifetime of the input buffer. A partial match consumes nothing.
func (c *ByteCursor) Accept(lit []byte) ([]byte, bool) {
	end := c.pos + len(lit)
	if end > len(c.input) {
		return nil, false
	}
	window := c.input[c.pos:end]
	if !bytes.Equal(window, lit) {
		return nil, false
	}
	c.pos = end
	return window, true
}

// AcceptString is Accept with a string literal. The returned view is still a
// sub-slice of the input.
func (c *ByteCursor) AcceptString(lit string) ([]byte, bool) {
	end := c.pos + len(lit)
	if end > len(c.input) {
		return nil, false
	}
	window := c.input[c.pos:end]
	if string(window) != lit {
		return nil, false
	}
	c.pos = end
	return window, true
}

// AcceptUntilByte consumes bytes up to, but not including, the first
// occurrence of b. If b does not occur, the rest of the input is consumed.
// Always succeeds; the result may be empty.
func (c *ByteCursor) AcceptUntilByte(b byte) []byte {
	start := c.pos
	if i := bytes.IndexByte(c.input[c.pos:], b); i >= 0 {
		c.pos += i
	} else {
		c.pos = len(c.input)
	}
	return c.input[start:c.pos]
}

// AcceptUntilByteFunc consumes bytes while f reports false, stopping before
// the first byte for which f reports true (or at end of input).
// Always succeeds; the result may be empty.
func (c *ByteCursor) AcceptUntilByteFunc(f func(byte) bool) []byte {
	start := c.pos
	for c.pos < len(c.input) && !f(c.input[c.pos]) {
		c.pos++
	}
	return c.input[start:c.pos]
}

// SkipByte unconditionally discards the upcoming byte.
// Panics with *OutOfRangeError at end of input.
func (c *ByteCursor) SkipByte() {
	c.SkipBytes(1)
}

// SkipBytes unconditionally discards the upcoming n bytes.
//
// Skipping past the end of input is caller misuse and panics with
// *OutOfRangeError rather than clamping; check BytesLeft first. n must not be
// negative.
func (c *ByteCursor) SkipBytes(n int) {
	if n < 0 || n > c.BytesLeft() {
		panic(&OutOfRangeError{Offset: c.pos, N: n, Len: len(c.input)})
	}
	c.pos += n
}
