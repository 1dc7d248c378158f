package scan

// cursor is the representation shared by ByteCursor and CharCursor: a borrowed
// input buffer and a byte offset into it. The two exported types differ only
// in the operations they expose, which is what upholds the codepoint-boundary
// guarantee of CharCursor.
type cursor struct {
	input []byte
	pos   int
}

// Len returns the total length of the input buffer in bytes.
func (c *cursor) Len() int {
	return len(c.input)
}

// Offset returns the current byte position, equal to the number of bytes
// accepted so far.
func (c *cursor) Offset() int {
	return c.pos
}

// BytesLeft returns how many bytes remain to be scanned.
func (c *cursor) BytesLeft() int {
	return len(c.input) - c.pos
}

// Done reports whether the end of the input has been reached.
func (c *cursor) Done() bool {
	return c.pos == len(c.input)
}
