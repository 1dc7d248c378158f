package scan

// AtCharBoundary reports whether the cursor currently sits on a UTF-8
// codepoint boundary. A position is a boundary iff it is 0, the buffer
// length, or the byte at it does not carry the continuation-byte pattern
// (0b10xxxxxx).
func (c *ByteCursor) AtCharBoundary() bool {
	return c.pos == 0 || c.pos == len(c.input) || !isContinuation(c.input[c.pos])
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// SkipToCharBoundary advances until the cursor sits on a UTF-8 codepoint
// boundary. For valid UTF-8 this skips at most 3 bytes, since a sequence is
// at most 4 bytes long. Already being on a boundary skips nothing; the end of
// the buffer always counts as one, so this never moves past the end.
func (c *ByteCursor) SkipToCharBoundary() {
	for !c.AtCharBoundary() {
		c.pos++
	}
}

// Chars converts the cursor to codepoint-oriented scanning at the same
// offset. The conversion succeeds only when the cursor is currently on a
// UTF-8 boundary; otherwise it returns false and the receiver is unchanged
// and still usable.
//
// The buffer must be valid UTF-8 from the current offset on for the returned
// cursor's operations to be meaningful.
func (c *ByteCursor) Chars() (*CharCursor, bool) {
	if !c.AtCharBoundary() {
		return nil, false
	}
	return &CharCursor{c.cursor}, true
}

// CharsSkipToBoundary converts the cursor to codepoint-oriented scanning,
// first advancing to the next UTF-8 boundary if it is not on one. Unlike
// Chars, this always succeeds. The receiver is advanced along with the
// conversion.
func (c *ByteCursor) CharsSkipToBoundary() *CharCursor {
	c.SkipToCharBoundary()
	return &CharCursor{c.cursor}
}

// Bytes converts the cursor to byte-oriented scanning at the same offset.
// This always succeeds: byte mode makes strictly weaker assumptions, so there
// is nothing to check. The returned cursor and the receiver advance
// independently.
func (c *CharCursor) Bytes() *ByteCursor {
	return &ByteCursor{c.cursor}
}
