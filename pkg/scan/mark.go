package scan

// ByteMark is an immutable snapshot of a ByteCursor position. It carries no
// boundary guarantee. A mark is only meaningful against the buffer its cursor
// was scanning; slicing with a mark from another buffer may panic on a bounds
// check but can never read out of bounds.
type ByteMark struct {
	pos int
}

// Offset returns the byte position the mark was taken at. Intended for
// diagnostics; marks are otherwise only slicing endpoints.
func (m ByteMark) Offset() int {
	return m.pos
}

// CharMark is an immutable snapshot of a CharCursor position. Its offset is
// guaranteed to lie on a UTF-8 codepoint boundary of the buffer it was taken
// from, which is why exclusive slices between CharMarks can never split a
// codepoint.
type CharMark struct {
	pos int
}

// Offset returns the byte position the mark was taken at. Intended for
// diagnostics; marks are otherwise only slicing endpoints.
func (m CharMark) Offset() int {
	return m.pos
}

// Mark captures the current position. O(1), no allocation.
func (c *ByteCursor) Mark() ByteMark {
	return ByteMark{c.pos}
}

// Mark captures the current position. O(1), no allocation.
func (c *CharCursor) Mark() CharMark {
	return CharMark{c.pos}
}

// Slice returns the input between two marks, start inclusive, end exclusive.
// The result is a view into the original buffer and stays valid after the
// cursor is gone.
func (c *ByteCursor) Slice(start, end ByteMark) []byte {
	return c.input[start.pos:end.pos]
}

// SliceFrom returns the input from start to the end of the buffer.
func (c *ByteCursor) SliceFrom(start ByteMark) []byte {
	return c.input[start.pos:]
}

// SliceTo returns the input from the beginning of the buffer up to, but not
// including, end.
func (c *ByteCursor) SliceTo(end ByteMark) []byte {
	return c.input[:end.pos]
}

// SliceInclusive returns the input between two marks, both inclusive.
// Inclusive ends exist only in byte mode: no codepoint-integrity guarantee is
// being made, so a range ending one byte into a multi-byte sequence is legal.
func (c *ByteCursor) SliceInclusive(start, end ByteMark) []byte {
	return c.input[start.pos : end.pos+1]
}

// SliceToInclusive returns the input from the beginning of the buffer through
// end, inclusive.
func (c *ByteCursor) SliceToInclusive(end ByteMark) []byte {
	return c.input[:end.pos+1]
}

// SliceAll returns the entire input buffer, regardless of the current
// position.
func (c *ByteCursor) SliceAll() []byte {
	return c.input
}

// Slice returns the input between two marks, start inclusive, end exclusive.
// The result is a view into the original buffer and stays valid after the
// cursor is gone.
//
// Char mode has no inclusive-end slices: an inclusive end could land one byte
// past a boundary, inside a multi-byte codepoint. Exclusive ends are always
// safe because every CharMark already sits on a boundary.
func (c *CharCursor) Slice(start, end CharMark) string {
	return unsafeString(c.input[start.pos:end.pos])
}

// SliceFrom returns the input from start to the end of the buffer.
func (c *CharCursor) SliceFrom(start CharMark) string {
	return unsafeString(c.input[start.pos:])
}

// SliceTo returns the input from the beginning of the buffer up to, but not
// including, end.
func (c *CharCursor) SliceTo(end CharMark) string {
	return unsafeString(c.input[:end.pos])
}

// SliceAll returns the entire input buffer, regardless of the current
// position.
func (c *CharCursor) SliceAll() string {
	return unsafeString(c.input)
}
