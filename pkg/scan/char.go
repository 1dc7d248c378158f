package scan

import "unicode/utf8"

// CharCursor scans a borrowed buffer one UTF-8 codepoint at a time. Its
// offset is always on a codepoint boundary, on entry to and exit from every
// operation, so no view it produces can split a multi-byte codepoint.
//
// The views returned by a CharCursor are strings sharing memory with the
// input buffer (see the package documentation on zero-copy views).
type CharCursor struct {
	cursor
}

// NewChars creates a codepoint-oriented cursor over s, positioned at offset 0.
// The input borrows s; no copy is made. Because s is already text, offset 0 is
// trivially on a boundary and the construction cannot fail.
func NewChars(s string) *CharCursor {
	return &CharCursor{cursor{input: unsafeBytes(s)}}
}

// Backup returns a copy of the cursor. Assigning the copy back (or calling
// Restore) rewinds to the position at which the backup was taken.
func (c *CharCursor) Backup() CharCursor {
	return *c
}

// Restore rewinds the cursor to a previously taken backup.
func (c *CharCursor) Restore(b CharCursor) {
	*c = b
}

// Rest returns the still-unconsumed suffix of the input.
func (c *CharCursor) Rest() string {
	return unsafeString(c.input[c.pos:])
}

// PeekRune returns the next codepoint without consuming it.
// Returns false at end of input.
func (c *CharCursor) PeekRune() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRune(c.input[c.pos:])
	return r, true
}

// AcceptRune consumes the next codepoint if it equals r, returning it as a
// view into the input.
func (c *CharCursor) AcceptRune(r rune) (string, bool) {
	return c.AcceptRuneFunc(func(x rune) bool { return x == r })
}

// AcceptRuneFunc consumes the next codepoint if f reports true for it, and
// returns it as a view into the input. On failure the cursor is untouched.
func (c *CharCursor) AcceptRuneFunc(f func(rune) bool) (string, bool) {
	if c.pos >= len(c.input) {
		return "", false
	}
	r, size := utf8.DecodeRune(c.input[c.pos:])
	if !f(r) {
		return "", false
	}
	start := c.pos
	c.pos += size
	return unsafeString(c.input[start:c.pos]), true
}

// Accept consumes lit if the upcoming input starts with it. The returned
// string is the matched window of the input, not lit itself, so it stays
// valid for the lifetime of the input buffer. A partial match consumes
// nothing. lit must be valid UTF-8 for the boundary guarantee to hold after
// the match.
func (c *CharCursor) Accept(lit string) (string, bool) {
	end := c.pos + len(lit)
	if end > len(c.input) {
		return "", false
	}
	window := c.input[c.pos:end]
	if string(window) != lit {
		return "", false
	}
	c.pos = end
	return unsafeString(window), true
}

// AcceptUntilRune consumes codepoints up to, but not including, the first
// occurrence of r. If r does not occur, the rest of the input is consumed.
// Always succeeds; the result may be empty.
func (c *CharCursor) AcceptUntilRune(r rune) string {
	return c.AcceptUntilFunc(func(x rune) bool { return x == r })
}

// AcceptUntilFunc consumes codepoints while f reports false, stopping before
// the first codepoint for which f reports true (or at end of input).
// Always succeeds; the result may be empty.
func (c *CharCursor) AcceptUntilFunc(f func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.input) {
		r, size := utf8.DecodeRune(c.input[c.pos:])
		if f(r) {
			break
		}
		c.pos += size
	}
	return unsafeString(c.input[start:c.pos])
}

// SkipRune unconditionally discards the upcoming codepoint.
// Panics with *OutOfRangeError at end of input rather than clamping; check
// Done first.
func (c *CharCursor) SkipRune() {
	if c.pos >= len(c.input) {
		panic(&OutOfRangeError{Offset: c.pos, N: 1, Len: len(c.input)})
	}
	_, size := utf8.DecodeRune(c.input[c.pos:])
	c.pos += size
}
