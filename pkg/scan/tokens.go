package scan

import "unicode"

// Convenience token helpers built on the char-mode primitives. Nothing here
// touches cursor internals; these are the grammars almost every hand-written
// lexer needs, pre-assembled.

// AcceptUntilWhitespace consumes codepoints up to, but not including, the
// first whitespace codepoint (per unicode.IsSpace). Always succeeds; the
// result may be empty.
func (c *CharCursor) AcceptUntilWhitespace() string {
	return c.AcceptUntilFunc(unicode.IsSpace)
}

// AcceptWhitespace consumes a single whitespace codepoint.
func (c *CharCursor) AcceptWhitespace() (string, bool) {
	return c.AcceptRuneFunc(unicode.IsSpace)
}

// AcceptZeroOrMoreWhitespace consumes a run of whitespace codepoints.
// Always succeeds; the result may be empty.
func (c *CharCursor) AcceptZeroOrMoreWhitespace() string {
	return c.AcceptUntilFunc(func(r rune) bool { return !unicode.IsSpace(r) })
}

// AcceptOneOrMoreWhitespace consumes a run of at least one whitespace
// codepoint, or fails without moving the cursor.
func (c *CharCursor) AcceptOneOrMoreWhitespace() (string, bool) {
	r, ok := c.PeekRune()
	if !ok || !unicode.IsSpace(r) {
		return "", false
	}
	return c.AcceptZeroOrMoreWhitespace(), true
}

// AcceptDigits consumes a run of at least one ASCII decimal digit, or fails
// without moving the cursor.
func (c *CharCursor) AcceptDigits() (string, bool) {
	run := c.AcceptUntilFunc(func(r rune) bool { return r < '0' || r > '9' })
	if run == "" {
		return "", false
	}
	return run, true
}
