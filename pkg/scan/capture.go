package scan

// Capture runs f and returns the exact span of input that f consumed, via
// marks taken before and after the call. This is the standard pattern for
// "parse something and also keep the raw text you parsed":
//
//	cur := scan.NewBytes(data)
//	raw := cur.Capture(func(cur *scan.ByteCursor) {
//		cur.AcceptUntilByte(':')
//		cur.AcceptByte(':')
//	})
//
// Results computed inside f are returned by closing over variables.
func (c *ByteCursor) Capture(f func(*ByteCursor)) []byte {
	start := c.pos
	f(c)
	return c.input[start:c.pos]
}

// TryCapture is Capture for callbacks that can fail. If f returns true, the
// consumed span is returned with the cursor left past it. If f returns false,
// the cursor is restored to exactly where it was before the call and
// TryCapture returns false: a failed sub-parse leaves no partial effects
// behind.
func (c *ByteCursor) TryCapture(f func(*ByteCursor) bool) ([]byte, bool) {
	backup := *c
	start := c.pos
	if !f(c) {
		*c = backup
		return nil, false
	}
	return c.input[start:c.pos], true
}

// Capture runs f and returns the exact span of input that f consumed, via
// marks taken before and after the call.
//
//	cur := scan.NewChars("ab cd")
//	raw := cur.Capture(func(cur *scan.CharCursor) {
//		cur.AcceptUntilWhitespace()
//		cur.AcceptOneOrMoreWhitespace()
//		cur.AcceptRune('c')
//	})
//	// raw == "ab c"
func (c *CharCursor) Capture(f func(*CharCursor)) string {
	start := c.pos
	f(c)
	return unsafeString(c.input[start:c.pos])
}

// TryCapture is Capture for callbacks that can fail. If f returns true, the
// consumed span is returned with the cursor left past it. If f returns false,
// the cursor is restored to exactly where it was before the call and
// TryCapture returns false.
func (c *CharCursor) TryCapture(f func(*CharCursor) bool) (string, bool) {
	backup := *c
	start := c.pos
	if !f(c) {
		*c = backup
		return "", false
	}
	return unsafeString(c.input[start:c.pos]), true
}
