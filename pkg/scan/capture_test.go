package scan

import "testing"

// TestCharCursor_Capture tests that the captured span is exactly what the
// callback consumed.
func TestCharCursor_Capture(t *testing.T) {
	c := NewChars("ab cd")

	got := c.Capture(func(c *CharCursor) {
		c.AcceptUntilWhitespace()
		c.AcceptOneOrMoreWhitespace()
		c.AcceptRune('c')
	})
	if got != "ab c" {
		t.Fatalf("captured %q", got)
	}
	if c.Rest() != "d" {
		t.Fatalf("Rest = %q", c.Rest())
	}
}

// TestCharCursor_Capture_Empty tests capturing a callback that consumes
// nothing.
func TestCharCursor_Capture_Empty(t *testing.T) {
	c := NewChars("abc")

	if got := c.Capture(func(*CharCursor) {}); got != "" {
		t.Fatalf("captured %q from an empty callback", got)
	}
	if c.Offset() != 0 {
		t.Fatalf("empty callback moved cursor to %d", c.Offset())
	}
}

// TestCharCursor_TryCapture tests the backtracking law: either the full span
// with the cursor past it, or nothing with the cursor exactly where it was.
func TestCharCursor_TryCapture(t *testing.T) {
	t.Run("success advances past the span", func(t *testing.T) {
		c := NewChars("foo=bar baz")

		got, ok := c.TryCapture(func(c *CharCursor) bool {
			if _, ok := c.AcceptIdent(UnicodeIdent); !ok {
				return false
			}
			if _, ok := c.AcceptRune('='); !ok {
				return false
			}
			_, ok := c.AcceptIdent(UnicodeIdent)
			return ok
		})
		if !ok || got != "foo=bar" {
			t.Fatalf("got %q, %v", got, ok)
		}
		if c.Rest() != " baz" {
			t.Fatalf("Rest = %q", c.Rest())
		}
	})

	t.Run("failure restores the pre-call position", func(t *testing.T) {
		c := NewChars("foo bar")
		c.AcceptRune('f')
		before := c.Offset()

		_, ok := c.TryCapture(func(c *CharCursor) bool {
			c.AcceptIdent(UnicodeIdent)
			c.AcceptZeroOrMoreWhitespace()
			_, ok := c.AcceptRune('=') // not there
			return ok
		})
		if ok {
			t.Fatal("callback reported failure but TryCapture succeeded")
		}
		if c.Offset() != before {
			t.Fatalf("offset = %d, want the pre-call %d", c.Offset(), before)
		}
	})
}

// TestByteCursor_Capture tests byte-mode capture and backtracking.
func TestByteCursor_Capture(t *testing.T) {
	c := NewBytesString("key:value;rest")

	got := c.Capture(func(c *ByteCursor) {
		c.AcceptUntilByte(':')
		c.AcceptByte(':')
		c.AcceptUntilByte(';')
	})
	if string(got) != "key:value" {
		t.Fatalf("captured %q", got)
	}

	_, ok := c.TryCapture(func(c *ByteCursor) bool {
		c.SkipByte() // ';'
		_, ok := c.AcceptString("nope")
		return ok
	})
	if ok {
		t.Fatal("TryCapture succeeded on a failing callback")
	}
	if b, _ := c.PeekByte(); b != ';' {
		t.Fatalf("cursor not restored, next byte %q", b)
	}

	got, ok = c.TryCapture(func(c *ByteCursor) bool {
		c.SkipByte()
		_, ok := c.AcceptString("rest")
		return ok
	})
	if !ok || string(got) != ";rest" {
		t.Fatalf("got %q, %v", got, ok)
	}
	if !c.Done() {
		t.Fatal("input not fully consumed")
	}
}
