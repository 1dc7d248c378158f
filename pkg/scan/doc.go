// Package scan provides a low-level scanning cursor for hand-written
// recursive-descent parsers and lexers.
//
// A cursor wraps a borrowed, in-memory buffer and a byte offset. It supports
// position tracking, cheap backtracking, mark/slice extraction of sub-ranges,
// and a small set of accept/skip primitives. The buffer is never copied and
// never mutated; every view a cursor hands out is a sub-slice of the original
// input.
//
// # Boundary modes
//
// Cursors come in two modes, realized as two separate types:
//
//   - ByteCursor makes no assumption about its offset. It may sit anywhere in
//     the buffer, including in the middle of a multi-byte UTF-8 sequence.
//   - CharCursor guarantees that its offset is always on a UTF-8 codepoint
//     boundary, on entry to and exit from every operation.
//
// The two types share a representation but not an API surface: operations that
// could break the codepoint-boundary guarantee simply do not exist on
// CharCursor. In particular, inclusive-end slicing (SliceInclusive,
// SliceToInclusive) is only available on ByteCursor, because an inclusive end
// could land inside a multi-byte codepoint. Using an inclusive slice on a
// CharCursor is a compile error, not a runtime check.
//
// Converting between modes goes through the bridge methods: ByteCursor.Chars
// (checked, fails off-boundary), ByteCursor.CharsSkipToBoundary (forces
// alignment first), and CharCursor.Bytes (always legal, the byte-mode
// guarantee is strictly weaker). The usual pattern for mixed binary/text input
// is to skip a fixed binary header in byte mode and then bridge into char mode
// for the textual remainder.
//
// # Terminology
//
// Method names follow a small vocabulary:
//
//   - Accept* matches something against the upcoming input. On success it
//     advances past the match and returns the matched view; on failure it
//     returns the zero value and false, and the cursor is untouched. A failed
//     accept is a normal outcome, not an error.
//   - AcceptUntil* consumes unit by unit while a condition is false and stops
//     before the first unit where it is true (or at end of input). It always
//     succeeds, possibly with an empty view, and never includes the matching
//     unit.
//   - Peek* looks at the next unit without consuming it.
//   - Skip* advances unconditionally. Skipping past the end of input is caller
//     misuse and panics with *OutOfRangeError; check availability first.
//
// ByteCursor methods work on single bytes, CharCursor methods on UTF-8
// codepoints (runes). There is no partial consumption: every operation either
// completes a whole logical unit or leaves the cursor exactly where it was.
//
// # Marks and slices
//
// Mark captures the current offset into a ByteMark or CharMark. Marks carry
// their mode in the type, so a CharMark can only be used with a CharCursor's
// slice methods and vice versa. Slices taken between marks are views into the
// original buffer, valid for as long as the buffer itself, independent of the
// cursor:
//
//	cur := scan.NewChars("ab cd")
//	start := cur.Mark()
//	cur.AcceptUntilWhitespace()
//	cur.AcceptOneOrMoreWhitespace()
//	cur.AcceptRune('c')
//	raw := cur.Slice(start, cur.Mark()) // "ab c"
//
// A mark is only meaningful against the buffer its cursor was scanning.
// Slicing with a mark taken from a different buffer is not detectable and may
// panic on a bounds check; it can never read out of bounds.
//
// Capture and TryCapture wrap the mark-before/mark-after pattern: they run a
// callback of primitive calls and return the exact span the callback consumed.
// TryCapture additionally restores the cursor when the callback reports
// failure, so a failed sub-parse leaves no observable effects.
//
// # Zero-copy views
//
// CharCursor returns string views that share memory with the input buffer.
// If the cursor was built from a []byte, do not modify that buffer while any
// returned view is alive.
//
// # Thread Safety
//
// Cursors never mutate the buffer, so any number of cursors may scan the same
// buffer concurrently, from any number of goroutines. A single cursor value is
// not safe for concurrent use: its offset is mutable private state. Cloning a
// cursor (Backup, or a plain value copy) is the supported way to hand a
// position to another goroutine.
package scan
