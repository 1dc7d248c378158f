// Package scan error types. A failed Accept is not an error; the only failure
// the package reports is an out-of-range unconditional skip, which is caller
// misuse and panics.
package scan

import "fmt"

// OutOfRangeError is the panic value raised when an unconditional skip
// (SkipByte, SkipBytes, SkipRune) would move past the end of the input.
// Skipping without checking availability is a logic error in the consuming
// parser, so it is deliberately not recoverable as an ordinary error: silent
// clamping would hide the bug.
type OutOfRangeError struct {
	// Offset is the cursor position when the skip was requested.
	Offset int
	// N is the number of bytes (or one codepoint) the skip asked for.
	N int
	// Len is the total length of the input buffer.
	Len int
}

// Error returns a formatted message with position information.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("scan: skip of %d at offset %d is past end of input (length %d)", e.N, e.Offset, e.Len)
}
