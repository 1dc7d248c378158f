package scan

import "unsafe"

// unsafeString converts a []byte to a string without allocation.
//
// The conversion creates a string that shares the underlying byte array, so
// the byte slice MUST NOT be modified after conversion. We only use this on
// subslices of the borrowed input buffer, which the cursor never modifies;
// the caller's side of the contract is documented on the package.
//
// Performance: this eliminates a copy for every view a CharCursor returns,
// which is the whole point of a borrowing cursor.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// unsafeBytes converts a string to a []byte without allocation.
//
// The resulting slice shares the string's backing array and MUST NOT be
// written to; strings are immutable and writing through the slice is
// undefined behavior. The cursor only ever reads from it.
func unsafeBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
