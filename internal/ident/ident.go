// Package ident implements the Unicode default identifier classes
// (UAX #31 ID_Start and ID_Continue) over the standard library's category
// tables.
package ident

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// The class tables are merged once at init into single range tables, so a
// membership test is one binary search instead of one per category.
//
// ID_Start  = L* (Lu, Ll, Lt, Lm, Lo), Nl, Other_ID_Start
// ID_Continue = ID_Start, Mn, Mc, Nd, Pc, Other_ID_Continue
var (
	startTable = rangetable.Merge(
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
	)

	continueTable = rangetable.Merge(
		startTable,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	)
)

// IsStart reports whether r is in ID_Start.
func IsStart(r rune) bool {
	return unicode.Is(startTable, r)
}

// IsContinue reports whether r is in ID_Continue.
func IsContinue(r rune) bool {
	return unicode.Is(continueTable, r)
}
