package scan

import "github.com/shapestone/shape-scan/internal/ident"

// IdentClassifier decides which codepoints may start and continue an
// identifier. It is the only collaborator the identifier helper needs, so
// callers with language-specific rules (keywords aside) can plug in their
// own.
type IdentClassifier interface {
	// IsStart reports whether r may begin an identifier.
	IsStart(r rune) bool
	// IsContinue reports whether r may appear after the first codepoint.
	IsContinue(r rune) bool
}

// UnicodeIdent classifies identifiers by the Unicode default identifier
// classes (UAX #31 ID_Start / ID_Continue), the same classes Rust-style
// identifiers build on. Note that '_' is not in ID_Start; languages that
// allow a leading underscore handle it before consulting the classifier.
var UnicodeIdent IdentClassifier = unicodeIdent{}

type unicodeIdent struct{}

func (unicodeIdent) IsStart(r rune) bool    { return ident.IsStart(r) }
func (unicodeIdent) IsContinue(r rune) bool { return ident.IsContinue(r) }

// AcceptIdent consumes an identifier: one Start codepoint followed by zero or
// more Continue codepoints, per cls. On failure the cursor is untouched.
//
//	cur := scan.NewChars("hello wor1d 12a")
//	cur.AcceptIdent(scan.UnicodeIdent) // "hello", true
//	cur.AcceptZeroOrMoreWhitespace()
//	cur.AcceptIdent(scan.UnicodeIdent) // "wor1d", true
//	cur.AcceptZeroOrMoreWhitespace()
//	cur.AcceptIdent(scan.UnicodeIdent) // "", false
func (c *CharCursor) AcceptIdent(cls IdentClassifier) (string, bool) {
	return c.TryCapture(func(c *CharCursor) bool {
		if _, ok := c.AcceptRuneFunc(cls.IsStart); !ok {
			return false
		}
		for {
			if _, ok := c.AcceptRuneFunc(cls.IsContinue); !ok {
				return true
			}
		}
	})
}
