// Package bracket finds the partner of a bracket in a line-oriented document
// and decides how the pair should be highlighted.
//
// Positions are absolute rune offsets into the document, counting the line
// separator as one rune. A bracket is identified by the caret offset just
// past it: the '(' in "f(x)" at the start of the document has position 2.
package bracket

// Char is one of the six bracket glyphs.
type Char rune

// The bracket glyphs.
const (
	ParenOpen   Char = '('
	ParenClose  Char = ')'
	SquareOpen  Char = '['
	SquareClose Char = ']'
	CurlyOpen   Char = '{'
	CurlyClose  Char = '}'

	invalidChar Char = 0
)

// CharOf converts r to a Char, reporting false if r is not a bracket glyph.
func CharOf(r rune) (Char, bool) {
	c := Char(r)
	if !c.Valid() {
		return invalidChar, false
	}
	return c, true
}

// Valid reports whether c is one of the six glyphs.
func (c Char) Valid() bool {
	return c.IsOpen() || c.IsClose()
}

// IsOpen reports whether c opens a nesting level.
func (c Char) IsOpen() bool {
	switch c {
	case ParenOpen, SquareOpen, CurlyOpen:
		return true
	}
	return false
}

// IsClose reports whether c closes a nesting level.
func (c Char) IsClose() bool {
	switch c {
	case ParenClose, SquareClose, CurlyClose:
		return true
	}
	return false
}

// Partner returns the other member of c's family, or 0 for a non-bracket.
func (c Char) Partner() Char {
	switch c {
	case ParenOpen:
		return ParenClose
	case ParenClose:
		return ParenOpen
	case SquareOpen:
		return SquareClose
	case SquareClose:
		return SquareOpen
	case CurlyOpen:
		return CurlyClose
	case CurlyClose:
		return CurlyOpen
	}
	return invalidChar
}

// Direction returns the scan direction that starts from c.
func (c Char) Direction() Direction {
	if c.IsClose() {
		return Backward
	}
	return Forward
}

func (c Char) String() string {
	if !c.Valid() {
		return "<invalid>"
	}
	return string(rune(c))
}

// Direction is the way a scan walks through the document.
type Direction int

const (
	// Backward walks toward the start of the document.
	Backward Direction = -1
	// Forward walks toward the end of the document.
	Forward Direction = 1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
