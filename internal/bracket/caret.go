package bracket

// Query is a bracket picked out by a caret, ready for FindMatch.
type Query struct {
	Char rune
	Pos  int
}

// AtCaret picks the bracket a caret refers to. The glyph left of the caret
// wins; the glyph to the right is used at column zero or when the left one
// is not a bracket. ok is false when neither side holds a bracket.
func AtCaret(doc Document, caret int) (Query, bool) {
	pos, err := doc.OffsetToPosition(caret)
	if err != nil {
		return Query{}, false
	}
	raw, err := doc.Line(pos.Line)
	if err != nil {
		return Query{}, false
	}
	text := []rune(string(raw))
	if len(text) == 0 {
		return Query{}, false
	}

	if pos.Col == 0 {
		return bracketQuery(text[0], caret+1)
	}
	if q, ok := bracketQuery(text[pos.Col-1], caret); ok {
		return q, true
	}
	if pos.Col < len(text) {
		return bracketQuery(text[pos.Col], caret+1)
	}
	return Query{}, false
}

func bracketQuery(r rune, pos int) (Query, bool) {
	if !Char(r).Valid() {
		return Query{}, false
	}
	return Query{Char: r, Pos: pos}, true
}
