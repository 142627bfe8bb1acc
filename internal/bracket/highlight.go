package bracket

// HighlightClass selects the visual treatment of a highlighted bracket.
type HighlightClass int

const (
	MatchedPair HighlightClass = iota
	Unmatched
	MismatchedPair
)

func (c HighlightClass) String() string {
	switch c {
	case MatchedPair:
		return "matched"
	case Unmatched:
		return "unmatched"
	case MismatchedPair:
		return "mismatched"
	}
	return "unknown"
}

// Highlight marks the bracket ending at Pos.
type Highlight struct {
	Pos   int
	Class HighlightClass
}

// DecideHighlights maps a query result to the brackets to paint. queried is
// the position passed to FindMatch. With highlightMismatch off a mismatch
// is shown like a missing partner.
func DecideHighlights(res Result, queried int, highlightMismatch bool) []Highlight {
	switch res.Status {
	case Match:
		return []Highlight{
			{Pos: queried, Class: MatchedPair},
			{Pos: res.Corresponding, Class: MatchedPair},
		}
	case MisMatch:
		if !highlightMismatch {
			return []Highlight{{Pos: queried, Class: Unmatched}}
		}
		pair := []Highlight{
			{Pos: res.Corresponding, Class: MismatchedPair},
			{Pos: res.Offending, Class: MismatchedPair},
		}
		if res.Offending == queried {
			return pair
		}
		return append([]Highlight{{Pos: queried, Class: Unmatched}}, pair...)
	default:
		return []Highlight{{Pos: queried, Class: Unmatched}}
	}
}
