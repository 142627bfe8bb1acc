package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideHighlights(t *testing.T) {
	const start = 10

	cases := []struct {
		name     string
		res      Result
		mismatch bool
		want     []Highlight
	}{
		{
			name: "no match",
			res:  Result{Status: NoMatch},
			want: []Highlight{{start, Unmatched}},
		},
		{
			name:     "match",
			res:      Result{Status: Match, Corresponding: 20},
			mismatch: true,
			want:     []Highlight{{start, MatchedPair}, {20, MatchedPair}},
		},
		{
			name: "mismatch shown as unmatched",
			res:  Result{Status: MisMatch, Corresponding: 20, Offending: 15},
			want: []Highlight{{start, Unmatched}},
		},
		{
			name:     "mismatch at the queried bracket",
			res:      Result{Status: MisMatch, Corresponding: 20, Offending: start},
			mismatch: true,
			want:     []Highlight{{20, MismatchedPair}, {start, MismatchedPair}},
		},
		{
			name:     "mismatch deeper in the scan",
			res:      Result{Status: MisMatch, Corresponding: 20, Offending: 15},
			mismatch: true,
			want:     []Highlight{{start, Unmatched}, {20, MismatchedPair}, {15, MismatchedPair}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecideHighlights(tc.res, start, tc.mismatch))
		})
	}
}

func TestAtCaret(t *testing.T) {
	// Line starts: 0, 5, 6.
	doc := newDoc("a(b)\n\n)x")

	cases := []struct {
		name  string
		caret int
		want  Query
		ok    bool
	}{
		{name: "line start, right is text", caret: 0},
		{name: "left is text, right is bracket", caret: 1, want: Query{'(', 2}, ok: true},
		{name: "left is bracket", caret: 2, want: Query{'(', 2}, ok: true},
		{name: "line end", caret: 4, want: Query{')', 4}, ok: true},
		{name: "empty line", caret: 5},
		{name: "line start, right is bracket", caret: 6, want: Query{')', 7}, ok: true},
		{name: "document end after text", caret: 8},
		{name: "out of range", caret: 42},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, ok := AtCaret(doc, tc.caret)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, q)
		})
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "match", Match.String())
	assert.Equal(t, "mismatch", MisMatch.String())
	assert.Equal(t, "no match", NoMatch.String())
	assert.Equal(t, "mismatched", MismatchedPair.String())
	assert.Equal(t, "(", ParenOpen.String())
	assert.Equal(t, "<invalid>", Char('x').String())
	assert.Equal(t, Backward, CurlyClose.Direction())
	assert.Equal(t, "forward", SquareOpen.Direction().String())
}
