package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/buffer"
	"github.com/bethropolis/brackets/internal/config"
	"github.com/bethropolis/brackets/internal/event"
)

type mapLexer map[int][]bracket.Token

func (m mapLexer) Tokens(line int) ([]bracket.Token, bool) {
	toks, ok := m[line]
	return toks, ok
}

func defaults() config.BracketConfig {
	return config.NewDefaultConfig().Brackets
}

func TestCursorMovedProducesHighlights(t *testing.T) {
	doc := buffer.NewFromBytes("", []byte("f(x)\n(]"))
	events := event.NewManager()
	m := NewManager(doc, nil, defaults(), events)
	events.Subscribe(event.TypeCursorMoved, m.HandleCursorMoved)

	var got []event.BracketsHighlightedData
	events.Subscribe(event.TypeBracketsHighlighted, func(e event.Event) bool {
		got = append(got, e.Data.(event.BracketsHighlightedData))
		return false
	})

	events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: 2})
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Query)
	assert.Equal(t, bracket.Query{Char: '(', Pos: 2}, *got[0].Query)
	assert.Equal(t, []bracket.Highlight{{Pos: 2, Class: bracket.MatchedPair}, {Pos: 4, Class: bracket.MatchedPair}}, got[0].Highlights)

	class, ok := m.ClassAt(4)
	assert.True(t, ok)
	assert.Equal(t, bracket.MatchedPair, class)
	_, ok = m.ClassAt(3)
	assert.False(t, ok)

	from, to, ok := m.Partner()
	assert.True(t, ok)
	assert.Equal(t, 2, from)
	assert.Equal(t, 4, to)

	// Caret after "(" on line 1; "]" does not close it.
	events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: 6})
	require.Len(t, got, 2)
	assert.Equal(t, []bracket.Highlight{{Pos: 7, Class: bracket.MismatchedPair}, {Pos: 6, Class: bracket.MismatchedPair}}, got[1].Highlights)
	_, _, ok = m.Partner()
	assert.False(t, ok)
}

func TestUpdateRespectsFlags(t *testing.T) {
	doc := buffer.NewFromBytes("", []byte("(]"))

	cfg := defaults()
	cfg.HighlightMismatch = false
	m := NewManager(doc, nil, cfg, nil)
	assert.Equal(t, []bracket.Highlight{{Pos: 1, Class: bracket.Unmatched}}, m.Update(1))

	cfg.HighlightMatching = false
	m = NewManager(doc, nil, cfg, nil)
	assert.Empty(t, m.Update(1))
	q, _ := m.Last()
	assert.Nil(t, q)
}

func TestUpdateAwayFromBrackets(t *testing.T) {
	doc := buffer.NewFromBytes("", []byte("ab (c)"))
	m := NewManager(doc, nil, defaults(), nil)

	m.Update(5)
	require.NotEmpty(t, m.Highlights())

	assert.Empty(t, m.Update(1))
	assert.Empty(t, m.Highlights())
}

func TestUpdateInsideLiteralIsSilent(t *testing.T) {
	src := `x("(")`
	doc := buffer.NewFromBytes("", []byte(src))
	lex := mapLexer{0: {{Kind: bracket.ParenOpen, End: 2}, {Kind: bracket.ParenClose, End: 6}}}

	m := NewManager(doc, lex, defaults(), nil)
	assert.Empty(t, m.Update(4))

	// Plain-text mode sees the literal bracket.
	cfg := defaults()
	cfg.PlainText = true
	m = NewManager(doc, lex, cfg, nil)
	assert.NotEmpty(t, m.Update(4))
}

func TestSetDocumentClearsState(t *testing.T) {
	m := NewManager(buffer.NewFromBytes("", []byte("()")), nil, defaults(), nil)
	require.Len(t, m.Update(1), 2)

	m.SetDocument(buffer.NewFromBytes("", []byte("[[")), nil)
	assert.Empty(t, m.Highlights())
	assert.Equal(t, []bracket.Highlight{{Pos: 1, Class: bracket.Unmatched}}, m.Update(1))
}

func TestHandleCursorMovedIgnoresBadPayload(t *testing.T) {
	m := NewManager(buffer.NewFromBytes("", []byte("()")), nil, defaults(), nil)
	assert.False(t, m.HandleCursorMoved(event.Event{Type: event.TypeCursorMoved, Data: "nope"}))
	assert.Empty(t, m.Highlights())
}
