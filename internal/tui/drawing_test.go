package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/buffer"
	"github.com/bethropolis/brackets/internal/theme"
	"github.com/bethropolis/brackets/internal/types"
)

func newSimTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	tu, err := NewWithScreen(s, &theme.DevComfortDark)
	require.NoError(t, err)
	s.SetSize(width, height)
	t.Cleanup(tu.Close)
	return tu, s
}

func cell(s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(x, y)
	return r, style
}

func rowText(s tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _ := cell(s, x, y)
		if r < ' ' {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

type lineTokens map[int][]bracket.Token

func (l lineTokens) Tokens(line int) ([]bracket.Token, bool) {
	toks, ok := l[line]
	return toks, ok
}

func TestDrawDocumentHighlights(t *testing.T) {
	tu, s := newSimTUI(t, 20, 4)
	doc := buffer.NewFromBytes("", []byte("f(x)\n(]"))

	f := &Frame{
		Lines:    doc.Lines(),
		TabWidth: 4,
		Cells: BracketCells(doc, []bracket.Highlight{
			{Pos: 2, Class: bracket.MatchedPair},
			{Pos: 4, Class: bracket.MatchedPair},
			{Pos: 7, Class: bracket.MismatchedPair},
			{Pos: 99, Class: bracket.Unmatched},
		}),
		Tokens: lineTokens{1: {{Kind: bracket.ParenOpen, Style: theme.StyleBracket, End: 1}}},
	}
	DrawDocument(tu, f, &theme.DevComfortDark)

	// Two lines need a one-digit gutter plus padding.
	assert.Equal(t, "1 f(x)", rowText(s, 0, 20))
	assert.Equal(t, "2 (]", rowText(s, 1, 20))

	th := &theme.DevComfortDark
	_, style := cell(s, 3, 0)
	assert.Equal(t, th.StyleForClass(bracket.MatchedPair), style)
	_, style = cell(s, 5, 0)
	assert.Equal(t, th.StyleForClass(bracket.MatchedPair), style)
	_, style = cell(s, 2, 0)
	assert.Equal(t, th.GetStyle(theme.StyleDefault), style)

	_, style = cell(s, 2, 1)
	assert.Equal(t, th.GetStyle(theme.StyleBracket), style)
	_, style = cell(s, 3, 1)
	assert.Equal(t, th.StyleForClass(bracket.MismatchedPair), style)

	// The status bar row is left alone.
	assert.Equal(t, "", rowText(s, 3, 20))
}

func TestDrawDocumentTabsAndWideRunes(t *testing.T) {
	tu, s := newSimTUI(t, 20, 3)
	f := &Frame{Lines: [][]byte{[]byte("\t(界)")}, TabWidth: 4}
	DrawDocument(tu, f, &theme.DevComfortLight)

	r, _ := cell(s, 6, 0)
	assert.Equal(t, '(', r)
	r, _ = cell(s, 7, 0)
	assert.Equal(t, '界', r)
	r, _ = cell(s, 9, 0)
	assert.Equal(t, ')', r)
}

func TestDrawCursor(t *testing.T) {
	tu, s := newSimTUI(t, 10, 4)
	f := &Frame{
		Lines:    [][]byte{[]byte("a"), []byte("\tb(c)")},
		Cursor:   types.Position{Line: 1, Col: 2},
		TabWidth: 4,
	}
	DrawCursor(tu, f)
	tu.Show()
	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2+5, x)
	assert.Equal(t, 1, y)

	f.ViewY = 2
	DrawCursor(tu, f)
	tu.Show()
	_, _, visible = s.GetCursor()
	assert.False(t, visible)
}

func TestVisualColumn(t *testing.T) {
	assert.Equal(t, 0, VisualColumn([]byte("abc"), 0, 4))
	assert.Equal(t, 5, VisualColumn([]byte("\tx("), 2, 4))
	assert.Equal(t, 5, VisualColumn([]byte("ab\tx"), 4, 4))
	assert.Equal(t, 3, VisualColumn([]byte("界x"), 2, 4))
}

func TestFrameScroll(t *testing.T) {
	lines := make([][]byte, 100)
	for i := range lines {
		lines[i] = []byte(strings.Repeat("x", 50))
	}
	f := &Frame{Lines: lines, TabWidth: 4, Cursor: types.Position{Line: 50, Col: 45}}

	f.Scroll(20, 10, 3)
	assert.Equal(t, 50-10+1+3, f.ViewY)
	assert.Equal(t, 45-20+1, f.ViewX)

	f.Cursor = types.Position{Line: 1, Col: 0}
	f.Scroll(20, 10, 3)
	assert.Equal(t, 0, f.ViewY)
	assert.Equal(t, 0, f.ViewX)
}
