package tui

import (
	"math"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/types"
	"github.com/rivo/uniseg"
)

// Frame is everything DrawDocument needs for one redraw.
type Frame struct {
	Lines    [][]byte
	Cursor   types.Position
	ViewY    int // first visible line
	ViewX    int // first visible visual column
	TabWidth int

	// Cells maps the rune position of a highlighted bracket glyph to its class.
	Cells map[types.Position]bracket.HighlightClass
	// Tokens, when set, styles every bracket token with its Style tag.
	Tokens bracket.Lexer
}

// BracketCells converts highlight offsets, which sit just past their
// glyph, to the glyph's line and column.
func BracketCells(doc bracket.Document, highlights []bracket.Highlight) map[types.Position]bracket.HighlightClass {
	cells := make(map[types.Position]bracket.HighlightClass, len(highlights))
	for _, h := range highlights {
		pos, err := doc.OffsetToPosition(h.Pos - 1)
		if err != nil {
			logger.Debugf("BracketCells: highlight at %d: %v", h.Pos, err)
			continue
		}
		cells[pos] = h.Class
	}
	return cells
}

// gutterWidth returns the line-number gutter width, or 0 when the screen is too narrow.
func gutterWidth(lineCount, screenWidth int) int {
	if lineCount <= 0 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	width := maxDigits + 1
	if width >= screenWidth {
		return 0
	}
	return width
}

// clusterWidth is the visual width of a grapheme cluster starting at visual
// column x. Tabs extend to the next tab stop.
func clusterWidth(runes []rune, width, x, tabWidth int) int {
	if len(runes) == 1 && runes[0] == '\t' {
		if tabWidth <= 0 {
			tabWidth = 1
		}
		return tabWidth - x%tabWidth
	}
	return width
}

// VisualColumn returns the visual column of runeIndex within line.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		runes := gr.Runes()
		visualWidth += clusterWidth(runes, gr.Width(), visualWidth, tabWidth)
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// Scroll moves the viewport so the cursor stays visible with scrollOff lines
// of context, for a text area of the given size.
func (f *Frame) Scroll(textWidth, textHeight, scrollOff int) {
	if textHeight <= 0 || textWidth <= 0 {
		return
	}
	if scrollOff*2 >= textHeight {
		scrollOff = (textHeight - 1) / 2
	}

	if f.Cursor.Line < f.ViewY+scrollOff {
		f.ViewY = f.Cursor.Line - scrollOff
		if f.ViewY < 0 {
			f.ViewY = 0
		}
	} else if f.Cursor.Line >= f.ViewY+textHeight-scrollOff {
		f.ViewY = f.Cursor.Line - textHeight + 1 + scrollOff
	}

	cursorVisualCol := 0
	if f.Cursor.Line >= 0 && f.Cursor.Line < len(f.Lines) {
		cursorVisualCol = VisualColumn(f.Lines[f.Cursor.Line], f.Cursor.Col, f.TabWidth)
	}
	if cursorVisualCol < f.ViewX {
		f.ViewX = cursorVisualCol
	} else if cursorVisualCol >= f.ViewX+textWidth {
		f.ViewX = cursorVisualCol - textWidth + 1
	}
}
