// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/bethropolis/brackets/internal/config"
	"github.com/bethropolis/brackets/internal/theme"
	"github.com/bethropolis/brackets/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// TextArea returns the size of the document area: the screen minus the
// status bar and the gutter.
func TextArea(t *TUI, lineCount int) (gutter, width, height int) {
	screenWidth, screenHeight := t.Size()
	gutter = gutterWidth(lineCount, screenWidth)
	return gutter, screenWidth - gutter, screenHeight - config.StatusBarHeight
}

// tokenStyles maps the rune columns of a line's bracket tokens to their style.
func tokenStyles(f *Frame, activeTheme *theme.Theme, line int) map[int]tcell.Style {
	if f.Tokens == nil {
		return nil
	}
	toks, ok := f.Tokens.Tokens(line)
	if !ok || len(toks) == 0 {
		return nil
	}
	styles := make(map[int]tcell.Style, len(toks))
	for _, tok := range toks {
		styles[tok.End-1] = activeTheme.GetStyle(tok.Style)
	}
	return styles
}

// DrawDocument draws the visible part of the frame: gutter, text and
// bracket highlights.
func DrawDocument(t *TUI, f *Frame, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = &theme.DevComfortDark
	}
	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	gutterStyle := activeTheme.GetStyle(theme.StyleGutter)
	gutterCurrentStyle := activeTheme.GetStyle(theme.StyleGutterCurrent)

	screenWidth, _ := t.Size()
	gutter, textWidth, viewHeight := TextArea(t, len(f.Lines))
	if viewHeight <= 0 || screenWidth <= 0 {
		return
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := screenY + f.ViewY

		for x := 0; x < screenWidth; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}
		if lineIdx < 0 || lineIdx >= len(f.Lines) {
			continue
		}

		if gutter > 0 {
			style := gutterStyle
			if lineIdx == f.Cursor.Line {
				style = gutterCurrentStyle
			}
			for i, r := range fmt.Sprintf("%*d", gutter-1, lineIdx+1) {
				t.screen.SetContent(i, screenY, r, nil, style)
			}
		}

		drawLine(t, f, activeTheme, lineIdx, screenY, gutter, textWidth, screenWidth)
	}
}

func drawLine(t *TUI, f *Frame, activeTheme *theme.Theme, lineIdx, screenY, gutter, textWidth, screenWidth int) {
	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	tokStyles := tokenStyles(f, activeTheme, lineIdx)

	gr := uniseg.NewGraphemes(string(f.Lines[lineIdx]))
	visualX := 0
	runeIndex := 0
	for gr.Next() {
		runes := gr.Runes()
		width := clusterWidth(runes, gr.Width(), visualX, f.TabWidth)
		screenX := visualX - f.ViewX + gutter

		if visualX+width > f.ViewX && screenX >= gutter && screenX < screenWidth {
			style := defaultStyle
			if s, ok := tokStyles[runeIndex]; ok {
				style = s
			}
			if class, ok := f.Cells[types.Position{Line: lineIdx, Col: runeIndex}]; ok {
				style = activeTheme.StyleForClass(class)
			}

			if runes[0] == '\t' {
				for i := 0; i < width && screenX+i < screenWidth; i++ {
					t.screen.SetContent(screenX+i, screenY, ' ', nil, style)
				}
			} else {
				t.screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
				for cw := 1; cw < width && screenX+cw < screenWidth; cw++ {
					t.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
				}
			}
		}

		visualX += width
		runeIndex += len(runes)
		if visualX >= f.ViewX+textWidth {
			break
		}
	}
}

// DrawCursor positions the terminal cursor, hiding it when it is off screen.
func DrawCursor(t *TUI, f *Frame) {
	screenWidth, _ := t.Size()
	gutter, textWidth, viewHeight := TextArea(t, len(f.Lines))

	cursorVisualCol := 0
	if f.Cursor.Line >= 0 && f.Cursor.Line < len(f.Lines) {
		cursorVisualCol = VisualColumn(f.Lines[f.Cursor.Line], f.Cursor.Col, f.TabWidth)
	}
	screenX := cursorVisualCol - f.ViewX + gutter
	screenY := f.Cursor.Line - f.ViewY

	if screenX < gutter || screenX >= screenWidth || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 || textWidth <= 0 {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
