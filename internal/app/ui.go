package app

import (
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/tui"
)

// Draw redraws the document, the status bar and the caret.
func (a *App) Draw() {
	activeTheme := a.themeManager.Current()
	width, height := a.tuiManager.Size()

	f := &tui.Frame{
		Lines:    a.doc.Lines(),
		Cursor:   a.cursor,
		ViewY:    a.viewY,
		ViewX:    a.viewX,
		TabWidth: a.cfg.Editor.TabWidth,
		Cells:    tui.BracketCells(a.doc, a.highlights.Highlights()),
		Tokens:   a.tokens,
	}
	_, textWidth, textHeight := tui.TextArea(a.tuiManager, len(f.Lines))
	f.Scroll(textWidth, textHeight, a.cfg.Editor.ScrollOff)
	a.viewY, a.viewX = f.ViewY, f.ViewX

	logger.DebugTagf("draw", "screen %dx%d, view %d,%d", width, height, a.viewY, a.viewX)

	a.tuiManager.Clear()
	tui.DrawDocument(a.tuiManager, f, activeTheme)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	tui.DrawCursor(a.tuiManager, f)
	a.tuiManager.Show()
}
