package app

import (
	"fmt"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/event"
	"github.com/bethropolis/brackets/internal/statusbar"
)

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleBracketsHighlighted(e event.Event) bool {
	data, ok := e.Data.(event.BracketsHighlightedData)
	if !ok {
		return false
	}
	a.statusBar.SetMatchInfo(a.matchInfo(data))
	return false
}

// matchInfo describes a query result for the status bar.
func (a *App) matchInfo(data event.BracketsHighlightedData) string {
	if data.Query == nil {
		return ""
	}
	switch data.Result.Status {
	case bracket.Match:
		return "match at " + a.glyphPosition(data.Result.Corresponding)
	case bracket.MisMatch:
		return fmt.Sprintf("mismatch at %s", a.glyphPosition(data.Result.Corresponding))
	default:
		return "no match"
	}
}

// glyphPosition renders the 1-based location of the glyph ending at pos.
func (a *App) glyphPosition(pos int) string {
	p, err := a.doc.OffsetToPosition(pos - 1)
	if err != nil {
		return "?"
	}
	return p.String()
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		a.statusBar.SetFileInfo(data.FilePath, data.Language)
	}
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	current := a.themeManager.Current()
	a.tuiManager.SetTheme(current)
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(current))
	a.statusBar.SetTemporaryMessage("Theme: %s", current.Name)
	return false
}
