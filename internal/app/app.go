// internal/app/app.go
package app

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/buffer"
	"github.com/bethropolis/brackets/internal/config"
	"github.com/bethropolis/brackets/internal/event"
	"github.com/bethropolis/brackets/internal/highlight"
	"github.com/bethropolis/brackets/internal/input"
	"github.com/bethropolis/brackets/internal/lexer"
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/statusbar"
	"github.com/bethropolis/brackets/internal/theme"
	"github.com/bethropolis/brackets/internal/tui"
	"github.com/bethropolis/brackets/internal/types"
)

// Options are the collaborators of a viewer.
type Options struct {
	Config *config.Config
	Doc    *buffer.SliceBuffer
	// Tokens may be nil for plain text.
	Tokens *lexer.Tokens
	Themes *theme.Manager
	// Clipboard defaults to NewClipboard(Config.Editor.SystemClipboard).
	Clipboard Clipboard
}

// App is the read-only bracket viewer: a caret over a document with the
// bracket highlights of the caret drawn on every redraw.
type App struct {
	cfg        *config.Config
	tuiManager *tui.TUI
	doc        *buffer.SliceBuffer
	tokens     bracket.Lexer
	language   string

	eventManager *event.Manager
	highlights   *highlight.Manager
	statusBar    *statusbar.StatusBar
	themeManager *theme.Manager
	inputProc    *input.InputProcessor
	clipboard    Clipboard
	cursor       types.Position
	viewX, viewY int

	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
}

// New wires a viewer on top of an initialized TUI.
func New(tuiManager *tui.TUI, opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewManager("")
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = NewClipboard(cfg.Editor.SystemClipboard)
	}

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		doc:           opts.Doc,
		eventManager:  event.NewManager(),
		statusBar:     statusbar.New(statusbar.ConfigFromTheme(themes.Current())),
		themeManager:  themes,
		inputProc:     input.NewInputProcessor(),
		clipboard:     clip,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	if opts.Tokens != nil && !cfg.Brackets.PlainText {
		a.tokens = opts.Tokens
		a.language = opts.Tokens.Language
	}
	a.highlights = highlight.NewManager(a.doc, a.tokens, cfg.Brackets, a.eventManager)

	a.eventManager.Subscribe(event.TypeCursorMoved, a.highlights.HandleCursorMoved)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBracketsHighlighted, a.handleBracketsHighlighted)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)

	a.tuiManager.SetTheme(themes.Current())
	a.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{
		FilePath:  a.doc.FilePath(),
		Lines:     a.doc.LineCount(),
		Language:  a.language,
		Tokenized: a.tokens != nil,
	})
	a.SetCursor(types.Position{})
	return a
}

// Events exposes the event bus.
func (a *App) Events() *event.Manager { return a.eventManager }

// Highlights exposes the highlight manager.
func (a *App) Highlights() *highlight.Manager { return a.highlights }

// StatusBar exposes the status bar.
func (a *App) StatusBar() *statusbar.StatusBar { return a.statusBar }

// Cursor returns the caret position.
func (a *App) Cursor() types.Position { return a.cursor }

// Run starts the event loop and redraws until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%% jump | y yank | t theme | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting viewer.")
			return nil
		case <-a.redrawRequest:
			a.Draw()
		}
	}
}

func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.HandleKey(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// HandleKey performs the action bound to ev and reports whether the
// screen needs a redraw.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	action := a.inputProc.ProcessEvent(ev)
	logger.DebugTagf("input", "key %v -> %v", ev.Name(), action)

	_, height := a.tuiManager.Size()
	page := height - config.StatusBarHeight
	if page < 1 {
		page = 1
	}

	switch action {
	case input.ActionQuit:
		a.Quit()
		return false
	case input.ActionMoveUp:
		a.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		a.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		a.MoveCursor(0, -1)
	case input.ActionMoveRight:
		a.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		a.MoveCursor(-page, 0)
	case input.ActionMovePageDown:
		a.MoveCursor(page, 0)
	case input.ActionMoveHome:
		a.SetCursor(types.Position{Line: a.cursor.Line})
	case input.ActionMoveEnd:
		a.SetCursor(types.Position{Line: a.cursor.Line, Col: a.lineLen(a.cursor.Line)})
	case input.ActionMoveFileStart:
		a.SetCursor(types.Position{})
	case input.ActionMoveFileEnd:
		last := a.doc.LineCount() - 1
		a.SetCursor(types.Position{Line: last, Col: a.lineLen(last)})
	case input.ActionJumpToPartner:
		if !a.JumpToPartner() {
			a.statusBar.SetTemporaryMessage("No matching bracket")
		}
	case input.ActionYankMatch:
		n, err := a.YankMatch()
		switch {
		case err != nil:
			logger.Warnf("App: yank failed: %v", err)
			a.statusBar.SetTemporaryMessage("Yank failed: %v", err)
		case n == 0:
			a.statusBar.SetTemporaryMessage("No matching bracket")
		default:
			a.statusBar.SetTemporaryMessage("Yanked %d bytes", n)
		}
	case input.ActionNextTheme:
		next := a.themeManager.Next()
		a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: next.Name})
	default:
		return false
	}
	return true
}

// Quit stops Run. It is safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

func (a *App) lineLen(line int) int {
	raw, err := a.doc.Line(line)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(raw)
}

// MoveCursor moves the caret by whole lines or by runes. Horizontal moves
// wrap to the neighbouring line; vertical moves clamp the column.
func (a *App) MoveCursor(deltaLine, deltaCol int) {
	pos := a.cursor
	if deltaLine != 0 {
		pos.Line += deltaLine
		if pos.Line < 0 {
			pos.Line = 0
		}
		if last := a.doc.LineCount() - 1; pos.Line > last {
			pos.Line = last
		}
		if n := a.lineLen(pos.Line); pos.Col > n {
			pos.Col = n
		}
	}

	pos.Col += deltaCol
	switch {
	case pos.Col < 0 && pos.Line > 0:
		pos.Line--
		pos.Col = a.lineLen(pos.Line)
	case pos.Col < 0:
		pos.Col = 0
	case pos.Col > a.lineLen(pos.Line) && pos.Line < a.doc.LineCount()-1:
		pos.Line++
		pos.Col = 0
	case pos.Col > a.lineLen(pos.Line):
		pos.Col = a.lineLen(pos.Line)
	}
	a.SetCursor(pos)
}

// SetCursor places the caret and publishes TypeCursorMoved, which updates
// the bracket highlights.
func (a *App) SetCursor(pos types.Position) {
	offset, err := a.doc.PositionToOffset(pos)
	if err != nil {
		logger.Warnf("App: ignoring caret %v: %v", pos, err)
		return
	}
	a.cursor = pos
	a.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{Offset: offset, NewPosition: pos})
}

// JumpToPartner moves the caret just past the partner of the bracket the
// caret refers to. It returns false when the last query did not match.
func (a *App) JumpToPartner() bool {
	_, to, ok := a.highlights.Partner()
	if !ok {
		return false
	}
	pos, err := a.doc.OffsetToPosition(to)
	if err != nil {
		logger.Warnf("App: partner offset %d: %v", to, err)
		return false
	}
	a.SetCursor(pos)
	return true
}

// YankMatch copies the matched block, both brackets included, to the
// clipboard and returns its size in bytes. It returns 0 when the caret is
// not on a matched bracket.
func (a *App) YankMatch() (int, error) {
	from, to, ok := a.highlights.Partner()
	if !ok {
		return 0, nil
	}
	if from > to {
		from, to = to, from
	}
	// Positions sit just past their glyph.
	text, err := a.doc.Slice(from-1, to)
	if err != nil {
		return 0, fmt.Errorf("slice %d-%d: %w", from-1, to, err)
	}
	if err := a.clipboard.WriteAll(string(text)); err != nil {
		return 0, fmt.Errorf("clipboard: %w", err)
	}
	logger.DebugTagf("clipboard", "yanked %d bytes", len(text))
	return len(text), nil
}

func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}
