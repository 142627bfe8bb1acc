// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/brackets/internal/config"
	"github.com/bethropolis/brackets/internal/theme"
	"github.com/bethropolis/brackets/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// ConfigFromTheme takes the status bar styles from a theme.
func ConfigFromTheme(th *theme.Theme) Config {
	return Config{
		StyleDefault:   th.GetStyle(theme.StyleStatusBar),
		StyleMessage:   th.GetStyle(theme.StyleStatusBarMessage),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar is the bottom line of the viewer.
type StatusBar struct {
	mu     sync.RWMutex
	config Config
	now    func() time.Time

	filePath  string
	language  string
	cursorPos types.Position
	matchInfo string

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetConfig replaces the styles, used after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// SetFileInfo updates the file path and language shown.
func (sb *StatusBar) SetFileInfo(path, language string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.language = language
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetMatchInfo updates the description of the last bracket query.
func (sb *StatusBar) SetMatchInfo(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.matchInfo = text
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns what the status bar shows right now and whether it is a
// temporary message. Expired messages are cleared.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	language := sb.language
	if language == "" {
		language = "plain text"
	}
	text := fmt.Sprintf("%s [%s] -- Line: %d, Col: %d", fPath, language, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if sb.matchInfo != "" {
		text += " -- " + sb.matchInfo
	}
	return text, false
}

// Draw renders the status bar on the last screen line using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, isTemp := sb.Text()
	sb.mu.RLock()
	style := sb.config.StyleDefault
	if isTemp {
		style = sb.config.StyleMessage
	}
	sb.mu.RUnlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(currentX, y, runes[0], runes[1:], style)
		currentX += clusterWidth
	}
}
