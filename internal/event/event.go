// internal/event/event.go
package event

import (
	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/types"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferLoaded        // A document snapshot was loaded and tokenized
	TypeCursorMoved         // The caret moved
	TypeBracketsHighlighted // A bracket query finished and its highlights changed
	TypeThemeChanged        // The active theme was replaced

	TypeAppReady // The viewer is initialized
	TypeAppQuit  // The viewer is about to exit
)

func (t Type) String() string {
	switch t {
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeBracketsHighlighted:
		return "BracketsHighlighted"
	case TypeThemeChanged:
		return "ThemeChanged"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferLoadedData describes the loaded snapshot.
type BufferLoadedData struct {
	FilePath  string
	Lines     int
	Language  string // empty for plain text
	Tokenized bool
}

// CursorMovedData carries the new caret as an absolute offset and as a position.
type CursorMovedData struct {
	Offset      int
	NewPosition types.Position
}

// BracketsHighlightedData carries the outcome of the query for one caret.
// Query is nil when the caret is not next to a bracket or highlighting is off.
type BracketsHighlightedData struct {
	Caret      int
	Query      *bracket.Query
	Result     bracket.Result
	Highlights []bracket.Highlight
}

// ThemeChangedData names the new theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
