package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"shift arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModShift), ActionMoveDown},
		{"vi rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), ActionMoveUp},
		{"percent", tcell.NewEventKey(tcell.KeyRune, '%', tcell.ModShift), ActionJumpToPartner},
		{"yank", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionYankMatch},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), ActionUnknown},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionUnknown},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestBind(t *testing.T) {
	p := NewInputProcessor()
	p.Bind('z', ActionYankMatch)
	assert.Equal(t, ActionYankMatch, p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)))
	assert.Equal(t, "YankMatch", ActionYankMatch.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
