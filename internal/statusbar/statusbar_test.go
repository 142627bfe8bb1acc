package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/brackets/internal/theme"
	"github.com/bethropolis/brackets/internal/types"
)

func TestTextDefault(t *testing.T) {
	sb := New(ConfigFromTheme(&theme.DevComfortDark))
	text, temp := sb.Text()
	assert.False(t, temp)
	assert.Equal(t, "[No Name] [plain text] -- Line: 1, Col: 1", text)

	sb.SetFileInfo("main.go", "Go")
	sb.SetCursorInfo(types.Position{Line: 2, Col: 12})
	sb.SetMatchInfo("match at 7:1")
	text, _ = sb.Text()
	assert.Equal(t, "main.go [Go] -- Line: 3, Col: 13 -- match at 7:1", text)
}

func TestTemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sb := New(Config{MessageTimeout: time.Second})
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("copied %d lines", 3)
	text, temp := sb.Text()
	assert.True(t, temp)
	assert.Equal(t, "copied 3 lines", text)

	now = now.Add(2 * time.Second)
	_, temp = sb.Text()
	assert.False(t, temp)

	sb.SetTemporaryMessage("again")
	sb.ResetTemporaryMessage()
	_, temp = sb.Text()
	assert.False(t, temp)
}

func TestDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(30, 3)

	cfg := ConfigFromTheme(&theme.DevComfortDark)
	sb := New(cfg)
	sb.SetFileInfo("ü.rs", "Rust")
	sb.Draw(s, 30, 3)

	var b strings.Builder
	for x := 0; x < 30; x++ {
		r, _, style, _ := s.GetContent(x, 2)
		assert.Equal(t, cfg.StyleDefault, style)
		b.WriteRune(r)
	}
	assert.Equal(t, "ü.rs [Rust] -- Line: 1, Col: 1", b.String())
}
