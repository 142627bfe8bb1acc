package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/brackets/internal/bracket"
)

func background(s tcell.Style) tcell.Color {
	_, bg, _ := s.Decompose()
	return bg
}

func TestStyleForClass(t *testing.T) {
	for _, th := range []*Theme{&DevComfortDark, &DevComfortLight} {
		assert.Equal(t, tcell.NewHexColor(0xcccccc), background(th.StyleForClass(bracket.MatchedPair)), th.Name)
		assert.Equal(t, tcell.NewHexColor(0xf7be81), background(th.StyleForClass(bracket.Unmatched)), th.Name)
		assert.Equal(t, tcell.NewHexColor(0xf7819f), background(th.StyleForClass(bracket.MismatchedPair)), th.Name)
	}
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			"Default": tcell.StyleDefault.Foreground(tcell.ColorRed),
			"bracket": tcell.StyleDefault.Foreground(tcell.ColorBlue),
		},
	}
	assert.Equal(t, th.Styles["bracket"], th.GetStyle("bracket.match"))
	assert.Equal(t, th.Styles["Default"], th.GetStyle("keyword"))
	assert.Equal(t, tcell.StyleDefault, (&Theme{Name: "empty"}).GetStyle("x"))
}

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "paper.toml", `
is_dark = false

[styles.Default]
fg = "#101010"
bg = "white"

[styles."bracket.match"]
bg = "#00ff00"
bold = false
`)

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "paper", th.Name)
	assert.False(t, th.IsDark)

	fg, bg, _ := th.GetStyle(StyleDefault).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x101010), fg)
	assert.Equal(t, tcell.ColorWhite, bg)

	match := th.StyleForClass(bracket.MatchedPair)
	assert.Equal(t, tcell.NewHexColor(0x00ff00), background(match))
	_, _, attrs := match.Decompose()
	assert.Zero(t, attrs&tcell.AttrBold)

	// Unset bracket styles come from the built-in light theme.
	assert.Equal(t, DevComfortLight.Styles[StyleBracketMismatch], th.GetStyle(StyleBracketMismatch))
}

func TestLoadThemeFromFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadThemeFromFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = LoadThemeFromFile(writeTheme(t, dir, "bad.toml", "name = "))
	assert.Error(t, err)

	// A bad color only drops that style.
	th, err := LoadThemeFromFile(writeTheme(t, dir, "odd.toml", `
name = "Odd"
[styles.Gutter]
fg = "#12"
`))
	require.NoError(t, err)
	assert.Equal(t, DevComfortLight.Styles[StyleGutter], th.GetStyle(StyleGutter))
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString(" #FF8800 ")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0xff8800), c)

	c, err = parseColorString("Reset")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorReset, c)

	_, err = parseColorString("chartreuse-ish")
	assert.Error(t, err)
	_, err = parseColorString("#gggggg")
	assert.Error(t, err)
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "solar.toml", "name = \"Solar\"\nis_dark = true\n")
	writeTheme(t, dir, "broken.toml", "name = ")
	writeTheme(t, dir, "notes.txt", "ignored")

	m := NewManager(dir)
	assert.Equal(t, []string{"DevComfort Dark", "DevComfort Light", "Solar"}, m.ListThemes())
	assert.Equal(t, "DevComfort Dark", m.Current().Name)

	require.NoError(t, m.SetTheme("solar"))
	assert.Equal(t, "Solar", m.Current().Name)
	assert.Error(t, m.SetTheme("nope"))

	assert.Equal(t, "DevComfort Dark", m.Next().Name)
	assert.Equal(t, "DevComfort Light", m.Next().Name)

	th, ok := m.GetTheme("SOLAR")
	require.True(t, ok)
	assert.True(t, th.IsDark)
}

func TestManagerWithoutDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"))
	assert.Len(t, m.ListThemes(), 2)
}
