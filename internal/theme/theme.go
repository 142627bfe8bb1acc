// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the viewer looks up.
const (
	StyleDefault          = "Default"
	StyleGutter           = "Gutter"
	StyleGutterCurrent    = "GutterCurrent"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleBracket          = "punctuation.bracket"
	StyleBracketMatch     = "bracket.match"
	StyleBracketUnmatched = "bracket.unmatched"
	StyleBracketMismatch  = "bracket.mismatch"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, falling back to its base name (the part before the
// first dot) and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// StyleForClass returns the style painted over a highlighted bracket.
func (t *Theme) StyleForClass(class bracket.HighlightClass) tcell.Style {
	switch class {
	case bracket.MatchedPair:
		return t.GetStyle(StyleBracketMatch)
	case bracket.MismatchedPair:
		return t.GetStyle(StyleBracketMismatch)
	default:
		return t.GetStyle(StyleBracketUnmatched)
	}
}

// Built-in themes. The bracket backgrounds are shared: grey for a matched
// pair, orange for a bracket without partner, pink for a wrong-kind pair.
var (
	DevComfortDark  Theme
	DevComfortLight Theme
)

var (
	matchBg     = tcell.NewHexColor(0xcccccc)
	unmatchedBg = tcell.NewHexColor(0xf7be81)
	mismatchBg  = tcell.NewHexColor(0xf7819f)
)

func bracketStyles(styles map[string]tcell.Style) map[string]tcell.Style {
	onLight := tcell.StyleDefault.Foreground(tcell.ColorBlack).Bold(true)
	styles[StyleBracketMatch] = onLight.Background(matchBg)
	styles[StyleBracketUnmatched] = onLight.Background(unmatchedBg)
	styles[StyleBracketMismatch] = onLight.Background(mismatchBg)
	return styles
}

func init() {
	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcYellow := tcell.NewHexColor(0xe5c07b)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: bracketStyles(map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleGutter:           baseStyle.Foreground(dcComment),
			StyleGutterCurrent:    baseStyle.Foreground(dcYellow),
			StyleStatusBar:        tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			StyleStatusBarMessage: tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),
			StyleBracket:          baseStyle.Foreground(dcComment),
		}),
	}

	lightText := tcell.NewHexColor(0x383a42)
	lightMuted := tcell.NewHexColor(0xa0a1a7)
	lightBar := tcell.NewHexColor(0xe5e5e6)

	lightBase := tcell.StyleDefault.Background(tcell.NewHexColor(0xfafafa)).Foreground(lightText)
	DevComfortLight = Theme{
		Name:   "DevComfort Light",
		IsDark: false,
		Styles: bracketStyles(map[string]tcell.Style{
			StyleDefault:          lightBase,
			StyleGutter:           lightBase.Foreground(lightMuted),
			StyleGutterCurrent:    lightBase.Foreground(lightText).Bold(true),
			StyleStatusBar:        tcell.StyleDefault.Background(lightBar).Foreground(lightText),
			StyleStatusBarMessage: tcell.StyleDefault.Background(lightBar).Foreground(lightText).Bold(true),
			StyleBracket:          lightBase.Foreground(lightMuted),
		}),
	}
}
