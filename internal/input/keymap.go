// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell key events into actions.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	// vi-style runes
	p.runeKeymap['k'] = ActionMoveUp
	p.runeKeymap['j'] = ActionMoveDown
	p.runeKeymap['h'] = ActionMoveLeft
	p.runeKeymap['l'] = ActionMoveRight
	p.runeKeymap['0'] = ActionMoveHome
	p.runeKeymap['$'] = ActionMoveEnd
	p.runeKeymap['g'] = ActionMoveFileStart
	p.runeKeymap['G'] = ActionMoveFileEnd
	p.runeKeymap['%'] = ActionJumpToPartner
	p.runeKeymap['y'] = ActionYankMatch
	p.runeKeymap['t'] = ActionNextTheme
	p.runeKeymap['q'] = ActionQuit
}

// Bind maps a rune to an action, replacing any existing binding.
func (p *InputProcessor) Bind(r rune, action Action) {
	p.runeKeymap[r] = action
}

// ProcessEvent returns the action bound to ev, or ActionUnknown.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) Action {
	key := ev.Key()
	mod := ev.Modifiers()

	// Ctrl+letter keys already carry the modifier in the key itself.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if key == tcell.KeyRune {
		// Shift is implied by runes such as '%' or 'G'.
		if mod&^tcell.ModShift != tcell.ModNone {
			return ActionUnknown
		}
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return action
		}
		return ActionUnknown
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return action
		}
	}
	return ActionUnknown
}
