// internal/input/action.go
package input

// Action is a viewer operation bound to a key.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit

	// Caret movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line
	ActionMoveFileStart
	ActionMoveFileEnd

	// Brackets
	ActionJumpToPartner
	ActionYankMatch

	ActionNextTheme
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionMovePageUp:
		return "MovePageUp"
	case ActionMovePageDown:
		return "MovePageDown"
	case ActionMoveHome:
		return "MoveHome"
	case ActionMoveEnd:
		return "MoveEnd"
	case ActionMoveFileStart:
		return "MoveFileStart"
	case ActionMoveFileEnd:
		return "MoveFileEnd"
	case ActionJumpToPartner:
		return "JumpToPartner"
	case ActionYankMatch:
		return "YankMatch"
	case ActionNextTheme:
		return "NextTheme"
	}
	return "Unknown"
}
