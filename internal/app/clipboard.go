package app

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/brackets/internal/logger"
)

// Clipboard receives yanked text.
type Clipboard interface {
	WriteAll(text string) error
}

// Register is an in-process clipboard. It is used when the system
// clipboard is disabled or unavailable.
type Register struct {
	text string
}

func (r *Register) WriteAll(text string) error {
	r.text = text
	return nil
}

// Text returns the last yanked text.
func (r *Register) Text() string {
	return r.text
}

// systemClipboard writes through to the OS clipboard and keeps a copy in
// the register in case the OS has no clipboard tool.
type systemClipboard struct {
	fallback *Register
}

func (s systemClipboard) WriteAll(text string) error {
	s.fallback.text = text
	if clipboard.Unsupported {
		logger.DebugTagf("clipboard", "system clipboard unsupported, kept %d bytes in register", len(text))
		return nil
	}
	return clipboard.WriteAll(text)
}

// NewClipboard returns the system clipboard when useSystem is set and the
// register otherwise.
func NewClipboard(useSystem bool) Clipboard {
	reg := &Register{}
	if useSystem {
		return systemClipboard{fallback: reg}
	}
	return reg
}
