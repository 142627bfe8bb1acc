package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Language binds a tree-sitter grammar to the file extensions it parses.
type Language struct {
	// Name is the display name of the language
	Name string

	// TreeSitterLang is the tree-sitter language instance
	TreeSitterLang *sitter.Language

	// Extensions maps file extensions to this language
	Extensions []string
}

func (l *Language) String() string {
	if l == nil {
		return "plain text"
	}
	return l.Name
}
