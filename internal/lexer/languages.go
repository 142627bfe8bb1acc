// internal/lexer/languages.go
package lexer

import (
	"sync"

	"github.com/bethropolis/brackets/internal/lexer/lang"
	"github.com/bethropolis/brackets/internal/logger"

	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript" // JS parser used for JS and JSON
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

var registerOnce sync.Once

// RegisterLanguages adds the built-in grammars to the registry. Safe to call more than once.
func RegisterLanguages() {
	registerOnce.Do(func() {
		lang.Register(&lang.Language{
			Name:           "Go",
			TreeSitterLang: gosrc.GetLanguage(),
			Extensions:     []string{".go"},
		})
		lang.Register(&lang.Language{
			Name:           "Python",
			TreeSitterLang: pythonsrc.GetLanguage(),
			Extensions:     []string{".py", ".pyw"},
		})
		lang.Register(&lang.Language{
			Name:           "JavaScript",
			TreeSitterLang: jssrc.GetLanguage(),
			Extensions:     []string{".js", ".mjs", ".cjs"},
		})
		lang.Register(&lang.Language{
			Name:           "JSON",
			TreeSitterLang: jssrc.GetLanguage(),
			Extensions:     []string{".json"},
		})
		lang.Register(&lang.Language{
			Name:           "Rust",
			TreeSitterLang: rustsrc.GetLanguage(),
			Extensions:     []string{".rs"},
		})
		logger.Debugf("Registration complete. Registered %d languages.", len(lang.GetAll()))
	})
}
