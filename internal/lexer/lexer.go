// Package lexer turns a source snapshot into per-line bracket tokens using
// tree-sitter. Brackets that are part of a string, comment or character
// literal never become leaves of their own, so they are left out.
package lexer

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/lexer/lang"
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/utils"
)

// BracketStyle is the style tag attached to every bracket token.
const BracketStyle = "punctuation.bracket"

// Tokens holds the bracket tokens of one parsed snapshot, indexed by line.
type Tokens struct {
	Language string
	lines    [][]bracket.Token
}

// Tokens returns the bracket tokens of a line. Lines outside the parsed
// snapshot report no data.
func (t *Tokens) Tokens(line int) ([]bracket.Token, bool) {
	if t == nil || line < 0 || line >= len(t.lines) {
		return nil, false
	}
	return t.lines[line], true
}

// LineCount returns the number of lines in the parsed snapshot.
func (t *Tokens) LineCount() int {
	if t == nil {
		return 0
	}
	return len(t.lines)
}

// Count returns the total number of bracket tokens.
func (t *Tokens) Count() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, line := range t.lines {
		n += len(line)
	}
	return n
}

// Tokenizer owns a tree-sitter parser. It is safe for concurrent use;
// parses are serialized.
type Tokenizer struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// NewTokenizer creates a Tokenizer and registers the built-in languages.
func NewTokenizer() *Tokenizer {
	RegisterLanguages()
	return &Tokenizer{parser: sitter.NewParser()}
}

// Close releases the parser.
func (tk *Tokenizer) Close() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	tk.parser.Close()
}

// ForFile tokenizes src with the language registered for path's extension.
// It returns nil, nil when no language matches, which means plain text.
func (tk *Tokenizer) ForFile(ctx context.Context, path string, src []byte) (*Tokens, error) {
	language := lang.GetForFile(path)
	if language == nil {
		logger.DebugTagf("lexer", "no language for %q, using plain text", path)
		return nil, nil
	}
	return tk.Tokenize(ctx, src, language)
}

// Tokenize parses src and collects its bracket tokens. Every line of src
// gets an entry, possibly empty.
func (tk *Tokenizer) Tokenize(ctx context.Context, src []byte, language *lang.Language) (*Tokens, error) {
	if language == nil || language.TreeSitterLang == nil {
		return nil, fmt.Errorf("no language provided for tokenizing")
	}

	tk.mu.Lock()
	tk.parser.SetLanguage(language.TreeSitterLang)
	tree, err := tk.parser.ParseCtx(ctx, nil, src)
	tk.mu.Unlock()
	if err != nil {
		logger.Errorf("Tree-sitter parsing error: %v", err)
		return nil, fmt.Errorf("parsing %s failed: %w", language.Name, err)
	}
	defer tree.Close()

	srcLines := bytes.Split(src, []byte("\n"))
	toks := &Tokens{
		Language: language.Name,
		lines:    make([][]bracket.Token, len(srcLines)),
	}
	for i := range toks.lines {
		toks.lines[i] = []bracket.Token{}
	}

	collectBrackets(tree.RootNode(), srcLines, toks.lines)

	logger.DebugTagf("lexer", "Tokenized %d lines of %s, %d bracket tokens", len(srcLines), language.Name, toks.Count())
	return toks, nil
}

// templateOpen opens a JavaScript template substitution; its "}" is a leaf
// of its own, so the pair is tokenized as "{" and "}".
const templateOpen = "${"

// leafBracket returns the bracket an anonymous leaf ends with.
func leafBracket(typ string) (bracket.Char, bool) {
	switch {
	case typ == templateOpen:
		return bracket.CurlyOpen, true
	case len(typ) == 1:
		return bracket.CharOf(rune(typ[0]))
	}
	return 0, false
}

// collectBrackets walks the tree in document order and appends every
// anonymous bracket leaf to its line, keyed by the leaf's end column.
func collectBrackets(node *sitter.Node, srcLines [][]byte, out [][]bracket.Token) {
	if node == nil {
		return
	}
	count := int(node.ChildCount())
	if count == 0 {
		addLeaf(node, srcLines, out)
		return
	}
	for i := 0; i < count; i++ {
		collectBrackets(node.Child(i), srcLines, out)
	}
}

func addLeaf(node *sitter.Node, srcLines [][]byte, out [][]bracket.Token) {
	// Error recovery inserts zero-width MISSING leaves; they have no glyph in the text.
	if node.IsNamed() || node.IsMissing() || node.EndByte() == node.StartByte() {
		return
	}
	c, ok := leafBracket(node.Type())
	if !ok {
		return
	}

	end := node.EndPoint()
	row := int(end.Row)
	if row >= len(out) {
		logger.Warnf("lexer: bracket on row %d past end of source (%d lines)", row, len(out))
		return
	}
	out[row] = append(out[row], bracket.Token{
		Kind:  c,
		Style: BracketStyle,
		End:   utils.ByteOffsetToRuneIndex(srcLines[row], int(end.Column)),
	})
}
