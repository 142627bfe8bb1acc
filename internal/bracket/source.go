package bracket

import (
	"fmt"

	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/types"
)

// Document is the read-only view of the text the engine scans.
type Document interface {
	LineCount() int
	Line(index int) ([]byte, error)
	// LineStart returns the absolute offset of the first rune of a line.
	LineStart(index int) (int, error)
	OffsetToPosition(offset int) (types.Position, error)
	PositionToOffset(pos types.Position) (int, error)
}

// Token is one lexeme of a tokenized line. End is the rune offset within
// the line just past the lexeme. Only tokens whose Kind is a bracket glyph
// take part in matching.
type Token struct {
	Kind  Char
	Style string
	End   int
}

// Lexer exposes per-line tokens. ok is false when a line has no token data,
// which is different from a tokenized line without brackets.
type Lexer interface {
	Tokens(line int) (tokens []Token, ok bool)
}

// Bracket is one bracket occurrence produced by a Source.
type Bracket struct {
	Char Char
	Pos  int
}

// Source yields the brackets met while walking away from a start bracket.
// It is finite and single use.
type Source interface {
	Next() (Bracket, bool)
}

// NewSource builds the iterator for one query. The strategy is chosen once:
// tokens when the lexer has data for the start line, raw text otherwise.
// The bracket ending at start.Pos must be of kind start.Char; otherwise, or
// when in token mode it is not a bracket token (it sits inside a string or
// comment), NewSource fails with ErrBracketNotFound.
func NewSource(doc Document, lexer Lexer, start Bracket, dir Direction) (Source, error) {
	pos, err := doc.OffsetToPosition(start.Pos)
	if err != nil {
		return nil, fmt.Errorf("start offset %d: %w", start.Pos, err)
	}
	lineStart, err := doc.LineStart(pos.Line)
	if err != nil {
		return nil, fmt.Errorf("start line %d: %w", pos.Line, err)
	}

	if lexer != nil {
		if tokens, ok := lexer.Tokens(pos.Line); ok {
			brackets := bracketTokens(tokens)
			for i, tok := range brackets {
				if tok.End == pos.Col {
					if tok.Kind != start.Char {
						return nil, fmt.Errorf("%w at %s: token is '%s', not '%s'", ErrBracketNotFound, pos, tok.Kind, start.Char)
					}
					logger.DebugTagf("bracket", "token source from %s going %s", pos, dir)
					return &tokenSource{
						doc:       doc,
						lexer:     lexer,
						dir:       dir,
						line:      pos.Line,
						lineStart: lineStart,
						tokens:    brackets,
						idx:       i,
					}, nil
				}
			}
			return nil, fmt.Errorf("%w at %s", ErrBracketNotFound, pos)
		}
	}

	raw, err := doc.Line(pos.Line)
	if err != nil {
		return nil, fmt.Errorf("start line %d: %w", pos.Line, err)
	}
	text := []rune(string(raw))
	if pos.Col < 1 || pos.Col > len(text) || Char(text[pos.Col-1]) != start.Char {
		return nil, fmt.Errorf("%w at %s: no '%s' before offset", ErrBracketNotFound, pos, start.Char)
	}
	logger.DebugTagf("bracket", "plain-text source from %s going %s", pos, dir)
	return &plainSource{
		doc:       doc,
		dir:       dir,
		line:      pos.Line,
		lineStart: lineStart,
		text:      text,
		idx:       pos.Col - 1,
	}, nil
}

func bracketTokens(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind.Valid() {
			out = append(out, tok)
		}
	}
	return out
}

// tokenSource walks the bracket tokens supplied by a Lexer.
type tokenSource struct {
	doc       Document
	lexer     Lexer
	dir       Direction
	line      int
	lineStart int
	tokens    []Token
	idx       int
	done      bool
}

func (s *tokenSource) Next() (Bracket, bool) {
	if s.done {
		return Bracket{}, false
	}
	s.idx += int(s.dir)
	for s.idx < 0 || s.idx >= len(s.tokens) {
		if !s.advanceLine() {
			s.done = true
			return Bracket{}, false
		}
	}
	tok := s.tokens[s.idx]
	return Bracket{Char: tok.Kind, Pos: s.lineStart + tok.End}, true
}

// advanceLine moves to the neighbouring line. Lines without token data
// contribute no brackets.
func (s *tokenSource) advanceLine() bool {
	s.line += int(s.dir)
	if s.line < 0 || s.line >= s.doc.LineCount() {
		return false
	}
	start, err := s.doc.LineStart(s.line)
	if err != nil {
		logger.Warnf("bracket: line %d vanished during scan: %v", s.line, err)
		return false
	}
	s.lineStart = start
	tokens, _ := s.lexer.Tokens(s.line)
	s.tokens = bracketTokens(tokens)
	if s.dir == Forward {
		s.idx = 0
	} else {
		s.idx = len(s.tokens) - 1
	}
	return true
}

// plainSource treats every glyph in the raw text as a bracket.
type plainSource struct {
	doc       Document
	dir       Direction
	line      int
	lineStart int
	text      []rune
	idx       int
	done      bool
}

func (s *plainSource) Next() (Bracket, bool) {
	if s.done {
		return Bracket{}, false
	}
	s.idx += int(s.dir)
	for {
		for s.idx < 0 || s.idx >= len(s.text) {
			if !s.advanceLine() {
				s.done = true
				return Bracket{}, false
			}
		}
		if c := Char(s.text[s.idx]); c.Valid() {
			return Bracket{Char: c, Pos: s.lineStart + s.idx + 1}, true
		}
		s.idx += int(s.dir)
	}
}

func (s *plainSource) advanceLine() bool {
	s.line += int(s.dir)
	if s.line < 0 || s.line >= s.doc.LineCount() {
		return false
	}
	start, err := s.doc.LineStart(s.line)
	if err != nil {
		logger.Warnf("bracket: line %d vanished during scan: %v", s.line, err)
		return false
	}
	raw, err := s.doc.Line(s.line)
	if err != nil {
		logger.Warnf("bracket: line %d unreadable during scan: %v", s.line, err)
		return false
	}
	s.lineStart = start
	s.text = []rune(string(raw))
	if s.dir == Forward {
		s.idx = 0
	} else {
		s.idx = len(s.text) - 1
	}
	return true
}
