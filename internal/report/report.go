// Package report lists every bracket of a document that has no partner or
// closes the wrong kind.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/logger"
	"github.com/bethropolis/brackets/internal/types"
)

// Kind classifies a Problem.
type Kind int

const (
	Unmatched Kind = iota
	Mismatched
)

func (k Kind) String() string {
	if k == Mismatched {
		return "mismatched"
	}
	return "unmatched"
}

// Problem is one bracket the matcher could not pair.
// For a mismatch, Char is the wrong-kind bracket and Other is the open
// nesting level it failed to close.
type Problem struct {
	Kind Kind
	Char bracket.Char
	Pos  int
	At   types.Position

	Other    bracket.Char
	OtherPos int
	OtherAt  types.Position
}

// Scan queries every bracket of the matcher's document. Brackets come from
// the lexer on lines it has data for and from the raw text elsewhere, the
// same way a single query picks its source. A mismatch found from both of
// its ends is reported once.
func Scan(m *bracket.Matcher) ([]Problem, error) {
	doc := m.Document()
	lex := m.Lexer()

	var problems []Problem
	seenPairs := make(map[[2]int]bool)
	for line := 0; line < doc.LineCount(); line++ {
		brackets, err := lineBrackets(doc, lex, line)
		if err != nil {
			return nil, err
		}
		for _, b := range brackets {
			res, err := m.FindMatch(b.Pos, rune(b.Char))
			if errors.Is(err, bracket.ErrBracketNotFound) {
				logger.DebugTagf("report", "skipping %s at %d: %v", b.Char, b.Pos, err)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("query at offset %d: %w", b.Pos, err)
			}

			switch res.Status {
			case bracket.NoMatch:
				p, err := newProblem(doc, Unmatched, b.Pos)
				if err != nil {
					return nil, err
				}
				problems = append(problems, p)
			case bracket.MisMatch:
				key := [2]int{res.Corresponding, res.Offending}
				if key[0] > key[1] {
					key[0], key[1] = key[1], key[0]
				}
				if seenPairs[key] {
					continue
				}
				seenPairs[key] = true
				p, err := mismatchProblem(doc, res)
				if err != nil {
					return nil, err
				}
				problems = append(problems, p)
			}
		}
	}

	sort.SliceStable(problems, func(i, j int) bool { return problems[i].Pos < problems[j].Pos })
	logger.DebugTagf("report", "scan found %d problem(s)", len(problems))
	return problems, nil
}

func lineBrackets(doc bracket.Document, lex bracket.Lexer, line int) ([]bracket.Bracket, error) {
	start, err := doc.LineStart(line)
	if err != nil {
		return nil, err
	}
	var out []bracket.Bracket
	if lex != nil {
		if toks, ok := lex.Tokens(line); ok {
			for _, tok := range toks {
				if tok.Kind.Valid() {
					out = append(out, bracket.Bracket{Char: tok.Kind, Pos: start + tok.End})
				}
			}
			return out, nil
		}
	}
	raw, err := doc.Line(line)
	if err != nil {
		return nil, err
	}
	for i, r := range []rune(string(raw)) {
		if c, ok := bracket.CharOf(r); ok {
			out = append(out, bracket.Bracket{Char: c, Pos: start + i + 1})
		}
	}
	return out, nil
}

// glyphAt returns the bracket ending at pos and its location.
func glyphAt(doc bracket.Document, pos int) (bracket.Char, types.Position, error) {
	at, err := doc.OffsetToPosition(pos - 1)
	if err != nil {
		return 0, types.Position{}, err
	}
	raw, err := doc.Line(at.Line)
	if err != nil {
		return 0, types.Position{}, err
	}
	runes := []rune(string(raw))
	if at.Col >= len(runes) {
		return 0, types.Position{}, fmt.Errorf("offset %d is not on a glyph", pos)
	}
	return bracket.Char(runes[at.Col]), at, nil
}

func newProblem(doc bracket.Document, kind Kind, pos int) (Problem, error) {
	c, at, err := glyphAt(doc, pos)
	if err != nil {
		return Problem{}, err
	}
	return Problem{Kind: kind, Char: c, Pos: pos, At: at}, nil
}

func mismatchProblem(doc bracket.Document, res bracket.Result) (Problem, error) {
	p, err := newProblem(doc, Mismatched, res.Corresponding)
	if err != nil {
		return Problem{}, err
	}
	other, otherAt, err := glyphAt(doc, res.Offending)
	if err != nil {
		return Problem{}, err
	}
	p.Other, p.OtherPos, p.OtherAt = other, res.Offending, otherAt
	return p, nil
}

// Message describes p without its location.
func (p Problem) Message() string {
	if p.Kind == Mismatched {
		return fmt.Sprintf("mismatched '%s' (expected '%s' for '%s' at %s)", p.Char, p.Other.Partner(), p.Other, p.OtherAt)
	}
	return fmt.Sprintf("unmatched '%s'", p.Char)
}

// Write prints one "path:line:col: message" line per problem.
func Write(w io.Writer, path string, problems []Problem) error {
	for _, p := range problems {
		if _, err := fmt.Fprintf(w, "%s:%s: %s\n", path, p.At, p.Message()); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
