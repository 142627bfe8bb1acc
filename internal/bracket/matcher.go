package bracket

import (
	"errors"
	"fmt"

	"github.com/bethropolis/brackets/internal/logger"
)

// DefaultMaxScanSteps bounds the number of brackets a single query examines.
const DefaultMaxScanSteps = 500

var (
	// ErrBracketNotFound means the start position does not follow a bracket
	// token, typically because it lies inside a string or comment. Callers
	// skip highlighting.
	ErrBracketNotFound = errors.New("bracket not found at position")
	// ErrInvalidBracket means FindMatch was called with a non-bracket rune.
	ErrInvalidBracket = errors.New("invalid bracket character")
)

// Status is the outcome of a query.
type Status int

const (
	NoMatch Status = iota
	Match
	MisMatch
)

func (s Status) String() string {
	switch s {
	case Match:
		return "match"
	case MisMatch:
		return "mismatch"
	default:
		return "no match"
	}
}

// Result describes the outcome of FindMatch.
//
// For Match, Corresponding is the partner's position. For MisMatch,
// Corresponding is the wrong-kind bracket that stopped the scan and
// Offending is the still-open bracket it failed to close. Offending equals
// the queried position when the mismatch happens at nesting depth zero.
type Result struct {
	Status        Status
	Corresponding int
	Offending     int
}

// Matcher answers bracket queries against one document snapshot.
type Matcher struct {
	doc      Document
	lexer    Lexer
	maxSteps int
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMaxScanSteps overrides DefaultMaxScanSteps. Non-positive values are ignored.
func WithMaxScanSteps(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxSteps = n
		}
	}
}

// NewMatcher returns a Matcher for doc. lexer may be nil, in which case
// every query uses the plain-text fallback.
func NewMatcher(doc Document, lexer Lexer, opts ...Option) *Matcher {
	m := &Matcher{doc: doc, lexer: lexer, maxSteps: DefaultMaxScanSteps}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Document returns the snapshot the matcher reads.
func (m *Matcher) Document() Document { return m.doc }

// Lexer returns the attached lexer, or nil.
func (m *Matcher) Lexer() Lexer { return m.lexer }

// FindMatch looks for the partner of the bracket ch whose position is pos.
// It fails with ErrBracketNotFound when the glyph before pos is not ch.
func (m *Matcher) FindMatch(pos int, ch rune) (Result, error) {
	start, ok := CharOf(ch)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidBracket, ch)
	}

	dir := start.Direction()
	src, err := NewSource(m.doc, m.lexer, Bracket{Char: start, Pos: pos}, dir)
	if err != nil {
		return Result{}, err
	}

	stack := []Bracket{{Char: start, Pos: pos}}
	for steps := 0; ; steps++ {
		if steps >= m.maxSteps {
			logger.WarnTagf("bracket", "gave up matching '%s' at %d after %d brackets", start, pos, m.maxSteps)
			return Result{Status: NoMatch}, nil
		}
		b, ok := src.Next()
		if !ok {
			return Result{Status: NoMatch}, nil
		}

		if b.Char.IsOpen() == start.IsOpen() {
			stack = append(stack, b)
			continue
		}
		top := stack[len(stack)-1]
		if top.Char.Partner() != b.Char {
			return Result{Status: MisMatch, Corresponding: b.Pos, Offending: top.Pos}, nil
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return Result{Status: Match, Corresponding: b.Pos}, nil
		}
	}
}
