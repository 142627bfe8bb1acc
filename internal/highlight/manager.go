// Package highlight runs a bracket query whenever the caret moves and keeps
// the resulting highlight set for the renderer.
package highlight

import (
	"errors"
	"sync"

	"github.com/bethropolis/brackets/internal/bracket"
	"github.com/bethropolis/brackets/internal/config"
	"github.com/bethropolis/brackets/internal/event"
	"github.com/bethropolis/brackets/internal/logger"
)

// Manager owns the bracket matcher of the current document snapshot.
// Update runs synchronously; the lock only guards readers such as drawing.
type Manager struct {
	cfg    config.BracketConfig
	events *event.Manager

	mu         sync.RWMutex
	matcher    *bracket.Matcher
	caret      int
	query      *bracket.Query
	result     bracket.Result
	highlights []bracket.Highlight
	byPos      map[int]bracket.HighlightClass
}

// NewManager creates a manager for doc. lexer may be nil. events may be
// nil, in which case nothing is dispatched.
func NewManager(doc bracket.Document, lexer bracket.Lexer, cfg config.BracketConfig, events *event.Manager) *Manager {
	m := &Manager{cfg: cfg, events: events}
	m.matcher = m.newMatcher(doc, lexer)
	return m
}

func (m *Manager) newMatcher(doc bracket.Document, lexer bracket.Lexer) *bracket.Matcher {
	if m.cfg.PlainText {
		lexer = nil
	}
	return bracket.NewMatcher(doc, lexer, bracket.WithMaxScanSteps(m.cfg.MaxScanSteps))
}

// SetDocument swaps in a new snapshot and clears the current highlights.
func (m *Manager) SetDocument(doc bracket.Document, lexer bracket.Lexer) {
	matcher := m.newMatcher(doc, lexer)

	m.mu.Lock()
	m.matcher = matcher
	m.query = nil
	m.result = bracket.Result{}
	m.highlights = nil
	m.byPos = nil
	m.mu.Unlock()
}

// Matcher returns the matcher of the current snapshot.
func (m *Manager) Matcher() *bracket.Matcher {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.matcher
}

// Update recomputes the highlights for a caret offset, stores them and
// dispatches TypeBracketsHighlighted.
func (m *Manager) Update(caret int) []bracket.Highlight {
	matcher := m.Matcher()
	query, result, highlights := m.compute(matcher, caret)

	byPos := make(map[int]bracket.HighlightClass, len(highlights))
	for _, h := range highlights {
		byPos[h.Pos] = h.Class
	}

	m.mu.Lock()
	m.caret = caret
	m.query = query
	m.result = result
	m.highlights = highlights
	m.byPos = byPos
	m.mu.Unlock()

	if m.events != nil {
		m.events.Dispatch(event.TypeBracketsHighlighted, event.BracketsHighlightedData{
			Caret:      caret,
			Query:      query,
			Result:     result,
			Highlights: highlights,
		})
	}
	return highlights
}

func (m *Manager) compute(matcher *bracket.Matcher, caret int) (*bracket.Query, bracket.Result, []bracket.Highlight) {
	if !m.cfg.HighlightMatching {
		return nil, bracket.Result{}, nil
	}
	q, ok := bracket.AtCaret(matcher.Document(), caret)
	if !ok {
		return nil, bracket.Result{}, nil
	}

	res, err := matcher.FindMatch(q.Pos, q.Char)
	switch {
	case errors.Is(err, bracket.ErrBracketNotFound):
		logger.DebugTagf("highlight", "caret %d: %v", caret, err)
		return nil, bracket.Result{}, nil
	case err != nil:
		logger.Errorf("highlight: query at caret %d failed: %v", caret, err)
		return nil, bracket.Result{}, nil
	}

	logger.DebugTagf("highlight", "caret %d: '%c' at %d -> %s", caret, q.Char, q.Pos, res.Status)
	return &q, res, bracket.DecideHighlights(res, q.Pos, m.cfg.HighlightMismatch)
}

// HandleCursorMoved adapts Update to the event bus.
func (m *Manager) HandleCursorMoved(e event.Event) bool {
	data, ok := e.Data.(event.CursorMovedData)
	if !ok {
		logger.Warnf("highlight: unexpected payload %T for %v", e.Data, e.Type)
		return false
	}
	m.Update(data.Offset)
	return false
}

// Highlights returns a copy of the current highlight set.
func (m *Manager) Highlights() []bracket.Highlight {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bracket.Highlight, len(m.highlights))
	copy(out, m.highlights)
	return out
}

// ClassAt reports the highlight of the bracket ending at pos.
func (m *Manager) ClassAt(pos int) (bracket.HighlightClass, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	class, ok := m.byPos[pos]
	return class, ok
}

// Last returns the most recent query and its result. The query is nil when
// the caret was not next to a bracket.
func (m *Manager) Last() (*bracket.Query, bracket.Result) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.query, m.result
}

// Partner returns the queried bracket and its partner when the last query matched.
func (m *Manager) Partner() (from, to int, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.query == nil || m.result.Status != bracket.Match {
		return 0, 0, false
	}
	return m.query.Pos, m.result.Corresponding, true
}
